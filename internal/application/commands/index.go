package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

// IndexFolderCommand scans a folder into the vault as a named snapshot
type IndexFolderCommand struct {
	vault        *application.Vault
	FolderPath   string
	SnapshotName string
	now          func() time.Time
}

// NewIndexFolderCommand creates a new IndexFolderCommand. An empty snapshot
// name defaults to the current day.
func NewIndexFolderCommand(vault *application.Vault, folderPath, snapshotName string) *IndexFolderCommand {
	return &IndexFolderCommand{
		vault:        vault,
		FolderPath:   folderPath,
		SnapshotName: snapshotName,
		now:          time.Now,
	}
}

// Validate checks if the index operation is valid
func (c *IndexFolderCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.FolderPath)
}

// Name returns the snapshot name that will be used
func (c *IndexFolderCommand) Name() string {
	if name := strings.TrimSpace(c.SnapshotName); name != "" {
		return name
	}
	return domain.DefaultSnapshotName(c.now())
}

// Execute runs the index folder command
func (c *IndexFolderCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder := strings.TrimSpace(c.FolderPath)
	name := c.Name()
	return runMutation(ctx, c.vault, "index", folder, application.RefreshAll,
		func(ctx context.Context) (string, error) {
			msg, err := c.vault.Backend().StartScan(ctx, folder, name)
			if err != nil {
				return "", fmt.Errorf("failed to index %s: %w", folder, err)
			}
			return msg, nil
		})
}

// AddFileCommand indexes a single file
type AddFileCommand struct {
	vault *application.Vault
	Path  string
}

// NewAddFileCommand creates a new AddFileCommand
func NewAddFileCommand(vault *application.Vault, path string) *AddFileCommand {
	return &AddFileCommand{vault: vault, Path: path}
}

// Validate checks if the add operation is valid
func (c *AddFileCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the add file command
func (c *AddFileCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := strings.TrimSpace(c.Path)
	return runMutation(ctx, c.vault, "add", p, application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			msg, err := c.vault.Backend().AddFile(ctx, p)
			if err != nil {
				return "", fmt.Errorf("failed to add %s: %w", p, err)
			}
			return msg, nil
		})
}
