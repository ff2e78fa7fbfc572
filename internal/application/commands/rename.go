package commands

import (
	"context"
	"fmt"
	"strings"

	"smartvault/internal/application"
)

// RenameFileCommand renames an indexed file in place
type RenameFileCommand struct {
	vault   *application.Vault
	Hash    string
	NewName string
}

// NewRenameFileCommand creates a new RenameFileCommand
func NewRenameFileCommand(vault *application.Vault, hash, newName string) *RenameFileCommand {
	return &RenameFileCommand{vault: vault, Hash: hash, NewName: newName}
}

// Validate checks if the rename operation is valid
func (c *RenameFileCommand) Validate() error {
	if err := application.ValidateRequired("hash", c.Hash); err != nil {
		return err
	}
	return application.ValidateName("newName", strings.TrimSpace(c.NewName))
}

// Execute runs the rename file command
func (c *RenameFileCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.NewName)
	return runMutation(ctx, c.vault, "rename", c.Hash, application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().RenameFile(ctx, c.Hash, name); err != nil {
				return "", fmt.Errorf("failed to rename: %w", err)
			}
			return fmt.Sprintf("Renamed to %s", name), nil
		})
}

// RenameFolderCommand renames a folder and every path below it
type RenameFolderCommand struct {
	vault   *application.Vault
	OldPath string
	NewName string
}

// NewRenameFolderCommand creates a new RenameFolderCommand
func NewRenameFolderCommand(vault *application.Vault, oldPath, newName string) *RenameFolderCommand {
	return &RenameFolderCommand{vault: vault, OldPath: oldPath, NewName: newName}
}

// Validate checks if the rename operation is valid
func (c *RenameFolderCommand) Validate() error {
	if err := application.ValidateRequired("oldPath", c.OldPath); err != nil {
		return err
	}
	return application.ValidateName("newName", strings.TrimSpace(c.NewName))
}

// Execute runs the rename folder command
func (c *RenameFolderCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.NewName)
	return runMutation(ctx, c.vault, "rename-folder", c.OldPath, application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().RenameFolder(ctx, c.OldPath, name); err != nil {
				return "", fmt.Errorf("failed to rename folder %s: %w", c.OldPath, err)
			}
			return fmt.Sprintf("Renamed folder to %s", name), nil
		})
}
