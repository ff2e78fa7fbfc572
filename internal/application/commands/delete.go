package commands

import (
	"context"
	"fmt"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

// DeleteToBinCommand moves one indexed file to the bin
type DeleteToBinCommand struct {
	vault *application.Vault
	Hash  string
	Path  string
}

// NewDeleteToBinCommand creates a new DeleteToBinCommand
func NewDeleteToBinCommand(vault *application.Vault, hash, path string) *DeleteToBinCommand {
	return &DeleteToBinCommand{vault: vault, Hash: hash, Path: path}
}

// Validate checks if the delete operation is valid
func (c *DeleteToBinCommand) Validate() error {
	if err := application.ValidateRequired("hash", c.Hash); err != nil {
		return err
	}
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the delete to bin command
func (c *DeleteToBinCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return runMutation(ctx, c.vault, "delete-to-bin", c.Path, application.RefreshAll,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().DeleteToBin(ctx, c.Hash, c.Path); err != nil {
				return "", fmt.Errorf("failed to delete %s: %w", c.Path, err)
			}
			return fmt.Sprintf("Moved to bin: %s", domain.BaseName(c.Path)), nil
		})
}

// DeleteFolderCommand moves every file under a folder to the bin
type DeleteFolderCommand struct {
	vault      *application.Vault
	FolderPath string
}

// NewDeleteFolderCommand creates a new DeleteFolderCommand
func NewDeleteFolderCommand(vault *application.Vault, folderPath string) *DeleteFolderCommand {
	return &DeleteFolderCommand{vault: vault, FolderPath: folderPath}
}

// Validate checks if the delete operation is valid
func (c *DeleteFolderCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.FolderPath)
}

// Execute runs the delete folder command
func (c *DeleteFolderCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return runMutation(ctx, c.vault, "delete-folder", c.FolderPath, application.RefreshAll,
		func(ctx context.Context) (string, error) {
			msg, err := c.vault.Backend().DeleteFolderToBin(ctx, c.FolderPath)
			if err != nil {
				return "", fmt.Errorf("failed to delete folder %s: %w", c.FolderPath, err)
			}
			return msg, nil
		})
}

// PermanentDeleteCommand removes a file from disk and index. It is
// irreversible and refuses to run unless Confirmed is set.
type PermanentDeleteCommand struct {
	vault     *application.Vault
	Hash      string
	Path      string
	Confirmed bool
}

// NewPermanentDeleteCommand creates a new PermanentDeleteCommand
func NewPermanentDeleteCommand(vault *application.Vault, hash, path string, confirmed bool) *PermanentDeleteCommand {
	return &PermanentDeleteCommand{vault: vault, Hash: hash, Path: path, Confirmed: confirmed}
}

// Validate checks if the delete operation is valid
func (c *PermanentDeleteCommand) Validate() error {
	if err := application.ValidateRequired("hash", c.Hash); err != nil {
		return err
	}
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	return requireConfirmation(c.Confirmed)
}

// Execute runs the permanent delete command
func (c *PermanentDeleteCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return runMutation(ctx, c.vault, "permanent-delete", c.Path, application.RefreshAll,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().PermanentDelete(ctx, c.Hash, c.Path); err != nil {
				return "", fmt.Errorf("failed to permanently delete %s: %w", c.Path, err)
			}
			return fmt.Sprintf("Permanently deleted: %s", domain.BaseName(c.Path)), nil
		})
}
