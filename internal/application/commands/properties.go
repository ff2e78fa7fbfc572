package commands

import (
	"context"
	"fmt"

	"smartvault/internal/application"
)

// FilePropertiesCommand fetches the detail record for one file
type FilePropertiesCommand struct {
	vault *application.Vault
	Hash  string
}

// NewFilePropertiesCommand creates a new FilePropertiesCommand
func NewFilePropertiesCommand(vault *application.Vault, hash string) *FilePropertiesCommand {
	return &FilePropertiesCommand{vault: vault, Hash: hash}
}

// Execute runs the file properties command
func (c *FilePropertiesCommand) Execute(ctx context.Context) (*application.FileProperties, error) {
	if err := application.ValidateRequired("hash", c.Hash); err != nil {
		return nil, err
	}
	props, err := c.vault.Backend().FileProperties(ctx, c.Hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}
	return props, nil
}

// FolderPropertiesCommand fetches the detail record for one folder
type FolderPropertiesCommand struct {
	vault      *application.Vault
	FolderPath string
}

// NewFolderPropertiesCommand creates a new FolderPropertiesCommand
func NewFolderPropertiesCommand(vault *application.Vault, folderPath string) *FolderPropertiesCommand {
	return &FolderPropertiesCommand{vault: vault, FolderPath: folderPath}
}

// Execute runs the folder properties command
func (c *FolderPropertiesCommand) Execute(ctx context.Context) (*application.FolderProperties, error) {
	if err := application.ValidateRequired("folderPath", c.FolderPath); err != nil {
		return nil, err
	}
	props, err := c.vault.Backend().FolderProperties(ctx, c.FolderPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder properties: %w", err)
	}
	return props, nil
}
