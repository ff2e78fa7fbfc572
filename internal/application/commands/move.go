package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

// MoveFileCommand moves an indexed file into another folder
type MoveFileCommand struct {
	vault             *application.Vault
	Hash              string
	DestinationFolder string
}

// NewMoveFileCommand creates a new MoveFileCommand
func NewMoveFileCommand(vault *application.Vault, hash, destinationFolder string) *MoveFileCommand {
	return &MoveFileCommand{vault: vault, Hash: hash, DestinationFolder: destinationFolder}
}

// Validate checks if the move operation is valid
func (c *MoveFileCommand) Validate() error {
	if err := application.ValidateRequired("hash", c.Hash); err != nil {
		return err
	}
	if strings.TrimSpace(c.DestinationFolder) == "" {
		return application.ErrEmptyDestination
	}
	return nil
}

// Execute runs the move file command
func (c *MoveFileCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dest := strings.TrimSpace(c.DestinationFolder)
	var newPath string
	res, err := runMutation(ctx, c.vault, "move", c.Hash, application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			p, err := c.vault.Backend().MoveFile(ctx, c.Hash, dest)
			if err != nil {
				return "", fmt.Errorf("failed to move file: %w", err)
			}
			newPath = p
			return "Moved to: " + p, nil
		})
	if res != nil {
		res.NewPath = newPath
	}
	return res, err
}

// MoveFolderCommand moves a folder under another parent
type MoveFolderCommand struct {
	vault             *application.Vault
	OldPath           string
	DestinationParent string
}

// NewMoveFolderCommand creates a new MoveFolderCommand
func NewMoveFolderCommand(vault *application.Vault, oldPath, destinationParent string) *MoveFolderCommand {
	return &MoveFolderCommand{vault: vault, OldPath: oldPath, DestinationParent: destinationParent}
}

// Validate checks if the move operation is valid
func (c *MoveFolderCommand) Validate() error {
	if err := application.ValidateRequired("oldPath", c.OldPath); err != nil {
		return err
	}
	item := domain.ClipboardItem{IsFolder: true, FolderPath: c.OldPath}
	return application.ValidateMoveDestination(item, c.DestinationParent)
}

// Execute runs the move folder command
func (c *MoveFolderCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dest := strings.TrimSpace(c.DestinationParent)
	var newPath string
	res, err := runMutation(ctx, c.vault, "move-folder", c.OldPath, application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			p, err := c.vault.Backend().MoveFolder(ctx, c.OldPath, dest)
			if err != nil {
				return "", fmt.Errorf("failed to move folder %s: %w", c.OldPath, err)
			}
			newPath = p
			return "Moved to: " + p, nil
		})
	if res != nil {
		res.NewPath = newPath
	}
	return res, err
}

// PasteCommand moves the clipboard item to Destination with exactly one
// backend move. It empties the clipboard on success and returns it to Cut
// when the move fails.
type PasteCommand struct {
	vault       *application.Vault
	clipboard   *application.Clipboard
	Destination string
}

// NewPasteCommand creates a new PasteCommand
func NewPasteCommand(vault *application.Vault, clipboard *application.Clipboard, destination string) *PasteCommand {
	return &PasteCommand{vault: vault, clipboard: clipboard, Destination: destination}
}

// Validate checks the destination and the held item without contacting the backend
func (c *PasteCommand) Validate() error {
	item, ok := c.clipboard.Item()
	if !ok {
		return application.ErrNothingCut
	}
	return application.ValidateMoveDestination(item, c.Destination)
}

// Execute runs the paste command
func (c *PasteCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	item, _ := c.clipboard.Item()
	var (
		res *MutationResult
		err error
	)
	if item.IsFolder {
		res, err = NewMoveFolderCommand(c.vault, item.SourcePath(), c.Destination).Execute(ctx)
	} else {
		res, err = NewMoveFileCommand(c.vault, item.Hash, c.Destination).Execute(ctx)
	}

	var refreshErr *application.RefreshError
	if err == nil || errors.As(err, &refreshErr) {
		c.clipboard.Complete()
	} else {
		c.clipboard.Reopen()
	}
	return res, err
}
