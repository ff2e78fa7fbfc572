package commands

import (
	"context"
	"fmt"
	"strings"

	"smartvault/internal/application"
)

// OpenResult contains the result of an open operation
type OpenResult struct {
	Path    string
	Message string
}

// OpenCommand opens a file with the default or a named application.
// Ghost files are detected first and never handed to the opener.
type OpenCommand struct {
	vault *application.Vault
	Path  string
	App   string
}

// NewOpenCommand creates a new OpenCommand. An empty app uses the system default.
func NewOpenCommand(vault *application.Vault, path, app string) *OpenCommand {
	return &OpenCommand{vault: vault, Path: path, App: app}
}

// Validate checks if the open operation is valid
func (c *OpenCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context) (*OpenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	backend := c.vault.Backend()
	exists, err := backend.CheckExists(ctx, c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", c.Path, err)
	}
	if !exists {
		return nil, &application.GhostFileError{Path: c.Path}
	}

	app := strings.TrimSpace(c.App)
	if app == "" {
		if err := backend.Open(ctx, c.Path); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", c.Path, err)
		}
		return &OpenResult{Path: c.Path, Message: "Opened " + c.Path}, nil
	}

	if err := backend.OpenWith(ctx, c.Path, app); err != nil {
		return nil, fmt.Errorf("failed to open %s with %s: %w", c.Path, app, err)
	}
	return &OpenResult{Path: c.Path, Message: fmt.Sprintf("Opened %s with %s", c.Path, app)}, nil
}

// CheckExistsCommand reports whether an indexed path is still on disk
type CheckExistsCommand struct {
	vault *application.Vault
	Path  string
}

// NewCheckExistsCommand creates a new CheckExistsCommand
func NewCheckExistsCommand(vault *application.Vault, path string) *CheckExistsCommand {
	return &CheckExistsCommand{vault: vault, Path: path}
}

// Execute runs the check exists command
func (c *CheckExistsCommand) Execute(ctx context.Context) (bool, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return false, err
	}
	exists, err := c.vault.Backend().CheckExists(ctx, c.Path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", c.Path, err)
	}
	return exists, nil
}
