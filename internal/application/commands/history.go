package commands

import (
	"context"
	"fmt"

	"smartvault/internal/application"
)

// ListHistoryCommand returns the cached bin entries
type ListHistoryCommand struct {
	vault *application.Vault
}

// NewListHistoryCommand creates a new ListHistoryCommand
func NewListHistoryCommand(vault *application.Vault) *ListHistoryCommand {
	return &ListHistoryCommand{vault: vault}
}

// Execute runs the list history command
func (c *ListHistoryCommand) Execute(ctx context.Context) ([]application.DeletedEntry, error) {
	return c.vault.State().Deleted, nil
}

// ListSnapshotsCommand returns the cached snapshots
type ListSnapshotsCommand struct {
	vault *application.Vault
}

// NewListSnapshotsCommand creates a new ListSnapshotsCommand
func NewListSnapshotsCommand(vault *application.Vault) *ListSnapshotsCommand {
	return &ListSnapshotsCommand{vault: vault}
}

// Execute runs the list snapshots command
func (c *ListSnapshotsCommand) Execute(ctx context.Context) ([]application.SnapshotInfo, error) {
	return c.vault.State().Snapshots, nil
}

// ClearHistoryCommand empties the bin history
type ClearHistoryCommand struct {
	vault *application.Vault
}

// NewClearHistoryCommand creates a new ClearHistoryCommand
func NewClearHistoryCommand(vault *application.Vault) *ClearHistoryCommand {
	return &ClearHistoryCommand{vault: vault}
}

// Execute runs the clear history command
func (c *ClearHistoryCommand) Execute(ctx context.Context) (*MutationResult, error) {
	return runMutation(ctx, c.vault, "clear-history", "", application.RefreshHistory,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().ClearHistory(ctx); err != nil {
				return "", fmt.Errorf("failed to clear history: %w", err)
			}
			return "History cleared", nil
		})
}

// DeleteSnapshotCommand forgets one snapshot
type DeleteSnapshotCommand struct {
	vault     *application.Vault
	Name      string
	Timestamp int64
}

// NewDeleteSnapshotCommand creates a new DeleteSnapshotCommand
func NewDeleteSnapshotCommand(vault *application.Vault, name string, timestamp int64) *DeleteSnapshotCommand {
	return &DeleteSnapshotCommand{vault: vault, Name: name, Timestamp: timestamp}
}

// Validate checks if the delete operation is valid
func (c *DeleteSnapshotCommand) Validate() error {
	return application.ValidateRequired("snapshotName", c.Name)
}

// Execute runs the delete snapshot command
func (c *DeleteSnapshotCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return runMutation(ctx, c.vault, "delete-snapshot", c.Name, application.RefreshHistory,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().DeleteSnapshot(ctx, c.Name, c.Timestamp); err != nil {
				return "", fmt.Errorf("failed to delete snapshot %s: %w", c.Name, err)
			}
			return fmt.Sprintf("Deleted snapshot %s", c.Name), nil
		})
}

// ResetVaultCommand drops every record from the index. It is irreversible
// and refuses to run unless Confirmed is set.
type ResetVaultCommand struct {
	vault     *application.Vault
	Confirmed bool
}

// NewResetVaultCommand creates a new ResetVaultCommand
func NewResetVaultCommand(vault *application.Vault, confirmed bool) *ResetVaultCommand {
	return &ResetVaultCommand{vault: vault, Confirmed: confirmed}
}

// Validate checks if the reset operation is valid
func (c *ResetVaultCommand) Validate() error {
	return requireConfirmation(c.Confirmed)
}

// Execute runs the reset vault command
func (c *ResetVaultCommand) Execute(ctx context.Context) (*MutationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return runMutation(ctx, c.vault, "reset", "", application.RefreshRecords,
		func(ctx context.Context) (string, error) {
			if err := c.vault.Backend().ClearVault(ctx); err != nil {
				return "", fmt.Errorf("failed to clear vault: %w", err)
			}
			return "Vault cleared", nil
		})
}
