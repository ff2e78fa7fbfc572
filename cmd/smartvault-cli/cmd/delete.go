package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Move a file to the bin",
	Long: `Move an indexed file to the system bin. The deletion is recorded in the
history and can be restored from the bin.

Examples:
  smartvault-cli rm photos/IMG_0001.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := fileByPath(args[0])
		if err != nil {
			return err
		}
		return printMutation(commands.NewDeleteToBinCommand(GetVault(), rec.Hash, rec.Path).Execute(cmd.Context()))
	},
}

var rmdirCmd = &cobra.Command{
	Use:   "rmdir <folder>",
	Short: "Move a folder and everything under it to the bin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := confirm(fmt.Sprintf("Move %s and its contents to the bin", args[0])); err != nil {
			return err
		}
		return printMutation(commands.NewDeleteFolderCommand(GetVault(), args[0]).Execute(cmd.Context()))
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge <path>",
	Short: "Delete a file permanently",
	Long: `Delete a file from disk without going through the bin.

Warning: This operation cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := fileByPath(args[0])
		if err != nil {
			return err
		}
		if err := confirm(fmt.Sprintf("Permanently delete %s", rec.Path)); err != nil {
			return err
		}
		return printMutation(commands.NewPermanentDeleteCommand(GetVault(), rec.Hash, rec.Path, true).Execute(cmd.Context()))
	},
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear-history",
	Short: "Forget every bin history record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := confirm("Clear the deletion history"); err != nil {
			return err
		}
		return printMutation(commands.NewClearHistoryCommand(GetVault()).Execute(cmd.Context()))
	},
}

var rmSnapshotCmd = &cobra.Command{
	Use:   "rm-snapshot <name> [timestamp]",
	Short: "Delete an indexing snapshot",
	Long: `Delete a snapshot record. Indexed files stay in the vault. The timestamp
is only needed when several snapshots share a name; "snapshots" lists them.

Examples:
  smartvault-cli rm-snapshot 14-06-2025
  smartvault-cli rm-snapshot nightly 1718360000`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := snapshotByName(args)
		if err != nil {
			return err
		}
		if err := confirm(fmt.Sprintf("Delete snapshot %s from %s", snap.Name, domain.FormatTimestamp(snap.Timestamp))); err != nil {
			return err
		}
		return printMutation(commands.NewDeleteSnapshotCommand(GetVault(), snap.Name, snap.Timestamp).Execute(cmd.Context()))
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every record from the index",
	Long: `Clear the whole vault index. Files on disk are not touched.

Warning: This operation cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := confirm(fmt.Sprintf("Reset the vault (%d indexed files)", len(GetVault().Records()))); err != nil {
			return err
		}
		return printMutation(commands.NewResetVaultCommand(GetVault(), true).Execute(cmd.Context()))
	},
}

func snapshotByName(args []string) (domain.SnapshotInfo, error) {
	var ts int64
	if len(args) == 2 {
		parsed, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return domain.SnapshotInfo{}, &application.ValidationError{Field: "timestamp", Message: "must be unix seconds"}
		}
		ts = parsed
	}

	var matches []domain.SnapshotInfo
	for _, s := range GetVault().State().Snapshots {
		if s.Name == args[0] && (ts == 0 || s.Timestamp == ts) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return domain.SnapshotInfo{}, fmt.Errorf("snapshot %s: %w", args[0], application.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.SnapshotInfo{}, fmt.Errorf("%d snapshots named %s, pass the timestamp", len(matches), args[0])
	}
}

func init() {
	rootCmd.AddCommand(rmCmd, rmdirCmd, purgeCmd, clearHistoryCmd, rmSnapshotCmd, resetCmd)
}
