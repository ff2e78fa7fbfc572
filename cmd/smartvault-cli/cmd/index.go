package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

var snapshotName string

var indexCmd = &cobra.Command{
	Use:   "index <folder>",
	Short: "Scan a folder into the vault",
	Long: `Scan a folder on disk and index every file under it. The run is recorded
as a snapshot, named after today's date unless --snapshot is given.

Examples:
  smartvault-cli index ~/Pictures
  smartvault-cli index /mnt/backup --snapshot nightly`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := snapshotName
		if name == "" {
			name = domain.DefaultSnapshotName(time.Now())
		}
		index := commands.NewIndexFolderCommand(GetVault(), args[0], name)
		if err := index.Validate(); err != nil {
			return err
		}
		return printMutation(withSpinner("Indexing "+args[0], func() (*commands.MutationResult, error) {
			return index.Execute(cmd.Context())
		}))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Index a single file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMutation(commands.NewAddFileCommand(GetVault(), args[0]).Execute(cmd.Context()))
	},
}

func init() {
	indexCmd.Flags().StringVarP(&snapshotName, "snapshot", "s", "", "snapshot name (default DD-MM-YYYY)")
	rootCmd.AddCommand(indexCmd, addCmd)
}
