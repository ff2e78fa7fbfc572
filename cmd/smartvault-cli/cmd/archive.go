package cmd

import (
	"github.com/spf13/cobra"

	"smartvault/internal/application/commands"
)

var archiveName string

var compressCmd = &cobra.Command{
	Use:   "compress <path>...",
	Short: "Zip files or folders",
	Long: `Compress one or more paths into a zip archive. Without --name a single
path is named after its stem and several paths become "archive".

Examples:
  smartvault-cli compress docs/report.pdf
  smartvault-cli compress photos/a.jpg photos/b.jpg --name holiday`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMutation(commands.NewCompressCommand(GetVault(), args, archiveName).Execute(cmd.Context()))
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <archive> [output-folder]",
	Short: "Extract a zip archive",
	Long: `Extract an indexed archive. Without an output folder the contents go
next to the archive, in a folder named after it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dir string
		if len(args) == 2 {
			dir = args[1]
		}
		return printMutation(commands.NewExtractCommand(GetVault(), args[0], dir).Execute(cmd.Context()))
	},
}

func init() {
	compressCmd.Flags().StringVarP(&archiveName, "name", "n", "", "archive name")
	rootCmd.AddCommand(compressCmd, extractCmd)
}
