package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartvault/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "mv <source> <destination-folder>",
	Short: "Move a file or folder into another folder",
	Long: `Move an indexed file or a folder into a destination folder. A source
that matches an indexed file path moves that file; anything else is
treated as a folder.

Examples:
  smartvault-cli mv photos/IMG_0001.jpg archive/2024
  smartvault-cli mv photos/trip archive`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if rec, err := fileByPath(args[0]); err == nil {
			return printMutation(commands.NewMoveFileCommand(GetVault(), rec.Hash, args[1]).Execute(cmd.Context()))
		}
		return printMutation(commands.NewMoveFolderCommand(GetVault(), args[0], args[1]).Execute(cmd.Context()))
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a file or folder in place",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if rec, err := fileByPath(args[0]); err == nil {
			return printMutation(commands.NewRenameFileCommand(GetVault(), rec.Hash, args[1]).Execute(cmd.Context()))
		}
		return printMutation(commands.NewRenameFolderCommand(GetVault(), args[0], args[1]).Execute(cmd.Context()))
	},
}

var openWith string

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a file with its default application",
	Long: `Open an indexed file. Files missing on disk are refused.

Examples:
  smartvault-cli open docs/report.pdf
  smartvault-cli open videos/clip.mp4 --with vlc`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewOpenCommand(GetVault(), args[0], openWith).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	openCmd.Flags().StringVarP(&openWith, "with", "w", "", "application to open the file with")
	rootCmd.AddCommand(moveCmd, renameCmd, openCmd)
}
