package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

var (
	filterFlag  string
	indexedFlag bool
	thresholdFl int
	limitFlag   int
)

var lsCmd = &cobra.Command{
	Use:   "ls [folder]",
	Short: "List a folder of the vault",
	Long: `List the folders and files directly under a folder. With no argument
the vault root is listed.

Examples:
  smartvault-cli ls
  smartvault-cli ls photos/2024
  smartvault-cli ls photos --filter image`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := application.ParseFilter(filterFlag)
		if err != nil {
			return err
		}
		nav := application.NewNavigation().WithFilter(filter)
		if len(args) == 1 {
			nav = nav.Enter(args[0])
		}

		res, err := commands.NewBrowseCommand(GetVault(), nav).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(res.Breadcrumb)
		for _, n := range res.Nodes {
			if n.IsFolder {
				fmt.Printf("  %s/\n", n.Name)
				continue
			}
			fmt.Printf("  %s  [%s]\n", n.Name, n.Category)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search files by name",
	Long: `Search every indexed file whose name contains the query, ignoring case.
Identical content is listed once.

Examples:
  smartvault-cli search invoice
  smartvault-cli search .mp4 --filter video`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := application.ParseFilter(filterFlag)
		if err != nil {
			return err
		}
		nodes, err := commands.NewSearchCommand(GetVault(), args[0], filter).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, n := range nodes {
			fmt.Printf("%s  [%s]\n", n.Path, n.Category)
		}
		return nil
	},
}

var dupsCmd = &cobra.Command{
	Use:   "dups",
	Short: "List files with identical content",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := application.ParseFilter(filterFlag)
		if err != nil {
			return err
		}
		groups, err := commands.NewDuplicatesCommand(GetVault(), filter).Execute(cmd.Context())
		if err != nil {
			return err
		}

		var wasted uint64
		for _, g := range groups {
			wasted += g.WastedBytes()
			fmt.Printf("%s  %d copies  %s each\n", g.Hash, len(g.Records), domain.FormatSize(g.Records[0].Size))
			for _, r := range g.Records {
				fmt.Printf("  %s\n", r.Path)
			}
		}
		fmt.Printf("%d groups, %s reclaimable\n", len(groups), domain.FormatSize(wasted))
		return nil
	},
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Group files by date",
	Long: `Group files by their modification date, newest first. With --indexed
every file lands in a single bucket, since the service does not report an
indexing date per file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := application.ParseFilter(filterFlag)
		if err != nil {
			return err
		}
		mode := application.ByModifiedDate
		if indexedFlag {
			mode = application.ByIndexedDate
		}

		res, err := commands.NewTimelineCommand(GetVault(), mode, filter).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, b := range res.Buckets {
			fmt.Printf("%s  %d files\n", b.DisplayLabel, len(b.Files))
			for _, r := range b.Files {
				fmt.Printf("  %s  %s\n", r.Path, domain.FormatSize(r.Size))
			}
		}
		fmt.Printf("%d files across %d dates\n", res.Summary.Files, res.Summary.Dates)
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find visually similar images",
	Long: `Ask the service for perceptually similar images. The threshold is a
similarity percentage between 70 and 99; higher is stricter.

Examples:
  smartvault-cli similar
  smartvault-cli similar --threshold 80`,
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold := thresholdFl
		if threshold == 0 {
			threshold = cfg.Dedup.DefaultThreshold
		}
		find := commands.NewFindSimilarCommand(GetVault(), threshold)
		if err := find.Validate(); err != nil {
			return err
		}

		res, err := withSpinner("Scanning images", func() (*commands.FindSimilarResult, error) {
			return find.Execute(cmd.Context())
		})
		if err != nil {
			return err
		}

		for _, g := range res.Groups {
			fmt.Printf("~%.0f%% similar  1 best + %d similar\n", g.SimilarityPct, len(g.Members))
			fmt.Printf("  * %s  %s\n", g.Representative.Path, domain.FormatSize(g.Representative.Size))
			for _, r := range g.Members {
				fmt.Printf("    %s  %s\n", r.Path, domain.FormatSize(r.Size))
			}
		}
		fmt.Printf("%d groups at %d%% (%s)\n", len(res.Groups), res.Threshold, domain.ThresholdTier(res.Threshold))
		return nil
	},
}

var propsCmd = &cobra.Command{
	Use:   "props <path>",
	Short: "Show file or folder properties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if rec, err := fileByPath(args[0]); err == nil {
			p, err := commands.NewFilePropertiesCommand(GetVault(), rec.Hash).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Name:      %s\n", p.Name)
			fmt.Printf("Path:      %s\n", p.Path)
			fmt.Printf("Size:      %s\n", domain.FormatSize(p.Size))
			fmt.Printf("Modified:  %s\n", p.Modified)
			fmt.Printf("Category:  %s\n", p.Category)
			fmt.Printf("Hash:      %s\n", p.Hash)
			if p.IsGhost() {
				fmt.Println("Missing on disk (ghost)")
			}
			return nil
		}

		p, err := commands.NewFolderPropertiesCommand(GetVault(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Name:   %s\n", p.Name)
		fmt.Printf("Path:   %s\n", p.Path)
		fmt.Printf("Files:  %d\n", p.FileCount)
		fmt.Printf("Total:  %s\n", domain.FormatSize(p.TotalSize))
		if !p.ExistsOnDisk {
			fmt.Println("Missing on disk (ghost)")
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List files moved to the bin",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewListHistoryCommand(GetVault()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %s  %s", domain.FormatTimestamp(e.DeletedAt), e.Path, domain.FormatSize(e.Size))
			if e.SnapshotName != "" {
				line += "  from " + e.SnapshotName
			}
			fmt.Println(line)
		}
		return nil
	},
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List indexing snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := commands.NewListSnapshotsCommand(GetVault()).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range snapshots {
			fmt.Printf("%s  %d  %s  %d files  %s\n", s.Name, s.Timestamp, domain.FormatTimestamp(s.Timestamp), s.FileCount, s.FolderPath)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify stored hashes against file contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := withSpinner("Verifying hashes", func() (*commands.IntegrityResult, error) {
			return commands.NewIntegrityCheckCommand(GetVault()).Execute(cmd.Context())
		})
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		for _, p := range res.Corrupted {
			fmt.Printf("  %s\n", p)
		}
		if len(res.Corrupted) > 0 {
			return fmt.Errorf("%d corrupted files", len(res.Corrupted))
		}
		return nil
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent actions from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if journal == nil {
			return fmt.Errorf("activity journal is disabled")
		}
		entries, err := journal.Recent(cmd.Context(), limitFlag)
		if err != nil {
			return err
		}
		for _, e := range entries {
			outcome := "ok"
			if !e.OK {
				outcome = "error"
			}
			fmt.Printf("%s  %-14s %-5s %s  %s (%s)\n",
				e.StartedAt.Format("2006-01-02 15:04:05"), e.Action, outcome, e.Target,
				strings.TrimSpace(e.Message), e.Duration.Round(time.Millisecond))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{lsCmd, searchCmd, dupsCmd, timelineCmd} {
		c.Flags().StringVarP(&filterFlag, "filter", "f", domain.FilterAll, "category filter: "+strings.Join(application.FilterValues(), ", "))
	}
	timelineCmd.Flags().BoolVar(&indexedFlag, "indexed", false, "group by indexing date instead of modification date")
	similarCmd.Flags().IntVarP(&thresholdFl, "threshold", "t", 0, "similarity percentage (default from config)")
	activityCmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "number of entries to show")

	rootCmd.AddCommand(lsCmd, searchCmd, dupsCmd, timelineCmd, similarCmd, propsCmd,
		historyCmd, snapshotsCmd, checkCmd, activityCmd)
}
