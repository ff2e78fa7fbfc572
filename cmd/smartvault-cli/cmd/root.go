package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartvault/internal/adapters/rpc"
	"smartvault/internal/adapters/sqlite"
	"smartvault/internal/application"
	"smartvault/internal/config"
	"smartvault/internal/domain"
	"smartvault/internal/logging"
)

var (
	backendAddr string
	assumeYes   bool

	cfg     *config.Config
	vault   *application.Vault
	journal *sqlite.Journal
)

var rootCmd = &cobra.Command{
	Use:   "smartvault-cli",
	Short: "CLI for a content-addressed file vault",
	Long: `smartvault-cli talks to a running vault service and lets you browse,
search, deduplicate and reorganize its indexed files.

Every command loads the vault fresh, so output always reflects the
service's current state.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if journal != nil {
			journal.Close()
		}
		logging.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendAddr, "backend", "b", "", "vault service address (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")
}

func setup(ctx context.Context) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if backendAddr != "" {
		cfg.Backend.Addr = backendAddr
	}

	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Format: "console", OutputPath: "stderr"}); err != nil {
		logging.InitNop()
	}

	client, err := rpc.New(rpc.Config{
		Addr:    cfg.Backend.Addr,
		Timeout: cfg.Backend.Timeout,
		Logger:  logging.L(),
	})
	if err != nil {
		return err
	}

	opts := []application.VaultOption{application.WithLogger(logging.L())}
	if !cfg.Journal.Disabled {
		journal, err = sqlite.Open(cfg.Journal.Path, cfg.Backend.Addr)
		if err != nil {
			logging.Warn("activity journal unavailable", logging.Err(err))
			journal = nil
		} else {
			journal.SetRetention(cfg.Journal.Retention)
			opts = append(opts, application.WithJournal(journal))
		}
	}

	vault = application.NewVault(client, opts...)
	if err := vault.Load(ctx); err != nil {
		return fmt.Errorf("load vault from %s: %w", cfg.Backend.Addr, err)
	}
	return nil
}

// GetVault returns the loaded vault
func GetVault() *application.Vault {
	return vault
}

// fileByPath resolves an indexed file path to its record
func fileByPath(p string) (domain.FileRecord, error) {
	for _, r := range vault.Records() {
		if r.Path == p {
			return r, nil
		}
	}
	return domain.FileRecord{}, fmt.Errorf("%s: %w", p, application.ErrNotFound)
}
