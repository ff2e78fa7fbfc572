package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/rpc"
	"smartvault/internal/adapters/sqlite"
	"smartvault/internal/adapters/tui"
	"smartvault/internal/adapters/tui/views"
	"smartvault/internal/application"
	"smartvault/internal/config"
	"smartvault/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the terminal belongs to bubbletea, so logs go to a file
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, OutputPath: logFile}); err != nil {
		logging.InitNop()
	}
	defer logging.Sync()

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
		journal, err := sqlite.Open(cfg.Journal.Path, cfg.Backend.Addr)
		if err != nil {
			logging.Warn("activity journal unavailable", logging.Err(err))
		} else {
			journal.SetRetention(cfg.Journal.Retention)
			defer journal.Close()
			opts = append(opts, application.WithJournal(journal))
		}
	}

	vault := application.NewVault(client, opts...)
	env := views.NewEnv(context.Background(), vault, application.NewClipboard())
	app := tui.NewApp(env, cfg.Dedup.DefaultThreshold)

	logging.Info("starting tui", logging.String("backend", cfg.Backend.Addr))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
