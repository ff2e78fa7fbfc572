package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "smartvault/internal/adapters/mcp"
	"smartvault/internal/adapters/rpc"
	"smartvault/internal/adapters/sqlite"
	"smartvault/internal/application"
	"smartvault/internal/config"
	"smartvault/internal/logging"
)

func main() {
	backendFlag := flag.String("backend", "", "vault service address (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("smartvault-mcp: %v", err)
	}
	if *backendFlag != "" {
		cfg.Backend.Addr = *backendFlag
	}

	// stdout carries the protocol
	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, OutputPath: "stderr"}); err != nil {
		logging.InitNop()
	}
	defer logging.Sync()

	client, err := rpc.New(rpc.Config{
		Addr:    cfg.Backend.Addr,
		Timeout: cfg.Backend.Timeout,
		Logger:  logging.L(),
	})
	if err != nil {
		log.Fatalf("smartvault-mcp: %v", err)
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

	mcpServer := server.NewMCPServer(
		"smartvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check: reaches the vault service and returns pong"),
		),
		func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if err := vault.Load(ctx); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, vault, cfg.Dedup.DefaultThreshold)
	mcpadapter.RegisterWriteTools(mcpServer, vault)

	logging.Info("serving mcp over stdio", logging.String("backend", cfg.Backend.Addr))
	if err := server.ServeStdio(mcpServer); err != nil {
		logging.Error("mcp server stopped", logging.Err(err))
		log.Fatalf("smartvault-mcp: %v", err)
	}
}
