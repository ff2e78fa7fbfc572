package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"smartvault/internal/application"
	"smartvault/internal/application/commands"
)

// RegisterWriteTools adds the write vault tools to the MCP server. Permanent
// deletion and vault reset are not exposed.
func RegisterWriteTools(s *server.MCPServer, vault *application.Vault) {
	s.AddTool(moveTool(), moveHandler(vault))
	s.AddTool(renameTool(), renameHandler(vault))
	s.AddTool(deleteToBinTool(), deleteToBinHandler(vault))
	s.AddTool(indexTool(), indexHandler(vault))
	s.AddTool(addFileTool(), addFileHandler(vault))
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a file (by hash) or a folder (by path) into a destination folder."),
		mcp.WithString("hash",
			mcp.Description("Content hash of the file to move"),
		),
		mcp.WithString("folder",
			mcp.Description("Path of the folder to move"),
		),
		mcp.WithString("destination",
			mcp.Description("Destination folder path"),
			mcp.Required(),
		),
	)
}

func moveHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hash := req.GetString("hash", "")
		folder := req.GetString("folder", "")
		dest := req.GetString("destination", "")

		switch {
		case hash != "" && folder != "":
			return toolError(fmt.Errorf("give either hash or folder, not both"))
		case hash != "":
			return mutationResult(commands.NewMoveFileCommand(vault, hash, dest).Execute(ctx))
		case folder != "":
			return mutationResult(commands.NewMoveFolderCommand(vault, folder, dest).Execute(ctx))
		default:
			return toolError(fmt.Errorf("hash or folder is required"))
		}
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a file (by hash) or a folder (by path). The new name is a single path segment."),
		mcp.WithString("hash",
			mcp.Description("Content hash of the file to rename"),
		),
		mcp.WithString("folder",
			mcp.Description("Path of the folder to rename"),
		),
		mcp.WithString("new_name",
			mcp.Description("New name"),
			mcp.Required(),
		),
	)
}

func renameHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hash := req.GetString("hash", "")
		folder := req.GetString("folder", "")
		newName := req.GetString("new_name", "")

		switch {
		case hash != "":
			return mutationResult(commands.NewRenameFileCommand(vault, hash, newName).Execute(ctx))
		case folder != "":
			return mutationResult(commands.NewRenameFolderCommand(vault, folder, newName).Execute(ctx))
		default:
			return toolError(fmt.Errorf("hash or folder is required"))
		}
	}
}

// --- delete_to_bin ---

func deleteToBinTool() mcp.Tool {
	return mcp.NewTool("delete_to_bin",
		mcp.WithDescription("Move a file (hash and path) or a whole folder (folder) to the bin. Bin entries stay in history."),
		mcp.WithString("hash",
			mcp.Description("Content hash of the file"),
		),
		mcp.WithString("path",
			mcp.Description("Path of the file"),
		),
		mcp.WithString("folder",
			mcp.Description("Path of a folder to delete with everything below it"),
		),
	)
}

func deleteToBinHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if folder := req.GetString("folder", ""); folder != "" {
			return mutationResult(commands.NewDeleteFolderCommand(vault, folder).Execute(ctx))
		}
		cmd := commands.NewDeleteToBinCommand(vault, req.GetString("hash", ""), req.GetString("path", ""))
		return mutationResult(cmd.Execute(ctx))
	}
}

// --- index ---

func indexTool() mcp.Tool {
	return mcp.NewTool("index",
		mcp.WithDescription("Index a folder on the backend host and record a snapshot."),
		mcp.WithString("folder",
			mcp.Description("Absolute folder path to scan"),
			mcp.Required(),
		),
		mcp.WithString("snapshot",
			mcp.Description("Snapshot name (default: today's date as DD-MM-YYYY)"),
		),
	)
}

func indexHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewIndexFolderCommand(vault, req.GetString("folder", ""), req.GetString("snapshot", ""))
		return mutationResult(cmd.Execute(ctx))
	}
}

// --- add_file ---

func addFileTool() mcp.Tool {
	return mcp.NewTool("add_file",
		mcp.WithDescription("Add a single file to the index."),
		mcp.WithString("path",
			mcp.Description("Absolute file path on the backend host"),
			mcp.Required(),
		),
	)
}

func addFileHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mutationResult(commands.NewAddFileCommand(vault, req.GetString("path", "")).Execute(ctx))
	}
}

// mutationResult reports a command outcome. A refresh failure after a
// successful command is reported alongside the command message.
func mutationResult(result *commands.MutationResult, err error) (*mcp.CallToolResult, error) {
	var refreshErr *application.RefreshError
	switch {
	case err == nil:
		return mcp.NewToolResultText(result.Message), nil
	case errors.As(err, &refreshErr) && result != nil:
		return mcp.NewToolResultText(fmt.Sprintf("%s (view refresh failed: %v)", result.Message, refreshErr.Err)), nil
	default:
		return toolError(err)
	}
}
