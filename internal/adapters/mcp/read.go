package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
// Every read refetches the collections it depends on first, since other
// clients may have changed the vault since the last call.
func RegisterReadTools(s *server.MCPServer, vault *application.Vault, defaultThreshold int) {
	s.AddTool(browseTool(), browseHandler(vault))
	s.AddTool(searchTool(), searchHandler(vault))
	s.AddTool(duplicatesTool(), duplicatesHandler(vault))
	s.AddTool(timelineTool(), timelineHandler(vault))
	s.AddTool(similarTool(defaultThreshold), similarHandler(vault, defaultThreshold))
	s.AddTool(propertiesTool(), propertiesHandler(vault))
	s.AddTool(historyTool(), historyHandler(vault))
	s.AddTool(snapshotsTool(), snapshotsHandler(vault))
}

func withCategory() mcp.ToolOption {
	return mcp.WithString("category",
		mcp.Description("Category filter: all, image, video, document, audio, archive, executable, other"),
	)
}

// --- browse ---

func browseTool() mcp.Tool {
	return mcp.NewTool("browse",
		mcp.WithDescription("List the folders and files directly under a vault folder. Folders come first."),
		mcp.WithString("path",
			mcp.Description("Folder path (e.g. photos/2024). Omit to list the root."),
		),
		withCategory(),
	)
}

func browseHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := vault.Refresh(ctx, application.RefreshRecords); err != nil {
			return toolError(err)
		}

		nav := application.NewNavigation().
			Enter(req.GetString("path", "")).
			WithFilter(req.GetString("category", application.FilterAll))

		result, err := commands.NewBrowseCommand(vault, nav).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Nodes) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("%s is empty.", result.Breadcrumb)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n", result.Breadcrumb)
		for _, n := range result.Nodes {
			sb.WriteString(formatNode(n))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search file paths across the whole vault (case-insensitive substring). Each file content appears once."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		withCategory(),
	)
}

func searchHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := vault.Refresh(ctx, application.RefreshRecords); err != nil {
			return toolError(err)
		}

		cmd := commands.NewSearchCommand(vault, req.GetString("query", ""), req.GetString("category", application.FilterAll))
		nodes, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(nodes, formatNode)
	}
}

// --- duplicates ---

func duplicatesTool() mcp.Tool {
	return mcp.NewTool("duplicates",
		mcp.WithDescription("List groups of files with identical content."),
		withCategory(),
	)
}

func duplicatesHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := vault.Refresh(ctx, application.RefreshRecords); err != nil {
			return toolError(err)
		}

		groups, err := commands.NewDuplicatesCommand(vault, req.GetString("category", application.FilterAll)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(groups) == 0 {
			return mcp.NewToolResultText("No duplicates."), nil
		}

		var sb strings.Builder
		for _, g := range groups {
			fmt.Fprintf(&sb, "%s  %d copies  %s reclaimable\n", g.Hash, len(g.Records), domain.FormatSize(g.WastedBytes()))
			for _, r := range g.Records {
				fmt.Fprintf(&sb, "  %s\n", r.Path)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- timeline ---

func timelineTool() mcp.Tool {
	return mcp.NewTool("timeline",
		mcp.WithDescription("Group files by date, newest first."),
		mcp.WithString("mode",
			mcp.Description("Date to group by: modified (default) or indexed"),
		),
		withCategory(),
	)
}

func timelineHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode := application.ByModifiedDate
		switch req.GetString("mode", "modified") {
		case "modified":
		case "indexed":
			mode = application.ByIndexedDate
		default:
			return toolError(fmt.Errorf("mode must be modified or indexed"))
		}

		if err := vault.Refresh(ctx, application.RefreshRecords); err != nil {
			return toolError(err)
		}
		result, err := commands.NewTimelineCommand(vault, mode, req.GetString("category", application.FilterAll)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Buckets) == 0 {
			return mcp.NewToolResultText("No files."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d files across %d dates\n", result.Summary.Files, result.Summary.Dates)
		for _, b := range result.Buckets {
			fmt.Fprintf(&sb, "%s (%d)\n", b.DisplayLabel, len(b.Files))
			for _, f := range b.Files {
				fmt.Fprintf(&sb, "  %s\n", f.Path)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- similar_images ---

func similarTool(defaultThreshold int) mcp.Tool {
	return mcp.NewTool("similar_images",
		mcp.WithDescription("Find visually similar images. Higher thresholds are stricter."),
		mcp.WithNumber("threshold",
			mcp.Description(fmt.Sprintf("Similarity threshold %d-%d (default %d)",
				domain.MinThreshold, domain.MaxThreshold, defaultThreshold)),
		),
	)
}

func similarHandler(vault *application.Vault, defaultThreshold int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		threshold := req.GetInt("threshold", defaultThreshold)

		if err := vault.Refresh(ctx, application.RefreshRecords); err != nil {
			return toolError(err)
		}
		result, err := commands.NewFindSimilarCommand(vault, threshold).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Groups) == 0 {
			return mcp.NewToolResultText("No similar images."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d groups at threshold %d (%s)\n",
			len(result.Groups), result.Threshold, domain.ThresholdTier(result.Threshold))
		for _, g := range result.Groups {
			fmt.Fprintf(&sb, "%s  %.0f%%\n", g.Representative.Path, g.SimilarityPct)
			for _, m := range g.Members {
				fmt.Fprintf(&sb, "  %s\n", m.Path)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- properties ---

func propertiesTool() mcp.Tool {
	return mcp.NewTool("properties",
		mcp.WithDescription("Show properties of a file (by hash) or a folder (by path)."),
		mcp.WithString("hash",
			mcp.Description("Content hash of a file"),
		),
		mcp.WithString("folder",
			mcp.Description("Folder path"),
		),
	)
}

func propertiesHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hash := req.GetString("hash", "")
		folder := req.GetString("folder", "")

		switch {
		case hash != "":
			p, err := commands.NewFilePropertiesCommand(vault, hash).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(formatFileProperties(p)), nil
		case folder != "":
			p, err := commands.NewFolderPropertiesCommand(vault, folder).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(formatFolderProperties(p)), nil
		default:
			return toolError(fmt.Errorf("hash or folder is required"))
		}
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List files moved to the bin, newest first."),
	)
}

func historyHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := vault.Refresh(ctx, application.RefreshHistory); err != nil {
			return toolError(err)
		}
		entries, err := commands.NewListHistoryCommand(vault).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, formatDeleted)
	}
}

// --- snapshots ---

func snapshotsTool() mcp.Tool {
	return mcp.NewTool("snapshots",
		mcp.WithDescription("List indexing snapshots, newest first."),
	)
}

func snapshotsHandler(vault *application.Vault) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := vault.Refresh(ctx, application.RefreshHistory); err != nil {
			return toolError(err)
		}
		snaps, err := commands.NewListSnapshotsCommand(vault).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(snaps, formatSnapshot)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNode(n domain.BrowserNode) string {
	if n.IsFolder {
		return fmt.Sprintf("%s/", n.FolderPath)
	}
	return fmt.Sprintf("%s  %s  %s", n.Path, n.Category, n.Hash)
}

func formatDeleted(e domain.DeletedEntry) string {
	return fmt.Sprintf("%s  %s  %s", domain.FormatTimestamp(e.DeletedAt), e.Path, domain.FormatSize(e.Size))
}

func formatSnapshot(s domain.SnapshotInfo) string {
	return fmt.Sprintf("%s  %s  %d files  %s", s.Name, domain.FormatTimestamp(s.Timestamp), s.FileCount, s.FolderPath)
}

func formatFileProperties(p *domain.FileProperties) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", p.Name)
	fmt.Fprintf(&sb, "Path:     %s\n", p.Path)
	fmt.Fprintf(&sb, "Size:     %s\n", domain.FormatSize(p.Size))
	fmt.Fprintf(&sb, "Category: %s\n", p.Category)
	fmt.Fprintf(&sb, "Modified: %s\n", p.Modified)
	fmt.Fprintf(&sb, "Hash:     %s\n", p.Hash)
	if p.IsGhost() {
		sb.WriteString("Missing on disk\n")
	}
	return sb.String()
}

func formatFolderProperties(p *domain.FolderProperties) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:  %s\n", p.Name)
	fmt.Fprintf(&sb, "Path:  %s\n", p.Path)
	fmt.Fprintf(&sb, "Files: %d\n", p.FileCount)
	fmt.Fprintf(&sb, "Size:  %s\n", domain.FormatSize(p.TotalSize))
	if !p.ExistsOnDisk {
		sb.WriteString("Missing on disk\n")
	}
	return sb.String()
}
