package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/domain"
)

// RenderHelpLine renders key bindings as "key desc" pairs separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status line, red when isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

func RenderTitle(title string) string { return styles.Title.Render(title) }

func RenderMuted(text string) string { return styles.MutedText.Render(text) }

// RenderLabelValue renders a "label: value" property line
func RenderLabelValue(label, value string) string {
	return styles.InputLabel.Render(label+":") + " " + value
}

// RenderTabs renders the tab strip with the active tab highlighted
func RenderTabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		label := fmt.Sprintf("%d %s", i+1, n)
		if i == active {
			parts[i] = styles.TabActive.Render(label)
		} else {
			parts[i] = styles.Tab.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

// RenderPageInfo renders "page x/y" when a list spans several pages
func RenderPageInfo(p *Paginator) string {
	if p.TotalPages() <= 1 {
		return ""
	}
	return RenderMuted(fmt.Sprintf("page %d/%d", p.CurrentPage(), p.TotalPages()))
}

// RenderFilterBadge renders the active category filter, nothing for "all"
func RenderFilterBadge(filter string) string {
	if filter == "" || filter == domain.FilterAll {
		return ""
	}
	return RenderMuted("  filter: ") + styles.CategoryBadge(domain.Category(filter))
}

// RenderGhostName strikes through the name of an item missing on disk
func RenderGhostName(name string, ghost bool) string {
	if !ghost {
		return name
	}
	return styles.Ghost.Render(name) + " " + styles.ErrorMsg.Render("ghost")
}

func cursorPrefix(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// NodeRow carries the per-row state of a browser listing
type NodeRow struct {
	Node     domain.BrowserNode
	Size     uint64
	Selected bool
	Cut      bool
	WithPath bool // search results show where the file lives
}

// RenderNodeRow renders one browser node. Folders end in "/"; files carry
// their size and category badge. Selection wins over the cut marker.
func RenderNodeRow(row NodeRow) string {
	n := row.Node
	style := styles.NodeFile
	switch {
	case row.Selected:
		style = styles.NodeSelected
	case row.Cut:
		style = styles.NodeCut
	case n.IsFolder:
		style = styles.NodeFolder
	}

	if n.IsFolder {
		return cursorPrefix(row.Selected) + style.Render(styles.FolderIcon+n.Name+"/")
	}

	line := cursorPrefix(row.Selected) + style.Render(styles.TreeLeaf+n.Name)
	if row.Cut {
		line += " " + styles.NodeCut.Render("(cut)")
	}
	line += "  " + RenderMuted(domain.FormatSize(row.Size))
	if row.WithPath {
		line += RenderMuted("  " + n.Path)
	}
	return line + "  " + styles.CategoryBadge(n.Category)
}

// RenderRecordRow renders a record by its full path, as group listings do
func RenderRecordRow(r domain.FileRecord, selected bool) string {
	path := r.Path
	if selected {
		path = styles.NodeSelected.Render(path)
	}
	return cursorPrefix(selected) + path
}

// RenderDuplicateHeader renders the line that opens an exact duplicate group
func RenderDuplicateHeader(g domain.DuplicateGroup) string {
	var each uint64
	if len(g.Records) > 0 {
		each = g.Records[0].Size
	}
	return styles.GroupHeader.Render(fmt.Sprintf("%s  %d copies  %s each",
		shortHash(g.Hash), len(g.Records), domain.FormatSize(each)))
}

// RenderSimilarHeader renders the line that opens a similar image group
func RenderSimilarHeader(g domain.SimilarityGroup) string {
	return styles.GroupHeader.Render(fmt.Sprintf("~%.0f%% similar  1 best + %d similar  %s",
		g.SimilarityPct, len(g.Members), domain.FormatSize(g.Representative.Size)))
}

// RenderBucketHeader renders a timeline bucket with its expand marker
func RenderBucketHeader(b domain.TimelineBucket, expanded, selected bool) string {
	marker := styles.TreeCollapsed
	if expanded {
		marker = styles.TreeExpanded
	}
	text := fmt.Sprintf("%s%s  %d files", marker, b.DisplayLabel, len(b.Files))
	if selected {
		return cursorPrefix(true) + styles.NodeSelected.Render(text)
	}
	return cursorPrefix(false) + styles.GroupHeader.Render(text)
}

// RenderBucketFile renders a file under an expanded timeline bucket
func RenderBucketFile(r domain.FileRecord, selected bool) string {
	name := r.Name
	if selected {
		name = styles.NodeSelected.Render(name)
	}
	return "      " + name + "  " + RenderMuted(domain.FormatSize(r.Size)) + "  " + styles.CategoryBadge(r.Category)
}

// RenderDeletedEntry renders a bin entry over two lines
func RenderDeletedEntry(e domain.DeletedEntry, selected bool) string {
	name := e.Name
	if selected {
		name = styles.NodeSelected.Render(name)
	}
	meta := fmt.Sprintf("    %s  %s  deleted %s", e.Path, domain.FormatSize(e.Size), domain.FormatTimestamp(e.DeletedAt))
	if e.SnapshotName != "" {
		meta += "  from " + e.SnapshotName
	}
	return cursorPrefix(selected) + name + "  " + styles.CategoryBadge(e.Category) + "\n" + RenderMuted(meta)
}

// RenderSnapshot renders a snapshot over two lines
func RenderSnapshot(s domain.SnapshotInfo, selected bool) string {
	name := s.Name
	if selected {
		name = styles.NodeSelected.Render(name)
	}
	return cursorPrefix(selected) + name + RenderMuted(fmt.Sprintf("  %d files", s.FileCount)) + "\n" +
		RenderMuted(fmt.Sprintf("    %s  %s", s.FolderPath, domain.FormatTimestamp(s.Timestamp)))
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
