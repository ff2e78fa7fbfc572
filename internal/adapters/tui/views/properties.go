package views

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

type propertiesLoadedMsg struct {
	key    string
	file   *application.FileProperties
	folder *application.FolderProperties
	err    error
}

// PropertiesPanel shows the detail record of the selected node
type PropertiesPanel struct {
	open   bool
	key    string
	file   *application.FileProperties
	folder *application.FolderProperties
	err    error
}

// Toggle opens or closes the panel
func (p *PropertiesPanel) Toggle() bool {
	p.open = !p.open
	return p.open
}

// Open reports whether the panel is visible
func (p *PropertiesPanel) Open() bool {
	return p.open
}

// Showing reports whether the panel already holds node
func (p *PropertiesPanel) Showing(node domain.BrowserNode) bool {
	return p.key == node.Key
}

// Load fetches the properties for node
func (p *PropertiesPanel) Load(env *Env, node domain.BrowserNode) tea.Cmd {
	p.key = node.Key
	p.file, p.folder, p.err = nil, nil, nil

	return Run("Loading properties", func() tea.Msg {
		msg := propertiesLoadedMsg{key: node.Key}
		if node.IsFolder {
			msg.folder, msg.err = commands.NewFolderPropertiesCommand(env.Vault, node.FolderPath).Execute(env.Ctx)
		} else {
			msg.file, msg.err = commands.NewFilePropertiesCommand(env.Vault, node.Hash).Execute(env.Ctx)
		}
		return msg
	})
}

func (p *PropertiesPanel) apply(msg propertiesLoadedMsg) {
	// a late answer for a node no longer selected is dropped
	if msg.key != p.key {
		return
	}
	p.file, p.folder, p.err = msg.file, msg.folder, msg.err
}

// View renders the panel
func (p *PropertiesPanel) View(width int) string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Properties"))
	b.WriteString("\n\n")

	switch {
	case p.err != nil:
		b.WriteString(RenderMessage(p.err.Error(), true))
	case p.file != nil:
		f := p.file
		b.WriteString(RenderLabelValue("Name", RenderGhostName(f.Name, f.IsGhost())) + "\n")
		b.WriteString(RenderLabelValue("Path", f.Path) + "\n")
		b.WriteString(RenderLabelValue("Size", domain.FormatSize(f.Size)) + "\n")
		b.WriteString(RenderLabelValue("Modified", f.Modified) + "\n")
		b.WriteString(RenderLabelValue("Category", styles.CategoryBadge(f.Category)) + "\n")
		b.WriteString(RenderLabelValue("Hash", RenderMuted(f.Hash)) + "\n")
		if f.IsGhost() {
			b.WriteString("\n" + styles.WarningMsg.Render("Missing on disk: open is disabled"))
		}
	case p.folder != nil:
		f := p.folder
		b.WriteString(RenderLabelValue("Name", RenderGhostName(f.Name, !f.ExistsOnDisk)) + "\n")
		b.WriteString(RenderLabelValue("Path", f.Path) + "\n")
		b.WriteString(RenderLabelValue("Files", strconv.Itoa(f.FileCount)) + "\n")
		b.WriteString(RenderLabelValue("Total", domain.FormatSize(f.TotalSize)) + "\n")
	default:
		b.WriteString(RenderMuted("Loading..."))
	}

	return styles.Panel.Width(width).Render(b.String())
}
