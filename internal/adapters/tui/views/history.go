package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

// HistoryKeyMap defines key bindings for the bin history and snapshot views
type HistoryKeyMap struct {
	Clear  key.Binding
	Delete key.Binding
}

var HistoryKeys = HistoryKeyMap{
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear all"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
}

// HistoryModel lists files that were moved to the bin
type HistoryModel struct {
	ViewState
	env     *Env
	entries []domain.DeletedEntry
	pager   *Paginator
}

// NewHistoryModel creates a new history view
func NewHistoryModel(env *Env) *HistoryModel {
	return &HistoryModel{env: env, pager: NewPaginator(20)}
}

// Name is the tab label
func (m *HistoryModel) Name() string { return "History" }

// Capturing is always false: the view has no text field
func (m *HistoryModel) Capturing() bool { return false }

// Sync reads the cached bin entries
func (m *HistoryModel) Sync() {
	entries, err := commands.NewListHistoryCommand(m.env.Vault).Execute(m.env.Ctx)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.entries = entries
	m.pager.SetRows(len(entries), 2, nil)
}

// SetSize updates the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.listHeight(8))
}

// Update handles messages for the history view
func (m *HistoryModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ListKeys.Up):
		m.pager.CursorUp()
	case key.Matches(keyMsg, ListKeys.Down):
		m.pager.CursorDown()
	case key.Matches(keyMsg, ListKeys.NextPage):
		m.pager.NextPage()
	case key.Matches(keyMsg, ListKeys.PrevPage):
		m.pager.PrevPage()
	case key.Matches(keyMsg, HistoryKeys.Clear):
		if len(m.entries) == 0 {
			return status("History is already empty", false)
		}
		return showModal(NewConfirmModal("Clear History", fmt.Sprintf("%d records", len(m.entries)),
			"Files stay in the bin; only the records are forgotten.",
			func() tea.Cmd {
				return RunMutation("Clearing history", func() (*commands.MutationResult, error) {
					return commands.NewClearHistoryCommand(m.env.Vault).Execute(m.env.Ctx)
				})
			}))
	}
	return nil
}

// View renders the history view
func (m *HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("%d deleted files", len(m.entries))))
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(RenderMuted("No deleted files recorded. Files deleted through smartvault appear here."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(RenderDeletedEntry(m.entries[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if info := RenderPageInfo(m.pager); info != "" {
		b.WriteString(info)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(ListKeys.Down, ListKeys.Up, HistoryKeys.Clear))
	return b.String()
}

// SnapshotsModel lists named indexing runs
type SnapshotsModel struct {
	ViewState
	env       *Env
	snapshots []domain.SnapshotInfo
	pager     *Paginator
}

// NewSnapshotsModel creates a new snapshots view
func NewSnapshotsModel(env *Env) *SnapshotsModel {
	return &SnapshotsModel{env: env, pager: NewPaginator(20)}
}

// Name is the tab label
func (m *SnapshotsModel) Name() string { return "Snapshots" }

// Capturing is always false: the view has no text field
func (m *SnapshotsModel) Capturing() bool { return false }

// Sync reads the cached snapshots
func (m *SnapshotsModel) Sync() {
	snapshots, err := commands.NewListSnapshotsCommand(m.env.Vault).Execute(m.env.Ctx)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.snapshots = snapshots
	m.pager.SetRows(len(snapshots), 2, nil)
}

// SetSize updates the view dimensions
func (m *SnapshotsModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.listHeight(8))
}

// Update handles messages for the snapshots view
func (m *SnapshotsModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ListKeys.Up):
		m.pager.CursorUp()
	case key.Matches(keyMsg, ListKeys.Down):
		m.pager.CursorDown()
	case key.Matches(keyMsg, ListKeys.NextPage):
		m.pager.NextPage()
	case key.Matches(keyMsg, ListKeys.PrevPage):
		m.pager.PrevPage()
	case key.Matches(keyMsg, HistoryKeys.Delete):
		idx := m.pager.Cursor()
		if idx < 0 || idx >= len(m.snapshots) {
			return nil
		}
		snap := m.snapshots[idx]
		return showModal(NewConfirmModal("Delete Snapshot", snap.Name+"  "+domain.FormatTimestamp(snap.Timestamp),
			"Indexed files stay in the vault; only the snapshot is forgotten.",
			func() tea.Cmd {
				return RunMutation("Deleting snapshot", func() (*commands.MutationResult, error) {
					return commands.NewDeleteSnapshotCommand(m.env.Vault, snap.Name, snap.Timestamp).Execute(m.env.Ctx)
				})
			}))
	}
	return nil
}

// View renders the snapshots view
func (m *SnapshotsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("%d snapshots", len(m.snapshots))))
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	if len(m.snapshots) == 0 {
		b.WriteString(RenderMuted("No snapshots. Index a folder to create one."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(RenderSnapshot(m.snapshots[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if info := RenderPageInfo(m.pager); info != "" {
		b.WriteString(info)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(ListKeys.Down, ListKeys.Up, HistoryKeys.Delete))
	return b.String()
}
