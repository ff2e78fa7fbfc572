package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

// RecordKeyMap defines actions on a single record row
type RecordKeyMap struct {
	Open   key.Binding
	Filter key.Binding
	Delete key.Binding
	Purge  key.Binding
	Yank   key.Binding
}

var RecordKeys = RecordKeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "bin"),
	),
	Purge: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete forever"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
}

// groupedRow is one selectable record inside a group listing
type groupedRow struct {
	group  int
	record domain.FileRecord
}

// DuplicatesModel lists exact duplicate groups
type DuplicatesModel struct {
	ViewState
	env    *Env
	nav    application.Navigation
	groups []domain.DuplicateGroup
	rows   []groupedRow
	pager  *Paginator
}

// NewDuplicatesModel creates a new duplicates view
func NewDuplicatesModel(env *Env) *DuplicatesModel {
	return &DuplicatesModel{
		env:   env,
		nav:   application.NewNavigation(),
		pager: NewPaginator(20),
	}
}

// Name is the tab label
func (m *DuplicatesModel) Name() string { return "Duplicates" }

// Capturing is always false: the view has no text field
func (m *DuplicatesModel) Capturing() bool { return false }

// Groups returns the listed groups
func (m *DuplicatesModel) Groups() []domain.DuplicateGroup { return m.groups }

// Sync regroups the cached records
func (m *DuplicatesModel) Sync() {
	m.groups = m.nav.Duplicates(m.env.Vault.State())
	m.rows = m.rows[:0]
	var opens []bool
	for gi, g := range m.groups {
		for ri, r := range g.Records {
			m.rows = append(m.rows, groupedRow{group: gi, record: r})
			opens = append(opens, ri == 0)
		}
	}
	m.pager.SetRows(len(m.rows), 1, opens)
}

// SetSize updates the view dimensions
func (m *DuplicatesModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.listHeight(8))
}

func (m *DuplicatesModel) selected() (domain.FileRecord, bool) {
	idx := m.pager.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return domain.FileRecord{}, false
	}
	return m.rows[idx].record, true
}

// Update handles messages for the duplicates view
func (m *DuplicatesModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, ListKeys.Up):
		m.pager.CursorUp()
		return nil
	case key.Matches(keyMsg, ListKeys.Down):
		m.pager.CursorDown()
		return nil
	case key.Matches(keyMsg, ListKeys.NextPage):
		m.pager.NextPage()
		return nil
	case key.Matches(keyMsg, ListKeys.PrevPage):
		m.pager.PrevPage()
		return nil
	case key.Matches(keyMsg, RecordKeys.Filter):
		m.nav = m.nav.NextFilter()
		m.pager.SetCursor(0)
		m.Sync()
		return status("Filter: "+m.nav.Filter, false)
	}

	rec, ok := m.selected()
	if !ok {
		return nil
	}
	return recordAction(m.env, keyMsg, rec)
}

// recordAction runs the row actions shared by list views over records
func recordAction(env *Env, msg tea.KeyMsg, rec domain.FileRecord) tea.Cmd {
	switch {
	case key.Matches(msg, RecordKeys.Open):
		return Run("Opening", func() tea.Msg {
			res, err := commands.NewOpenCommand(env.Vault, rec.Path, "").Execute(env.Ctx)
			if err != nil {
				return StatusMsg{Message: err.Error(), Err: true}
			}
			return StatusMsg{Message: res.Message}
		})

	case key.Matches(msg, RecordKeys.Delete):
		return RunMutation("Moving to bin", func() (*commands.MutationResult, error) {
			return commands.NewDeleteToBinCommand(env.Vault, rec.Hash, rec.Path).Execute(env.Ctx)
		})

	case key.Matches(msg, RecordKeys.Purge):
		return showModal(NewConfirmModal("Delete Permanently", rec.Path, "This removes the file from disk and cannot be undone.",
			func() tea.Cmd {
				return RunMutation("Deleting", func() (*commands.MutationResult, error) {
					return commands.NewPermanentDeleteCommand(env.Vault, rec.Hash, rec.Path, true).Execute(env.Ctx)
				})
			}))

	case key.Matches(msg, RecordKeys.Yank):
		if err := env.Yank(rec.Path); err != nil {
			return status("Copy failed: "+err.Error(), true)
		}
		return status("Copied "+rec.Path, false)
	}
	return nil
}

// View renders the duplicates view
func (m *DuplicatesModel) View() string {
	var b strings.Builder

	var wasted uint64
	for _, g := range m.groups {
		wasted += g.WastedBytes()
	}
	header := fmt.Sprintf("%d duplicate groups", len(m.groups))
	if wasted > 0 {
		header += RenderMuted(fmt.Sprintf("  %s reclaimable", domain.FormatSize(wasted)))
	}
	b.WriteString(styles.InputLabel.Render(header) + RenderFilterBadge(m.nav.Filter))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(RenderMuted("No exact duplicates"))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		row := m.rows[i]
		if m.pager.StartsGroup(i) {
			b.WriteString(RenderDuplicateHeader(m.groups[row.group]))
			b.WriteString("\n")
		}
		b.WriteString(RenderRecordRow(row.record, i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if info := RenderPageInfo(m.pager); info != "" {
		b.WriteString(info)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(RecordKeys.Open, RecordKeys.Delete, RecordKeys.Purge, RecordKeys.Filter, RecordKeys.Yank))
	return b.String()
}
