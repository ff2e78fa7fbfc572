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

// autoExpanded is how many leading date buckets open expanded
const autoExpanded = 3

// TimelineKeyMap defines key bindings for the timeline view
type TimelineKeyMap struct {
	Toggle key.Binding
	Mode   key.Binding
	Filter key.Binding
}

var TimelineKeys = TimelineKeyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "tab"),
		key.WithHelp("space", "expand/collapse"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "modified/indexed"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
}

// timelineRow is a bucket header or, under an expanded bucket, a file
type timelineRow struct {
	bucket int
	header bool
	record domain.FileRecord
}

// TimelineModel groups records by date
type TimelineModel struct {
	ViewState
	env      *Env
	mode     application.DateMode
	filter   string
	result   *commands.TimelineResult
	expanded map[string]bool
	rows     []timelineRow
	pager    *Paginator
}

// NewTimelineModel creates a new timeline view by modified date
func NewTimelineModel(env *Env) *TimelineModel {
	return &TimelineModel{
		env:    env,
		mode:   application.ByModifiedDate,
		filter: domain.FilterAll,
		pager:  NewPaginator(20),
	}
}

// Name is the tab label
func (m *TimelineModel) Name() string { return "Timeline" }

// Capturing is always false: the view has no text field
func (m *TimelineModel) Capturing() bool { return false }

// Expanded reports whether the bucket for dateKey shows its files
func (m *TimelineModel) Expanded(dateKey string) bool { return m.expanded[dateKey] }

// Sync rebuckets the cached records. Expansion resets to the leading
// buckets whenever the bucket count changes.
func (m *TimelineModel) Sync() {
	res, err := commands.NewTimelineCommand(m.env.Vault, m.mode, m.filter).Execute(m.env.Ctx)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.ClearMessage()

	if m.result == nil || len(m.result.Buckets) != len(res.Buckets) {
		m.resetExpansion(res.Buckets)
	}
	m.result = res
	m.rebuildRows()
}

func (m *TimelineModel) resetExpansion(buckets []domain.TimelineBucket) {
	m.expanded = make(map[string]bool)
	for i := 0; i < len(buckets) && i < autoExpanded; i++ {
		m.expanded[buckets[i].DateKey] = true
	}
}

func (m *TimelineModel) rebuildRows() {
	m.rows = m.rows[:0]
	for bi, bucket := range m.result.Buckets {
		m.rows = append(m.rows, timelineRow{bucket: bi, header: true})
		if !m.expanded[bucket.DateKey] {
			continue
		}
		for _, r := range bucket.Files {
			m.rows = append(m.rows, timelineRow{bucket: bi, record: r})
		}
	}
	// a page starting inside a bucket repeats the bucket label
	m.pager.SetRows(len(m.rows), 1, make([]bool, len(m.rows)))
}

// SetSize updates the view dimensions
func (m *TimelineModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.listHeight(8))
}

// Update handles messages for the timeline view
func (m *TimelineModel) Update(msg tea.Msg) tea.Cmd {
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

	case key.Matches(keyMsg, TimelineKeys.Mode):
		m.mode = m.mode.Toggle()
		m.result = nil
		m.pager.SetCursor(0)
		m.Sync()
		return status("Dates: "+m.mode.String(), false)

	case key.Matches(keyMsg, TimelineKeys.Filter):
		m.filter = m.nextFilter()
		m.result = nil
		m.pager.SetCursor(0)
		m.Sync()
		return status("Filter: "+m.filter, false)
	}

	idx := m.pager.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}
	row := m.rows[idx]

	if row.header {
		if key.Matches(keyMsg, TimelineKeys.Toggle) || key.Matches(keyMsg, RecordKeys.Open) {
			k := m.result.Buckets[row.bucket].DateKey
			m.expanded[k] = !m.expanded[k]
			m.rebuildRows()
		}
		return nil
	}
	return recordAction(m.env, keyMsg, row.record)
}

func (m *TimelineModel) nextFilter() string {
	return application.NewNavigation().WithFilter(m.filter).NextFilter().Filter
}

// View renders the timeline view
func (m *TimelineModel) View() string {
	var b strings.Builder

	modeLabel := "File Modified Date"
	if m.mode == application.ByIndexedDate {
		modeLabel = "Date Indexed"
	}
	b.WriteString(styles.InputLabel.Render(modeLabel) + RenderFilterBadge(m.filter))
	if m.result != nil {
		b.WriteString(RenderMuted(fmt.Sprintf("  %d files across %d dates",
			m.result.Summary.Files, m.result.Summary.Dates)))
	}
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	if m.result == nil || len(m.result.Buckets) == 0 {
		b.WriteString(RenderMuted("No files to show. Index a folder to populate the timeline."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		row := m.rows[i]
		bucket := m.result.Buckets[row.bucket]
		selected := i == m.pager.Cursor()
		if row.header {
			b.WriteString(RenderBucketHeader(bucket, m.expanded[bucket.DateKey], selected))
			b.WriteString("\n")
			continue
		}
		if m.pager.StartsGroup(i) {
			b.WriteString(RenderMuted("  " + bucket.DisplayLabel + " (continued)"))
			b.WriteString("\n")
		}
		b.WriteString(RenderBucketFile(row.record, selected))
		b.WriteString("\n")
	}

	if info := RenderPageInfo(m.pager); info != "" {
		b.WriteString(info)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(TimelineKeys.Toggle, TimelineKeys.Mode, TimelineKeys.Filter, RecordKeys.Open, RecordKeys.Delete))
	return b.String()
}
