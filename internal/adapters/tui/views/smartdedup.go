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

// SmartDedupKeyMap defines key bindings for the near-duplicate scan
type SmartDedupKeyMap struct {
	Scan     key.Binding
	Stricter key.Binding
	Looser   key.Binding
}

var SmartDedupKeys = SmartDedupKeyMap{
	Scan: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scan"),
	),
	Stricter: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "stricter"),
	),
	Looser: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "looser"),
	),
}

type similarScannedMsg struct {
	result *commands.FindSimilarResult
	err    error
}

// similarRow is one image row of a scan result
type similarRow struct {
	group          int
	representative bool
	record         domain.FileRecord
}

// SmartDedupModel scans for perceptually similar images
type SmartDedupModel struct {
	ViewState
	env       *Env
	threshold int
	scanning  bool
	result    *commands.FindSimilarResult
	rows      []similarRow
	pager     *Paginator
}

// NewSmartDedupModel creates a new smart dedup view starting at threshold
func NewSmartDedupModel(env *Env, threshold int) *SmartDedupModel {
	return &SmartDedupModel{
		env:       env,
		threshold: domain.ClampThreshold(threshold),
		pager:     NewPaginator(20),
	}
}

// Name is the tab label
func (m *SmartDedupModel) Name() string { return "Similar" }

// Capturing is always false: the view has no text field
func (m *SmartDedupModel) Capturing() bool { return false }

// Threshold returns the current similarity threshold
func (m *SmartDedupModel) Threshold() int { return m.threshold }

// Sync drops rows whose file left the index since the scan
func (m *SmartDedupModel) Sync() {
	m.rows = m.rows[:0]
	if m.result == nil {
		m.pager.SetTotal(0)
		return
	}

	indexed := make(map[string]struct{})
	for _, r := range m.env.Vault.Records() {
		indexed[r.Path] = struct{}{}
	}
	var opens []bool
	for gi, g := range m.result.Groups {
		first := true
		add := func(row similarRow) {
			if _, ok := indexed[row.record.Path]; !ok {
				return
			}
			m.rows = append(m.rows, row)
			opens = append(opens, first)
			first = false
		}
		add(similarRow{group: gi, representative: true, record: g.Representative})
		for _, r := range g.Members {
			add(similarRow{group: gi, record: r})
		}
	}
	m.pager.SetRows(len(m.rows), 1, opens)
}

// SetSize updates the view dimensions
func (m *SmartDedupModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.listHeight(12))
}

func (m *SmartDedupModel) scan() tea.Cmd {
	m.scanning = true
	threshold := m.threshold
	return Run("Scanning images", func() tea.Msg {
		res, err := commands.NewFindSimilarCommand(m.env.Vault, threshold).Execute(m.env.Ctx)
		return similarScannedMsg{result: res, err: err}
	})
}

// Update handles messages for the smart dedup view
func (m *SmartDedupModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case similarScannedMsg:
		m.scanning = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return nil
		}
		m.ClearMessage()
		m.result = msg.result
		m.pager.SetCursor(0)
		m.Sync()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *SmartDedupModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, SmartDedupKeys.Scan):
		if m.scanning {
			return nil
		}
		return m.scan()
	case key.Matches(msg, SmartDedupKeys.Stricter):
		m.threshold = domain.ClampThreshold(m.threshold + 1)
		return nil
	case key.Matches(msg, SmartDedupKeys.Looser):
		m.threshold = domain.ClampThreshold(m.threshold - 1)
		return nil
	case key.Matches(msg, ListKeys.Up):
		m.pager.CursorUp()
		return nil
	case key.Matches(msg, ListKeys.Down):
		m.pager.CursorDown()
		return nil
	case key.Matches(msg, ListKeys.NextPage):
		m.pager.NextPage()
		return nil
	case key.Matches(msg, ListKeys.PrevPage):
		m.pager.PrevPage()
		return nil
	}

	idx := m.pager.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}
	row := m.rows[idx]
	if row.representative && (key.Matches(msg, RecordKeys.Delete) || key.Matches(msg, RecordKeys.Purge)) {
		return status("The best copy of a group is kept", true)
	}
	return recordAction(m.env, msg, row.record)
}

// View renders the smart dedup view
func (m *SmartDedupModel) View() string {
	var b strings.Builder

	images := len(domain.OnlyCategory(m.env.Vault.Records(), domain.CategoryImage))
	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Similarity threshold: %d%%", m.threshold)))
	b.WriteString(RenderMuted("  " + domain.ThresholdTier(m.threshold)))
	b.WriteString("\n")
	b.WriteString(RenderMuted(fmt.Sprintf("%d images indexed. Only images are compared.", images)))
	b.WriteString("\n\n")

	switch {
	case m.scanning:
		b.WriteString(styles.Spinner.Render("Computing perceptual hashes..."))
		b.WriteString("\n")
	case m.Message != "":
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	case m.result == nil:
		b.WriteString(RenderMuted(fmt.Sprintf("Press s to scan %d images", images)))
		b.WriteString("\n")
	case len(m.rows) == 0:
		b.WriteString(RenderMuted(fmt.Sprintf("No similar images found at %d%%. Try lowering the threshold.", m.result.Threshold)))
		b.WriteString("\n")
	default:
		b.WriteString(RenderMuted(fmt.Sprintf("%d groups at %d%%", len(m.result.Groups), m.result.Threshold)))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		row := m.rows[i]
		if m.pager.StartsGroup(i) {
			b.WriteString(RenderSimilarHeader(m.result.Groups[row.group]))
			b.WriteString("\n")
		}
		line := RenderRecordRow(row.record, i == m.pager.Cursor())
		if row.representative {
			line += " " + styles.Success.Render("BEST")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if info := RenderPageInfo(m.pager); info != "" {
		b.WriteString(info)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(SmartDedupKeys.Scan, SmartDedupKeys.Stricter, SmartDedupKeys.Looser,
		RecordKeys.Open, RecordKeys.Delete))
	return b.String()
}
