package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
)

// GlobalKeyMap defines keys that work from every tab
type GlobalKeyMap struct {
	Index     key.Binding
	AddFile   key.Binding
	Reset     key.Binding
	Refresh   key.Binding
	Integrity key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var GlobalKeys = GlobalKeyMap{
	Index: key.NewBinding(
		key.WithKeys("I"),
		key.WithHelp("I", "index folder"),
	),
	AddFile: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "add file"),
	),
	Reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset vault"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload"),
	),
	Integrity: key.NewBinding(
		key.WithKeys("V"),
		key.WithHelp("V", "verify"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModal lists every key binding
type HelpModal struct{}

// NewHelpModal creates the help overlay
func NewHelpModal() *HelpModal {
	return &HelpModal{}
}

// Init initializes the help view
func (m *HelpModal) Init() tea.Cmd {
	return nil
}

// Update closes the help on its close keys
func (m *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return true, nil
	}
	return false, nil
}

// View renders the help view
func (m *HelpModal) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("smartvault Help"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-6", "Switch tab"))
	b.WriteString(helpBinding(ListKeys.Down, ListKeys.Up, ListKeys.NextPage, ListKeys.PrevPage))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Browse"))
	b.WriteString("\n")
	b.WriteString(helpBinding(BrowserKeys.Enter, BrowserKeys.Back, BrowserKeys.Root, BrowserKeys.Search,
		BrowserKeys.Filter, BrowserKeys.Cut, BrowserKeys.Paste, BrowserKeys.Rename, BrowserKeys.Delete,
		BrowserKeys.Purge, BrowserKeys.Properties, BrowserKeys.OpenWith, BrowserKeys.Yank,
		BrowserKeys.Compress, BrowserKeys.Extract))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Duplicates, Similar, Timeline"))
	b.WriteString("\n")
	b.WriteString(helpBinding(RecordKeys.Open, RecordKeys.Delete, RecordKeys.Purge, RecordKeys.Yank,
		SmartDedupKeys.Scan, SmartDedupKeys.Stricter, SmartDedupKeys.Looser,
		TimelineKeys.Toggle, TimelineKeys.Mode, TimelineKeys.Filter))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("History, Snapshots"))
	b.WriteString("\n")
	b.WriteString(helpBinding(HistoryKeys.Clear, HistoryKeys.Delete))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpBinding(GlobalKeys.Index, GlobalKeys.AddFile, GlobalKeys.Reset, GlobalKeys.Refresh,
		GlobalKeys.Integrity, GlobalKeys.Help, GlobalKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.Modal.Render(b.String())
}

func helpBinding(bindings ...key.Binding) string {
	var b strings.Builder
	for _, kb := range bindings {
		h := kb.Help()
		b.WriteString(helpLine(h.Key, h.Desc))
	}
	return b.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 12)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
