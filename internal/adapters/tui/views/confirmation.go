package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmModal asks a yes/no question before an irreversible action
type ConfirmModal struct {
	Title     string
	Target    string
	Warning   string
	Keys      ConfirmKeyMap
	onConfirm func() tea.Cmd
}

// NewConfirmModal creates a confirmation for target. onConfirm runs only on "y".
func NewConfirmModal(title, target, warning string, onConfirm func() tea.Cmd) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Target:    target,
		Warning:   warning,
		Keys:      DefaultConfirmKeys,
		onConfirm: onConfirm,
	}
}

// Init initializes the confirmation
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update processes key messages. Any key other than confirm/cancel is ignored.
func (m *ConfirmModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		return true, status("Cancelled", false)
	case key.Matches(keyMsg, m.Keys.Confirm):
		return true, m.onConfirm()
	}
	return false, nil
}

// View renders the confirmation
func (m *ConfirmModal) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.Title))
	b.WriteString("\n\n")

	if m.Warning != "" {
		b.WriteString(styles.ErrorMsg.Render(m.Warning))
		b.WriteString("\n\n")
	}

	if m.Target != "" {
		b.WriteString("  ")
		b.WriteString(m.Target)
		b.WriteString("\n\n")
	}

	b.WriteString(RenderConfirmPrompt("Are you sure?"))

	return styles.Modal.Render(b.String())
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
