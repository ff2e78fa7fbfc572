package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
)

// Modal is a dialog that owns the keyboard until it reports done
type Modal interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (done bool, cmd tea.Cmd)
	View() string
}

// SubmitFunc turns the form values into work. A non-nil error keeps the
// prompt open and shows the error inside it.
type SubmitFunc func(values []string) (tea.Cmd, error)

// PromptModal collects one or more text values
type PromptModal struct {
	ViewState
	title    string
	detail   string
	submit   string
	form     *InputForm
	onSubmit SubmitFunc
	onCancel func()
}

// NewPromptModal creates a prompt over fields
func NewPromptModal(title, detail, submitText string, onSubmit SubmitFunc, fields ...InputField) *PromptModal {
	return &PromptModal{
		title:    title,
		detail:   detail,
		submit:   submitText,
		form:     NewInputForm(fields...),
		onSubmit: onSubmit,
	}
}

// OnCancel registers a hook run when the prompt is dismissed without submitting
func (m *PromptModal) OnCancel(fn func()) *PromptModal {
	m.onCancel = fn
	return m
}

// Init starts the cursor blink
func (m *PromptModal) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles keys for the prompt
func (m *PromptModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			if m.onCancel != nil {
				m.onCancel()
			}
			return true, nil
		case key.Matches(msg, m.form.Keys.Submit):
			if err := m.form.Validate(); err != nil {
				m.SetMessage(err.Error(), true)
				return false, nil
			}
			cmd, err := m.onSubmit(m.form.Values())
			if err != nil {
				m.SetMessage(err.Error(), true)
				return false, nil
			}
			return true, cmd
		}
	}

	m.ClearMessage()
	_, cmd := m.form.Update(msg)
	return false, cmd
}

// View renders the prompt
func (m *PromptModal) View() string {
	var b strings.Builder
	b.WriteString(RenderTitle(m.title))
	b.WriteString("\n")
	if m.detail != "" {
		b.WriteString(RenderMuted(m.detail))
		b.WriteString("\n\n")
	}
	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.form.RenderHelp(m.submit))
	return styles.Modal.Render(b.String())
}
