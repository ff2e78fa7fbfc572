package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/application"
)

// FieldKind decides how a prompt value is cleaned and checked before submit
type FieldKind int

const (
	// TextField is free text and may be empty
	TextField FieldKind = iota
	// RequiredField must not be blank: disk paths, application names
	RequiredField
	// NameField is a single file or folder name without separators. An
	// empty name is left to the command like FolderField.
	NameField
	// FolderField is a vault folder. Trailing separators are dropped and
	// emptiness is left to the command, which knows what empty means.
	FolderField
)

type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
}

// InputField is one labelled value of a prompt
type InputField struct {
	Label   string
	Kind    FieldKind
	Input   textinput.Model
	invalid bool
}

func newField(kind FieldKind, label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{Label: label, Kind: kind, Input: input}
}

// NewInputField creates a free text field
func NewInputField(label, placeholder string, charLimit int) InputField {
	return newField(TextField, label, placeholder, charLimit)
}

// NewPathField creates a required field for a path on disk
func NewPathField(label, placeholder string) InputField {
	return newField(RequiredField, label, placeholder, 1024)
}

// NewNameField creates a field for a single file or folder name
func NewNameField(label, placeholder string) InputField {
	return newField(NameField, label, placeholder, 255)
}

// NewFolderField creates a field for a folder inside the vault
func NewFolderField(label string) InputField {
	return newField(FolderField, label, "folder path", 1024)
}

// WithValue prefills the field and puts the cursor at the end
func (f InputField) WithValue(value string) InputField {
	f.Input.SetValue(value)
	f.Input.CursorEnd()
	return f
}

// value is the cleaned text the field submits
func (f InputField) value() string {
	v := strings.TrimSpace(f.Input.Value())
	if f.Kind == FolderField {
		if trimmed := strings.TrimRight(v, `/\`); trimmed != "" {
			v = trimmed
		}
	}
	return v
}

func (f InputField) check() error {
	switch f.Kind {
	case RequiredField:
		return application.ValidateRequired(strings.ToLower(f.Label), f.value())
	case NameField:
		if f.value() == "" {
			return nil
		}
		return application.ValidateName(strings.ToLower(f.Label), f.value())
	}
	return nil
}

// InputForm holds the fields of a prompt and which one has focus
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm focuses the first field
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{Fields: fields, Keys: DefaultInputFormKeys}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus on tab and feeds everything else to the focused input.
// It reports whether the key was consumed by the form itself.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.Keys.Tab) {
		f.focus((f.FocusedField + 1) % max(1, len(f.Fields)))
		return true, nil
	}

	var cmd tea.Cmd
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		field := &f.Fields[f.FocusedField]
		field.invalid = false
		field.Input, cmd = field.Input.Update(msg)
	}
	return false, cmd
}

func (f *InputForm) focus(index int) {
	if index < 0 || index >= len(f.Fields) || index == f.FocusedField {
		return
	}
	f.Fields[f.FocusedField].Input.Blur()
	f.FocusedField = index
	f.Fields[index].Input.Focus()
}

// Validate checks every field by kind. The first failing field takes focus
// and its error is returned.
func (f *InputForm) Validate() error {
	var first error
	for i := range f.Fields {
		err := f.Fields[i].check()
		f.Fields[i].invalid = err != nil
		if err != nil && first == nil {
			first = err
			f.focus(i)
		}
	}
	return first
}

// Value returns the cleaned value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return f.Fields[index].value()
}

// Values returns every cleaned field value in order
func (f *InputForm) Values() []string {
	out := make([]string, len(f.Fields))
	for i := range f.Fields {
		out[i] = f.Value(i)
	}
	return out
}

// RenderField renders a label over its input; a field that failed
// validation has its label in the error style.
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	field := f.Fields[index]

	label := styles.InputLabel.Render(field.Label)
	if field.invalid {
		label = styles.ErrorMsg.Render(field.Label)
	}
	box := styles.InputField
	if index == f.FocusedField {
		box = styles.InputFocused
	}
	return label + "\n" + box.Render(field.Input.View())
}

// RenderHelp renders the form keys with submitText on enter
func (f *InputForm) RenderHelp(submitText string) string {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", submitText)),
		f.Keys.Cancel,
	}
	if len(f.Fields) > 1 {
		bindings = append([]key.Binding{f.Keys.Tab}, bindings...)
	}
	return RenderHelpLine(bindings...)
}
