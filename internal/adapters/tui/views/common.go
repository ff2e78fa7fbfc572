package views

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"smartvault/internal/application"
	"smartvault/internal/application/commands"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// listHeight is how many rows a list view can show below its header
func (s *ViewState) listHeight(reserved int) int {
	h := s.Height - reserved
	if h < 5 {
		return 5
	}
	return h
}

// Env is what every view needs to reach the vault
type Env struct {
	Ctx       context.Context
	Vault     *application.Vault
	Clipboard *application.Clipboard
	Yank      func(text string) error
}

// NewEnv wires the system clipboard as the yank target
func NewEnv(ctx context.Context, vault *application.Vault, cb *application.Clipboard) *Env {
	return &Env{
		Ctx:       ctx,
		Vault:     vault,
		Clipboard: cb,
		Yank:      clipboard.WriteAll,
	}
}

// ActionStartedMsg marks the beginning of a backend round trip
type ActionStartedMsg struct {
	Label string
}

// ActionFinishedMsg wraps whatever the round trip produced
type ActionFinishedMsg struct {
	Inner tea.Msg
}

// ActionDoneMsg reports a finished mutation. Stale is set when the command
// succeeded but the refetch after it did not.
type ActionDoneMsg struct {
	Message string
	Err     error
	Stale   bool
}

// StatusMsg shows a transient status line without touching the vault
type StatusMsg struct {
	Message string
	Err     bool
}

// ShowModalMsg asks the app to put a modal in front of the current view
type ShowModalMsg struct {
	Modal Modal
}

// Run performs work off the UI goroutine, bracketed by started/finished
// messages so the app can show progress.
func Run(label string, work func() tea.Msg) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg { return ActionStartedMsg{Label: label} },
		func() tea.Msg { return ActionFinishedMsg{Inner: work()} },
	)
}

// RunMutation executes a mutation command and reports it as ActionDoneMsg
func RunMutation(label string, exec func() (*commands.MutationResult, error)) tea.Cmd {
	return Run(label, func() tea.Msg {
		return doneMsg(exec())
	})
}

func doneMsg(res *commands.MutationResult, err error) ActionDoneMsg {
	var refreshErr *application.RefreshError
	switch {
	case err == nil:
		return ActionDoneMsg{Message: res.Message}
	case errors.As(err, &refreshErr) && res != nil:
		return ActionDoneMsg{Message: res.Message + " (refresh failed: " + refreshErr.Err.Error() + ")", Stale: true}
	default:
		return ActionDoneMsg{Err: err}
	}
}

func status(msg string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Message: msg, Err: isErr} }
}

func showModal(m Modal) tea.Cmd {
	return func() tea.Msg { return ShowModalMsg{Modal: m} }
}
