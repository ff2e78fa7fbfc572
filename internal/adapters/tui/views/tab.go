package views

import tea "github.com/charmbracelet/bubbletea"

// Tab is one top-level view of the app
type Tab interface {
	Name() string
	// Sync re-projects the view from the vault cache
	Sync()
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	// Capturing reports a focused text field, so global keys pass through
	Capturing() bool
}

var (
	_ Tab = (*BrowserModel)(nil)
	_ Tab = (*DuplicatesModel)(nil)
	_ Tab = (*SmartDedupModel)(nil)
	_ Tab = (*TimelineModel)(nil)
	_ Tab = (*HistoryModel)(nil)
	_ Tab = (*SnapshotsModel)(nil)
)
