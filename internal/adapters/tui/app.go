package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/adapters/tui/views"
	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

// chromeHeight is the lines taken by the tab strip and status bar
const chromeHeight = 4

type vaultLoadedMsg struct {
	err error
}

// App is the main TUI application model
type App struct {
	env    *views.Env
	tabs   []views.Tab
	active int
	modal  views.Modal

	spinner   spinner.Model
	busy      int
	busyLabel string

	status    string
	statusErr bool

	width  int
	height int
}

// NewApp creates a new TUI application. threshold seeds the similar
// images scan.
func NewApp(env *views.Env, threshold int) *App {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Spinner),
	)

	return &App{
		env: env,
		tabs: []views.Tab{
			views.NewBrowserModel(env),
			views.NewDuplicatesModel(env),
			views.NewSmartDedupModel(env, threshold),
			views.NewTimelineModel(env),
			views.NewHistoryModel(env),
			views.NewSnapshotsModel(env),
		},
		spinner: sp,
	}
}

// Init loads the vault
func (a *App) Init() tea.Cmd {
	a.syncAll()
	return tea.Batch(a.spinner.Tick, a.load("Loading vault"))
}

func (a *App) load(label string) tea.Cmd {
	return views.Run(label, func() tea.Msg {
		return vaultLoadedMsg{err: a.env.Vault.Load(a.env.Ctx)}
	})
}

func (a *App) syncAll() {
	for _, t := range a.tabs {
		t.Sync()
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, t := range a.tabs {
			t.SetSize(msg.Width, msg.Height-chromeHeight)
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case views.ActionStartedMsg:
		a.busy++
		a.busyLabel = msg.Label
		return a, nil

	case views.ActionFinishedMsg:
		if a.busy > 0 {
			a.busy--
		}
		if msg.Inner == nil {
			return a, nil
		}
		return a.Update(msg.Inner)

	case vaultLoadedMsg:
		a.syncAll()
		if msg.err != nil {
			a.setStatus("Load failed: "+msg.err.Error(), true)
		} else {
			a.setStatus(fmt.Sprintf("Loaded %d files", len(a.env.Vault.Records())), false)
		}
		return a, nil

	case views.ActionDoneMsg:
		if msg.Err != nil {
			a.setStatus(msg.Err.Error(), true)
			return a, nil
		}
		a.syncAll()
		a.setStatus(msg.Message, msg.Stale)
		return a, nil

	case views.StatusMsg:
		a.setStatus(msg.Message, msg.Err)
		return a, nil

	case views.ShowModalMsg:
		a.modal = msg.Modal
		return a, a.modal.Init()

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// everything else (blinks, async results) reaches the modal and every tab
	var cmds []tea.Cmd
	if a.modal != nil {
		done, cmd := a.modal.Update(msg)
		if done {
			a.modal = nil
		}
		cmds = append(cmds, cmd)
	}
	for _, t := range a.tabs {
		cmds = append(cmds, t.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.modal != nil {
		done, cmd := a.modal.Update(msg)
		if done {
			a.modal = nil
		}
		return cmd
	}

	tab := a.tabs[a.active]
	if tab.Capturing() {
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		return tab.Update(msg)
	}

	switch {
	case key.Matches(msg, views.GlobalKeys.Quit):
		return tea.Quit

	case key.Matches(msg, views.GlobalKeys.Help):
		a.modal = views.NewHelpModal()
		return nil

	case key.Matches(msg, views.GlobalKeys.Refresh):
		return a.load("Reloading")

	case key.Matches(msg, views.GlobalKeys.Index):
		a.modal = a.indexPrompt()
		return a.modal.Init()

	case key.Matches(msg, views.GlobalKeys.AddFile):
		a.modal = a.addFilePrompt()
		return a.modal.Init()

	case key.Matches(msg, views.GlobalKeys.Reset):
		a.modal = views.NewConfirmModal("Reset Vault", fmt.Sprintf("%d indexed files", len(a.env.Vault.Records())),
			"Every record is dropped from the index. Files on disk are not touched.",
			func() tea.Cmd {
				return views.RunMutation("Resetting", func() (*commands.MutationResult, error) {
					return commands.NewResetVaultCommand(a.env.Vault, true).Execute(a.env.Ctx)
				})
			})
		return nil

	case key.Matches(msg, views.GlobalKeys.Integrity):
		return views.Run("Verifying hashes", func() tea.Msg {
			res, err := commands.NewIntegrityCheckCommand(a.env.Vault).Execute(a.env.Ctx)
			if err != nil {
				return views.StatusMsg{Message: err.Error(), Err: true}
			}
			text := res.Message
			if len(res.Corrupted) > 0 {
				text += ": " + res.Corrupted[0]
				if len(res.Corrupted) > 1 {
					text += fmt.Sprintf(" and %d more", len(res.Corrupted)-1)
				}
			}
			return views.StatusMsg{Message: text, Err: len(res.Corrupted) > 0}
		})
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if idx := int(s[0] - '1'); idx < len(a.tabs) {
			a.active = idx
			return nil
		}
	}

	return tab.Update(msg)
}

func (a *App) indexPrompt() views.Modal {
	return views.NewPromptModal("Index Folder", "Scan a folder and record it as a snapshot", "index",
		func(values []string) (tea.Cmd, error) {
			index := commands.NewIndexFolderCommand(a.env.Vault, values[0], values[1])
			if err := index.Validate(); err != nil {
				return nil, err
			}
			return views.RunMutation("Indexing", func() (*commands.MutationResult, error) {
				return index.Execute(a.env.Ctx)
			}), nil
		},
		views.NewPathField("Folder", "/path/to/folder"),
		views.NewInputField("Snapshot", "snapshot name", 128).WithValue(domain.DefaultSnapshotName(time.Now())),
	)
}

func (a *App) addFilePrompt() views.Modal {
	return views.NewPromptModal("Add File", "Index a single file", "add",
		func(values []string) (tea.Cmd, error) {
			add := commands.NewAddFileCommand(a.env.Vault, values[0])
			if err := add.Validate(); err != nil {
				return nil, err
			}
			return views.RunMutation("Adding", func() (*commands.MutationResult, error) {
				return add.Execute(a.env.Ctx)
			}), nil
		},
		views.NewPathField("File", "/path/to/file"),
	)
}

// ActiveTab returns the index of the visible tab
func (a *App) ActiveTab() int {
	return a.active
}

// Modal returns the open modal, if any
func (a *App) Modal() views.Modal {
	return a.modal
}

// Status returns the status line and whether it reports an error
func (a *App) Status() (string, bool) {
	return a.status, a.statusErr
}

// View renders the current view
func (a *App) View() string {
	names := make([]string, len(a.tabs))
	for i, t := range a.tabs {
		names[i] = t.Name()
	}

	var b strings.Builder
	b.WriteString(views.RenderTabs(names, a.active))
	b.WriteString("\n\n")

	body := a.tabs[a.active].View()
	if a.modal != nil {
		body = a.modal.View()
		if a.width > 0 && a.height > chromeHeight {
			body = lipgloss.Place(a.width, a.height-chromeHeight, lipgloss.Center, lipgloss.Center, body)
		}
	}
	b.WriteString(body)

	out := b.String()
	if a.height > 0 {
		// keep the status bar on the last line
		if pad := a.height - 1 - lipgloss.Height(out); pad > 0 {
			out += strings.Repeat("\n", pad)
		}
	}
	return out + "\n" + a.statusBar()
}

func (a *App) statusBar() string {
	var left string
	switch {
	case a.busy > 0:
		left = a.spinner.View() + " " + a.busyLabel + "..."
	case a.statusErr:
		left = styles.ErrorMsg.Render(a.status)
	default:
		left = a.status
	}

	summary := a.env.Vault.State().Summary()
	right := fmt.Sprintf("%d files · %d dup groups · %d deleted", summary.Files, summary.DuplicateGroups, summary.DeletedRecords)
	if item, ok := a.env.Clipboard.Item(); ok {
		right += " · " + styles.NodeCut.Render("cut: "+item.Name)
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + styles.StatusText.Render(right)
	return styles.StatusBar.Width(max(a.width, lipgloss.Width(line))).Render(line)
}

var _ tea.Model = (*App)(nil)

// Summary exposes the counts shown in the status bar
func (a *App) Summary() application.Summary {
	return a.env.Vault.State().Summary()
}
