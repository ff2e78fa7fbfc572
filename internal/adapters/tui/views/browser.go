package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartvault/internal/adapters/tui/styles"
	"smartvault/internal/application"
	"smartvault/internal/application/commands"
	"smartvault/internal/domain"
)

const propertiesWidth = 44

// BrowserModel is the folder browser over the cached records
type BrowserModel struct {
	ViewState
	env       *Env
	nav       application.Navigation
	nodes     []domain.BrowserNode
	sizes     map[string]uint64 // by record path
	pager     *Paginator
	search    textinput.Model
	searching bool
	props     PropertiesPanel
}

// NewBrowserModel creates a new browser model at the vault root
func NewBrowserModel(env *Env) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "Search by name..."
	input.Prompt = "/ "
	input.CharLimit = 256

	return &BrowserModel{
		env:    env,
		nav:    application.NewNavigation(),
		pager:  NewPaginator(20),
		search: input,
	}
}

// Name is the tab label
func (m *BrowserModel) Name() string { return "Browse" }

// Capturing reports whether the search field has focus
func (m *BrowserModel) Capturing() bool { return m.searching }

// Navigation returns the current browse position
func (m *BrowserModel) Navigation() application.Navigation { return m.nav }

// Nodes returns the rows currently listed
func (m *BrowserModel) Nodes() []domain.BrowserNode { return m.nodes }

// CurrentFolder is the folder the listing is showing, as a path
func (m *BrowserModel) CurrentFolder() string {
	return strings.Join(m.nav.Path, "/")
}

// Sync re-projects the listing from the vault cache
func (m *BrowserModel) Sync() {
	state := m.env.Vault.State()
	m.nodes = m.nav.Listing(state)
	m.sizes = make(map[string]uint64, len(state.Records))
	for _, r := range state.Records {
		m.sizes[r.Path] = r.Size
	}
	m.pager.SetTotal(len(m.nodes))

	if m.props.Open() {
		if node, ok := m.selected(); !ok || !m.props.Showing(node) {
			m.props.open = false
		}
	}
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(m.listHeight(8))
	m.search.Width = max(20, width/2)
}

func (m *BrowserModel) selected() (domain.BrowserNode, bool) {
	idx := m.pager.Cursor()
	if idx < 0 || idx >= len(m.nodes) {
		return domain.BrowserNode{}, false
	}
	return m.nodes[idx], true
}

func (m *BrowserModel) navigate(nav application.Navigation) {
	m.nav = nav
	m.pager.SetCursor(0)
	m.Sync()
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case propertiesLoadedMsg:
		m.props.apply(msg)
		return nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *BrowserModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, SearchKeys.Clear):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.navigate(m.nav.WithQuery(""))
		return nil
	case key.Matches(msg, SearchKeys.Accept):
		m.searching = false
		m.search.Blur()
		return nil
	case msg.Type == tea.KeyUp:
		m.pager.CursorUp()
		return nil
	case msg.Type == tea.KeyDown:
		m.pager.CursorDown()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.nav.Query {
		m.navigate(m.nav.WithQuery(m.search.Value()))
	}
	return cmd
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ListKeys.Up):
		m.pager.CursorUp()
		return m.followSelection()
	case key.Matches(msg, ListKeys.Down):
		m.pager.CursorDown()
		return m.followSelection()
	case key.Matches(msg, ListKeys.NextPage):
		m.pager.NextPage()
		return m.followSelection()
	case key.Matches(msg, ListKeys.PrevPage):
		m.pager.PrevPage()
		return m.followSelection()

	case key.Matches(msg, BrowserKeys.Search):
		m.searching = true
		m.search.SetValue(m.nav.Query)
		m.search.CursorEnd()
		return m.search.Focus()

	case key.Matches(msg, BrowserKeys.Back):
		m.goUp()
		return nil

	case key.Matches(msg, BrowserKeys.Root):
		m.search.SetValue("")
		m.navigate(m.nav.WithQuery("").Root())
		return nil

	case key.Matches(msg, BrowserKeys.Filter):
		m.navigate(m.nav.NextFilter())
		return status("Filter: "+m.nav.Filter, false)

	case key.Matches(msg, BrowserKeys.Paste):
		return m.paste()
	}

	node, ok := m.selected()
	if !ok {
		return nil
	}

	switch {
	case key.Matches(msg, BrowserKeys.Enter):
		if node.IsFolder {
			m.search.SetValue("")
			m.navigate(m.nav.Enter(node.FolderPath))
			return nil
		}
		return m.open(node.Path, "")

	case key.Matches(msg, BrowserKeys.Cut):
		m.env.Clipboard.Cut(domain.ClipboardItemFromNode(node))
		return status("Cut: "+node.Name, false)

	case key.Matches(msg, BrowserKeys.Rename):
		return showModal(m.renamePrompt(node))

	case key.Matches(msg, BrowserKeys.Delete):
		return m.deleteToBin(node)

	case key.Matches(msg, BrowserKeys.Purge):
		if node.IsFolder {
			return status("Permanent delete works on files only", true)
		}
		return showModal(NewConfirmModal("Delete Permanently", node.Path, "This removes the file from disk and cannot be undone.",
			func() tea.Cmd {
				return RunMutation("Deleting", func() (*commands.MutationResult, error) {
					return commands.NewPermanentDeleteCommand(m.env.Vault, node.Hash, node.Path, true).Execute(m.env.Ctx)
				})
			}))

	case key.Matches(msg, BrowserKeys.Properties):
		if !m.props.Toggle() {
			return nil
		}
		return m.props.Load(m.env, node)

	case key.Matches(msg, BrowserKeys.OpenWith):
		if node.IsFolder {
			return status("Open with works on files only", true)
		}
		return showModal(NewPromptModal("Open With", node.Path, "open",
			func(values []string) (tea.Cmd, error) {
				return m.open(node.Path, values[0]), nil
			},
			newField(RequiredField, "Application", "e.g. vlc", 256)))

	case key.Matches(msg, BrowserKeys.Yank):
		p := nodePath(node)
		if err := m.env.Yank(p); err != nil {
			return status("Copy failed: "+err.Error(), true)
		}
		return status("Copied "+p, false)

	case key.Matches(msg, BrowserKeys.Compress):
		return showModal(m.compressPrompt(node))

	case key.Matches(msg, BrowserKeys.Extract):
		if node.IsFolder || node.Category != domain.CategoryArchive {
			return status("Only archives can be extracted", true)
		}
		return showModal(m.extractPrompt(node))
	}

	return nil
}

// followSelection keeps an open properties panel on the selected row
func (m *BrowserModel) followSelection() tea.Cmd {
	if !m.props.Open() {
		return nil
	}
	node, ok := m.selected()
	if !ok || m.props.Showing(node) {
		return nil
	}
	return m.props.Load(m.env, node)
}

func (m *BrowserModel) goUp() {
	if m.nav.Searching() {
		m.search.SetValue("")
		m.navigate(m.nav.WithQuery(""))
		return
	}
	if len(m.nav.Path) == 0 {
		return
	}

	left := m.CurrentFolder()
	m.navigate(m.nav.Up())
	for i, n := range m.nodes {
		if n.IsFolder && n.FolderPath == left {
			m.pager.SetCursor(i)
			break
		}
	}
}

func (m *BrowserModel) open(path, app string) tea.Cmd {
	return Run("Opening", func() tea.Msg {
		res, err := commands.NewOpenCommand(m.env.Vault, path, app).Execute(m.env.Ctx)
		if err != nil {
			return StatusMsg{Message: err.Error(), Err: true}
		}
		return StatusMsg{Message: res.Message}
	})
}

func (m *BrowserModel) paste() tea.Cmd {
	item, err := m.env.Clipboard.BeginPaste()
	if err != nil {
		return status("Nothing to paste: cut an item with x first", true)
	}

	prompt := NewPromptModal("Paste "+item.Name, "Move to folder", "move",
		func(values []string) (tea.Cmd, error) {
			paste := commands.NewPasteCommand(m.env.Vault, m.env.Clipboard, values[0])
			if err := paste.Validate(); err != nil {
				return nil, err
			}
			return RunMutation("Moving", func() (*commands.MutationResult, error) {
				return paste.Execute(m.env.Ctx)
			}), nil
		},
		NewFolderField("Destination").WithValue(m.CurrentFolder()),
	)
	prompt.OnCancel(m.env.Clipboard.Cancel)
	return showModal(prompt)
}

func (m *BrowserModel) renamePrompt(node domain.BrowserNode) Modal {
	return NewPromptModal("Rename", nodePath(node), "rename",
		func(values []string) (tea.Cmd, error) {
			name := strings.TrimSpace(values[0])
			if node.IsFolder {
				rename := commands.NewRenameFolderCommand(m.env.Vault, node.FolderPath, name)
				if err := rename.Validate(); err != nil {
					return nil, err
				}
				return RunMutation("Renaming", func() (*commands.MutationResult, error) {
					return rename.Execute(m.env.Ctx)
				}), nil
			}
			rename := commands.NewRenameFileCommand(m.env.Vault, node.Hash, name)
			if err := rename.Validate(); err != nil {
				return nil, err
			}
			return RunMutation("Renaming", func() (*commands.MutationResult, error) {
				return rename.Execute(m.env.Ctx)
			}), nil
		},
		NewNameField("New name", node.Name).WithValue(node.Name),
	)
}

func (m *BrowserModel) deleteToBin(node domain.BrowserNode) tea.Cmd {
	if !node.IsFolder {
		return RunMutation("Moving to bin", func() (*commands.MutationResult, error) {
			return commands.NewDeleteToBinCommand(m.env.Vault, node.Hash, node.Path).Execute(m.env.Ctx)
		})
	}

	count := 0
	prefix := node.FolderPath + "/"
	for _, r := range m.env.Vault.Records() {
		if strings.HasPrefix(strings.Join(domain.SplitPath(r.Path), "/"), prefix) {
			count++
		}
	}

	return showModal(NewConfirmModal("Move Folder to Bin", node.FolderPath,
		fmt.Sprintf("%d indexed files will be moved to the bin.", count),
		func() tea.Cmd {
			return RunMutation("Moving to bin", func() (*commands.MutationResult, error) {
				return commands.NewDeleteFolderCommand(m.env.Vault, node.FolderPath).Execute(m.env.Ctx)
			})
		}))
}

func (m *BrowserModel) compressPrompt(node domain.BrowserNode) Modal {
	paths := []string{nodePath(node)}
	return NewPromptModal("Compress", paths[0], "zip",
		func(values []string) (tea.Cmd, error) {
			compress := commands.NewCompressCommand(m.env.Vault, paths, values[0])
			if err := compress.Validate(); err != nil {
				return nil, err
			}
			return RunMutation("Compressing", func() (*commands.MutationResult, error) {
				return compress.Execute(m.env.Ctx)
			}), nil
		},
		NewNameField("Archive name", "archive").WithValue(domain.DefaultArchiveName(paths)),
	)
}

func (m *BrowserModel) extractPrompt(node domain.BrowserNode) Modal {
	preview := commands.NewExtractCommand(m.env.Vault, node.Path, "")
	return NewPromptModal("Extract", node.Path, "extract",
		func(values []string) (tea.Cmd, error) {
			extract := commands.NewExtractCommand(m.env.Vault, node.Path, values[0])
			if err := extract.Validate(); err != nil {
				return nil, err
			}
			return RunMutation("Extracting", func() (*commands.MutationResult, error) {
				return extract.Execute(m.env.Ctx)
			}), nil
		},
		NewFolderField("Output folder").WithValue(preview.Dir()),
	)
}

// nodePath is the path a node stands for in backend commands
func nodePath(n domain.BrowserNode) string {
	if n.IsFolder {
		return n.FolderPath
	}
	return n.Path
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	header := styles.InputLabel.Render(m.nav.Breadcrumb())
	if m.nav.Searching() {
		header = styles.InputLabel.Render(fmt.Sprintf("Search %q", m.nav.Query)) +
			RenderMuted(fmt.Sprintf("  %d matches", len(m.nodes)))
	}
	b.WriteString(header + RenderFilterBadge(m.nav.Filter))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.nodes) == 0 {
		switch {
		case m.nav.Searching():
			b.WriteString(RenderMuted("No files match"))
		case len(m.env.Vault.Records()) == 0:
			b.WriteString(RenderMuted("The vault is empty. Press I to index a folder."))
		default:
			b.WriteString(RenderMuted("Nothing here"))
		}
		b.WriteString("\n")
	}

	held, holding := m.env.Clipboard.Item()
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		node := m.nodes[i]
		b.WriteString(RenderNodeRow(NodeRow{
			Node:     node,
			Size:     m.sizes[node.Path],
			Selected: i == m.pager.Cursor(),
			Cut:      holding && isHeld(held, node),
			WithPath: m.nav.Searching(),
		}))
		b.WriteString("\n")
	}

	if info := RenderPageInfo(m.pager); info != "" {
		b.WriteString(info)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(RenderHelpLine(SearchKeys.Accept, SearchKeys.Clear))
	} else {
		b.WriteString(RenderHelpLine(BrowserKeys.Enter, BrowserKeys.Back, BrowserKeys.Search,
			BrowserKeys.Filter, BrowserKeys.Cut, BrowserKeys.Paste, BrowserKeys.Properties))
	}

	list := b.String()
	if !m.props.Open() {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", m.props.View(propertiesWidth))
}

func isHeld(item domain.ClipboardItem, node domain.BrowserNode) bool {
	if item.IsFolder != node.IsFolder {
		return false
	}
	if item.IsFolder {
		return item.FolderPath == node.FolderPath
	}
	return item.Hash == node.Hash && item.Path == node.Path
}
