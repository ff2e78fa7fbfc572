package styles

import (
	"github.com/charmbracelet/lipgloss"

	"smartvault/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Category colors
	CategoryImage    = lipgloss.Color("#EC4899") // Pink
	CategoryVideo    = lipgloss.Color("#F97316") // Orange
	CategoryAudio    = lipgloss.Color("#8B5CF6") // Violet
	CategoryDocument = lipgloss.Color("#60A5FA") // Blue
	CategoryArchive  = lipgloss.Color("#F59E0B") // Amber
	CategoryExec     = lipgloss.Color("#10B981") // Green

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tabs
	Tab = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Foreground(White).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// Listing styles
	NodeFolder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")). // Blue
			Bold(true)

	NodeFile = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeCut = lipgloss.NewStyle().
		Foreground(Warning).
		Italic(true)

	Ghost = lipgloss.NewStyle().
		Foreground(Error).
		Strikethrough(true)

	GroupHeader = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "
	FolderIcon    = "▸ "

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Modal and side panel
	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Muted).
		PaddingLeft(2)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CategoryColor returns the color for a file category
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryImage:
		return CategoryImage
	case domain.CategoryVideo:
		return CategoryVideo
	case domain.CategoryAudio:
		return CategoryAudio
	case domain.CategoryDocument:
		return CategoryDocument
	case domain.CategoryArchive:
		return CategoryArchive
	case domain.CategoryExecutable:
		return CategoryExec
	default:
		return Muted
	}
}

// CategoryBadge renders a short colored category tag
func CategoryBadge(c domain.Category) string {
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render(string(c))
}
