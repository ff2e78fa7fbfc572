package views

import "github.com/charmbracelet/bubbles/key"

// ListKeyMap defines movement keys shared by every list view
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
}

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Enter       key.Binding
	Back        key.Binding
	Root        key.Binding
	Search      key.Binding
	Filter      key.Binding
	Cut         key.Binding
	Paste       key.Binding
	Rename      key.Binding
	Delete      key.Binding
	Purge       key.Binding
	Properties  key.Binding
	OpenWith    key.Binding
	Yank        key.Binding
	Compress    key.Binding
	Extract     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "backspace"),
		key.WithHelp("h", "back"),
	),
	Root: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "root"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Cut: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cut"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "bin"),
	),
	Purge: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete forever"),
	),
	Properties: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "info"),
	),
	OpenWith: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open with"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Compress: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "zip"),
	),
	Extract: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "unzip"),
	),
}

// SearchKeyMap defines keys while the search field has focus
type SearchKeyMap struct {
	Accept key.Binding
	Clear  key.Binding
}

var SearchKeys = SearchKeyMap{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "keep results"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
}
