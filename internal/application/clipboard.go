package application

import (
	"sync"

	"smartvault/internal/domain"
)

// ClipboardState is the phase of the cut/paste workflow
type ClipboardState int

const (
	ClipboardEmpty ClipboardState = iota
	ClipboardCut
	ClipboardPasting
)

func (s ClipboardState) String() string {
	switch s {
	case ClipboardCut:
		return "cut"
	case ClipboardPasting:
		return "pasting"
	default:
		return "empty"
	}
}

// Clipboard holds at most one cut item between cut and paste
type Clipboard struct {
	mu    sync.Mutex
	state ClipboardState
	item  domain.ClipboardItem
}

// NewClipboard returns an empty clipboard
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Cut captures item, replacing anything already held
func (c *Clipboard) Cut(item domain.ClipboardItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.item = item
	c.state = ClipboardCut
}

// BeginPaste moves Cut to Pasting. It fails when nothing is held.
func (c *Clipboard) BeginPaste() (domain.ClipboardItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == ClipboardEmpty {
		return domain.ClipboardItem{}, ErrNothingCut
	}
	c.state = ClipboardPasting
	return c.item, nil
}

// Complete empties the clipboard after a successful move
func (c *Clipboard) Complete() {
	c.Clear()
}

// Reopen returns a failed paste to Cut so the item can be pasted again
func (c *Clipboard) Reopen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == ClipboardPasting {
		c.state = ClipboardCut
	}
}

// Cancel abandons the paste and empties the clipboard
func (c *Clipboard) Cancel() {
	c.Clear()
}

// Clear empties the clipboard
func (c *Clipboard) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.item = domain.ClipboardItem{}
	c.state = ClipboardEmpty
}

// State returns the current phase
func (c *Clipboard) State() ClipboardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Item returns the held item, if any
func (c *Clipboard) Item() (domain.ClipboardItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.item, c.state != ClipboardEmpty
}
