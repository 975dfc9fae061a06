// Package window owns the shell's belief about main-window visibility.
package window

import (
	"log"
	"sync"
)

// State is the tracker's visibility belief
type State int

const (
	Unknown State = iota
	Visible
	Hidden
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Handle is the platform window. Every call may fail; the tracker never lets
// a failure escape.
type Handle interface {
	IsVisible() (bool, error)
	Show() error
	Hide() error
	Focus() error
}

// Tracker serialises all visibility changes to one window handle.
//
// The cached state is for diagnostics only: Toggle, ShowAndFocus and Hide
// always ask the OS first, since the user can close or minimise the window
// without going through the shell.
type Tracker struct {
	mu     sync.Mutex
	handle Handle
	state  State
}

// NewTracker starts in Unknown.
func NewTracker(h Handle) *Tracker {
	return &Tracker{handle: h, state: Unknown}
}

// State returns the last observed state without querying the OS.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Query asks the OS for the current visibility. A failed query yields
// Unknown; callers must not read it as Hidden.
func (t *Tracker) Query() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.queryLocked()
}

// ShowAndFocus makes the window visible and raises it. When the window is
// already visible only the focus assertion is issued.
func (t *Tracker) ShowAndFocus() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.showLocked(t.queryLocked())
}

// Hide hides the window unless it is already hidden.
func (t *Tracker) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hideLocked(t.queryLocked())
}

// Toggle re-queries, then hides a visible window or shows anything else.
// The query and the mutation happen under one lock.
func (t *Tracker) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.queryLocked()
	if current == Visible {
		t.hideLocked(current)
		return
	}
	t.showLocked(current)
}

func (t *Tracker) queryLocked() State {
	visible, err := t.handle.IsVisible()
	if err != nil {
		log.Printf("[Window] Visibility query failed: %v", err)
		t.state = Unknown
		return Unknown
	}
	if visible {
		t.state = Visible
	} else {
		t.state = Hidden
	}
	return t.state
}

func (t *Tracker) showLocked(current State) {
	if current != Visible {
		if err := t.handle.Show(); err != nil {
			log.Printf("[Window] Show failed: %v", err)
			return
		}
		t.state = Visible
	}
	if err := t.handle.Focus(); err != nil {
		log.Printf("[Window] Focus failed: %v", err)
	}
}

func (t *Tracker) hideLocked(current State) {
	if current == Hidden {
		return
	}
	if err := t.handle.Hide(); err != nil {
		log.Printf("[Window] Hide failed: %v", err)
		return
	}
	t.state = Hidden
}
