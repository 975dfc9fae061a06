package platform

import (
	"sync"

	"github.com/open-sunsama/shell/internal/adapter"
)

// repeatFilter collapses key auto-repeat so each physical press is reported
// once. X11 without detectable auto-repeat sends Release(t) Press(t) pairs
// while a key is held; such a press carries the same timestamp as the
// release before it. A zero timestamp disables that check.
type repeatFilter struct {
	mu          sync.Mutex
	down        map[adapter.Combo]bool
	lastRelease map[adapter.Combo]uint32
}

func newRepeatFilter() *repeatFilter {
	return &repeatFilter{
		down:        make(map[adapter.Combo]bool),
		lastRelease: make(map[adapter.Combo]uint32),
	}
}

// press reports whether a press should be delivered.
func (f *repeatFilter) press(c adapter.Combo, t uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down[c] {
		return false
	}
	f.down[c] = true
	if t != 0 && f.lastRelease[c] == t {
		return false
	}
	return true
}

// release records the release time and reports whether the combo was down.
// Under X11 auto-repeat a held key still yields one release per repeat;
// releases map to no action, so those are passed on.
func (f *repeatFilter) release(c adapter.Combo, t uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRelease[c] = t
	if !f.down[c] {
		return false
	}
	f.down[c] = false
	return true
}
