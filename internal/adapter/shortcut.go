package adapter

import (
	"fmt"
	"strings"

	"github.com/open-sunsama/shell/internal/action"
	"github.com/open-sunsama/shell/internal/domain"
)

// Modifier is a bit set of keyboard modifiers
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifier) String() string {
	var parts []string
	if m&ModSuper != 0 {
		parts = append(parts, "Super")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Key is a single key code, an uppercase letter for the built-in bindings
type Key string

// Combo is a physical key combination
type Combo struct {
	Mods Modifier
	Key  Key
}

func (c Combo) String() string {
	if c.Mods == 0 {
		return string(c.Key)
	}
	return c.Mods.String() + "+" + string(c.Key)
}

// KeyState is the transition a shortcut event reports
type KeyState int

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// ShortcutEvent is delivered by the global-shortcut backend. The backend is
// expected to debounce auto-repeat so each press arrives once.
type ShortcutEvent struct {
	Combo Combo
	State KeyState
}

// ShortcutBinding maps a key combination to an action
type ShortcutBinding struct {
	Combo  Combo
	Action action.Action
}

// Built-in global shortcuts
var (
	ComboToggleWindow   = Combo{Mods: ModSuper | ModShift, Key: "O"}
	ComboQuickAddTask   = Combo{Mods: ModSuper | ModShift, Key: "T"}
	ComboStartFocusMode = Combo{Mods: ModSuper | ModShift, Key: "F"}
)

// DefaultShortcutBindings returns the fixed startup binding set.
func DefaultShortcutBindings() []ShortcutBinding {
	return []ShortcutBinding{
		{Combo: ComboToggleWindow, Action: action.ToggleWindow()},
		{Combo: ComboQuickAddTask, Action: action.QuickAddTask()},
		{Combo: ComboStartFocusMode, Action: action.StartFocusMode()},
	}
}

// ValidateShortcutBindings fails if two bindings share a key combination or
// a binding carries no action.
func ValidateShortcutBindings(bindings []ShortcutBinding) error {
	seen := make(map[Combo]struct{}, len(bindings))
	for _, b := range bindings {
		if b.Combo.Key == "" {
			return fmt.Errorf("shortcut %q has no key", b.Combo)
		}
		if !b.Action.IsValid() {
			return fmt.Errorf("shortcut %s has no action", b.Combo)
		}
		if _, ok := seen[b.Combo]; ok {
			return fmt.Errorf("%w: shortcut %s", domain.ErrDuplicateBinding, b.Combo)
		}
		seen[b.Combo] = struct{}{}
	}
	return nil
}

// ShortcutAdapter maps global-shortcut events to actions
type ShortcutAdapter struct {
	bindings []ShortcutBinding
	table    map[Combo]action.Action
}

// NewShortcutAdapter validates the bindings and builds the lookup table.
func NewShortcutAdapter(bindings []ShortcutBinding) (*ShortcutAdapter, error) {
	if err := ValidateShortcutBindings(bindings); err != nil {
		return nil, err
	}
	table := make(map[Combo]action.Action, len(bindings))
	for _, b := range bindings {
		table[b.Combo] = b.Action
	}
	return &ShortcutAdapter{
		bindings: append([]ShortcutBinding(nil), bindings...),
		table:    table,
	}, nil
}

// Map returns the bound action for a press. Releases and unknown combos
// yield nothing.
func (a *ShortcutAdapter) Map(ev ShortcutEvent) (action.Action, bool) {
	if ev.State != KeyPressed {
		return action.Action{}, false
	}
	act, ok := a.table[ev.Combo]
	return act, ok
}

// Bindings returns a copy of the registered bindings in declaration order.
func (a *ShortcutAdapter) Bindings() []ShortcutBinding {
	return append([]ShortcutBinding(nil), a.bindings...)
}
