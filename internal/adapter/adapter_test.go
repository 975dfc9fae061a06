package adapter

import (
	"errors"
	"testing"

	"github.com/open-sunsama/shell/internal/action"
	"github.com/open-sunsama/shell/internal/domain"
)

const (
	testDocsURL   = "https://github.com/open-sunsama/open-sunsama"
	testIssuesURL = "https://github.com/open-sunsama/open-sunsama/issues"
)

func TestTrayAdapterItems(t *testing.T) {
	a, err := NewTrayAdapter(DefaultTrayBindings())
	if err != nil {
		t.Fatalf("NewTrayAdapter() error = %v", err)
	}

	tests := []struct {
		id     string
		want   action.Action
		wantOK bool
	}{
		{"new_task", action.QuickAddTask(), true},
		{"today", action.Navigate("/app"), true},
		{"calendar", action.Navigate("/app/calendar"), true},
		{"show_hide", action.ToggleWindow(), true},
		{"settings", action.Navigate("/app/settings"), true},
		{"quit", action.Quit(), true},

		// Menu-only ids are not part of the tray namespace
		{"reload", action.Action{}, false},
		{"today_view", action.Action{}, false},
		{"", action.Action{}, false},
		{"future_item", action.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := a.MapItem(tt.id)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MapItem(%q) = (%v, %v), want (%v, %v)", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTrayAdapterIcon(t *testing.T) {
	a, err := NewTrayAdapter(DefaultTrayBindings())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		ev     TrayIconEvent
		wantOK bool
	}{
		{"left up", TrayIconEvent{Button: MouseLeft, State: ButtonUp}, true},
		{"left down", TrayIconEvent{Button: MouseLeft, State: ButtonDown}, false},
		{"right up", TrayIconEvent{Button: MouseRight, State: ButtonUp}, false},
		{"middle up", TrayIconEvent{Button: MouseMiddle, State: ButtonUp}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.MapIcon(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("MapIcon() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != action.ToggleWindow() {
				t.Errorf("MapIcon() = %v, want toggle-window", got)
			}
		})
	}
}

func TestMenuAdapter(t *testing.T) {
	a, err := NewMenuAdapter(DefaultMenuBindings(testDocsURL, testIssuesURL))
	if err != nil {
		t.Fatalf("NewMenuAdapter() error = %v", err)
	}

	tests := []struct {
		id     string
		want   action.Action
		wantOK bool
	}{
		{"settings", action.Navigate("/app/settings"), true},
		{"new_task", action.QuickAddTask(), true},
		{"today_view", action.Navigate("/app"), true},
		{"calendar_view", action.Navigate("/app/calendar"), true},
		{"reload", action.ReloadContent(), true},
		{"documentation", action.OpenExternal(testDocsURL), true},
		{"report_issue", action.OpenExternal(testIssuesURL), true},

		{"show_hide", action.Action{}, false},
		{"quit", action.Quit(), true},
		{"zoom", action.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := a.Map(tt.id)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Map(%q) = (%v, %v), want (%v, %v)", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestShortcutAdapter(t *testing.T) {
	a, err := NewShortcutAdapter(DefaultShortcutBindings())
	if err != nil {
		t.Fatalf("NewShortcutAdapter() error = %v", err)
	}

	superShift := ModSuper | ModShift
	tests := []struct {
		name   string
		ev     ShortcutEvent
		want   action.Action
		wantOK bool
	}{
		{"toggle", ShortcutEvent{Combo{superShift, "O"}, KeyPressed}, action.ToggleWindow(), true},
		{"quick add", ShortcutEvent{Combo{superShift, "T"}, KeyPressed}, action.QuickAddTask(), true},
		{"focus", ShortcutEvent{Combo{superShift, "F"}, KeyPressed}, action.StartFocusMode(), true},

		{"release ignored", ShortcutEvent{Combo{superShift, "O"}, KeyReleased}, action.Action{}, false},
		{"missing modifier", ShortcutEvent{Combo{ModSuper, "O"}, KeyPressed}, action.Action{}, false},
		{"unknown key", ShortcutEvent{Combo{superShift, "Q"}, KeyPressed}, action.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.Map(tt.ev)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Map(%v) = (%v, %v), want (%v, %v)", tt.ev, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if n := len(a.Bindings()); n != 3 {
		t.Errorf("Bindings() has %d entries, want 3", n)
	}
}

func TestDefaultShortcutsHaveNoCollisions(t *testing.T) {
	if err := ValidateShortcutBindings(DefaultShortcutBindings()); err != nil {
		t.Fatalf("default shortcuts collide: %v", err)
	}
}

func TestDuplicateShortcutRejected(t *testing.T) {
	bindings := append(DefaultShortcutBindings(), ShortcutBinding{
		Combo:  Combo{Mods: ModShift | ModSuper, Key: "O"},
		Action: action.QuickAddTask(),
	})

	_, err := NewShortcutAdapter(bindings)
	if !errors.Is(err, domain.ErrDuplicateBinding) {
		t.Fatalf("NewShortcutAdapter() error = %v, want ErrDuplicateBinding", err)
	}
}

func TestDuplicateItemRejected(t *testing.T) {
	bindings := append(DefaultTrayBindings(), ItemBinding{ID: TrayQuit, Action: action.ToggleWindow()})
	if _, err := NewTrayAdapter(bindings); !errors.Is(err, domain.ErrDuplicateBinding) {
		t.Fatalf("NewTrayAdapter() error = %v, want ErrDuplicateBinding", err)
	}

	if err := ValidateItemBindings("menu", []ItemBinding{{ID: "", Action: action.Quit()}}); err == nil {
		t.Error("empty id should be rejected")
	}
	if err := ValidateItemBindings("menu", []ItemBinding{{ID: "x"}}); err == nil {
		t.Error("missing action should be rejected")
	}
}

// Cross-namespace id reuse is allowed: "settings" and "new_task" exist in both.
func TestTrayAndMenuNamespacesIndependent(t *testing.T) {
	tray, err := NewTrayAdapter(DefaultTrayBindings())
	if err != nil {
		t.Fatal(err)
	}
	menu, err := NewMenuAdapter(DefaultMenuBindings(testDocsURL, testIssuesURL))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"settings", "new_task"} {
		if _, ok := tray.MapItem(id); !ok {
			t.Errorf("tray missing %q", id)
		}
		if _, ok := menu.Map(id); !ok {
			t.Errorf("menu missing %q", id)
		}
	}
}

func TestLayoutsReferenceMappedIDs(t *testing.T) {
	tray, _ := NewTrayAdapter(DefaultTrayBindings())
	for _, e := range TrayLayout() {
		if e.Separator {
			continue
		}
		if _, ok := tray.MapItem(e.ID); !ok {
			t.Errorf("tray layout entry %q has no binding", e.ID)
		}
	}

	menu, _ := NewMenuAdapter(DefaultMenuBindings(testDocsURL, testIssuesURL))
	for _, sub := range MenuLayout() {
		for _, e := range sub.Entries {
			if e.Separator {
				continue
			}
			if _, ok := menu.Map(e.ID); !ok {
				t.Errorf("menu layout entry %q in %s has no binding", e.ID, sub.Label)
			}
		}
	}
}

func TestComboString(t *testing.T) {
	if got := ComboToggleWindow.String(); got != "Super+Shift+O" {
		t.Errorf("String() = %q, want Super+Shift+O", got)
	}
	if got := (Combo{Key: "F1"}).String(); got != "F1" {
		t.Errorf("String() = %q, want F1", got)
	}
}
