package adapter

import (
	"fmt"

	"github.com/open-sunsama/shell/internal/action"
	"github.com/open-sunsama/shell/internal/domain"
)

// Item ids. Tray and menu are separate namespaces, so the same id may appear
// in both with different meaning.
const (
	TrayNewTask  = "new_task"
	TrayToday    = "today"
	TrayCalendar = "calendar"
	TrayShowHide = "show_hide"
	TraySettings = "settings"
	TrayQuit     = "quit"

	MenuSettings      = "settings"
	MenuNewTask       = "new_task"
	MenuTodayView     = "today_view"
	MenuCalendarView  = "calendar_view"
	MenuReload        = "reload"
	MenuDocumentation = "documentation"
	MenuReportIssue   = "report_issue"
	MenuQuit          = "quit"
)

// ItemBinding maps an opaque menu or tray item id to an action
type ItemBinding struct {
	ID     string
	Action action.Action
}

// ValidateItemBindings fails on an empty or repeated id within one namespace.
func ValidateItemBindings(namespace string, bindings []ItemBinding) error {
	seen := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		if b.ID == "" {
			return fmt.Errorf("%s item with empty id", namespace)
		}
		if !b.Action.IsValid() {
			return fmt.Errorf("%s item %q has no action", namespace, b.ID)
		}
		if _, ok := seen[b.ID]; ok {
			return fmt.Errorf("%w: %s item %q", domain.ErrDuplicateBinding, namespace, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

type itemTable map[string]action.Action

func newItemTable(namespace string, bindings []ItemBinding) (itemTable, error) {
	if err := ValidateItemBindings(namespace, bindings); err != nil {
		return nil, err
	}
	t := make(itemTable, len(bindings))
	for _, b := range bindings {
		t[b.ID] = b.Action
	}
	return t, nil
}

func (t itemTable) lookup(id string) (action.Action, bool) {
	a, ok := t[id]
	return a, ok
}

// MouseButton identifies the tray icon button
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ButtonState is the button transition
type ButtonState int

const (
	ButtonDown ButtonState = iota
	ButtonUp
)

// TrayIconEvent is a click on the tray icon itself (not its menu)
type TrayIconEvent struct {
	Button MouseButton
	State  ButtonState
}

// DefaultTrayBindings returns the tray menu table.
func DefaultTrayBindings() []ItemBinding {
	return []ItemBinding{
		{ID: TrayNewTask, Action: action.QuickAddTask()},
		{ID: TrayToday, Action: action.Navigate(action.RouteToday)},
		{ID: TrayCalendar, Action: action.Navigate(action.RouteCalendar)},
		{ID: TrayShowHide, Action: action.ToggleWindow()},
		{ID: TraySettings, Action: action.Navigate(action.RouteSettings)},
		{ID: TrayQuit, Action: action.Quit()},
	}
}

// TrayAdapter maps tray menu selections and icon clicks to actions
type TrayAdapter struct {
	items itemTable
}

func NewTrayAdapter(bindings []ItemBinding) (*TrayAdapter, error) {
	items, err := newItemTable("tray", bindings)
	if err != nil {
		return nil, err
	}
	return &TrayAdapter{items: items}, nil
}

// MapItem maps a tray menu item id.
func (a *TrayAdapter) MapItem(id string) (action.Action, bool) {
	return a.items.lookup(id)
}

// MapIcon toggles the window on a left-button release and ignores the rest.
// Used through Coordinator.HandleTrayIcon by tray backends that report icon
// clicks.
func (a *TrayAdapter) MapIcon(ev TrayIconEvent) (action.Action, bool) {
	if ev.Button == MouseLeft && ev.State == ButtonUp {
		return action.ToggleWindow(), true
	}
	return action.Action{}, false
}

// DefaultMenuBindings returns the application menu table. The help entries
// open the given URLs in the system browser.
func DefaultMenuBindings(docsURL, issuesURL string) []ItemBinding {
	return []ItemBinding{
		{ID: MenuSettings, Action: action.Navigate(action.RouteSettings)},
		{ID: MenuNewTask, Action: action.QuickAddTask()},
		{ID: MenuTodayView, Action: action.Navigate(action.RouteToday)},
		{ID: MenuCalendarView, Action: action.Navigate(action.RouteCalendar)},
		{ID: MenuReload, Action: action.ReloadContent()},
		{ID: MenuDocumentation, Action: action.OpenExternal(docsURL)},
		{ID: MenuReportIssue, Action: action.OpenExternal(issuesURL)},
		{ID: MenuQuit, Action: action.Quit()},
	}
}

// MenuAdapter maps application menu selections to actions
type MenuAdapter struct {
	items itemTable
}

func NewMenuAdapter(bindings []ItemBinding) (*MenuAdapter, error) {
	items, err := newItemTable("menu", bindings)
	if err != nil {
		return nil, err
	}
	return &MenuAdapter{items: items}, nil
}

func (a *MenuAdapter) Map(id string) (action.Action, bool) {
	return a.items.lookup(id)
}
