// Package action enumerates the semantic actions the shell can trigger.
package action

import "fmt"

// Kind identifies one variant of Action
type Kind int

const (
	KindNavigate Kind = iota + 1
	KindQuickAddTask
	KindStartFocusMode
	KindToggleWindow
	KindShowAndFocus
	KindReloadContent
	KindQuit
	KindOpenExternal
)

func (k Kind) String() string {
	switch k {
	case KindNavigate:
		return "navigate"
	case KindQuickAddTask:
		return "quick-add-task"
	case KindStartFocusMode:
		return "start-focus-mode"
	case KindToggleWindow:
		return "toggle-window"
	case KindShowAndFocus:
		return "show-and-focus"
	case KindReloadContent:
		return "reload-content"
	case KindQuit:
		return "quit"
	case KindOpenExternal:
		return "open-external"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Events emitted toward the webview
const (
	EventNavigate       = "navigate"
	EventQuickAddTask   = "quick-add-task"
	EventStartFocusMode = "start-focus-mode"
)

// Routes understood by the frontend router
const (
	RouteToday    = "/app"
	RouteCalendar = "/app/calendar"
	RouteSettings = "/app/settings"
)

// Action is an immutable semantic instruction produced by an input adapter.
// Build it with the constructors below; the zero value is invalid.
type Action struct {
	kind  Kind
	route string
	url   string
}

func Navigate(route string) Action { return Action{kind: KindNavigate, route: route} }
func QuickAddTask() Action { return Action{kind: KindQuickAddTask} }
func StartFocusMode() Action { return Action{kind: KindStartFocusMode} }
func ToggleWindow() Action { return Action{kind: KindToggleWindow} }
func ShowAndFocus() Action { return Action{kind: KindShowAndFocus} }
func ReloadContent() Action { return Action{kind: KindReloadContent} }
func Quit() Action { return Action{kind: KindQuit} }
func OpenExternal(url string) Action { return Action{kind: KindOpenExternal, url: url} }

func (a Action) Kind() Kind { return a.kind }
func (a Action) Route() string { return a.route }
func (a Action) URL() string { return a.url }
func (a Action) IsValid() bool { return a.kind >= KindNavigate && a.kind <= KindOpenExternal }

// RequiresWindow reports whether the user must see the window for the action
// to make sense. StartFocusMode runs in the background and does not.
func (a Action) RequiresWindow() bool {
	return a.kind == KindNavigate || a.kind == KindQuickAddTask
}

// Event returns the UI event name and payload for actions that notify the
// webview. ok is false for actions handled entirely by the shell.
func (a Action) Event() (name string, payload any, ok bool) {
	switch a.kind {
	case KindNavigate:
		return EventNavigate, a.route, true
	case KindQuickAddTask:
		return EventQuickAddTask, nil, true
	case KindStartFocusMode:
		return EventStartFocusMode, nil, true
	default:
		return "", nil, false
	}
}

func (a Action) String() string {
	switch a.kind {
	case KindNavigate:
		return fmt.Sprintf("navigate(%s)", a.route)
	case KindOpenExternal:
		return fmt.Sprintf("open-external(%s)", a.url)
	default:
		return a.kind.String()
	}
}
