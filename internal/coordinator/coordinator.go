// Package coordinator routes semantic actions from every input source to the
// window tracker, the webview, or process exit.
package coordinator

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/open-sunsama/shell/internal/action"
	"github.com/open-sunsama/shell/internal/adapter"
	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/window"
)

// UI is the attached webview. Both calls are fire-and-forget; domain.ErrNoUI
// means nothing is attached and is not reported.
type UI interface {
	Emit(event string, payload any) error
	Reload() error
}

// URLOpener opens a URL in the system browser
type URLOpener interface {
	OpenURL(url string) error
}

// Config wires a Coordinator. Exit defaults to os.Exit.
type Config struct {
	Tracker  *window.Tracker
	UI       UI
	Opener   URLOpener
	Exit     func(code int)
	Tray     *adapter.TrayAdapter
	Menu     *adapter.MenuAdapter
	Shortcut *adapter.ShortcutAdapter
}

// Coordinator is the single dispatch point for shell actions
type Coordinator struct {
	tracker  *window.Tracker
	ui       UI
	opener   URLOpener
	exit     func(code int)
	tray     *adapter.TrayAdapter
	menu     *adapter.MenuAdapter
	shortcut *adapter.ShortcutAdapter

	// detached work such as opening URLs; results are discarded
	tasks errgroup.Group
}

// New creates a coordinator. Tracker is required.
func New(cfg Config) (*Coordinator, error) {
	if cfg.Tracker == nil {
		return nil, errors.New("coordinator: tracker is required")
	}
	c := &Coordinator{
		tracker:  cfg.Tracker,
		ui:       cfg.UI,
		opener:   cfg.Opener,
		exit:     cfg.Exit,
		tray:     cfg.Tray,
		menu:     cfg.Menu,
		shortcut: cfg.Shortcut,
	}
	if c.exit == nil {
		c.exit = os.Exit
	}
	return c, nil
}

// Handle dispatches one action. It never panics and never returns an error:
// every platform failure is logged here.
func (c *Coordinator) Handle(a action.Action) {
	id := uuid.NewString()[:8]
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Coordinator] %s %s panicked: %v", id, a, r)
		}
	}()

	log.Printf("[Coordinator] %s dispatch %s", id, a)

	switch a.Kind() {
	case action.KindToggleWindow:
		c.tracker.Toggle()

	case action.KindShowAndFocus:
		c.tracker.ShowAndFocus()

	case action.KindNavigate, action.KindQuickAddTask, action.KindStartFocusMode:
		if a.RequiresWindow() {
			c.tracker.ShowAndFocus()
		}
		name, payload, _ := a.Event()
		c.emit(id, name, payload)

	case action.KindReloadContent:
		if c.ui == nil {
			return
		}
		if err := c.ui.Reload(); err != nil && !errors.Is(err, domain.ErrNoUI) {
			log.Printf("[Coordinator] %s reload failed: %v", id, err)
		}

	case action.KindOpenExternal:
		c.openDetached(id, a.URL())

	case action.KindQuit:
		log.Printf("[Coordinator] %s quitting", id)
		c.exit(0)

	default:
		log.Printf("[Coordinator] %s ignoring invalid action", id)
	}
}

func (c *Coordinator) emit(id, name string, payload any) {
	if c.ui == nil {
		return
	}
	if err := c.ui.Emit(name, payload); err != nil && !errors.Is(err, domain.ErrNoUI) {
		log.Printf("[Coordinator] %s emit %q failed: %v", id, name, err)
	}
}

func (c *Coordinator) openDetached(id, url string) {
	if c.opener == nil {
		log.Printf("[Coordinator] %s no URL opener, dropping %s", id, url)
		return
	}
	c.tasks.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Coordinator] %s open %s panicked: %v", id, url, r)
			}
		}()
		if err := c.opener.OpenURL(url); err != nil {
			log.Printf("[Coordinator] %s open %s failed: %v", id, url, err)
		}
		return nil
	})
}

// Wait blocks until all detached work has finished.
func (c *Coordinator) Wait() {
	_ = c.tasks.Wait()
}

// HandleTrayItem maps and dispatches a tray menu click.
func (c *Coordinator) HandleTrayItem(id string) {
	if c.tray == nil {
		return
	}
	if a, ok := c.tray.MapItem(id); ok {
		c.Handle(a)
		return
	}
	log.Printf("[Tray] Ignoring unknown item %q", id)
}

// HandleTrayIcon maps and dispatches a click on the tray icon. The systray
// backend in use reports no icon clicks, so nothing calls this yet; it is the
// entry point for a tray backend that does.
func (c *Coordinator) HandleTrayIcon(ev adapter.TrayIconEvent) {
	if c.tray == nil {
		return
	}
	if a, ok := c.tray.MapIcon(ev); ok {
		c.Handle(a)
	}
}

// HandleMenu maps and dispatches an application menu selection.
func (c *Coordinator) HandleMenu(id string) {
	if c.menu == nil {
		return
	}
	if a, ok := c.menu.Map(id); ok {
		c.Handle(a)
		return
	}
	log.Printf("[Menu] Ignoring unknown item %q", id)
}

// HandleShortcut maps and dispatches a global shortcut event.
func (c *Coordinator) HandleShortcut(ev adapter.ShortcutEvent) {
	if c.shortcut == nil {
		return
	}
	if a, ok := c.shortcut.Map(ev); ok {
		c.Handle(a)
	}
}

// Tracker exposes the window tracker for lifecycle hooks.
func (c *Coordinator) Tracker() *window.Tracker {
	return c.tracker
}

// String is used in startup logs.
func (c *Coordinator) String() string {
	return fmt.Sprintf("coordinator(tray=%v, menu=%v, shortcuts=%v)", c.tray != nil, c.menu != nil, c.shortcut != nil)
}
