//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/open-sunsama/shell/internal/adapter"
)

// x11Registrar grabs global keys on the X11 root window. All callbacks run
// on the single xevent loop goroutine, so delivery order follows the X
// server.
type x11Registrar struct {
	mu   sync.Mutex
	xu   *xgbutil.XUtil
	done chan struct{}
}

func NewShortcutRegistrar() ShortcutRegistrar {
	return &x11Registrar{}
}

func (r *x11Registrar) Register(bindings []adapter.ShortcutBinding, events chan<- adapter.ShortcutEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.xu == nil {
		xu, err := xgbutil.NewConn()
		if err != nil {
			return fmt.Errorf("failed to connect to X server: %w", err)
		}
		keybind.Initialize(xu)
		r.xu = xu
		r.done = make(chan struct{})
		go func() {
			xevent.Main(xu)
			close(r.done)
		}()
	}

	root := r.xu.RootWin()
	filter := newRepeatFilter()
	var errs []error
	for _, b := range bindings {
		combo := b.Combo
		seq := x11KeySequence(combo)
		err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
			if !filter.press(combo, uint32(ev.Time)) {
				return
			}
			events <- adapter.ShortcutEvent{Combo: combo, State: adapter.KeyPressed}
		}).Connect(r.xu, root, seq, true)
		if err != nil {
			errs = append(errs, fmt.Errorf("register %s: %w", combo, err))
			continue
		}
		err = keybind.KeyReleaseFun(func(xu *xgbutil.XUtil, ev xevent.KeyReleaseEvent) {
			if !filter.release(combo, uint32(ev.Time)) {
				return
			}
			events <- adapter.ShortcutEvent{Combo: combo, State: adapter.KeyReleased}
		}).Connect(r.xu, root, seq, false)
		if err != nil {
			log.Printf("[Shortcut] Release handler for %s not connected: %v", combo, err)
		}
		log.Printf("[Shortcut] Registered %s", combo)
	}
	return errors.Join(errs...)
}

func (r *x11Registrar) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.xu == nil {
		return nil
	}
	xevent.Quit(r.xu)
	r.xu.Conn().Close()
	r.xu = nil
	return nil
}

// x11KeySequence renders a combo in keybind notation, e.g. "Mod4-Shift-o".
func x11KeySequence(c adapter.Combo) string {
	var parts []string
	if c.Mods&adapter.ModSuper != 0 {
		parts = append(parts, "Mod4")
	}
	if c.Mods&adapter.ModCtrl != 0 {
		parts = append(parts, "Control")
	}
	if c.Mods&adapter.ModAlt != 0 {
		parts = append(parts, "Mod1")
	}
	if c.Mods&adapter.ModShift != 0 {
		parts = append(parts, "Shift")
	}
	parts = append(parts, strings.ToLower(string(c.Key)))
	return strings.Join(parts, "-")
}
