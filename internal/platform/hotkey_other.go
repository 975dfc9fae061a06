//go:build darwin || windows

package platform

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.design/x/hotkey"

	"github.com/open-sunsama/shell/internal/adapter"
)

// nativeRegistrar registers keys with the OS hotkey API. On macOS the
// registration must run on the main thread.
type nativeRegistrar struct {
	mu   sync.Mutex
	keys []*hotkey.Hotkey
	stop chan struct{}
}

func NewShortcutRegistrar() ShortcutRegistrar {
	return &nativeRegistrar{stop: make(chan struct{})}
}

func (r *nativeRegistrar) Register(bindings []adapter.ShortcutBinding, events chan<- adapter.ShortcutEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filter := newRepeatFilter()
	var errs []error
	for _, b := range bindings {
		combo := b.Combo
		key, ok := nativeKey(combo.Key)
		if !ok {
			errs = append(errs, fmt.Errorf("register %s: unsupported key %q", combo, combo.Key))
			continue
		}
		hk := hotkey.New(nativeMods(combo.Mods), key)
		if err := hk.Register(); err != nil {
			errs = append(errs, fmt.Errorf("register %s: %w", combo, err))
			continue
		}
		r.keys = append(r.keys, hk)
		go r.forward(hk, combo, filter, events)
		log.Printf("[Shortcut] Registered %s", combo)
	}
	return errors.Join(errs...)
}

// forward relays one hotkey. The OS may repeat Keydown while the combo is
// held; those are dropped until Keyup.
func (r *nativeRegistrar) forward(hk *hotkey.Hotkey, combo adapter.Combo, filter *repeatFilter, events chan<- adapter.ShortcutEvent) {
	for {
		select {
		case <-r.stop:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			if !filter.press(combo, 0) {
				continue
			}
			events <- adapter.ShortcutEvent{Combo: combo, State: adapter.KeyPressed}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
			if !filter.release(combo, 0) {
				continue
			}
			events <- adapter.ShortcutEvent{Combo: combo, State: adapter.KeyReleased}
		}
	}
}

func (r *nativeRegistrar) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	select {
	case <-r.stop:
		return nil
	default:
		close(r.stop)
	}
	var errs []error
	for _, hk := range r.keys {
		if err := hk.Unregister(); err != nil {
			errs = append(errs, err)
		}
	}
	r.keys = nil
	return errors.Join(errs...)
}

var nativeKeys = map[string]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"SPACE": hotkey.KeySpace,
}

func nativeKey(k adapter.Key) (hotkey.Key, bool) {
	key, ok := nativeKeys[strings.ToUpper(string(k))]
	return key, ok
}
