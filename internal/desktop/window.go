package desktop

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/open-sunsama/shell/internal/domain"
)

// WailsWindow is the main window as seen by the window tracker.
// The Wails runtime cannot report visibility, so WailsWindow remembers the
// last show or hide and combines it with the minimised state.
type WailsWindow struct {
	rt      *Runtime
	mu      sync.Mutex
	visible bool
}

func NewWailsWindow(rt *Runtime, startHidden bool) *WailsWindow {
	return &WailsWindow{rt: rt, visible: !startHidden}
}

func (w *WailsWindow) IsVisible() (bool, error) {
	var minimised bool
	err := w.rt.call(domain.ErrNoWindow, func(ctx context.Context) {
		minimised = runtime.WindowIsMinimised(ctx)
	})
	if err != nil {
		return false, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible && !minimised, nil
}

func (w *WailsWindow) Show() error {
	err := w.rt.call(domain.ErrNoWindow, func(ctx context.Context) {
		runtime.WindowShow(ctx)
		runtime.WindowUnminimise(ctx)
	})
	if err == nil {
		w.setVisible(true)
	}
	return err
}

func (w *WailsWindow) Hide() error {
	err := w.rt.call(domain.ErrNoWindow, func(ctx context.Context) {
		runtime.WindowHide(ctx)
	})
	if err == nil {
		w.setVisible(false)
	}
	return err
}

// Focus brings the window to the front. Wails has no focus call; showing an
// already shown window raises it.
func (w *WailsWindow) Focus() error {
	return w.rt.call(domain.ErrNoWindow, func(ctx context.Context) {
		runtime.WindowUnminimise(ctx)
		runtime.WindowShow(ctx)
	})
}

func (w *WailsWindow) setVisible(v bool) {
	w.mu.Lock()
	w.visible = v
	w.mu.Unlock()
}
