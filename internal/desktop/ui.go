package desktop

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/open-sunsama/shell/internal/domain"
)

// WailsUI emits events to the webview frontend.
type WailsUI struct {
	rt *Runtime
}

func NewWailsUI(rt *Runtime) *WailsUI {
	return &WailsUI{rt: rt}
}

func (u *WailsUI) Emit(event string, payload any) error {
	return u.rt.call(domain.ErrNoUI, func(ctx context.Context) {
		if payload == nil {
			runtime.EventsEmit(ctx, event)
			return
		}
		runtime.EventsEmit(ctx, event, payload)
	})
}

func (u *WailsUI) Reload() error {
	return u.rt.call(domain.ErrNoUI, func(ctx context.Context) {
		runtime.WindowReloadApp(ctx)
	})
}

// BrowserOpener opens links in the system browser.
type BrowserOpener struct {
	rt *Runtime
}

func NewBrowserOpener(rt *Runtime) *BrowserOpener {
	return &BrowserOpener{rt: rt}
}

func (o *BrowserOpener) OpenURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "mailto" {
		return fmt.Errorf("refusing to open %q: unsupported scheme", raw)
	}
	return o.rt.call(domain.ErrNoWindow, func(ctx context.Context) {
		runtime.BrowserOpenURL(ctx, u.String())
	})
}
