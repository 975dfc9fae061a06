package desktop

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/open-sunsama/shell/internal/adapter"
	"github.com/open-sunsama/shell/internal/coordinator"
	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/platform"
	"github.com/open-sunsama/shell/internal/service"
)

// AppConfig wires the desktop application.
type AppConfig struct {
	Runtime       *Runtime
	Coordinator   *coordinator.Coordinator
	Preferences   *service.PreferenceService
	Notifications *service.NotificationService

	// Shortcuts may be nil when global shortcuts are unavailable
	Shortcuts        platform.ShortcutRegistrar
	ShortcutBindings []adapter.ShortcutBinding
	Tray             *TrayManager
}

// App is bound to the frontend. Its exported methods are the commands the
// web UI can invoke; the lifecycle hooks are passed to wails.Run.
type App struct {
	cfg      AppConfig
	done     chan struct{}
	stopOnce sync.Once
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg, done: make(chan struct{})}
}

// Startup is called when the app starts
func (a *App) Startup(ctx context.Context) {
	a.cfg.Runtime.Attach(ctx)
	log.Printf("[App] Started on %s", platform.Name())

	go func() {
		if err := a.cfg.Preferences.Reconcile(); err != nil {
			log.Printf("[Settings] Startup reconcile failed: %v", err)
		}
	}()

	if a.cfg.Tray != nil {
		go a.cfg.Tray.Start()
	}
	a.startShortcuts()
}

func (a *App) startShortcuts() {
	if a.cfg.Shortcuts == nil || len(a.cfg.ShortcutBindings) == 0 {
		return
	}
	events := make(chan adapter.ShortcutEvent, 16)
	go func() {
		for {
			select {
			case <-a.done:
				return
			case ev := <-events:
				a.cfg.Coordinator.HandleShortcut(ev)
			}
		}
	}()
	if err := a.cfg.Shortcuts.Register(a.cfg.ShortcutBindings, events); err != nil {
		log.Printf("[Shortcut] Some shortcuts were not registered: %v", err)
	}
}

// BeforeClose hides the window instead of closing when minimize-to-tray is
// on. Returning true cancels the close.
func (a *App) BeforeClose(ctx context.Context) bool {
	if !a.cfg.Preferences.GetSettings().MinimizeToTray {
		return false
	}
	log.Println("[App] Window close requested - hiding to tray")
	a.cfg.Coordinator.Tracker().Hide()
	return true
}

// Shutdown is called when the app is shutting down
func (a *App) Shutdown(ctx context.Context) {
	a.stopOnce.Do(func() {
		close(a.done)
		if a.cfg.Shortcuts != nil {
			if err := a.cfg.Shortcuts.Close(); err != nil {
				log.Printf("[Shortcut] Unregister failed: %v", err)
			}
		}
		if a.cfg.Tray != nil {
			a.cfg.Tray.Stop()
		}
		a.cfg.Coordinator.Wait()
		a.cfg.Runtime.Detach()
		log.Println("[App] Shutdown complete")
	})
}

// ===== Bound commands =====

func (a *App) ShowNotification(opts domain.NotificationOptions) error {
	return a.cfg.Notifications.ShowNotification(opts)
}

func (a *App) RequestNotificationPermission() (bool, error) {
	return a.cfg.Notifications.RequestPermission()
}

func (a *App) SetBadgeCount(count int) error {
	return a.cfg.Notifications.SetBadgeCount(count)
}

func (a *App) TriggerHaptic(kind string) error {
	err := a.cfg.Notifications.TriggerHaptic(kind)
	if errors.Is(err, domain.ErrUnsupported) {
		// 桌面端没有触感反馈
		return nil
	}
	return err
}

func (a *App) GetAutoLaunch() (bool, error) {
	return a.cfg.Preferences.GetAutoLaunch()
}

func (a *App) SetAutoLaunch(enabled bool) error {
	return a.cfg.Preferences.SetAutoLaunch(enabled)
}

func (a *App) GetSettings() domain.Preference {
	return a.cfg.Preferences.GetSettings()
}

func (a *App) SetSettings(pref domain.Preference) error {
	return a.cfg.Preferences.SetSettings(pref)
}

func (a *App) IsDesktop() bool {
	return a.cfg.Notifications.IsDesktop()
}

func (a *App) IsMobile() bool {
	return a.cfg.Notifications.IsMobile()
}

func (a *App) GetPlatform() string {
	return a.cfg.Notifications.Platform()
}
