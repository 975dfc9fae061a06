// Package platform holds the OS capability interfaces and their desktop
// implementations.
package platform

import (
	"runtime"

	"github.com/open-sunsama/shell/internal/adapter"
	"github.com/open-sunsama/shell/internal/domain"
)

// AutoLaunch registers the application to start at login.
type AutoLaunch interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}

// Notifier delivers native notifications.
type Notifier interface {
	Show(title, body string) error
	RequestPermission() (domain.PermissionState, error)
}

// Haptics plays device feedback. Calls are fire-and-forget.
type Haptics interface {
	Trigger(kind domain.HapticKind) error
}

// ShortcutRegistrar delivers global shortcut events for the given bindings.
// Each binding is registered independently; the returned error joins every
// binding that failed while the others stay active.
type ShortcutRegistrar interface {
	Register(bindings []adapter.ShortcutBinding, events chan<- adapter.ShortcutEvent) error
	Close() error
}

// Capabilities is the feature set a build target provides. A nil service
// means the capability is absent.
type Capabilities struct {
	Notifications   Notifier
	Haptics         Haptics
	AutoLaunch      AutoLaunch
	GlobalShortcuts ShortcutRegistrar
	Tray            bool
	Menu            bool
}

// Has reports whether capability c is available.
func (c Capabilities) Has(capability domain.Capability) bool {
	switch capability {
	case domain.CapNotifications:
		return c.Notifications != nil
	case domain.CapHaptics:
		return c.Haptics != nil
	case domain.CapAutoLaunch:
		return c.AutoLaunch != nil
	case domain.CapGlobalShortcuts:
		return c.GlobalShortcuts != nil
	case domain.CapTray:
		return c.Tray
	case domain.CapMenu:
		return c.Menu
	}
	return false
}

// List returns the names of all present capabilities, for startup logs.
func (c Capabilities) List() []domain.Capability {
	var out []domain.Capability
	for _, capability := range []domain.Capability{
		domain.CapNotifications, domain.CapHaptics, domain.CapAutoLaunch,
		domain.CapGlobalShortcuts, domain.CapTray, domain.CapMenu,
	} {
		if c.Has(capability) {
			out = append(out, capability)
		}
	}
	return out
}

// Name returns the target platform name reported to the frontend.
func Name() string {
	switch runtime.GOOS {
	case "darwin", "windows", "linux", "android", "ios":
		return runtime.GOOS
	default:
		return "unknown"
	}
}

// IsMobile reports whether this build targets a phone or tablet.
func IsMobile() bool {
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}
