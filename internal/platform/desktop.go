package platform

import "runtime"

// DesktopOptions configures the desktop capability set.
type DesktopOptions struct {
	AppName     string
	DisplayName string
	// Exec is the command line registered for login start
	Exec []string
}

// Desktop returns the desktop capability set: notifications, auto-launch,
// global shortcuts and the application menu everywhere, plus the tray on
// Windows. Desktops have no haptics.
func Desktop(opts DesktopOptions) Capabilities {
	return Capabilities{
		Notifications:   NewBeeepNotifier(opts.DisplayName),
		AutoLaunch:      NewAutostart(opts.AppName, opts.DisplayName, opts.Exec),
		GlobalShortcuts: NewShortcutRegistrar(),
		Tray:            runtime.GOOS == "windows",
		Menu:            true,
	}
}

// Mobile returns the mobile capability set. Notifications and haptics are
// supplied by the host binding layer; there is no tray, menu, global
// shortcut or auto-launch.
func Mobile(notifier Notifier, haptics Haptics) Capabilities {
	return Capabilities{
		Notifications: notifier,
		Haptics:       haptics,
	}
}
