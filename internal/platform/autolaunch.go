package platform

import (
	"fmt"
	"log"

	"github.com/emersion/go-autostart"
)

// Autostart registers login start through the OS-native mechanism
// (LaunchAgent, XDG autostart entry, or Startup shortcut).
type Autostart struct {
	app *autostart.App
}

func NewAutostart(name, displayName string, exec []string) *Autostart {
	return &Autostart{app: &autostart.App{
		Name:        name,
		DisplayName: displayName,
		Exec:        exec,
	}}
}

func (a *Autostart) IsEnabled() (bool, error) {
	return a.app.IsEnabled(), nil
}

func (a *Autostart) Enable() error {
	if err := a.app.Enable(); err != nil {
		return fmt.Errorf("failed to enable auto-launch: %w", err)
	}
	log.Printf("[AutoLaunch] Enabled for %s", a.app.Name)
	return nil
}

func (a *Autostart) Disable() error {
	if err := a.app.Disable(); err != nil {
		return fmt.Errorf("failed to disable auto-launch: %w", err)
	}
	log.Printf("[AutoLaunch] Disabled for %s", a.app.Name)
	return nil
}
