package service

import (
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"

	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/platform"
	"github.com/open-sunsama/shell/internal/repository"
)

// reloader is implemented by stores that can re-read their backing storage.
type reloader interface {
	Load() error
}

// PreferenceService reads and writes the user preference object and keeps
// the OS auto-launch registration in line with it.
// Both the Wails bindings and shellctl call this service.
type PreferenceService struct {
	store      repository.SettingsStore
	autoLaunch platform.AutoLaunch
	group      singleflight.Group
}

// NewPreferenceService creates a preference service. autoLaunch may be nil on
// targets without login-start registration.
func NewPreferenceService(store repository.SettingsStore, autoLaunch platform.AutoLaunch) *PreferenceService {
	return &PreferenceService{
		store:      store,
		autoLaunch: autoLaunch,
	}
}

// GetSettings returns the persisted preference. Missing or unreadable data
// yields defaults; a field of the wrong type falls back to its own default
// without affecting the others.
func (s *PreferenceService) GetSettings() domain.Preference {
	pref := domain.DefaultPreference()
	raw, ok := s.store.Get(domain.SettingsKey)
	if !ok || len(raw) == 0 {
		return pref
	}

	var fields map[string]any
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		log.Printf("[Settings] Stored settings unreadable, using defaults: %v", err)
		return pref
	}

	if v, ok := fields["theme"].(string); ok {
		pref.Theme = v
	}
	if v, ok := fields["auto_launch"].(bool); ok {
		pref.AutoLaunch = v
	}
	if v, ok := fields["minimize_to_tray"].(bool); ok {
		pref.MinimizeToTray = v
	}
	if v, ok := fields["global_shortcuts_enabled"].(bool); ok {
		pref.GlobalShortcutsEnabled = v
	}
	return pref
}

// SetSettings persists the full preference object, then registers or
// unregisters auto-launch if the OS state differs. Persistence is not rolled
// back when the OS call fails; the next Reconcile retries it.
func (s *PreferenceService) SetSettings(pref domain.Preference) error {
	if err := s.save(pref); err != nil {
		return err
	}
	if err := s.applyAutoLaunch(pref.AutoLaunch); err != nil {
		return fmt.Errorf("settings saved but auto-launch not updated: %w", err)
	}
	return nil
}

// GetAutoLaunch reports the OS registration, not the stored preference.
func (s *PreferenceService) GetAutoLaunch() (bool, error) {
	if s.autoLaunch == nil {
		return false, domain.ErrUnsupported
	}
	enabled, err := s.autoLaunch.IsEnabled()
	if err != nil {
		return false, fmt.Errorf("failed to query auto-launch: %w", err)
	}
	return enabled, nil
}

// SetAutoLaunch changes the OS registration first. Only when that succeeds is
// the stored preference updated to match.
func (s *PreferenceService) SetAutoLaunch(enabled bool) error {
	if s.autoLaunch == nil {
		return domain.ErrUnsupported
	}
	var err error
	if enabled {
		err = s.autoLaunch.Enable()
	} else {
		err = s.autoLaunch.Disable()
	}
	if err != nil {
		return err
	}

	pref := s.GetSettings()
	if pref.AutoLaunch == enabled {
		return nil
	}
	pref.AutoLaunch = enabled
	return s.save(pref)
}

// Reconcile brings the OS auto-launch registration in line with the stored
// preference. Concurrent callers share one run.
func (s *PreferenceService) Reconcile() error {
	_, err, shared := s.group.Do("reconcile", func() (any, error) {
		if r, ok := s.store.(reloader); ok {
			if err := r.Load(); err != nil {
				log.Printf("[Settings] Reload before reconcile failed: %v", err)
			}
		}
		return nil, s.applyAutoLaunch(s.GetSettings().AutoLaunch)
	})
	if shared {
		log.Printf("[Settings] Reconcile coalesced with a running call")
	}
	return err
}

func (s *PreferenceService) save(pref domain.Preference) error {
	raw, err := sonic.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	s.store.Set(domain.SettingsKey, raw)
	if err := s.store.Persist(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *PreferenceService) applyAutoLaunch(want bool) error {
	if s.autoLaunch == nil {
		return nil
	}
	current, err := s.autoLaunch.IsEnabled()
	if err != nil {
		// unknown OS state: apply the requested state
		log.Printf("[AutoLaunch] Query failed, applying preference anyway: %v", err)
	} else if current == want {
		return nil
	}
	if want {
		return s.autoLaunch.Enable()
	}
	return s.autoLaunch.Disable()
}
