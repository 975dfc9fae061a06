package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/open-sunsama/shell/internal/domain"
)

type memStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	persisted  map[string][]byte
	persistErr error
	loads      int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, persisted: map[string][]byte{}}
}

func (m *memStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memStore) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *memStore) Persist() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.persistErr != nil {
		return m.persistErr
	}
	for k, v := range m.data {
		m.persisted[k] = v
	}
	return nil
}

func (m *memStore) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	return nil
}

type fakeAutoLaunch struct {
	mu        sync.Mutex
	enabled   bool
	queryErr  error
	changeErr error
	changes   int
	block     chan struct{}
}

func (f *fakeAutoLaunch) IsEnabled() (bool, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled, f.queryErr
}

func (f *fakeAutoLaunch) set(v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes++
	if f.changeErr != nil {
		return f.changeErr
	}
	f.enabled = v
	return nil
}

func (f *fakeAutoLaunch) Enable() error  { return f.set(true) }
func (f *fakeAutoLaunch) Disable() error { return f.set(false) }

func TestGetSettingsDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   domain.Preference
	}{
		{"missing", "", domain.Preference{}},
		{"corrupt", "{not json", domain.Preference{}},
		{"not an object", `[1,2,3]`, domain.Preference{}},
		{"complete", `{"theme":"dark","auto_launch":true,"minimize_to_tray":true,"global_shortcuts_enabled":true}`,
			domain.Preference{Theme: "dark", AutoLaunch: true, MinimizeToTray: true, GlobalShortcutsEnabled: true}},
		{"partial", `{"theme":"light"}`, domain.Preference{Theme: "light"}},
		{"wrong type field", `{"theme":"dark","auto_launch":"yes","minimize_to_tray":true}`,
			domain.Preference{Theme: "dark", MinimizeToTray: true}},
		{"unknown fields", `{"theme":"dark","font":"mono"}`, domain.Preference{Theme: "dark"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			if tt.stored != "" {
				store.Set(domain.SettingsKey, []byte(tt.stored))
			}
			svc := NewPreferenceService(store, &fakeAutoLaunch{})
			if got := svc.GetSettings(); got != tt.want {
				t.Errorf("GetSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetSettingsRoundTrip(t *testing.T) {
	store := newMemStore()
	al := &fakeAutoLaunch{}
	svc := NewPreferenceService(store, al)

	pref := domain.Preference{Theme: "dark", AutoLaunch: true, MinimizeToTray: true}
	if err := svc.SetSettings(pref); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	if got := svc.GetSettings(); got != pref {
		t.Errorf("GetSettings() = %+v, want %+v", got, pref)
	}
	if _, ok := store.persisted[domain.SettingsKey]; !ok {
		t.Error("settings not persisted")
	}
	if !al.enabled {
		t.Error("auto-launch not registered")
	}

	// unchanged auto-launch does not touch the OS
	pref.Theme = "light"
	if err := svc.SetSettings(pref); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	if al.changes != 1 {
		t.Errorf("changes = %d, want 1", al.changes)
	}
}

func TestSetSettingsPersistFailure(t *testing.T) {
	store := newMemStore()
	store.persistErr = errors.New("disk full")
	al := &fakeAutoLaunch{}
	svc := NewPreferenceService(store, al)

	err := svc.SetSettings(domain.Preference{AutoLaunch: true})
	if err == nil {
		t.Fatal("expected error")
	}
	if al.changes != 0 {
		t.Error("OS state changed after persistence failed")
	}
}

func TestSetSettingsOSFailureKeepsPersisted(t *testing.T) {
	store := newMemStore()
	al := &fakeAutoLaunch{changeErr: errors.New("denied")}
	svc := NewPreferenceService(store, al)

	if err := svc.SetSettings(domain.Preference{AutoLaunch: true}); err == nil {
		t.Fatal("expected error")
	}
	if !svc.GetSettings().AutoLaunch {
		t.Error("persisted preference rolled back")
	}
	if _, ok := store.persisted[domain.SettingsKey]; !ok {
		t.Error("settings not persisted")
	}
}

func TestSetSettingsQueryFailureAppliesAnyway(t *testing.T) {
	al := &fakeAutoLaunch{queryErr: errors.New("registry locked")}
	svc := NewPreferenceService(newMemStore(), al)

	if err := svc.SetSettings(domain.Preference{AutoLaunch: true}); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	if al.changes != 1 || !al.enabled {
		t.Errorf("changes = %d enabled = %v", al.changes, al.enabled)
	}
}

// OS registration fails: the stored preference keeps its old value
func TestSetAutoLaunchFailure(t *testing.T) {
	store := newMemStore()
	al := &fakeAutoLaunch{changeErr: errors.New("permission denied")}
	svc := NewPreferenceService(store, al)

	if err := svc.SetAutoLaunch(true); err == nil {
		t.Fatal("expected error")
	}
	if svc.GetSettings().AutoLaunch {
		t.Error("preference updated despite OS failure")
	}
	if len(store.persisted) != 0 {
		t.Error("store persisted despite OS failure")
	}
	enabled, err := svc.GetAutoLaunch()
	if err != nil || enabled {
		t.Errorf("GetAutoLaunch() = %v, %v", enabled, err)
	}
}

func TestSetAutoLaunchSuccess(t *testing.T) {
	store := newMemStore()
	store.Set(domain.SettingsKey, []byte(`{"theme":"dark"}`))
	al := &fakeAutoLaunch{}
	svc := NewPreferenceService(store, al)

	if err := svc.SetAutoLaunch(true); err != nil {
		t.Fatalf("SetAutoLaunch: %v", err)
	}
	got := svc.GetSettings()
	if !got.AutoLaunch || got.Theme != "dark" {
		t.Errorf("GetSettings() = %+v", got)
	}
	if err := svc.SetAutoLaunch(false); err != nil {
		t.Fatalf("SetAutoLaunch: %v", err)
	}
	if svc.GetSettings().AutoLaunch || al.enabled {
		t.Error("auto-launch still on")
	}
}

func TestAutoLaunchUnsupported(t *testing.T) {
	svc := NewPreferenceService(newMemStore(), nil)
	if _, err := svc.GetAutoLaunch(); !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("GetAutoLaunch err = %v", err)
	}
	if err := svc.SetAutoLaunch(true); !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("SetAutoLaunch err = %v", err)
	}
	if err := svc.SetSettings(domain.Preference{AutoLaunch: true}); err != nil {
		t.Errorf("SetSettings err = %v", err)
	}
	if err := svc.Reconcile(); err != nil {
		t.Errorf("Reconcile err = %v", err)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		osEnabled bool
		want      bool
		changes   int
	}{
		{"enable drifted", `{"auto_launch":true}`, false, true, 1},
		{"disable drifted", `{"auto_launch":false}`, true, false, 1},
		{"in sync", `{"auto_launch":true}`, true, true, 0},
		{"corrupt means off", `garbage`, true, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.Set(domain.SettingsKey, []byte(tt.stored))
			al := &fakeAutoLaunch{enabled: tt.osEnabled}
			svc := NewPreferenceService(store, al)

			if err := svc.Reconcile(); err != nil {
				t.Fatalf("Reconcile: %v", err)
			}
			if al.enabled != tt.want || al.changes != tt.changes {
				t.Errorf("enabled = %v changes = %d, want %v %d", al.enabled, al.changes, tt.want, tt.changes)
			}
			if store.loads != 1 {
				t.Errorf("loads = %d, want 1", store.loads)
			}
		})
	}
}

func TestReconcileCoalesces(t *testing.T) {
	store := newMemStore()
	store.Set(domain.SettingsKey, []byte(`{"auto_launch":true}`))
	al := &fakeAutoLaunch{block: make(chan struct{})}
	svc := NewPreferenceService(store, al)

	var started, done sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < 5; i++ {
		started.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			started.Done()
			if err := svc.Reconcile(); err != nil {
				failures.Add(1)
			}
		}()
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(al.block)
	done.Wait()

	if failures.Load() != 0 {
		t.Errorf("%d reconcile calls failed", failures.Load())
	}
	if !al.enabled {
		t.Error("auto-launch not enabled")
	}
	if al.changes < 1 || al.changes > 5 {
		t.Errorf("changes = %d", al.changes)
	}
}
