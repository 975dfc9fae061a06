package platform

import (
	"testing"

	"github.com/open-sunsama/shell/internal/domain"
)

type stubHaptics struct{ last domain.HapticKind }

func (s *stubHaptics) Trigger(kind domain.HapticKind) error {
	s.last = kind
	return nil
}

type stubNotifier struct{}

func (stubNotifier) Show(string, string) error { return nil }
func (stubNotifier) RequestPermission() (domain.PermissionState, error) {
	return domain.PermissionDenied, nil
}

func TestCapabilitiesHas(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want map[domain.Capability]bool
	}{
		{
			name: "empty",
			caps: Capabilities{},
			want: map[domain.Capability]bool{
				domain.CapNotifications: false, domain.CapHaptics: false,
				domain.CapAutoLaunch: false, domain.CapGlobalShortcuts: false,
				domain.CapTray: false, domain.CapMenu: false,
			},
		},
		{
			name: "mobile",
			caps: Mobile(stubNotifier{}, &stubHaptics{}),
			want: map[domain.Capability]bool{
				domain.CapNotifications: true, domain.CapHaptics: true,
				domain.CapAutoLaunch: false, domain.CapGlobalShortcuts: false,
				domain.CapTray: false, domain.CapMenu: false,
			},
		},
		{
			name: "tray and menu only",
			caps: Capabilities{Tray: true, Menu: true},
			want: map[domain.Capability]bool{
				domain.CapTray: true, domain.CapMenu: true, domain.CapHaptics: false,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for c, want := range tt.want {
				if got := tt.caps.Has(c); got != want {
					t.Errorf("Has(%s) = %v, want %v", c, got, want)
				}
			}
		})
	}
}

func TestCapabilitiesUnknown(t *testing.T) {
	caps := Capabilities{Tray: true, Menu: true}
	if caps.Has(domain.Capability("teleport")) {
		t.Error("unknown capability reported as present")
	}
}

func TestCapabilitiesList(t *testing.T) {
	got := Mobile(stubNotifier{}, &stubHaptics{}).List()
	if len(got) != 2 || got[0] != domain.CapNotifications || got[1] != domain.CapHaptics {
		t.Errorf("List() = %v", got)
	}
}

func TestName(t *testing.T) {
	if Name() == "" {
		t.Error("empty platform name")
	}
	if IsMobile() {
		t.Error("test host reported as mobile")
	}
}
