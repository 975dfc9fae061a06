package service

import (
	"errors"
	"testing"

	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/platform"
)

type fakeNotifier struct {
	title, body string
	showErr     error
	state       domain.PermissionState
	permErr     error
}

func (f *fakeNotifier) Show(title, body string) error {
	f.title, f.body = title, body
	return f.showErr
}

func (f *fakeNotifier) RequestPermission() (domain.PermissionState, error) {
	return f.state, f.permErr
}

type fakeHaptics struct{ kinds []domain.HapticKind }

func (f *fakeHaptics) Trigger(kind domain.HapticKind) error {
	f.kinds = append(f.kinds, kind)
	return nil
}

func strPtr(s string) *string { return &s }

func TestShowNotification(t *testing.T) {
	n := &fakeNotifier{}
	svc := NewNotificationService(platform.Capabilities{Notifications: n})

	if err := svc.ShowNotification(domain.NotificationOptions{Title: "Focus", Body: strPtr("25 minutes")}); err != nil {
		t.Fatalf("ShowNotification: %v", err)
	}
	if n.title != "Focus" || n.body != "25 minutes" {
		t.Errorf("shown %q/%q", n.title, n.body)
	}

	if err := svc.ShowNotification(domain.NotificationOptions{Title: "Bare", ActionTypeID: strPtr("reply")}); err != nil {
		t.Fatalf("ShowNotification: %v", err)
	}
	if n.body != "" {
		t.Errorf("body = %q, want empty", n.body)
	}

	n.showErr = errors.New("dbus down")
	if err := svc.ShowNotification(domain.NotificationOptions{Title: "x"}); err == nil {
		t.Error("expected error")
	}
}

func TestRequestPermission(t *testing.T) {
	tests := []struct {
		name  string
		state domain.PermissionState
		want  bool
	}{
		{"granted", domain.PermissionGranted, true},
		{"denied", domain.PermissionDenied, false},
		{"undetermined", domain.PermissionUndetermined, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNotificationService(platform.Capabilities{Notifications: &fakeNotifier{state: tt.state}})
			got, err := svc.RequestPermission()
			if err != nil || got != tt.want {
				t.Errorf("RequestPermission() = %v, %v, want %v", got, err, tt.want)
			}
		})
	}
}

func TestNotificationsUnsupported(t *testing.T) {
	svc := NewNotificationService(platform.Capabilities{})
	if err := svc.ShowNotification(domain.NotificationOptions{Title: "x"}); !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("ShowNotification err = %v", err)
	}
	if _, err := svc.RequestPermission(); !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("RequestPermission err = %v", err)
	}
}

func TestSetBadgeCountUnsupported(t *testing.T) {
	svc := NewNotificationService(platform.Capabilities{Notifications: &fakeNotifier{}})
	for _, n := range []int{0, 3, -1} {
		if err := svc.SetBadgeCount(n); !errors.Is(err, domain.ErrUnsupported) {
			t.Errorf("SetBadgeCount(%d) err = %v", n, err)
		}
	}
}

func TestTriggerHaptic(t *testing.T) {
	h := &fakeHaptics{}
	svc := NewNotificationService(platform.Capabilities{Haptics: h})

	for _, kind := range []string{"light", "Medium", " heavy ", "selection", "success", "warning", "error"} {
		if err := svc.TriggerHaptic(kind); err != nil {
			t.Errorf("TriggerHaptic(%q): %v", kind, err)
		}
	}
	if len(h.kinds) != 7 || h.kinds[1] != domain.HapticMedium {
		t.Errorf("kinds = %v", h.kinds)
	}
	if err := svc.TriggerHaptic("rumble"); err == nil {
		t.Error("unknown kind accepted")
	}

	desktop := NewNotificationService(platform.Capabilities{})
	if err := desktop.TriggerHaptic("light"); !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("desktop TriggerHaptic err = %v", err)
	}
}

func TestPlatformInfo(t *testing.T) {
	svc := NewNotificationService(platform.Capabilities{})
	if svc.IsDesktop() == svc.IsMobile() {
		t.Error("IsDesktop and IsMobile agree")
	}
	if svc.Platform() != platform.Name() {
		t.Errorf("Platform() = %q", svc.Platform())
	}
}
