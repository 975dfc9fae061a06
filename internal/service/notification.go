package service

import (
	"fmt"
	"log"

	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/platform"
)

// NotificationService exposes notifications, haptics and platform
// information to the frontend.
type NotificationService struct {
	caps platform.Capabilities
}

func NewNotificationService(caps platform.Capabilities) *NotificationService {
	return &NotificationService{caps: caps}
}

// ShowNotification shows a native notification. The action type id is only
// meaningful on mobile targets and is otherwise ignored.
func (s *NotificationService) ShowNotification(opts domain.NotificationOptions) error {
	if s.caps.Notifications == nil {
		return domain.ErrUnsupported
	}
	body := ""
	if opts.Body != nil {
		body = *opts.Body
	}
	if opts.ActionTypeID != nil {
		log.Printf("[Notify] Action type %q ignored on %s", *opts.ActionTypeID, platform.Name())
	}
	if err := s.caps.Notifications.Show(opts.Title, body); err != nil {
		return fmt.Errorf("notification %q: %w", opts.Title, err)
	}
	return nil
}

// RequestPermission reports whether notifications are allowed. Only an
// explicit grant counts as true.
func (s *NotificationService) RequestPermission() (bool, error) {
	if s.caps.Notifications == nil {
		return false, domain.ErrUnsupported
	}
	state, err := s.caps.Notifications.RequestPermission()
	if err != nil {
		return false, fmt.Errorf("failed to request notification permission: %w", err)
	}
	return state == domain.PermissionGranted, nil
}

// SetBadgeCount is not implemented on any target.
func (s *NotificationService) SetBadgeCount(count int) error {
	return domain.ErrUnsupported
}

// TriggerHaptic plays the named feedback style.
func (s *NotificationService) TriggerHaptic(kind string) error {
	k, err := domain.ParseHapticKind(kind)
	if err != nil {
		return err
	}
	if s.caps.Haptics == nil {
		return domain.ErrUnsupported
	}
	return s.caps.Haptics.Trigger(k)
}

func (s *NotificationService) IsDesktop() bool { return !platform.IsMobile() }

func (s *NotificationService) IsMobile() bool { return platform.IsMobile() }

func (s *NotificationService) Platform() string { return platform.Name() }
