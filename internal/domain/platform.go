package domain

import (
	"fmt"
	"strings"
)

// HapticKind is the closed set of feedback styles a mobile target can play
type HapticKind string

const (
	HapticLight     HapticKind = "light"
	HapticMedium    HapticKind = "medium"
	HapticHeavy     HapticKind = "heavy"
	HapticSelection HapticKind = "selection"
	HapticSuccess   HapticKind = "success"
	HapticWarning   HapticKind = "warning"
	HapticError     HapticKind = "error"
)

var hapticKinds = []HapticKind{
	HapticLight, HapticMedium, HapticHeavy, HapticSelection,
	HapticSuccess, HapticWarning, HapticError,
}

// ParseHapticKind accepts the lowercase names the frontend sends.
func ParseHapticKind(s string) (HapticKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range hapticKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown haptic type %q", s)
}

// PermissionState is the tri-state result of a notification permission request
type PermissionState int

const (
	PermissionUndetermined PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (p PermissionState) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "undetermined"
	}
}

// NotificationOptions 通知参数，由前端传入
type NotificationOptions struct {
	Title        string  `json:"title"`
	Body         *string `json:"body,omitempty"`
	ActionTypeID *string `json:"actionTypeId,omitempty"`
}

// Capability names one optional platform feature
type Capability string

const (
	CapNotifications   Capability = "notifications"
	CapHaptics         Capability = "haptics"
	CapAutoLaunch      Capability = "auto-launch"
	CapGlobalShortcuts Capability = "global-shortcuts"
	CapTray            Capability = "tray"
	CapMenu            Capability = "menu"
)
