package platform

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/open-sunsama/shell/internal/domain"
)

// BeeepNotifier shows desktop notifications through the OS notification
// service. Desktop platforms do not gate notifications behind a prompt, so
// permission is always granted.
type BeeepNotifier struct{}

func NewBeeepNotifier(appName string) *BeeepNotifier {
	if appName != "" {
		beeep.AppName = appName
	}
	return &BeeepNotifier{}
}

func (n *BeeepNotifier) Show(title, body string) error {
	if err := beeep.Notify(title, body, ""); err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}
	return nil
}

func (n *BeeepNotifier) RequestPermission() (domain.PermissionState, error) {
	return domain.PermissionGranted, nil
}
