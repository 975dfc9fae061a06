//go:build !windows

package desktop

import "github.com/open-sunsama/shell/internal/adapter"

// TrayManager stub for non-Windows platforms
type TrayManager struct{}

// NewTrayManager creates a no-op tray manager
func NewTrayManager(layout []adapter.Entry, dispatch func(id string)) *TrayManager {
	return &TrayManager{}
}

// Start is a no-op on non-Windows platforms
func (t *TrayManager) Start() {}

func (t *TrayManager) Stop() {}
