//go:build !linux && !darwin && !windows

package platform

import "github.com/open-sunsama/shell/internal/adapter"

type noRegistrar struct{}

func NewShortcutRegistrar() ShortcutRegistrar { return noRegistrar{} }

func (noRegistrar) Register([]adapter.ShortcutBinding, chan<- adapter.ShortcutEvent) error {
	return nil
}

func (noRegistrar) Close() error { return nil }
