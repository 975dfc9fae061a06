//go:build darwin

package platform

import (
	"golang.design/x/hotkey"

	"github.com/open-sunsama/shell/internal/adapter"
)

func nativeMods(m adapter.Modifier) []hotkey.Modifier {
	var mods []hotkey.Modifier
	if m&adapter.ModSuper != 0 {
		mods = append(mods, hotkey.ModCmd)
	}
	if m&adapter.ModCtrl != 0 {
		mods = append(mods, hotkey.ModCtrl)
	}
	if m&adapter.ModAlt != 0 {
		mods = append(mods, hotkey.ModOption)
	}
	if m&adapter.ModShift != 0 {
		mods = append(mods, hotkey.ModShift)
	}
	return mods
}
