//go:build windows

package platform

import (
	"golang.design/x/hotkey"

	"github.com/open-sunsama/shell/internal/adapter"
)

func nativeMods(m adapter.Modifier) []hotkey.Modifier {
	var mods []hotkey.Modifier
	if m&adapter.ModSuper != 0 {
		mods = append(mods, hotkey.ModWin)
	}
	if m&adapter.ModCtrl != 0 {
		mods = append(mods, hotkey.ModCtrl)
	}
	if m&adapter.ModAlt != 0 {
		mods = append(mods, hotkey.ModAlt)
	}
	if m&adapter.ModShift != 0 {
		mods = append(mods, hotkey.ModShift)
	}
	return mods
}
