package desktop

import (
	"fmt"
	"log"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/open-sunsama/shell/internal/adapter"
)

// isDarwin is replaced in tests
var isDarwin = goruntime.GOOS == "darwin"

// BuildAppMenu builds the Wails application menu from the declarative
// layout. Clicking an item calls dispatch with the item id. The app menu and
// the edit and window roles are only added on macOS.
func BuildAppMenu(layout []adapter.Submenu, dispatch func(id string)) (*menu.Menu, error) {
	appMenu := menu.NewMenu()
	for _, sub := range layout {
		switch sub.Role {
		case "":
		case adapter.RoleAppMenu:
			// 自建应用菜单：系统的 Hide/Hide Others 会绕过窗口状态跟踪
			if !isDarwin {
				continue
			}
		default:
			if item := roleItem(sub.Role); item != nil {
				appMenu.Append(item)
			}
			continue
		}
		if err := addEntries(appMenu.AddSubmenu(sub.Label), sub.Entries, dispatch); err != nil {
			return nil, err
		}
	}
	return appMenu, nil
}

func addEntries(submenu *menu.Menu, entries []adapter.Entry, dispatch func(id string)) error {
	for _, entry := range entries {
		if entry.Separator {
			submenu.AddSeparator()
			continue
		}
		accel, err := parseAccelerator(entry.Accelerator)
		if err != nil {
			return fmt.Errorf("menu item %q: %w", entry.ID, err)
		}
		id := entry.ID
		submenu.AddText(entry.Label, accel, func(_ *menu.CallbackData) {
			log.Printf("[Menu] %s clicked", id)
			dispatch(id)
		})
	}
	return nil
}

func roleItem(role string) *menu.MenuItem {
	if !isDarwin {
		return nil
	}
	switch role {
	case adapter.RoleEditMenu:
		return menu.EditMenu()
	case adapter.RoleWindowMenu:
		return menu.WindowMenu()
	}
	return nil
}

func parseAccelerator(s string) (*keys.Accelerator, error) {
	if s == "" {
		return nil, nil
	}
	accel, err := keys.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid accelerator %q: %w", s, err)
	}
	return accel, nil
}
