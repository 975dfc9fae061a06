//go:build windows

package desktop

import (
	_ "embed"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/open-sunsama/shell/internal/adapter"
)

//go:embed icon.ico
var iconData []byte

// TrayManager 管理系统托盘
// Item clicks are forwarded in arrival order to a single dispatch goroutine.
type TrayManager struct {
	layout   []adapter.Entry
	dispatch func(id string)
	clicks   chan string
	stopOnce sync.Once
}

// NewTrayManager 创建托盘管理器
func NewTrayManager(layout []adapter.Entry, dispatch func(id string)) *TrayManager {
	return &TrayManager{
		layout:   layout,
		dispatch: dispatch,
		clicks:   make(chan string, 16),
	}
}

// Start 启动托盘，阻塞直到 Stop
func (t *TrayManager) Start() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayManager) Stop() {
	t.stopOnce.Do(systray.Quit)
}

func (t *TrayManager) onReady() {
	log.Println("[Tray] Initializing system tray...")

	systray.SetIcon(iconData)
	systray.SetTitle("Open Sunsama")
	systray.SetTooltip("Open Sunsama")

	for _, entry := range t.layout {
		if entry.Separator {
			systray.AddSeparator()
			continue
		}
		item := systray.AddMenuItem(entry.Label, entry.Tooltip)
		go t.forward(entry.ID, item)
	}

	go t.run()
}

func (t *TrayManager) onExit() {
	log.Println("[Tray] System tray exited")
}

func (t *TrayManager) forward(id string, item *systray.MenuItem) {
	for range item.ClickedCh {
		t.clicks <- id
	}
}

func (t *TrayManager) run() {
	for id := range t.clicks {
		log.Printf("[Tray] %s clicked", id)
		t.dispatch(id)
	}
}
