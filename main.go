package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/open-sunsama/shell/internal/adapter"
	"github.com/open-sunsama/shell/internal/bootstrap"
	"github.com/open-sunsama/shell/internal/config"
	"github.com/open-sunsama/shell/internal/coordinator"
	"github.com/open-sunsama/shell/internal/core"
	"github.com/open-sunsama/shell/internal/desktop"
	"github.com/open-sunsama/shell/internal/handler"
	"github.com/open-sunsama/shell/internal/service"
	"github.com/open-sunsama/shell/internal/version"
	"github.com/open-sunsama/shell/internal/watcher"
	"github.com/open-sunsama/shell/internal/window"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	dataDir := flag.String("data", "", "Data directory for settings and logs (default: ~/.config/open-sunsama)")
	minimized := flag.Bool("minimized", false, "Start hidden (used by auto-launch)")
	bridgeAddr := flag.String("bridge", "", "Event bridge listen address, e.g. 127.0.0.1:9870 (disabled when empty)")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		os.Exit(0)
	}

	cfg, err := config.Resolve(config.Flags{
		DataDir:    *dataDir,
		Minimized:  *minimized,
		BridgeAddr: *bridgeAddr,
	}, os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatal(err)
	}

	// Setup log output to console, log file and bridge clients
	hub := handler.NewWebSocketHub()
	logWriter, err := handler.NewLogWriter(os.Stdout, cfg.LogPath, hub)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logWriter.Close()
	log.SetOutput(logWriter)

	log.Printf("Starting %s", version.Full())
	log.Printf("Data directory: %s", cfg.DataDir)

	settings, err := bootstrap.OpenSettings(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer settings.Close()

	caps := bootstrap.DesktopCapabilities()
	log.Printf("Capabilities: %v", caps.List())
	prefs := service.NewPreferenceService(settings.Store, caps.AutoLaunch)
	notifications := service.NewNotificationService(caps)

	// Input adapters; a binding collision is a startup error
	trayAdapter, err := adapter.NewTrayAdapter(adapter.DefaultTrayBindings())
	if err != nil {
		log.Fatalf("Invalid tray bindings: %v", err)
	}
	menuAdapter, err := adapter.NewMenuAdapter(adapter.DefaultMenuBindings(cfg.DocsURL, cfg.IssuesURL))
	if err != nil {
		log.Fatalf("Invalid menu bindings: %v", err)
	}
	shortcutAdapter, err := adapter.NewShortcutAdapter(adapter.DefaultShortcutBindings())
	if err != nil {
		log.Fatalf("Invalid shortcut bindings: %v", err)
	}

	// The bridge streams logs and UI events; it only runs behind a secret
	bridgeEnabled := cfg.BridgeAddr != ""
	if bridgeEnabled && cfg.BridgeSecret == "" {
		log.Printf("Warning: event bridge disabled, %s is not set", config.EnvBridgeSecret)
		bridgeEnabled = false
	}

	rt := desktop.NewRuntime()
	win := desktop.NewWailsWindow(rt, cfg.StartMinimized)
	ui := coordinator.MultiUI{desktop.NewWailsUI(rt)}
	if bridgeEnabled {
		ui = append(ui, hub)
	}

	coord, err := coordinator.New(coordinator.Config{
		Tracker:  window.NewTracker(win),
		UI:       ui,
		Opener:   desktop.NewBrowserOpener(rt),
		Tray:     trayAdapter,
		Menu:     menuAdapter,
		Shortcut: shortcutAdapter,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Created %s", coord)

	appMenu, err := desktop.BuildAppMenu(adapter.MenuLayout(), coord.HandleMenu)
	if err != nil {
		log.Fatalf("Failed to build menu: %v", err)
	}

	var tray *desktop.TrayManager
	if caps.Tray {
		tray = desktop.NewTrayManager(adapter.TrayLayout(), coord.HandleTrayItem)
	}

	// Shortcuts are registered regardless of the stored global_shortcuts_enabled value
	app := desktop.NewApp(desktop.AppConfig{
		Runtime:          rt,
		Coordinator:      coord,
		Preferences:      prefs,
		Notifications:    notifications,
		Shortcuts:        caps.GlobalShortcuts,
		ShortcutBindings: shortcutAdapter.Bindings(),
		Tray:             tray,
	})

	var bridge *core.ManagedServer
	if bridgeEnabled {
		bridge, err = core.NewManagedServer(&core.ServerConfig{
			Addr: cfg.BridgeAddr,
			Hub:  hub,
			Auth: handler.NewAuthMiddleware(cfg.BridgeSecret),
		})
		if err != nil {
			log.Fatal(err)
		}
		if err := bridge.Start(context.Background()); err != nil {
			log.Printf("Warning: event bridge not started: %v", err)
			bridge = nil
		}
	}

	// shellctl writes to the same SQLite file; reconcile when it changes
	if cfg.WatchSettings && cfg.DSN == "" {
		w, err := watcher.New(cfg.DBPath, watcher.DefaultDelay, func() {
			if err := prefs.Reconcile(); err != nil {
				log.Printf("[Settings] Reconcile after change failed: %v", err)
			}
		})
		if err != nil {
			log.Printf("Warning: settings watcher unavailable: %v", err)
		} else if err := w.Start(); err != nil {
			log.Printf("Warning: settings watcher not started: %v", err)
		} else {
			defer w.Stop()
		}
	}

	err = wails.Run(&options.App{
		Title:       version.AppName,
		Width:       1280,
		Height:      800,
		MinWidth:    900,
		MinHeight:   600,
		StartHidden: cfg.StartMinimized,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        app.Startup,
		OnBeforeClose:    app.BeforeClose,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
		Menu: appMenu,
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarHiddenInset(),
			About: &mac.AboutInfo{
				Title:   version.AppName,
				Message: version.Info(),
			},
		},
	})

	if bridge != nil {
		_ = bridge.Stop(context.Background())
	}
	if err != nil {
		log.Fatal("Error:", err)
	}
}
