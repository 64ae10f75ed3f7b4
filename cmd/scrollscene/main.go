package main

import (
	"flag"
	"os"

	"scrollscene/internal/config"
	"scrollscene/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	pagePath := flag.String("page", "", "Page document to render (name or path, default: built-in page)")
	configPath := flag.String("config", "", "JSON file overriding the preset")
	preset := flag.String("preset", config.DefaultPreset, "Tuning preset (snappy, classic)")
	endpoint := flag.String("endpoint", "", "Contact form endpoint, overrides the page and config")
	globalPointer := flag.Bool("global-pointer", false, "Follow the X11 pointer even when the window is unfocused")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging and the debug overlay")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	raylibInfo := flag.Bool("raylib-info", false, "Show raylib info messages")
	flag.Parse()

	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
		utils.ShowDebugUI = true
	}
	if *logLevel != "" {
		level, err := utils.ParseLogLevel(*logLevel)
		if err != nil {
			utils.Error("%v", err)
			os.Exit(1)
		}
		utils.CurrentLevel = level
	}
	utils.ShowRaylibInfo = *raylibInfo

	utils.Info("--- ScrollScene Start ---")

	cfg, err := config.Load(*preset, resolveConfigPath(*configPath))
	if err != nil {
		utils.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *endpoint != "" {
		cfg.Contact.Endpoint = *endpoint
	}
	utils.Debug("Effective configuration: %s", cfg)

	doc, err := loadPage(*pagePath)
	if err != nil {
		utils.Error("Failed to load page: %v", err)
		os.Exit(1)
	}
	utils.Info("Page loaded: %q, %d elements, %.0fpx tall", doc.Title, len(doc.Elements), doc.Height())

	if *globalPointer {
		if err := utils.InitX11(); err != nil {
			utils.Warn("X11 pointer unavailable, using the window pointer: %v", err)
			*globalPointer = false
		} else {
			defer utils.CloseX11()
		}
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)

	title := cfg.Window.Title
	if doc.Title != "" {
		title = doc.Title
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), title)
	defer rl.CloseWindow()

	window, err := NewWindow(cfg, doc, *globalPointer)
	if err != nil {
		utils.Error("Failed to set up scene: %v", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer window.Close()

	utils.Info("Starting frame loop...")
	window.Run()
}
