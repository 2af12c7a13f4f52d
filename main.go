package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/ebob10000/deskclock/settings"
	"github.com/ebob10000/deskclock/version"
	golog "github.com/ipfs/go-log/v2"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

// appIdentifier names the per-user config directory.
const appIdentifier = "com.ebob10000.deskclock"

func main() {
	golog.SetupLogging(golog.Config{
		Format: golog.ColorizedOutput,
		Stderr: true,
		Level:  golog.LevelInfo,
	})

	app := NewApp(settings.NewStore(settings.AppConfigDir(appIdentifier)))

	err := wails.Run(&options.App{
		Title:     "Desk Clock " + version.Version,
		Width:     480,
		Height:    320,
		MinWidth:  320,
		MinHeight: 200,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 30, G: 62, B: 98, A: 255},
		LogLevel:         logger.WARNING,
		OnStartup:        app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
