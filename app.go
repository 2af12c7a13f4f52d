package main

import (
	"context"

	"github.com/ebob10000/deskclock/settings"
	"github.com/ebob10000/deskclock/version"
	logging "github.com/ipfs/go-log/v2"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var log = logging.Logger("app")

// App is bound to the frontend; its exported methods are the commands
// the settings panel calls.
type App struct {
	ctx   context.Context
	store *settings.Store
}

// NewApp creates a new App application struct
func NewApp(store *settings.Store) *App {
	return &App{store: store}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if path, err := a.store.Path(); err == nil {
		log.Infow("settings location", "path", path)
	}
}

// SaveSettings persists the settings panel values. A nil timezone means
// the system timezone.
func (a *App) SaveSettings(backgroundColor, textColor string, timezone *string, showSeconds bool) error {
	if err := a.store.Save(backgroundColor, textColor, timezone, showSeconds); err != nil {
		log.Errorw("save settings failed", "err", err)
		return err
	}

	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "settings_saved", settings.UserSettings{
			Theme: settings.Theme{
				BackgroundColor: backgroundColor,
				TextColor:       textColor,
			},
			Timezone:    timezone,
			ShowSeconds: showSeconds,
		})
	}
	return nil
}

// LoadSettings returns the stored settings, or defaults when nothing was saved yet
func (a *App) LoadSettings() (settings.UserSettings, error) {
	s, err := a.store.Load()
	if err != nil {
		log.Errorw("load settings failed", "err", err)
		return settings.UserSettings{}, err
	}
	return s, nil
}

// GetVersion returns the current application version
func (a *App) GetVersion() string {
	return version.Version
}
