package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ebob10000/deskclock/settings"
	"github.com/ebob10000/deskclock/version"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := filepath.Join(t.TempDir(), appIdentifier)
	return NewApp(settings.NewStore(func() (string, error) { return dir, nil }))
}

func TestApp_LoadSettingsDefaults(t *testing.T) {
	app := newTestApp(t)

	s, err := app.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.Theme != settings.DefaultTheme() || s.Timezone != nil || !s.ShowSeconds {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestApp_SaveThenLoad(t *testing.T) {
	app := newTestApp(t)
	tz := "America/New_York"

	if err := app.SaveSettings("#101010", "#EFEFEF", &tz, false); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	s, err := app.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.Theme.BackgroundColor != "#101010" || s.Theme.TextColor != "#EFEFEF" {
		t.Errorf("Theme mismatch: %+v", s.Theme)
	}
	if s.Timezone == nil || *s.Timezone != tz {
		t.Errorf("Timezone mismatch: %v", s.Timezone)
	}
	if s.ShowSeconds {
		t.Errorf("ShowSeconds should be false")
	}
}

func TestApp_ErrorsPropagate(t *testing.T) {
	app := NewApp(settings.NewStore(func() (string, error) { return "", errors.New("unavailable") }))

	if err := app.SaveSettings("#000000", "#FFFFFF", nil, true); !errors.Is(err, settings.ErrConfigDir) {
		t.Errorf("SaveSettings(): expected ErrConfigDir, got %v", err)
	}
	if _, err := app.LoadSettings(); !errors.Is(err, settings.ErrConfigDir) {
		t.Errorf("LoadSettings(): expected ErrConfigDir, got %v", err)
	}
}

func TestApp_GetVersion(t *testing.T) {
	if got := newTestApp(t).GetVersion(); got != version.Version {
		t.Errorf("GetVersion() = %q, want %q", got, version.Version)
	}
}
