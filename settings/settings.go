package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("settings")

// FileName is the name of the settings file inside the config directory.
const FileName = "settings.json"

var (
	ErrConfigDir     = errors.New("failed to get app config directory")
	ErrParseSettings = errors.New("failed to parse settings")
)

// Theme holds the clock colors. Values are opaque color strings.
type Theme struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

// UserSettings contains user preferences for the clock display
type UserSettings struct {
	Theme       Theme   `json:"theme"`
	Timezone    *string `json:"timezone,omitempty"`
	ShowSeconds bool    `json:"show_seconds"`
}

// DefaultTheme returns the built-in color theme
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: "#1E3E62",
		TextColor:       "#FF6500",
	}
}

// DefaultSettings returns the settings used when no settings file exists
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:       DefaultTheme(),
		Timezone:    nil,
		ShowSeconds: true,
	}
}

// DirResolver returns the per-user directory the settings file lives in.
type DirResolver func() (string, error)

// AppConfigDir resolves <user config dir>/<identifier>.
func AppConfigDir(identifier string) DirResolver {
	return func() (string, error) {
		if identifier == "" {
			return "", errors.New("empty app identifier")
		}
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, identifier), nil
	}
}

// Store reads and writes settings.json in the directory returned by its resolver.
// It keeps no state between calls.
type Store struct {
	dir DirResolver
}

func NewStore(dir DirResolver) *Store {
	return &Store{dir: dir}
}

func (s *Store) configDir() (string, error) {
	if s.dir == nil {
		return "", ErrConfigDir
	}
	dir, err := s.dir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDir, err)
	}
	if dir == "" {
		return "", ErrConfigDir
	}
	return dir, nil
}

// Path returns the path to the settings file
func (s *Store) Path() (string, error) {
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
