package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Save writes a new settings document, replacing any existing file.
// The config directory is created if missing.
func (s *Store) Save(backgroundColor, textColor string, timezone *string, showSeconds bool) error {
	doc := UserSettings{
		Theme: Theme{
			BackgroundColor: backgroundColor,
			TextColor:       textColor,
		},
		Timezone:    timezone,
		ShowSeconds: showSeconds,
	}

	dir, err := s.configDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, FileName)
	log.Infow("saving settings",
		"path", path,
		"background_color", backgroundColor,
		"text_color", textColor,
		"timezone", timezoneString(timezone),
		"show_seconds", showSeconds,
	)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Load reads the settings file. A missing file yields DefaultSettings.
// A file that does not match the schema is recovered field by field;
// only text that is not JSON at all is reported as ErrParseSettings.
func (s *Store) Load() (UserSettings, error) {
	path, err := s.Path()
	if err != nil {
		return UserSettings{}, err
	}
	log.Debugw("loading settings", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return UserSettings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if !utf8.Valid(data) {
		return UserSettings{}, fmt.Errorf("failed to read settings file: %w", errInvalidUTF8)
	}

	doc, err := parseStrict(data)
	if err == nil {
		return doc, nil
	}
	log.Warnw("settings file does not match schema, recovering fields", "path", path, "err", err)
	return recoverSettings(data)
}

// parseStrict requires theme, both theme colors and show_seconds with
// their exact key names. A null counts as missing. timezone may be absent
// or null. Unknown keys are ignored.
func parseStrict(data []byte) (UserSettings, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return UserSettings{}, err
	}
	if fields == nil {
		return UserSettings{}, errors.New("settings document is null")
	}

	var doc UserSettings
	var theme map[string]json.RawMessage
	if err := requireField(fields, "theme", &theme); err != nil {
		return UserSettings{}, err
	}
	if err := requireField(theme, "background_color", &doc.Theme.BackgroundColor); err != nil {
		return UserSettings{}, fmt.Errorf("theme: %w", err)
	}
	if err := requireField(theme, "text_color", &doc.Theme.TextColor); err != nil {
		return UserSettings{}, fmt.Errorf("theme: %w", err)
	}
	if err := requireField(fields, "show_seconds", &doc.ShowSeconds); err != nil {
		return UserSettings{}, err
	}
	if raw, ok := fields["timezone"]; ok {
		if err := json.Unmarshal(raw, &doc.Timezone); err != nil {
			return UserSettings{}, fmt.Errorf("field timezone: %w", err)
		}
	}
	return doc, nil
}

// requireField decodes fields[key] into v. Lookup is case-sensitive.
func requireField(fields map[string]json.RawMessage, key string, v any) error {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("missing field %s", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	return nil
}

// recoverSettings extracts what it can from any JSON value. The theme is
// taken only as a whole. show_seconds is not recovered and stays true.
func recoverSettings(data []byte) (UserSettings, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return UserSettings{}, fmt.Errorf("%w: %v", ErrParseSettings, err)
	}

	doc := DefaultSettings()
	fields, _ := value.(map[string]any)

	if theme, ok := fields["theme"].(map[string]any); ok {
		bg, bgOK := theme["background_color"].(string)
		text, textOK := theme["text_color"].(string)
		if bgOK && textOK {
			doc.Theme = Theme{BackgroundColor: bg, TextColor: text}
		}
	}
	if tz, ok := fields["timezone"].(string); ok {
		doc.Timezone = &tz
	}
	return doc, nil
}

func timezoneString(tz *string) string {
	if tz == nil {
		return "system"
	}
	return *tz
}
