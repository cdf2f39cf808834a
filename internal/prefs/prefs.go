// Package prefs handles memento user preferences persistence.
// Preferences are stored in ~/.config/memento/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences that change at runtime.
type Prefs struct {
	Theme  string `toml:"theme"`
	Volume int    `toml:"volume"`
}

const (
	defaultPrefsPath = "~/.config/memento/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultVolume    = 75
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used before anything is saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Volume: defaultVolume}
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	var raw struct {
		Theme  string `toml:"theme"`
		Volume *int   `toml:"volume"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	if t := strings.TrimSpace(raw.Theme); t != "" {
		prefs.Theme = t
	}
	if raw.Volume != nil {
		prefs.Volume = min(max(*raw.Volume, 0), 100)
	}

	return prefs, nil
}

// Exists reports whether a preferences file has been written at path.
func Exists(path string) bool {
	resolved, err := resolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(resolved)
	return err == nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
