// Package settings persists launcher-wide options as a TOML file under
// the user config directory. All fields are pointers so we can
// distinguish "not set" from zero values; command-line flags always win
// over settings-file values.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Settings struct {
	GameDir     *string `toml:"game-dir,omitempty"`
	RuntimeDir  *string `toml:"runtime-dir,omitempty"`
	ManifestURL *string `toml:"manifest-url,omitempty"`
	Platform    *string `toml:"platform,omitempty"`
	Concurrency *int    `toml:"concurrency,omitempty"`
	Verbose     *bool   `toml:"verbose,omitempty"`
	LogFile     *string `toml:"log-file,omitempty"`
}

// Dir returns the settings directory, using XDG_CONFIG_HOME with a
// fallback to ~/.config.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "catclient")
}

// Path is the settings file location.
func Path() string {
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads the settings file. A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			return &s, nil
		}
		return nil, fmt.Errorf("loading settings %q: %w", path, err)
	}
	return &s, nil
}

// Save writes the settings file, creating its directory if needed.
func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return nil
}
