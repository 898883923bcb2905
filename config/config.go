// wlaninfo/config/config.go
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the optional defaults from wlaninfo's config file.
// Flags always win over these.
type Config struct {
	Privacy       bool   `toml:"privacy"`
	Compact       bool   `toml:"compact"`
	WatchInterval string `toml:"watch_interval"`
	GeoAPIKey     string `toml:"geo_api_key"`
}

// DefaultPath is the conventional config location, resolved against
// XDG_CONFIG_HOME.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "wlaninfo", "config.toml")
}

// Load reads the TOML config at path. A missing file is not an error;
// the zero Config is returned.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
