package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults. Command-line flags override
// whatever the file provides.
type Config struct {
	ConfDir     string `json:"conf_dir"`
	WgPath      string `json:"wg_path"`
	WgQuickPath string `json:"wg_quick_path"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		ConfDir:     "/etc/wireguard",
		WgPath:      "wg",
		WgQuickPath: "wg-quick",
	}
}

// Path returns $XDG_CONFIG_HOME/wgtui/config.json (or ~/.config/wgtui/).
// Returns empty string if no home directory can be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "wgtui", "config.json")
}

// Load reads the config file, falling back to defaults when the file is
// absent or unreadable. Unset fields keep their defaults.
func Load() Config {
	cfg := Default()
	path := Path()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return cfg
	}
	if file.ConfDir != "" {
		cfg.ConfDir = file.ConfDir
	}
	if file.WgPath != "" {
		cfg.WgPath = file.WgPath
	}
	if file.WgQuickPath != "" {
		cfg.WgQuickPath = file.WgQuickPath
	}
	return cfg
}
