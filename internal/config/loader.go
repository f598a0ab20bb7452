package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appDir     = "connectfour"
	configFile = "connectfour.yaml"
	localFile  = "configs/connectfour.yaml"
)

// Environment overrides applied by ApplyEnv.
const (
	EnvDB         = "CONNECTFOUR_DB"
	EnvSeed       = "CONNECTFOUR_SEED"
	EnvDifficulty = "CONNECTFOUR_DIFFICULTY"
)

// Load loads configuration and validates it. Files are decoded on top of the
// defaults so a partial file only overrides what it names.
// Search order: customPath -> $XDG_CONFIG_HOME/connectfour/connectfour.yaml -> ./configs/connectfour.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if path, err := xdg.SearchConfigFile(appDir + "/" + configFile); err == nil {
		if loaded, ok := decodeFile(path, cfg); ok {
			return loaded, loaded.Validate()
		}
	}

	if loaded, ok := decodeFile(localFile, cfg); ok {
		return loaded, loaded.Validate()
	}

	return cfg, cfg.Validate()
}

// decodeFile overlays the file at path on base. Unreadable or malformed
// files are skipped.
func decodeFile(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// ApplyEnv applies environment overrides using lookup (usually os.LookupEnv).
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDifficulty); ok && v != "" {
		preset, err := ParseDifficulty(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
		ApplyPreset(cfg, preset)
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w: seed %q is not an integer", EnvSeed, ErrInvalidConfig, v)
		}
		cfg.Advisor.Seed = seed
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.Storage.Path = v
	}
	return nil
}

// DBPath returns the configured database path, falling back to the XDG data
// directory. The parent directory is created when needed.
func (c *Config) DBPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	path, err := xdg.DataFile(appDir + "/results.db")
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return path, nil
}

// LogPath returns the TUI log file under the XDG state directory.
func LogPath() (string, error) {
	path, err := xdg.StateFile(appDir + "/connectfour.log")
	if err != nil {
		return "", fmt.Errorf("resolve state dir: %w", err)
	}
	return path, nil
}

// HostKeyPath returns the SSH host key location under the XDG data directory.
func HostKeyPath() (string, error) {
	path, err := xdg.DataFile(appDir + "/host_key")
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return path, nil
}
