package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// Config holds the whisperctl-wide defaults a config file can set.
type Config struct {
	// Retentions is the default archive list for "whisperctl create" when
	// --retentions is not given, e.g. "1s:1d,1m:7d,10m:1y".
	Retentions string `json:"retentions,omitempty"`

	// XFilesFactor is the default propagation threshold for "create". A
	// pointer so a config file can explicitly set it to 0, distinct from
	// leaving it unset.
	XFilesFactor *float64 `json:"x_files_factor,omitempty"` //nolint:tagliatelle

	// AggregationMethod is the default aggregation method name for
	// "create" (one of average, sum, last, max, min).
	AggregationMethod string `json:"aggregation_method,omitempty"` //nolint:tagliatelle
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".whisperctl.json"

// DefaultConfig returns whisperctl's built-in defaults, matching the
// library's own [whisper.DefaultCreateOptions].
func DefaultConfig() Config {
	defaultXFilesFactor := 0.5

	return Config{
		Retentions:        "",
		XFilesFactor:      &defaultXFilesFactor,
		AggregationMethod: "average",
	}
}

// LoadConfig resolves configuration with the following precedence
// (highest wins): defaults, global user config, project config,
// an explicit --config path, then CLI overrides applied by the caller.
func LoadConfig(workDir, explicitConfigPath string) (Config, error) {
	cfg := DefaultConfig()

	if globalCfg, ok, err := loadConfigFile(globalConfigPath()); err != nil {
		return Config{}, err
	} else if ok {
		cfg = mergeConfig(cfg, globalCfg)
	}

	projectPath := filepath.Join(workDir, ConfigFileName)
	if projectCfg, ok, err := loadConfigFile(projectPath); err != nil {
		return Config{}, err
	} else if ok {
		cfg = mergeConfig(cfg, projectCfg)
	}

	if explicitConfigPath != "" {
		explicitCfg, ok, err := loadConfigFile(explicitConfigPath)
		if err != nil {
			return Config{}, err
		}

		if !ok {
			return Config{}, fmt.Errorf("config file not found: %s", explicitConfigPath)
		}

		cfg = mergeConfig(cfg, explicitCfg)
	}

	return cfg, nil
}

// globalConfigPath returns $XDG_CONFIG_HOME/whisperctl/config.json, or
// ~/.config/whisperctl/config.json if XDG_CONFIG_HOME is unset.
func globalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "whisperctl", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "whisperctl", "config.json")
}

// loadConfigFile reads and JSONC-decodes path, tolerating comments and
// trailing commas via hujson. ok is false, with no error, if path does not
// exist.
func loadConfigFile(path string) (cfg Config, ok bool, err error) {
	if path == "" {
		return Config{}, false, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("reading %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, false, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, true, nil
}

// mergeConfig overlays the non-zero fields of override onto base.
func mergeConfig(base, override Config) Config {
	if override.Retentions != "" {
		base.Retentions = override.Retentions
	}

	if override.XFilesFactor != nil {
		base.XFilesFactor = override.XFilesFactor
	}

	if override.AggregationMethod != "" {
		base.AggregationMethod = strings.ToLower(override.AggregationMethod)
	}

	return base
}
