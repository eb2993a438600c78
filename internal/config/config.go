// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/inkshim/inkshim/internal/issue"
	"github.com/inkshim/inkshim/pkg/cueutil"
	"github.com/inkshim/inkshim/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "inkshim"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// LegacyConfigFileExt is the extension of the legacy TOML config file.
	LegacyConfigFileExt = "toml"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "INKSHIM"
)

//go:embed config_schema.cue
var configSchema []byte

// keys lists every configuration key so environment overrides reach keys
// that have no default.
var keys = []string{
	"look_n_feel.show_status_bar",
	"look_n_feel.battery_level_to_turn_screen_off",
	"look_n_feel.dont_turn_screen_off_during_charging",
	"look_n_feel.screen_brightness_level",
	"look_n_feel.disable_button_lights",
	"look_n_feel.eink_fast_refresh",
	"look_n_feel.eink_update_interval",
	"host.brand",
	"host.model",
	"host.display",
	"host.manufacturer",
	"host.device",
	"host.increment",
	"host.profile",
	"host.sdk_version",
	"display.width",
	"display.height",
	"display.density",
	"locale.language",
	"locale.sim_country",
	"locale.network_country",
	"assets.dir",
	"assets.package",
	"ui.verbose",
}

// ConfigDir returns the inkshim configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux, Android and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the path of the primary config file.
func FilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// newViper returns a viper instance primed with defaults and environment
// bindings.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("look_n_feel.battery_level_to_turn_screen_off", defaults.LookNFeel.BatteryLevelToTurnScreenOff)
	v.SetDefault("look_n_feel.dont_turn_screen_off_during_charging", defaults.LookNFeel.DontTurnScreenOffDuringCharging)
	v.SetDefault("look_n_feel.screen_brightness_level", defaults.LookNFeel.ScreenBrightnessLevel)
	v.SetDefault("look_n_feel.eink_update_interval", defaults.LookNFeel.EinkUpdateInterval)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	return v
}

// loadWithOptions performs option-driven config loading without touching
// package-level state beyond the test directory override.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	path, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFileIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'inkshim config dump' to see the default configuration").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = path

	// Environment overrides bypass the schema, so validate the merged result.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check INKSHIM_* environment variables as well as the config file").
			WithSuggestion("Set only one of assets.dir and assets.package").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, nil
}

// resolveConfigFile picks the file to load. An explicit path must exist;
// otherwise the config directory and then the working directory are
// searched, and no file at all means defaults.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'inkshim config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}

	candidates := []string{
		filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
		filepath.Join(cfgDir, ConfigFileName+"."+LegacyConfigFileExt),
		filepath.Join(opts.WorkDir, ConfigFileName+"."+ConfigFileExt),
	}
	for _, path := range candidates {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", nil
}

// loadFileIntoViper validates a config file against the #Config schema and
// merges it into v.
func loadFileIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	schema, err := cueutil.CompileSchema(configSchema, "#Config")
	if err != nil {
		return err
	}

	var configMap map[string]any
	if strings.EqualFold(filepath.Ext(path), "."+LegacyConfigFileExt) {
		if err := cueutil.CheckFileSize(data, schema.MaxFileSize(), path); err != nil {
			return err
		}
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		configMap, err = schema.DecodeValue(raw, path)
	} else {
		configMap, err = schema.DecodeCUE(data, path)
	}
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig writes the default config file unless one exists.
// It returns the path and whether a file was written.
func CreateDefaultConfig() (string, bool, error) {
	cfgPath, err := FilePath()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}
	if err := Save(DefaultConfig()); err != nil {
		return "", false, err
	}
	return cfgPath, true, nil
}

// Save writes cfg as CUE to the primary config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	cfgPath, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
