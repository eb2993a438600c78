// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inkshim/inkshim/pkg/device"
)

const (
	// DefaultBatteryLevelToTurnScreenOff is the battery percentage below which
	// the screen may turn off.
	DefaultBatteryLevelToTurnScreenOff Percent = 50
	// DefaultScreenBrightnessLevel of 0 keeps the system brightness.
	DefaultScreenBrightnessLevel Percent = 0
	// DefaultEinkUpdateInterval is the number of page turns between full
	// e-ink refreshes.
	DefaultEinkUpdateInterval EinkInterval = 10

	// MaxEinkUpdateInterval is the largest accepted refresh interval.
	MaxEinkUpdateInterval EinkInterval = 20

	// FormatCUE renders configuration as CUE.
	FormatCUE Format = "cue"
	// FormatYAML renders configuration as YAML.
	FormatYAML Format = "yaml"
	// FormatTOML renders configuration as TOML.
	FormatTOML Format = "toml"
)

var (
	// ErrInvalidPercent is returned when a Percent value is outside 0..100.
	ErrInvalidPercent = errors.New("invalid percent")
	// ErrInvalidEinkInterval is returned when an EinkInterval is outside 0..20.
	ErrInvalidEinkInterval = errors.New("invalid e-ink update interval")
	// ErrInvalidFormat is returned when a Format value is not recognized.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrConflictingAssetSources is returned when both assets.dir and
	// assets.package are set.
	ErrConflictingAssetSources = errors.New("assets.dir and assets.package are mutually exclusive")
	// ErrInvalidDisplay is returned when display overrides are negative.
	ErrInvalidDisplay = errors.New("invalid display override")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Percent is an integer percentage in 0..100.
	Percent int

	// InvalidPercentError is returned when a Percent is out of range.
	// It wraps ErrInvalidPercent for errors.Is() compatibility.
	InvalidPercentError struct {
		Field string
		Value Percent
	}

	// EinkInterval is the number of page turns between full e-ink refreshes.
	EinkInterval int

	// InvalidEinkIntervalError is returned when an EinkInterval is out of range.
	InvalidEinkIntervalError struct {
		Value EinkInterval
	}

	// Format names a configuration serialization.
	Format string

	// InvalidFormatError is returned when a Format is not recognized.
	InvalidFormatError struct {
		Value Format
	}

	// InvalidConfigError collects the field errors of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		LookNFeel LookNFeelConfig `json:"look_n_feel" mapstructure:"look_n_feel" yaml:"look_n_feel" toml:"look_n_feel"`
		Host      HostConfig      `json:"host" mapstructure:"host" yaml:"host" toml:"host"`
		Display   DisplayConfig   `json:"display" mapstructure:"display" yaml:"display" toml:"display"`
		Locale    LocaleConfig    `json:"locale" mapstructure:"locale" yaml:"locale" toml:"locale"`
		Assets    AssetsConfig    `json:"assets" mapstructure:"assets" yaml:"assets" toml:"assets"`
		UI        UIConfig        `json:"ui" mapstructure:"ui" yaml:"ui" toml:"ui"`

		// Source is the file the configuration was read from, empty for
		// built-in defaults.
		Source string `json:"-" mapstructure:"-" yaml:"-" toml:"-"`
	}

	// LookNFeelConfig holds the reader appearance options. Nil flags take a
	// default that depends on the detected device.
	LookNFeelConfig struct {
		ShowStatusBar                   *bool        `json:"show_status_bar,omitempty" mapstructure:"show_status_bar" yaml:"show_status_bar,omitempty" toml:"show_status_bar,omitempty"`
		BatteryLevelToTurnScreenOff     Percent      `json:"battery_level_to_turn_screen_off" mapstructure:"battery_level_to_turn_screen_off" yaml:"battery_level_to_turn_screen_off" toml:"battery_level_to_turn_screen_off"`
		DontTurnScreenOffDuringCharging bool         `json:"dont_turn_screen_off_during_charging" mapstructure:"dont_turn_screen_off_during_charging" yaml:"dont_turn_screen_off_during_charging" toml:"dont_turn_screen_off_during_charging"`
		ScreenBrightnessLevel           Percent      `json:"screen_brightness_level" mapstructure:"screen_brightness_level" yaml:"screen_brightness_level" toml:"screen_brightness_level"`
		DisableButtonLights             *bool        `json:"disable_button_lights,omitempty" mapstructure:"disable_button_lights" yaml:"disable_button_lights,omitempty" toml:"disable_button_lights,omitempty"`
		EinkFastRefresh                 *bool        `json:"eink_fast_refresh,omitempty" mapstructure:"eink_fast_refresh" yaml:"eink_fast_refresh,omitempty" toml:"eink_fast_refresh,omitempty"`
		EinkUpdateInterval              EinkInterval `json:"eink_update_interval" mapstructure:"eink_update_interval" yaml:"eink_update_interval" toml:"eink_update_interval"`
	}

	// HostConfig overrides what the host reports about itself. Empty fields
	// keep the detected value.
	HostConfig struct {
		Brand        string `json:"brand,omitempty" mapstructure:"brand" yaml:"brand,omitempty" toml:"brand,omitempty"`
		Model        string `json:"model,omitempty" mapstructure:"model" yaml:"model,omitempty" toml:"model,omitempty"`
		Display      string `json:"display,omitempty" mapstructure:"display" yaml:"display,omitempty" toml:"display,omitempty"`
		Manufacturer string `json:"manufacturer,omitempty" mapstructure:"manufacturer" yaml:"manufacturer,omitempty" toml:"manufacturer,omitempty"`
		Device       string `json:"device,omitempty" mapstructure:"device" yaml:"device,omitempty" toml:"device,omitempty"`
		Increment    string `json:"increment,omitempty" mapstructure:"increment" yaml:"increment,omitempty" toml:"increment,omitempty"`
		// Profile skips classification and forces a device profile.
		Profile    device.Device `json:"profile,omitempty" mapstructure:"profile" yaml:"profile,omitempty" toml:"profile,omitempty"`
		SDKVersion int           `json:"sdk_version,omitempty" mapstructure:"sdk_version" yaml:"sdk_version,omitempty" toml:"sdk_version,omitempty"`
	}

	// DisplayConfig supplies screen metrics for hosts without a display.
	DisplayConfig struct {
		Width   int     `json:"width,omitempty" mapstructure:"width" yaml:"width,omitempty" toml:"width,omitempty"`
		Height  int     `json:"height,omitempty" mapstructure:"height" yaml:"height,omitempty" toml:"height,omitempty"`
		Density float64 `json:"density,omitempty" mapstructure:"density" yaml:"density,omitempty" toml:"density,omitempty"`
	}

	// LocaleConfig overrides the locale reported by the host.
	LocaleConfig struct {
		Language       string `json:"language,omitempty" mapstructure:"language" yaml:"language,omitempty" toml:"language,omitempty"`
		SIMCountry     string `json:"sim_country,omitempty" mapstructure:"sim_country" yaml:"sim_country,omitempty" toml:"sim_country,omitempty"`
		NetworkCountry string `json:"network_country,omitempty" mapstructure:"network_country" yaml:"network_country,omitempty" toml:"network_country,omitempty"`
	}

	// AssetsConfig selects where assets are read from. With neither field
	// set the bundled assets are used.
	AssetsConfig struct {
		// Dir is a directory on the local disk.
		Dir string `json:"dir,omitempty" mapstructure:"dir" yaml:"dir,omitempty" toml:"dir,omitempty"`
		// Package is a zip-based application package whose assets/ folder is read.
		Package string `json:"package,omitempty" mapstructure:"package" yaml:"package,omitempty" toml:"package,omitempty"`
	}

	// UIConfig configures the command line interface.
	UIConfig struct {
		Verbose bool `json:"verbose" mapstructure:"verbose" yaml:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LookNFeel: LookNFeelConfig{
			BatteryLevelToTurnScreenOff:     DefaultBatteryLevelToTurnScreenOff,
			DontTurnScreenOffDuringCharging: true,
			ScreenBrightnessLevel:           DefaultScreenBrightnessLevel,
			EinkUpdateInterval:              DefaultEinkUpdateInterval,
		},
	}
}

// Signature returns the host overrides as a device signature.
func (h HostConfig) Signature() device.Signature {
	return device.Signature{
		Brand:            h.Brand,
		Model:            h.Model,
		Display:          h.Display,
		Manufacturer:     h.Manufacturer,
		Device:           h.Device,
		VersionIncrement: h.Increment,
	}
}

// Apply overlays the non-empty overrides onto sig.
func (h HostConfig) Apply(sig device.Signature) device.Signature {
	over := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	over(&sig.Brand, h.Brand)
	over(&sig.Model, h.Model)
	over(&sig.Display, h.Display)
	over(&sig.Manufacturer, h.Manufacturer)
	over(&sig.Device, h.Device)
	over(&sig.VersionIncrement, h.Increment)
	return sig
}

// HasSignature reports whether any signature field is overridden.
func (h HostConfig) HasSignature() bool {
	return h.Signature() != device.Signature{}
}

// IsSet reports whether all display metrics are supplied.
func (d DisplayConfig) IsSet() bool {
	return d.Width > 0 && d.Height > 0 && d.Density > 0
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	lnf := c.LookNFeel
	if valid, fieldErrs := lnf.BatteryLevelToTurnScreenOff.validate("battery_level_to_turn_screen_off"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := lnf.ScreenBrightnessLevel.validate("screen_brightness_level"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := lnf.EinkUpdateInterval.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.Host.Profile != "" {
		if valid, fieldErrs := c.Host.Profile.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if c.Display.Width < 0 || c.Display.Height < 0 || c.Display.Density < 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d @ %g", ErrInvalidDisplay, c.Display.Width, c.Display.Height, c.Display.Density))
	}
	if strings.TrimSpace(c.Assets.Dir) != "" && strings.TrimSpace(c.Assets.Package) != "" {
		errs = append(errs, ErrConflictingAssetSources)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Int returns the percentage as an int.
func (p Percent) Int() int { return int(p) }

// IsValid returns whether the Percent is within 0..100.
func (p Percent) IsValid() (bool, []error) {
	return p.validate("")
}

func (p Percent) validate(field string) (bool, []error) {
	if p < 0 || p > 100 {
		return false, []error{&InvalidPercentError{Field: field, Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPercentError.
func (e *InvalidPercentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid percent %d (valid: 0..100)", e.Value)
	}
	return fmt.Sprintf("%s: invalid percent %d (valid: 0..100)", e.Field, e.Value)
}

// Unwrap returns ErrInvalidPercent for errors.Is() compatibility.
func (e *InvalidPercentError) Unwrap() error { return ErrInvalidPercent }

// Int returns the interval as an int.
func (i EinkInterval) Int() int { return int(i) }

// IsValid returns whether the EinkInterval is within 0..MaxEinkUpdateInterval.
func (i EinkInterval) IsValid() (bool, []error) {
	if i < 0 || i > MaxEinkUpdateInterval {
		return false, []error{&InvalidEinkIntervalError{Value: i}}
	}
	return true, nil
}

// Error implements the error interface for InvalidEinkIntervalError.
func (e *InvalidEinkIntervalError) Error() string {
	return fmt.Sprintf("eink_update_interval: invalid value %d (valid: 0..%d)", e.Value, MaxEinkUpdateInterval)
}

// Unwrap returns ErrInvalidEinkInterval for errors.Is() compatibility.
func (e *InvalidEinkIntervalError) Unwrap() error { return ErrInvalidEinkInterval }

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the supported serializations.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatCUE, FormatYAML, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format %q (valid: cue, yaml, toml)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }
