// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal serializes cfg in the given format.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	if valid, errs := format.IsValid(); !valid {
		return nil, errs[0]
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		return toml.Marshal(cfg)
	default:
		return []byte(GenerateCUE(cfg)), nil
	}
}

// GenerateCUE generates a CUE representation of the configuration. Unset
// optional fields are left out so their defaults keep applying.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// inkshim configuration file\n")
	sb.WriteString("// See https://github.com/inkshim/inkshim for documentation.\n")

	lnf := cfg.LookNFeel
	sb.WriteString("\nlook_n_feel: {\n")
	writeOptBool(&sb, "show_status_bar", lnf.ShowStatusBar)
	fmt.Fprintf(&sb, "\tbattery_level_to_turn_screen_off: %d\n", lnf.BatteryLevelToTurnScreenOff)
	fmt.Fprintf(&sb, "\tdont_turn_screen_off_during_charging: %v\n", lnf.DontTurnScreenOffDuringCharging)
	fmt.Fprintf(&sb, "\tscreen_brightness_level: %d\n", lnf.ScreenBrightnessLevel)
	writeOptBool(&sb, "disable_button_lights", lnf.DisableButtonLights)
	writeOptBool(&sb, "eink_fast_refresh", lnf.EinkFastRefresh)
	fmt.Fprintf(&sb, "\teink_update_interval: %d\n", lnf.EinkUpdateInterval)
	sb.WriteString("}\n")

	h := cfg.Host
	if h.HasSignature() || h.Profile != "" || h.SDKVersion != 0 {
		sb.WriteString("\nhost: {\n")
		writeOptString(&sb, "brand", h.Brand)
		writeOptString(&sb, "model", h.Model)
		writeOptString(&sb, "display", h.Display)
		writeOptString(&sb, "manufacturer", h.Manufacturer)
		writeOptString(&sb, "device", h.Device)
		writeOptString(&sb, "increment", h.Increment)
		writeOptString(&sb, "profile", h.Profile.String())
		if h.SDKVersion != 0 {
			fmt.Fprintf(&sb, "\tsdk_version: %d\n", h.SDKVersion)
		}
		sb.WriteString("}\n")
	}

	d := cfg.Display
	if d != (DisplayConfig{}) {
		sb.WriteString("\ndisplay: {\n")
		fmt.Fprintf(&sb, "\twidth: %d\n", d.Width)
		fmt.Fprintf(&sb, "\theight: %d\n", d.Height)
		fmt.Fprintf(&sb, "\tdensity: %g\n", d.Density)
		sb.WriteString("}\n")
	}

	l := cfg.Locale
	if l != (LocaleConfig{}) {
		sb.WriteString("\nlocale: {\n")
		writeOptString(&sb, "language", l.Language)
		writeOptString(&sb, "sim_country", l.SIMCountry)
		writeOptString(&sb, "network_country", l.NetworkCountry)
		sb.WriteString("}\n")
	}

	if cfg.Assets != (AssetsConfig{}) {
		sb.WriteString("\nassets: {\n")
		writeOptString(&sb, "dir", cfg.Assets.Dir)
		writeOptString(&sb, "package", cfg.Assets.Package)
		sb.WriteString("}\n")
	}

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

func writeOptBool(sb *strings.Builder, key string, v *bool) {
	if v != nil {
		fmt.Fprintf(sb, "\t%s: %v\n", key, *v)
	}
}

func writeOptString(sb *strings.Builder, key, v string) {
	if v != "" {
		fmt.Fprintf(sb, "\t%s: %q\n", key, v)
	}
}
