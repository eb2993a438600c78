// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkshim/inkshim/internal/config"
	"github.com/inkshim/inkshim/internal/library"
	"github.com/inkshim/inkshim/pkg/device"
)

// platformInfo is everything the facade reports about the host.
type platformInfo struct {
	Device                  device.Device     `yaml:"device"`
	SDKVersion              int               `yaml:"sdk_version"`
	SupportsAllOrientations bool              `yaml:"supports_all_orientations"`
	DisplayDPI              int               `yaml:"display_dpi"`
	Width                   int               `yaml:"width"`
	Height                  int               `yaml:"height"`
	Version                 string            `yaml:"version"`
	Time                    string            `yaml:"time"`
	Languages               []string          `yaml:"languages"`
	Options                 library.LookNFeel `yaml:"options"`
}

// newInfoCommand creates the `inkshim info` command.
func newInfoCommand(app *App) *cobra.Command {
	var format string

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the effective platform settings",
		Long: `Show what the platform facade reports: device profile, SDK level,
display metrics, version, default languages and the resolved appearance
options (device defaults applied where the configuration leaves a flag unset).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, err := app.openLibrary(cmd.Context())
			if err != nil {
				return err
			}
			defer lib.Close()
			return writeInfo(app, collectInfo(lib), format)
		},
	}
	infoCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or yaml)")

	return infoCmd
}

func collectInfo(lib *library.Library) platformInfo {
	return platformInfo{
		Device:                  lib.Device(),
		SDKVersion:              lib.SDKVersion(),
		SupportsAllOrientations: lib.SupportsAllOrientations(),
		DisplayDPI:              lib.DisplayDPI(),
		Width:                   lib.WidthInPixels(),
		Height:                  lib.HeightInPixels(),
		Version:                 lib.FullVersionName(),
		Time:                    lib.CurrentTimeString(),
		Languages:               lib.DefaultLanguageCodes(),
		Options:                 lib.Options(),
	}
}

func writeInfo(app *App, info platformInfo, format string) error {
	w := app.stdout
	switch config.Format(format) {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
	default:
		return fmt.Errorf("unsupported format %q (valid: text, yaml)", format)
	}

	version := info.Version
	if version == "" {
		version = SubtitleStyle.Render("(unknown)")
	}

	fmt.Fprintln(w, TitleStyle.Render("Platform"))
	fmt.Fprintf(w, "  %-26s %s\n", "device", info.Device)
	fmt.Fprintf(w, "  %-26s %d\n", "sdk_version", info.SDKVersion)
	fmt.Fprintf(w, "  %-26s %s\n", "supports_all_orientations", renderBool(info.SupportsAllOrientations))
	fmt.Fprintf(w, "  %-26s %s\n", "version", version)
	fmt.Fprintf(w, "  %-26s %s\n", "time", info.Time)
	fmt.Fprintf(w, "  %-26s %s\n", "languages", strings.Join(info.Languages, ", "))

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Display"))
	if info.DisplayDPI == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(no display)"))
	} else {
		fmt.Fprintf(w, "  %-26s %dx%d\n", "size", info.Width, info.Height)
		fmt.Fprintf(w, "  %-26s %d\n", "dpi", info.DisplayDPI)
	}

	o := info.Options
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Options"))
	fmt.Fprintf(w, "  %-34s %s\n", "show_status_bar", renderBool(o.ShowStatusBar))
	fmt.Fprintf(w, "  %-34s %d\n", "battery_level_to_turn_screen_off", o.BatteryLevelToTurnScreenOff)
	fmt.Fprintf(w, "  %-34s %s\n", "dont_turn_screen_off_during_charging", renderBool(o.DontTurnScreenOffDuringCharging))
	fmt.Fprintf(w, "  %-34s %d\n", "screen_brightness_level", o.ScreenBrightnessLevel)
	fmt.Fprintf(w, "  %-34s %s\n", "disable_button_lights", renderBool(o.DisableButtonLights))
	fmt.Fprintf(w, "  %-34s %s\n", "eink_fast_refresh", renderBool(o.EinkFastRefresh))
	fmt.Fprintf(w, "  %-34s %d\n", "eink_update_interval", o.EinkUpdateInterval)
	return nil
}
