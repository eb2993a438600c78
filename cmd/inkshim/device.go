// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkshim/inkshim/internal/config"
	"github.com/inkshim/inkshim/internal/issue"
	"github.com/inkshim/inkshim/internal/library"
	"github.com/inkshim/inkshim/pkg/device"
	"github.com/inkshim/inkshim/pkg/platform"
)

const (
	sourceProfile   = "profile"
	sourceOverrides = "overrides"
	sourceHost      = "host"
	sourceFlags     = "flags"
)

// deviceReport is the classification result printed by the device commands.
type deviceReport struct {
	Device       device.Device        `yaml:"device"`
	Source       string               `yaml:"source"`
	Signature    *device.Signature    `yaml:"signature,omitempty"`
	SDKVersion   int                  `yaml:"sdk_version,omitempty"`
	Capabilities device.CapabilitySet `yaml:"capabilities"`
	Keys         []device.KeyBinding  `yaml:"keys,omitempty"`
}

// newDeviceCommand creates the `inkshim device` command tree.
func newDeviceCommand(app *App) *cobra.Command {
	var format string

	deviceCmd := &cobra.Command{
		Use:   "device",
		Short: "Show the detected device profile",
		Long: `Show the device profile the host classifies as, together with its
capability flags and extra key bindings.

The profile comes from, in order: --profile or host.profile, the
host.* signature overrides applied to the detected host identity, or
the detected host identity alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDevice(cmd, app, format)
		},
	}
	deviceCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or yaml)")

	deviceCmd.AddCommand(newDeviceClassifyCommand(app))
	deviceCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the known device profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listDevices(app.stdout)
			return nil
		},
	})
	deviceCmd.AddCommand(&cobra.Command{
		Use:   "keys [profile]",
		Short: "Show the extra key bindings of a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showKeys(cmd, app, args)
		},
	})

	return deviceCmd
}

func newDeviceClassifyCommand(app *App) *cobra.Command {
	var (
		sig    device.Signature
		format string
	)

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a host signature without looking at the host",
		Example: `  inkshim device classify --model "Kindle Fire"
  inkshim device classify --manufacturer BarnesAndNoble --device-name zoom2 --model NOOK --increment 1.2.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := device.Classify(sig)
			return writeDeviceReport(app.stdout, format, deviceReport{
				Device:       d,
				Source:       sourceFlags,
				Signature:    &sig,
				Capabilities: device.Capabilities(d),
				Keys:         device.SpecificKeys(d),
			})
		},
	}

	f := classifyCmd.Flags()
	f.StringVar(&sig.Brand, "brand", "", "ro.product.brand")
	f.StringVar(&sig.Model, "model", "", "ro.product.model")
	f.StringVar(&sig.Display, "display", "", "ro.build.display.id")
	f.StringVar(&sig.Manufacturer, "manufacturer", "", "ro.product.manufacturer")
	f.StringVar(&sig.Device, "device-name", "", "ro.product.device")
	f.StringVar(&sig.VersionIncrement, "increment", "", "ro.build.version.incremental")
	f.StringVarP(&format, "format", "f", "text", "output format (text or yaml)")

	return classifyCmd
}

func showDevice(cmd *cobra.Command, app *App, format string) error {
	lib, cfg, err := app.openLibrary(cmd.Context())
	if err != nil {
		return err
	}
	defer lib.Close()

	report := deviceReport{
		Device:       lib.Device(),
		Source:       sourceHost,
		SDKVersion:   lib.SDKVersion(),
		Capabilities: lib.Capabilities(),
	}
	km := library.NewKeymap()
	lib.InitSpecificKeys(km)
	report.Keys = km.Bindings()

	if cfg.Host.Profile != "" {
		report.Source = sourceProfile
	} else {
		id, idErr := platform.DetectIdentity()
		if idErr != nil {
			app.logger().Warn("host identity unavailable", "err", idErr)
			if app.flags.verbose {
				app.renderIssue(issue.HostIdentityUnavailableId, idErr)
			}
		}
		sig := id.Signature
		if cfg.Host.HasSignature() {
			report.Source = sourceOverrides
			sig = cfg.Host.Apply(sig)
		}
		report.Signature = &sig
	}

	return writeDeviceReport(app.stdout, format, report)
}

func writeDeviceReport(w io.Writer, format string, r deviceReport) error {
	switch config.Format(format) {
	case config.FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text", "":
	default:
		return fmt.Errorf("unsupported format %q (valid: text, yaml)", format)
	}

	fmt.Fprintf(w, "%s %s\n", TitleStyle.Render("Device:"), r.Device)
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("source"), r.Source)
	if r.SDKVersion != 0 {
		fmt.Fprintf(w, "%s: %d\n", KeyStyle.Render("sdk_version"), r.SDKVersion)
	}
	if r.Signature != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, TitleStyle.Render("Signature"))
		writeField(w, "brand", r.Signature.Brand)
		writeField(w, "model", r.Signature.Model)
		writeField(w, "display", r.Signature.Display)
		writeField(w, "manufacturer", r.Signature.Manufacturer)
		writeField(w, "device", r.Signature.Device)
		writeField(w, "increment", r.Signature.VersionIncrement)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Capabilities"))
	writeCapabilities(w, r.Capabilities)

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Keys"))
	writeKeys(w, r.Keys)
	return nil
}

func writeField(w io.Writer, key, value string) {
	if value == "" {
		value = SubtitleStyle.Render("(unset)")
	}
	fmt.Fprintf(w, "  %-14s %s\n", KeyStyle.Render(key+":"), value)
}

func writeCapabilities(w io.Writer, c device.CapabilitySet) {
	fmt.Fprintf(w, "  %-26s %s\n", "eink", renderBool(c.Eink))
	fmt.Fprintf(w, "  %-26s %s\n", "eink_fast_refresh", renderBool(c.EinkFastRefresh))
	fmt.Fprintf(w, "  %-26s %s\n", "button_lights_bug", renderBool(c.ButtonLightsBug))
	fmt.Fprintf(w, "  %-26s %s\n", "no_hardware_menu_button", renderBool(c.NoHardwareMenuButton))
	fmt.Fprintf(w, "  %-26s %s\n", "kindle_fire", renderBool(c.KindleFire))
}

func writeKeys(w io.Writer, keys []device.KeyBinding) {
	if len(keys) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none)"))
		return
	}
	for _, k := range keys {
		press := "short"
		if k.LongPress {
			press = "long"
		}
		fmt.Fprintf(w, "  %4d %-5s -> %s\n", k.Code, press, k.Action)
	}
}

func listDevices(w io.Writer) {
	fmt.Fprintln(w, TitleStyle.Render("Known device profiles"))
	for _, d := range device.All() {
		c := device.Capabilities(d)
		var tags []string
		if c.Eink {
			tags = append(tags, "eink")
		}
		if c.EinkFastRefresh {
			tags = append(tags, "fast-refresh")
		}
		if c.ButtonLightsBug {
			tags = append(tags, "button-lights-bug")
		}
		if c.NoHardwareMenuButton {
			tags = append(tags, "no-menu-key")
		}
		if len(device.SpecificKeys(d)) > 0 {
			tags = append(tags, "page-keys")
		}
		fmt.Fprintf(w, "  %-18s %s\n", d, SubtitleStyle.Render(fmt.Sprint(tags)))
	}
}

func showKeys(cmd *cobra.Command, app *App, args []string) error {
	var d device.Device
	if len(args) == 1 {
		parsed, err := device.ParseDevice(args[0])
		if err != nil {
			return app.reportIssue(issue.InvalidDeviceOverrideId, err)
		}
		d = parsed
	} else {
		lib, _, err := app.openLibrary(cmd.Context())
		if err != nil {
			return err
		}
		defer lib.Close()
		d = lib.Device()
	}

	km := library.NewKeymap()
	device.InitSpecificKeys(d, km)
	fmt.Fprintf(app.stdout, "%s %s\n", TitleStyle.Render("Keys for"), d)
	writeKeys(app.stdout, km.Bindings())
	return nil
}
