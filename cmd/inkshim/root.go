// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// BuildNumber is the monotonically increasing build code (set via -ldflags).
	BuildNumber = "0"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand creates the root command with all subcommands bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inkshim",
		Short: "Device quirks and bundled assets for e-reader builds",
		Long: TitleStyle.Render("inkshim") + SubtitleStyle.Render(" - Device quirks and bundled assets for e-reader builds") + `

inkshim classifies the host into a known reader profile (NOOK, Kindle Fire,
YotaPhone, ...) and reports the capability flags and key bindings that
profile needs. It also browses the read-only asset tree shipped with the
application, whether it comes from the bundled defaults, a directory or
the assets/ folder of an application package.

` + SubtitleStyle.Render("Examples:") + `
  inkshim device                   Show the detected device profile
  inkshim device classify --model NOOK --manufacturer BarnesAndNoble --device-name zoom2
  inkshim assets tree              Browse the asset tree
  inkshim info                     Show the effective platform settings
  inkshim config show              Show current configuration`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/inkshim/config.cue)")
	pf.StringVar(&app.flags.assetsDir, "assets-dir", "", "read assets from a directory")
	pf.StringVar(&app.flags.packagePath, "package", "", "read assets from the assets/ folder of an application package")
	pf.StringVar(&app.flags.profile, "profile", "", "force a device profile instead of classifying the host")

	rootCmd.AddCommand(newDeviceCommand(app))
	rootCmd.AddCommand(newAssetsCommand(app))
	rootCmd.AddCommand(newInfoCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (build %s, commit: %s, built: %s)", Version, BuildNumber, Commit, BuildDate)
}

// Run executes the CLI and returns the process exit code.
func Run() int {
	app := NewApp(Dependencies{})
	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	return exitCode(fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	))
}

// Execute runs the CLI and exits. This is called by main.main().
func Execute() {
	os.Exit(Run())
}
