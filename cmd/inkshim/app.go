// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/inkshim/inkshim/internal/config"
	"github.com/inkshim/inkshim/internal/issue"
	"github.com/inkshim/inkshim/internal/library"
	"github.com/inkshim/inkshim/pkg/assets"
	"github.com/inkshim/inkshim/pkg/device"
)

// issueStyle is the glamour style used for issue cards. It falls back to
// plain text when stderr is not a terminal.
const issueStyle = "auto"

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and reach
	// configuration and the platform facade through it.
	App struct {
		Config     ConfigProvider
		NewLibrary LibraryFactory
		Package    library.PackageProvider
		stdout     io.Writer
		stderr     io.Writer
		flags      globalFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config     ConfigProvider
		NewLibrary LibraryFactory
		Package    library.PackageProvider
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// LibraryFactory builds the platform facade from loaded configuration.
	LibraryFactory func(cfg *config.Config, env library.Environment) (*library.Library, error)

	// globalFlags holds the persistent root flags.
	globalFlags struct {
		verbose     bool
		configPath  string
		assetsDir   string
		packagePath string
		profile     string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.NewLibrary == nil {
		deps.NewLibrary = library.NewFromConfig
	}
	if deps.Package == nil {
		deps.Package = buildPackage()
	}

	return &App{
		Config:     deps.Config,
		NewLibrary: deps.NewLibrary,
		Package:    deps.Package,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
}

// buildPackage reports the binary's own version as the installed package.
func buildPackage() library.PackageProvider {
	if Version == "dev" {
		return library.StaticPackage{}
	}
	code, _ := strconv.Atoi(BuildNumber)
	return library.StaticPackage{VersionName: Version, VersionCode: code}
}

// loadConfig loads the configuration and applies the root flag overrides.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		return nil, a.reportIssue(issue.ConfigLoadFailedId, err)
	}

	if a.flags.assetsDir != "" && a.flags.packagePath != "" {
		return nil, fmt.Errorf("--assets-dir and --package: %w", config.ErrConflictingAssetSources)
	}
	switch {
	case a.flags.assetsDir != "":
		cfg.Assets = config.AssetsConfig{Dir: a.flags.assetsDir}
	case a.flags.packagePath != "":
		cfg.Assets = config.AssetsConfig{Package: a.flags.packagePath}
	}

	if a.flags.profile != "" {
		d, err := device.ParseDevice(a.flags.profile)
		if err != nil {
			return nil, a.reportIssue(issue.InvalidDeviceOverrideId, err)
		}
		cfg.Host.Profile = d
	}

	if cfg.UI.Verbose {
		a.flags.verbose = true
	}
	return cfg, nil
}

// logger returns the diagnostic logger. Debug output is enabled by --verbose.
func (a *App) logger() *log.Logger {
	level := log.WarnLevel
	if a.flags.verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// openLibrary loads the configuration and builds the facade. The caller
// must Close the Library.
func (a *App) openLibrary(ctx context.Context) (*library.Library, *config.Config, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	lib, err := a.NewLibrary(cfg, library.Environment{
		Package: a.Package,
		Logger:  a.logger(),
	})
	if err != nil {
		return nil, nil, a.reportError(err)
	}
	return lib, cfg, nil
}

// reportError renders the catalog entry matching err, if any. Errors
// without an entry are returned unchanged.
func (a *App) reportError(err error) error {
	if id, ok := issueFor(err); ok {
		return a.reportIssue(id, err)
	}
	return err
}

// reportIssue renders the issue card for id and returns err carrying the
// ExitIssue code.
func (a *App) reportIssue(id issue.Id, err error) error {
	a.renderIssue(id, err)
	return &ExitError{Code: ExitIssue, Err: err}
}

// renderIssue writes the issue card for id to stderr, followed by the
// error details in verbose mode.
func (a *App) renderIssue(id issue.Id, err error) {
	if rendered, renderErr := issue.Get(id).Render(issueStyle); renderErr == nil {
		fmt.Fprint(a.stderr, rendered)
	}
	if a.flags.verbose && err != nil {
		fmt.Fprintln(a.stderr, formatErrorForDisplay(err, true))
	}
}

// issueFor maps an error onto its issue catalog entry.
func issueFor(err error) (issue.Id, bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, library.ErrPackageOpen):
		return issue.PackageOpenFailedId, true
	case errors.Is(err, library.ErrAssetDirNotFound):
		return issue.AssetDirNotFoundId, true
	case errors.Is(err, device.ErrInvalidDevice):
		return issue.InvalidDeviceOverrideId, true
	case errors.Is(err, assets.ErrIsDirectory):
		return issue.AssetIsDirectoryId, true
	case errors.Is(err, assets.ErrStreamOpen):
		return issue.AssetNotFoundId, true
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId, true
	default:
		return 0, false
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
