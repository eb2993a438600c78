// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/inkshim/inkshim/internal/config"
	"github.com/inkshim/inkshim/internal/issue"
	"github.com/inkshim/inkshim/internal/library"
	"github.com/inkshim/inkshim/pkg/assets"
	"github.com/inkshim/inkshim/pkg/device"
)

type stubProvider struct {
	cfg  *config.Config
	err  error
	opts config.LoadOptions
}

func (p *stubProvider) Load(_ context.Context, opts config.LoadOptions) (*config.Config, error) {
	p.opts = opts
	if p.err != nil {
		return nil, p.err
	}
	return p.cfg, nil
}

func newTestApp(provider ConfigProvider) (*App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config:  provider,
		Package: library.StaticPackage{VersionName: "1.0", VersionCode: 10},
		Stdout:  &stdout,
		Stderr:  &stderr,
	})
	return app, &stdout, &stderr
}

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
		ok   bool
	}{
		{"nil", nil, 0, false},
		{"package", fmt.Errorf("x: %w", library.ErrPackageOpen), issue.PackageOpenFailedId, true},
		{"asset dir", library.ErrAssetDirNotFound, issue.AssetDirNotFoundId, true},
		{"device", &device.InvalidDeviceError{Value: "X"}, issue.InvalidDeviceOverrideId, true},
		{"directory", &assets.StreamOpenError{Path: "data", Err: assets.ErrIsDirectory}, issue.AssetIsDirectoryId, true},
		{"missing", &assets.StreamOpenError{Path: "x", Err: errors.New("gone")}, issue.AssetNotFoundId, true},
		{"config", &config.InvalidConfigError{}, issue.ConfigLoadFailedId, true},
		{"other", errors.New("boom"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := issueFor(tt.err)
			if got != tt.want || ok != tt.ok {
				t.Errorf("issueFor() = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, true); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("open asset").
		WithResource("data/x").
		WithSuggestion("Browse the tree").
		Wrap(plain).
		BuildError()
	got := formatErrorForDisplay(fmt.Errorf("outer: %w", ae), false)
	if !strings.Contains(got, "Browse the tree") {
		t.Errorf("formatErrorForDisplay(actionable) = %q, want suggestions", got)
	}
}

func TestApp_LoadConfigOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Assets.Package = "from-config.apk"
	provider := &stubProvider{cfg: cfg}
	app, _, _ := newTestApp(provider)
	app.flags.configPath = "custom.cue"
	app.flags.assetsDir = "book"
	app.flags.profile = "NOOK12"

	got, err := app.loadConfig(context.Background())
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if provider.opts.ConfigFilePath != "custom.cue" {
		t.Errorf("ConfigFilePath = %q", provider.opts.ConfigFilePath)
	}
	if got.Assets != (config.AssetsConfig{Dir: "book"}) {
		t.Errorf("Assets = %+v, want the flag directory only", got.Assets)
	}
	if got.Host.Profile != device.Nook12 {
		t.Errorf("Profile = %s, want NOOK12", got.Host.Profile)
	}
}

func TestApp_LoadConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("conflicting sources", func(t *testing.T) {
		t.Parallel()
		app, _, _ := newTestApp(&stubProvider{cfg: config.DefaultConfig()})
		app.flags.assetsDir = "a"
		app.flags.packagePath = "b.apk"
		_, err := app.loadConfig(context.Background())
		if !errors.Is(err, config.ErrConflictingAssetSources) {
			t.Errorf("loadConfig() error = %v", err)
		}
		if got := exitCode(err); got != ExitFailure {
			t.Errorf("exitCode() = %d, want %d", got, ExitFailure)
		}
	})

	t.Run("bad profile", func(t *testing.T) {
		t.Parallel()
		app, _, stderr := newTestApp(&stubProvider{cfg: config.DefaultConfig()})
		app.flags.profile = "kobo"
		_, err := app.loadConfig(context.Background())
		if !errors.Is(err, device.ErrInvalidDevice) {
			t.Errorf("loadConfig() error = %v", err)
		}
		if got := exitCode(err); got != ExitIssue {
			t.Errorf("exitCode() = %d, want %d", got, ExitIssue)
		}
		if !strings.Contains(stderr.String(), "Unknown device profile") {
			t.Errorf("stderr missing issue card:\n%s", stderr.String())
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		t.Parallel()
		app, _, stderr := newTestApp(&stubProvider{err: errors.New("syntax error")})
		app.flags.verbose = true
		if _, err := app.loadConfig(context.Background()); err == nil {
			t.Fatal("loadConfig() should fail")
		}
		out := stderr.String()
		if !strings.Contains(out, "Failed to load configuration") || !strings.Contains(out, "syntax error") {
			t.Errorf("stderr = %q", out)
		}
	})
}

func TestApp_VerboseFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.UI.Verbose = true
	app, _, _ := newTestApp(&stubProvider{cfg: cfg})
	if _, err := app.loadConfig(context.Background()); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if !app.flags.verbose {
		t.Error("ui.verbose should enable verbose output")
	}
	if got := app.logger().GetLevel(); got != log.DebugLevel {
		t.Errorf("logger level = %v, want debug", got)
	}
}

func TestApp_OpenLibrary(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Host.Profile = device.Nook
	app, _, _ := newTestApp(&stubProvider{cfg: cfg})

	lib, _, err := app.openLibrary(context.Background())
	if err != nil {
		t.Fatalf("openLibrary() error = %v", err)
	}
	defer lib.Close()

	if lib.Device() != device.Nook {
		t.Errorf("Device() = %s", lib.Device())
	}
	if lib.FullVersionName() != "1.0 (10)" {
		t.Errorf("FullVersionName() = %q", lib.FullVersionName())
	}
}

func TestCleanAssetPath(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":              "",
		"/":             "",
		".":             "",
		"data/":         "data",
		"/data//intro/": "data/intro",
		"data/../fonts": "fonts",
		"../../etc":     "etc",
	} {
		if got := cleanAssetPath(in); got != want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteDeviceReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sig := device.Signature{Model: "NOOK", Manufacturer: "BarnesAndNoble", Device: "zoom2"}
	err := writeDeviceReport(&buf, "text", deviceReport{
		Device:       device.Nook,
		Source:       sourceFlags,
		Signature:    &sig,
		Capabilities: device.Capabilities(device.Nook),
		Keys:         device.SpecificKeys(device.Nook),
	})
	if err != nil {
		t.Fatalf("writeDeviceReport() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Device: NOOK", "zoom2", "(unset)", "92 short -> volumeKeyScrollForward"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := writeDeviceReport(&buf, "xml", deviceReport{}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("Error() = %q", got)
	}
	inner := errors.New("inner")
	if err := (&ExitError{Code: 2, Err: inner}); !errors.Is(err, inner) || err.Error() != "inner" {
		t.Errorf("ExitError should wrap its cause")
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitFailure},
		{"exit error", &ExitError{Code: 7}, 7},
		{"wrapped exit error", fmt.Errorf("run: %w", &ExitError{Code: ExitIssue}), ExitIssue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestApp_ReportError(t *testing.T) {
	t.Parallel()

	t.Run("catalog error renders a card", func(t *testing.T) {
		t.Parallel()
		app, _, stderr := newTestApp(&stubProvider{cfg: config.DefaultConfig()})
		cause := fmt.Errorf("open reader.apk: %w", library.ErrPackageOpen)
		err := app.reportError(cause)

		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != ExitIssue {
			t.Fatalf("reportError() = %v, want an ExitError with code %d", err, ExitIssue)
		}
		if !errors.Is(err, library.ErrPackageOpen) {
			t.Error("reportError() lost the cause")
		}
		if !strings.Contains(stderr.String(), "Failed to open the application package") {
			t.Errorf("stderr missing issue card:\n%s", stderr.String())
		}
	})

	t.Run("unknown error passes through", func(t *testing.T) {
		t.Parallel()
		app, _, stderr := newTestApp(&stubProvider{cfg: config.DefaultConfig()})
		cause := errors.New("disk full")
		if err := app.reportError(cause); err != cause {
			t.Errorf("reportError() = %v, want the cause unchanged", err)
		}
		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want nothing", stderr.String())
		}
	})
}

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); Version == "dev" && got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}
