// SPDX-License-Identifier: MPL-2.0

package library

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/inkshim/inkshim/internal/config"
	"github.com/inkshim/inkshim/internal/issue"
	"github.com/inkshim/inkshim/internal/resources"
	"github.com/inkshim/inkshim/pkg/assets"
	"github.com/inkshim/inkshim/pkg/device"
	"github.com/inkshim/inkshim/pkg/platform"
)

var (
	// ErrPackageOpen is wrapped when the configured application package
	// cannot be opened.
	ErrPackageOpen = errors.New("cannot open application package")
	// ErrAssetDirNotFound is wrapped when the configured asset directory
	// does not exist.
	ErrAssetDirNotFound = errors.New("asset directory not found")
)

// Environment carries the host hooks NewFromConfig cannot derive from the
// configuration.
type Environment struct {
	// Package reports the running version. Nil means unknown.
	Package PackageProvider
	// Getenv reads environment variables. Nil means os.Getenv.
	Getenv func(string) string
	// Clock is the time source. Nil means the system clock.
	Clock Clock
	// Logger receives debug output from the facade and the asset tree.
	Logger *log.Logger
}

// OpenStore opens the asset store selected by cfg. The closer is non-nil
// only when the store holds an open file.
func OpenStore(cfg config.AssetsConfig) (assets.Store, io.Closer, error) {
	switch {
	case cfg.Package != "":
		zs, err := assets.OpenZipStore(cfg.Package)
		if err != nil {
			return nil, nil, issue.NewErrorContext().
				WithOperation("open application package").
				WithResource(cfg.Package).
				WithSuggestion("Check that the file exists and is a valid zip archive").
				WithSuggestion("Run 'inkshim config show' to see where the path comes from").
				Wrap(fmt.Errorf("%w: %w", ErrPackageOpen, err)).
				BuildError()
		}
		return zs, zs, nil
	case cfg.Dir != "":
		info, err := os.Stat(cfg.Dir)
		if err != nil || !info.IsDir() {
			if err == nil {
				err = fmt.Errorf("%s is not a directory", cfg.Dir)
			}
			return nil, nil, issue.NewErrorContext().
				WithOperation("open asset directory").
				WithResource(cfg.Dir).
				WithSuggestion("Fix assets.dir in your configuration or pass --assets-dir").
				Wrap(fmt.Errorf("%w: %w", ErrAssetDirNotFound, err)).
				BuildError()
		}
		return assets.NewDirStore(cfg.Dir), nil, nil
	default:
		return assets.NewFSStore(resources.Assets()), nil, nil
	}
}

// NewFromConfig builds a Library from the loaded configuration. The caller
// must Close it.
func NewFromConfig(cfg *config.Config, env Environment) (*Library, error) {
	store, closer, err := OpenStore(cfg.Assets)
	if err != nil {
		return nil, err
	}

	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	getenv := env.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	lang := cfg.Locale.Language
	if lang == "" {
		lang = LanguageFromEnv(getenv)
	}

	opts := []Option{
		WithLogger(logger),
		WithLookNFeel(cfg.LookNFeel),
		WithDisplay(StaticDisplay(DisplayMetrics{
			Width:   cfg.Display.Width,
			Height:  cfg.Display.Height,
			Density: cfg.Display.Density,
		})),
		WithLocale(StaticLocale{
			Language:       lang,
			SIMCountry:     cfg.Locale.SIMCountry,
			NetworkCountry: cfg.Locale.NetworkCountry,
			Available:      AvailableLocales(cfg.Locale.SIMCountry, cfg.Locale.NetworkCountry),
		}),
	}
	if closer != nil {
		opts = append(opts, withCloser(closer))
	}
	if env.Package != nil {
		opts = append(opts, WithPackage(env.Package))
	}
	if env.Clock != nil {
		opts = append(opts, WithClock(env.Clock))
	}
	if det := detectorFor(cfg.Host, logger); det != nil {
		opts = append(opts, WithDetector(det))
	}
	if cfg.Host.SDKVersion != 0 {
		opts = append(opts, WithSDKVersion(cfg.Host.SDKVersion))
	}

	tree := assets.NewTree(store, assets.WithLogger(logger))
	return New(tree, opts...), nil
}

// detectorFor returns a detector honoring the host overrides, or nil when
// there are none and process-wide detection applies.
func detectorFor(h config.HostConfig, logger *log.Logger) *device.Detector {
	switch {
	case h.Profile != "":
		return device.Fixed(h.Profile)
	case h.HasSignature():
		return device.NewDetector(device.SignatureFunc(func() (device.Signature, error) {
			id, err := platform.DetectIdentity()
			if err != nil {
				logger.Debug("host identity unavailable, using overrides only", "err", err)
			}
			return h.Apply(id.Signature), nil
		}))
	default:
		return nil
	}
}
