// SPDX-License-Identifier: MPL-2.0

package library

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/inkshim/inkshim/internal/config"
	"github.com/inkshim/inkshim/pkg/assets"
	"github.com/inkshim/inkshim/pkg/device"
	"github.com/inkshim/inkshim/pkg/platform"
)

// minAllOrientationsSDK is the first SDK level with sensor-driven rotation
// in every direction.
const minAllOrientationsSDK = 9

type (
	// Library is the platform facade. It is safe for concurrent use.
	Library struct {
		device     func() device.Device
		sdkVersion func() int
		lookNFeel  config.LookNFeelConfig
		display    DisplayProvider
		pkg        PackageProvider
		locale     LocaleProvider
		clock      Clock
		tree       *assets.Tree
		logger     *log.Logger
		closer     io.Closer

		metricsMu sync.Mutex
		metrics   *DisplayMetrics
	}

	// Option configures a Library.
	Option func(*Library)
)

// WithDetector classifies the host through det instead of the process-wide
// detection.
func WithDetector(det *device.Detector) Option {
	return func(l *Library) { l.device = det.Device }
}

// WithSDKVersion fixes the reported SDK level.
func WithSDKVersion(v int) Option {
	return func(l *Library) { l.sdkVersion = func() int { return v } }
}

// WithLookNFeel sets the user appearance options.
func WithLookNFeel(c config.LookNFeelConfig) Option {
	return func(l *Library) { l.lookNFeel = c }
}

// WithDisplay sets the display metrics source.
func WithDisplay(p DisplayProvider) Option {
	return func(l *Library) { l.display = p }
}

// WithPackage sets the installed version source.
func WithPackage(p PackageProvider) Option {
	return func(l *Library) { l.pkg = p }
}

// WithLocale sets the locale source.
func WithLocale(p LocaleProvider) Option {
	return func(l *Library) { l.locale = p }
}

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(l *Library) { l.clock = c }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Library) { l.logger = logger }
}

// withCloser makes Close release c.
func withCloser(c io.Closer) Option {
	return func(l *Library) { l.closer = c }
}

// New creates a Library serving resource files from tree. Without options
// the host is classified by platform.DetectDevice, no display or package
// is known, and the locale is empty.
func New(tree *assets.Tree, opts ...Option) *Library {
	l := &Library{
		device:     platform.DetectDevice,
		sdkVersion: platform.DetectSDKVersion,
		lookNFeel:  config.DefaultConfig().LookNFeel,
		display:    StaticDisplay{},
		pkg:        noPackage{},
		locale:     StaticLocale{},
		clock:      systemClock{},
		tree:       tree,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Close releases the asset store if the Library owns it.
func (l *Library) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Device returns the classified device profile.
func (l *Library) Device() device.Device { return l.device() }

// Capabilities returns the capability flags of the device.
func (l *Library) Capabilities() device.CapabilitySet { return device.Capabilities(l.Device()) }

// IsEink reports whether the device has an e-ink screen.
func (l *Library) IsEink() bool { return device.IsEink(l.Device()) }

// IsEinkFastRefreshSupported reports whether the screen supports fast
// partial refresh.
func (l *Library) IsEinkFastRefreshSupported() bool {
	return device.IsEinkFastRefreshSupported(l.Device())
}

// IsKindleFire reports whether the device is a Kindle Fire.
func (l *Library) IsKindleFire() bool { return device.IsKindleFire(l.Device()) }

// HasButtonLightsBug reports whether button lights misbehave on the device.
func (l *Library) HasButtonLightsBug() bool { return device.HasButtonLightsBug(l.Device()) }

// HasNoHardwareMenuButton reports whether the device lacks a menu key.
func (l *Library) HasNoHardwareMenuButton() bool {
	return device.HasNoHardwareMenuButton(l.Device())
}

// InitSpecificKeys registers the device-specific key bindings with b.
func (l *Library) InitSpecificKeys(b device.KeyBinder) {
	device.InitSpecificKeys(l.Device(), b)
}

// SDKVersion returns the host SDK level.
func (l *Library) SDKVersion() int { return l.sdkVersion() }

// SupportsAllOrientations reports whether the screen may rotate freely.
func (l *Library) SupportsAllOrientations() bool {
	return l.sdkVersion() >= minAllOrientationsSDK
}

// Tree returns the asset tree behind resource files.
func (l *Library) Tree() *assets.Tree { return l.tree }

// CreateResourceFile returns the resource file at path.
func (l *Library) CreateResourceFile(path string) *assets.Node {
	return l.tree.Resolve(path)
}

// CreateChildResourceFile returns the resource file name inside parent.
func (l *Library) CreateChildResourceFile(parent *assets.Node, name string) *assets.Node {
	return parent.Child(name)
}
