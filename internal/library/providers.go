// SPDX-License-Identifier: MPL-2.0

package library

import (
	"errors"
	"time"

	"golang.org/x/text/language"
)

// ErrNoPackageInfo is returned by providers that know no package version.
var ErrNoPackageInfo = errors.New("package info unavailable")

type (
	// DisplayMetrics describes the screen. Density is the scale relative to
	// a 160 dpi baseline.
	DisplayMetrics struct {
		Width   int
		Height  int
		Density float64
	}

	// DisplayProvider reports the screen metrics. ok is false while no
	// display is attached.
	DisplayProvider interface {
		Metrics() (m DisplayMetrics, ok bool)
	}

	// PackageInfo is the installed application version.
	PackageInfo struct {
		VersionName string
		VersionCode int
	}

	// PackageProvider looks up the installed application version.
	PackageProvider interface {
		PackageInfo() (PackageInfo, error)
	}

	// LocaleInfo is what the host reports about language and location.
	// Country codes are ISO 3166 alpha-2 in any case; empty means unknown.
	LocaleInfo struct {
		Language       string
		SIMCountry     string
		NetworkCountry string
		Available      []language.Tag
	}

	// LocaleProvider reports the host locale.
	LocaleProvider interface {
		Locale() LocaleInfo
	}

	// Clock reports the current time.
	Clock interface {
		Now() time.Time
	}

	// StaticDisplay reports fixed metrics. The zero value reports no display.
	StaticDisplay DisplayMetrics

	// StaticPackage reports a fixed version.
	StaticPackage PackageInfo

	// StaticLocale reports a fixed locale.
	StaticLocale LocaleInfo

	systemClock struct{}

	noPackage struct{}
)

// Metrics implements DisplayProvider.
func (d StaticDisplay) Metrics() (DisplayMetrics, bool) {
	m := DisplayMetrics(d)
	return m, m.Width > 0 && m.Height > 0 && m.Density > 0
}

// PackageInfo implements PackageProvider. An empty version name is
// reported as ErrNoPackageInfo.
func (p StaticPackage) PackageInfo() (PackageInfo, error) {
	if p.VersionName == "" {
		return PackageInfo{}, ErrNoPackageInfo
	}
	return PackageInfo(p), nil
}

// Locale implements LocaleProvider.
func (l StaticLocale) Locale() LocaleInfo { return LocaleInfo(l) }

func (systemClock) Now() time.Time { return time.Now() }

func (noPackage) PackageInfo() (PackageInfo, error) { return PackageInfo{}, ErrNoPackageInfo }
