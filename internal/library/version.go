// SPDX-License-Identifier: MPL-2.0

package library

import "fmt"

// timeLayout is the 24-hour clock shown in the status bar.
const timeLayout = "15:04"

// VersionName returns the installed version name, or "" when it cannot be
// determined.
func (l *Library) VersionName() string {
	info, err := l.pkg.PackageInfo()
	if err != nil {
		l.logger.Debug("version name unavailable", "err", err)
		return ""
	}
	return info.VersionName
}

// FullVersionName returns "name (code)", or "" when the version cannot be
// determined.
func (l *Library) FullVersionName() string {
	info, err := l.pkg.PackageInfo()
	if err != nil {
		l.logger.Debug("version info unavailable", "err", err)
		return ""
	}
	return fmt.Sprintf("%s (%d)", info.VersionName, info.VersionCode)
}

// CurrentTimeString returns the current time as HH:MM.
func (l *Library) CurrentTimeString() string {
	return l.clock.Now().Format(timeLayout)
}
