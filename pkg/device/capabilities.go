// SPDX-License-Identifier: MPL-2.0

package device

import "slices"

// Membership tables. einkDevices and einkFastRefreshDevices currently hold the
// same members but back independent options and must stay separate.
var (
	einkDevices                 = []Device{Nook, Nook12}
	einkFastRefreshDevices      = []Device{Nook, Nook12}
	buttonLightsBugDevices      = []Device{SamsungGTS5830}
	noHardwareMenuButtonDevices = []Device{EkenM001, PanDigital}
)

// CapabilitySet is a snapshot of every capability predicate for one device.
type CapabilitySet struct {
	Eink                 bool `json:"eink" yaml:"eink"`
	EinkFastRefresh      bool `json:"eink_fast_refresh" yaml:"eink_fast_refresh"`
	ButtonLightsBug      bool `json:"button_lights_bug" yaml:"button_lights_bug"`
	NoHardwareMenuButton bool `json:"no_hardware_menu_button" yaml:"no_hardware_menu_button"`
	KindleFire           bool `json:"kindle_fire" yaml:"kindle_fire"`
}

// IsEink reports whether d has an e-ink screen.
func IsEink(d Device) bool {
	return slices.Contains(einkDevices, d)
}

// IsEinkFastRefreshSupported reports whether d supports the e-ink fast
// refresh mode.
func IsEinkFastRefreshSupported(d Device) bool {
	return slices.Contains(einkFastRefreshDevices, d)
}

// HasButtonLightsBug reports whether d cannot reliably switch its button
// backlights off.
func HasButtonLightsBug(d Device) bool {
	return slices.Contains(buttonLightsBugDevices, d)
}

// HasNoHardwareMenuButton reports whether d lacks a hardware menu key.
func HasNoHardwareMenuButton(d Device) bool {
	return slices.Contains(noHardwareMenuButtonDevices, d)
}

// IsKindleFire reports whether d is a Kindle Fire.
func IsKindleFire(d Device) bool {
	return d == KindleFire
}

// Capabilities evaluates all capability predicates for d.
func Capabilities(d Device) CapabilitySet {
	return CapabilitySet{
		Eink:                 IsEink(d),
		EinkFastRefresh:      IsEinkFastRefreshSupported(d),
		ButtonLightsBug:      HasButtonLightsBug(d),
		NoHardwareMenuButton: HasNoHardwareMenuButton(d),
		KindleFire:           IsKindleFire(d),
	}
}
