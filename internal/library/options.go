// SPDX-License-Identifier: MPL-2.0

package library

// LookNFeel is the effective set of appearance options.
type LookNFeel struct {
	ShowStatusBar                   bool `json:"show_status_bar" yaml:"show_status_bar"`
	BatteryLevelToTurnScreenOff     int  `json:"battery_level_to_turn_screen_off" yaml:"battery_level_to_turn_screen_off"`
	DontTurnScreenOffDuringCharging bool `json:"dont_turn_screen_off_during_charging" yaml:"dont_turn_screen_off_during_charging"`
	ScreenBrightnessLevel           int  `json:"screen_brightness_level" yaml:"screen_brightness_level"`
	DisableButtonLights             bool `json:"disable_button_lights" yaml:"disable_button_lights"`
	EinkFastRefresh                 bool `json:"eink_fast_refresh" yaml:"eink_fast_refresh"`
	EinkUpdateInterval              int  `json:"eink_update_interval" yaml:"eink_update_interval"`
}

// Options resolves the appearance options. Flags the user left unset take
// their device default: the status bar shows on devices without a menu key,
// button lights stay on unless they are known to misbehave, and fast
// refresh follows hardware support.
func (l *Library) Options() LookNFeel {
	c := l.lookNFeel
	return LookNFeel{
		ShowStatusBar:                   orDefault(c.ShowStatusBar, l.HasNoHardwareMenuButton()),
		BatteryLevelToTurnScreenOff:     c.BatteryLevelToTurnScreenOff.Int(),
		DontTurnScreenOffDuringCharging: c.DontTurnScreenOffDuringCharging,
		ScreenBrightnessLevel:           c.ScreenBrightnessLevel.Int(),
		DisableButtonLights:             orDefault(c.DisableButtonLights, !l.HasButtonLightsBug()),
		EinkFastRefresh:                 orDefault(c.EinkFastRefresh, l.IsEinkFastRefreshSupported()),
		EinkUpdateInterval:              c.EinkUpdateInterval.Int(),
	}
}

func orDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
