// SPDX-License-Identifier: MPL-2.0

package device

const (
	// ActionVolumeKeyScrollForward turns to the next page.
	ActionVolumeKeyScrollForward Action = "volumeKeyScrollForward"
	// ActionVolumeKeyScrollBack turns to the previous page.
	ActionVolumeKeyScrollBack Action = "volumeKeyScrollBackward"
)

type (
	// KeyCode is a hardware key code as reported by the host input system.
	KeyCode int

	// Action names an application action a key can be bound to.
	Action string

	// KeyBinding binds a key press to an action.
	KeyBinding struct {
		Code      KeyCode `json:"code" yaml:"code"`
		LongPress bool    `json:"long_press" yaml:"long_press"`
		Action    Action  `json:"action" yaml:"action"`
	}

	// KeyBinder receives device-specific key bindings.
	KeyBinder interface {
		BindKey(code KeyCode, longPress bool, action Action)
	}
)

// nookKeys are the NOOK page-turn buttons: the two upper keys page forward,
// the two lower keys page back.
var nookKeys = []KeyBinding{
	{Code: 92, Action: ActionVolumeKeyScrollForward},
	{Code: 94, Action: ActionVolumeKeyScrollForward},
	{Code: 93, Action: ActionVolumeKeyScrollBack},
	{Code: 95, Action: ActionVolumeKeyScrollBack},
}

// SpecificKeys returns the bindings d needs beyond the defaults.
// Only NOOK devices have any.
func SpecificKeys(d Device) []KeyBinding {
	switch d {
	case Nook, Nook12:
		out := make([]KeyBinding, len(nookKeys))
		copy(out, nookKeys)
		return out
	default:
		return nil
	}
}

// InitSpecificKeys installs the device-specific bindings for d on b.
func InitSpecificKeys(d Device, b KeyBinder) {
	for _, k := range SpecificKeys(d) {
		b.BindKey(k.Code, k.LongPress, k.Action)
	}
}
