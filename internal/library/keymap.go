// SPDX-License-Identifier: MPL-2.0

package library

import (
	"cmp"
	"slices"
	"sync"

	"github.com/inkshim/inkshim/pkg/device"
)

type (
	// Keymap is an in-memory device.KeyBinder. A later binding of the same
	// key and press kind replaces the earlier one.
	Keymap struct {
		mu       sync.RWMutex
		bindings map[keySlot]device.Action
	}

	keySlot struct {
		code      device.KeyCode
		longPress bool
	}
)

// NewKeymap creates an empty Keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[keySlot]device.Action)}
}

// BindKey implements device.KeyBinder.
func (k *Keymap) BindKey(code device.KeyCode, longPress bool, action device.Action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.bindings[keySlot{code, longPress}] = action
}

// Action returns the action bound to the key, if any.
func (k *Keymap) Action(code device.KeyCode, longPress bool) (device.Action, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	a, ok := k.bindings[keySlot{code, longPress}]
	return a, ok
}

// Bindings returns every binding ordered by key code, short press first.
func (k *Keymap) Bindings() []device.KeyBinding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]device.KeyBinding, 0, len(k.bindings))
	for slot, action := range k.bindings {
		out = append(out, device.KeyBinding{Code: slot.code, LongPress: slot.longPress, Action: action})
	}
	slices.SortFunc(out, func(a, b device.KeyBinding) int {
		if c := cmp.Compare(a.Code, b.Code); c != 0 {
			return c
		}
		switch {
		case a.LongPress == b.LongPress:
			return 0
		case a.LongPress:
			return 1
		default:
			return -1
		}
	})
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}
