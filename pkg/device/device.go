// SPDX-License-Identifier: MPL-2.0

package device

import (
	"errors"
	"fmt"
)

const (
	// Generic is any device without known quirks.
	Generic Device = "GENERIC"
	// YotaPhone is the dual-screen YotaPhone.
	YotaPhone Device = "YOTA_PHONE"
	// KindleFire is an Amazon Kindle Fire tablet.
	KindleFire Device = "KINDLE_FIRE"
	// Nook is a Barnes & Noble NOOK (zoom2 board).
	Nook Device = "NOOK"
	// Nook12 is a NOOK running firmware 1.2.0 or 1.2.1.
	Nook12 Device = "NOOK12"
	// EkenM001 is the Eken M001 tablet.
	EkenM001 Device = "EKEN_M001"
	// PanDigital is the Pandigital Novel reader.
	PanDigital Device = "PAN_DIGITAL"
	// SamsungGTS5830 is the Samsung Galaxy Ace (GT-S5830).
	SamsungGTS5830 Device = "SAMSUNG_GT_S5830"
)

// ErrInvalidDevice is the sentinel error wrapped by InvalidDeviceError.
var ErrInvalidDevice = errors.New("invalid device")

type (
	// Device identifies a recognized hardware/firmware profile.
	Device string

	// InvalidDeviceError is returned when a Device value is not one of the
	// known profiles. It wraps ErrInvalidDevice for errors.Is() compatibility.
	InvalidDeviceError struct {
		Value Device
	}
)

// All returns every known device in declaration order.
func All() []Device {
	return []Device{
		Generic,
		YotaPhone,
		KindleFire,
		Nook,
		Nook12,
		EkenM001,
		PanDigital,
		SamsungGTS5830,
	}
}

// ParseDevice converts a device name such as "NOOK12" into a Device.
func ParseDevice(s string) (Device, error) {
	d := Device(s)
	if valid, errs := d.IsValid(); !valid {
		return "", errs[0]
	}
	return d, nil
}

// String returns the string representation of the Device.
func (d Device) String() string { return string(d) }

// IsValid returns whether the Device is one of the known profiles.
func (d Device) IsValid() (bool, []error) {
	switch d {
	case Generic, YotaPhone, KindleFire, Nook, Nook12, EkenM001, PanDigital, SamsungGTS5830:
		return true, nil
	default:
		return false, []error{&InvalidDeviceError{Value: d}}
	}
}

// Error implements the error interface for InvalidDeviceError.
func (e *InvalidDeviceError) Error() string {
	return fmt.Sprintf("invalid device %q (valid: %v)", e.Value, All())
}

// Unwrap returns ErrInvalidDevice for errors.Is() compatibility.
func (e *InvalidDeviceError) Unwrap() error { return ErrInvalidDevice }
