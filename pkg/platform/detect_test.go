// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/inkshim/inkshim/pkg/device"
)

func TestDetectDeviceFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  device.SignatureSource
		want device.Device
	}{
		{
			name: "kindle fire",
			src:  device.StaticSignature{Model: "Kindle Fire"},
			want: device.KindleFire,
		},
		{
			name: "yotaphone",
			src:  device.StaticSignature{Brand: "YotaPhone"},
			want: device.YotaPhone,
		},
		{
			name: "source error",
			src: device.SignatureFunc(func() (device.Signature, error) {
				return device.Signature{}, errors.New("boom")
			}),
			want: device.Generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectDeviceFrom(tt.src); got != tt.want {
				t.Errorf("DetectDeviceFrom() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectDevice_Stable(t *testing.T) {
	t.Parallel()

	first := DetectDevice()
	if valid, errs := first.IsValid(); !valid {
		t.Fatalf("DetectDevice() = %q, invalid: %v", first, errs)
	}
	if second := DetectDevice(); second != first {
		t.Errorf("DetectDevice() changed from %q to %q", first, second)
	}
}

func TestDetectIdentity_Cached(t *testing.T) {
	t.Parallel()

	first, firstErr := DetectIdentity()
	second, secondErr := DetectIdentity()
	if first != second || (firstErr == nil) != (secondErr == nil) {
		t.Errorf("DetectIdentity() not stable: %+v/%v then %+v/%v", first, firstErr, second, secondErr)
	}
	if firstErr == nil && DetectSDKVersion() != first.SDKVersion {
		t.Errorf("DetectSDKVersion() = %d, want %d", DetectSDKVersion(), first.SDKVersion)
	}
}

func TestHostSignature(t *testing.T) {
	t.Parallel()

	id, err := HostIdentity(context.Background())
	sig, sigErr := HostSignature(context.Background()).Signature()
	if (err == nil) != (sigErr == nil) {
		t.Fatalf("HostSignature() error = %v, HostIdentity() error = %v", sigErr, err)
	}
	if err == nil && sig.Brand != id.Brand {
		t.Errorf("Brand = %q, want %q", sig.Brand, id.Brand)
	}
}
