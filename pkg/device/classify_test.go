// SPDX-License-Identifier: MPL-2.0

package device

import (
	"errors"
	"testing"
)

func nookSignature(model, increment string) Signature {
	return Signature{
		Manufacturer:     "BarnesAndNoble",
		Model:            model,
		Device:           "Zoom2",
		VersionIncrement: increment,
	}
}

func TestClassify_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  Signature
		want Device
	}{
		{"yota brand", Signature{Brand: "YotaPhone", Model: "YD201"}, YotaPhone},
		{"samsung ace model", Signature{Brand: "samsung", Model: "GT-S5830"}, SamsungGTS5830},
		{"kindle fire spaced", Signature{Model: "Kindle Fire"}, KindleFire},
		{"kindle fire no space", Signature{Model: "KindleFire"}, KindleFire},
		{"kindle fire surrounded", Signature{Model: "Amazon Kindle  Fire HD"}, KindleFire},
		{"kindle fire tab", Signature{Model: "kindle\tfire"}, KindleFire},
		{"eken display", Signature{Display: "M001-simenxie-20110607"}, EkenM001},
		{"pandigital model", Signature{Model: "PD_Novel"}, PanDigital},
		{"nook", nookSignature("NOOK", "1.1.0"), Nook},
		{"nook bnrv350", nookSignature("BNRV350", ""), Nook},
		{"nook bnrv300", nookSignature("BNRV300", "1.0.1"), Nook},
		{"nook12 1.2.0", nookSignature("NOOK", "1.2.0"), Nook12},
		{"nook12 1.2.1", nookSignature("BNRV350", "1.2.1"), Nook12},
		{"nothing matches", Signature{Brand: "google", Model: "Pixel 7", Manufacturer: "Google", Device: "panther"}, Generic},
		{"empty signature", Signature{}, Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.sig); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.sig, got, tt.want)
			}
		})
	}
}

func TestClassify_RuleOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  Signature
		want Device
	}{
		{"brand beats model", Signature{Brand: "YotaPhone", Model: "GT-S5830"}, YotaPhone},
		{"samsung model beats display", Signature{Model: "GT-S5830", Display: "simenxie"}, SamsungGTS5830},
		{"kindle beats display", Signature{Model: "kindle fire", Display: "simenxie"}, KindleFire},
		{"display beats pandigital", Signature{Model: "PD_Novel", Display: "simenxie"}, EkenM001},
		{"pandigital beats nook", Signature{Model: "PD_Novel", Manufacturer: "barnesandnoble", Device: "zoom2"}, PanDigital},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.sig); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.sig, got, tt.want)
			}
		})
	}
}

func TestClassify_CaseSensitivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  Signature
		want Device
	}{
		{"yota brand is case sensitive", Signature{Brand: "yotaphone"}, Generic},
		{"samsung model is case sensitive", Signature{Model: "gt-s5830"}, Generic},
		{"pandigital model is case sensitive", Signature{Model: "pd_novel"}, Generic},
		{"nook model is case sensitive", nookSignature("Nook", ""), Generic},
		{"nook needs zoom2", Signature{Manufacturer: "barnesandnoble", Model: "NOOK", Device: "encore"}, Generic},
		{"nook needs manufacturer", Signature{Manufacturer: "amazon", Model: "NOOK", Device: "zoom2"}, Generic},
		{"kindle without fire", Signature{Model: "Kindle Paperwhite"}, Generic},
		{"display match is case sensitive", Signature{Display: "SIMENXIE"}, Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.sig); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.sig, got, tt.want)
			}
		})
	}
}

func TestParseDevice(t *testing.T) {
	t.Parallel()

	for _, d := range All() {
		got, err := ParseDevice(string(d))
		if err != nil {
			t.Errorf("ParseDevice(%q) returned error: %v", d, err)
		}
		if got != d {
			t.Errorf("ParseDevice(%q) = %q", d, got)
		}
	}

	_, err := ParseDevice("nook")
	if err == nil {
		t.Fatal("ParseDevice(nook) should fail, names are case sensitive")
	}
	if !errors.Is(err, ErrInvalidDevice) {
		t.Errorf("error should wrap ErrInvalidDevice, got %v", err)
	}
	var ide *InvalidDeviceError
	if !errors.As(err, &ide) || ide.Value != "nook" {
		t.Errorf("expected InvalidDeviceError{Value: nook}, got %v", err)
	}
}
