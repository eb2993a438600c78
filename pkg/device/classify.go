// SPDX-License-Identifier: MPL-2.0

package device

import (
	"regexp"
	"strings"
)

// kindleModelPattern matches lower-cased Kindle Fire model names such as
// "kindle fire" or "amazon kindlefire hd".
var kindleModelPattern = regexp.MustCompile(`^.*kindle\s*fire.*$`)

// Signature holds the identification strings reported by the host.
// An empty field means the host did not report that value.
type Signature struct {
	Brand            string `json:"brand" mapstructure:"brand" yaml:"brand,omitempty"`
	Model            string `json:"model" mapstructure:"model" yaml:"model,omitempty"`
	Display          string `json:"display" mapstructure:"display" yaml:"display,omitempty"`
	Manufacturer     string `json:"manufacturer" mapstructure:"manufacturer" yaml:"manufacturer,omitempty"`
	Device           string `json:"device" mapstructure:"device" yaml:"device,omitempty"`
	VersionIncrement string `json:"increment" mapstructure:"increment" yaml:"increment,omitempty"`
}

// Classify maps a host signature onto a Device. Rules are evaluated in
// order and the first match wins; anything unmatched is Generic.
func Classify(sig Signature) Device {
	switch {
	case sig.Brand == "YotaPhone":
		return YotaPhone
	case sig.Model == "GT-S5830":
		return SamsungGTS5830
	case sig.Model != "" && kindleModelPattern.MatchString(strings.ToLower(sig.Model)):
		return KindleFire
	case strings.Contains(sig.Display, "simenxie"):
		return EkenM001
	case sig.Model == "PD_Novel":
		return PanDigital
	}

	if !isNook(sig) {
		return Generic
	}
	switch sig.VersionIncrement {
	case "1.2.0", "1.2.1":
		return Nook12
	default:
		return Nook
	}
}

func isNook(sig Signature) bool {
	if strings.ToLower(sig.Manufacturer) != "barnesandnoble" {
		return false
	}
	if strings.ToLower(sig.Device) != "zoom2" {
		return false
	}
	switch sig.Model {
	case "NOOK", "BNRV350", "BNRV300":
		return true
	default:
		return false
	}
}
