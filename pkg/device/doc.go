// SPDX-License-Identifier: MPL-2.0

// Package device classifies the host hardware into a small, closed set of
// e-reader profiles that need special-cased behavior.
//
// Classification is a pure function of the strings the host reports about
// itself (brand, model, display id, manufacturer, device codename and build
// increment). Capability predicates such as IsEink are static memberships
// keyed by the resulting Device, and NOOK readers additionally get a fixed
// set of hardware key bindings.
package device
