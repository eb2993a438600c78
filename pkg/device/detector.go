// SPDX-License-Identifier: MPL-2.0

package device

import "sync"

type (
	// SignatureSource reports the host signature.
	SignatureSource interface {
		Signature() (Signature, error)
	}

	// SignatureFunc adapts a function to SignatureSource.
	SignatureFunc func() (Signature, error)

	// StaticSignature is a SignatureSource that always reports itself.
	StaticSignature Signature

	// Detector classifies the host once and caches the result for its lifetime.
	//
	// INVARIANT: the classification closure MUST NOT panic. sync.OnceValue
	// re-panics on every subsequent call.
	Detector struct {
		device func() Device
	}
)

// Signature implements SignatureSource.
func (f SignatureFunc) Signature() (Signature, error) { return f() }

// Signature implements SignatureSource.
func (s StaticSignature) Signature() (Signature, error) { return Signature(s), nil }

// NewDetector creates a Detector backed by src. The source is queried at most
// once, on the first call to Device. A source error classifies as if the host
// reported nothing, which yields Generic.
func NewDetector(src SignatureSource) *Detector {
	return &Detector{
		device: sync.OnceValue(func() Device {
			sig, err := src.Signature()
			if err != nil {
				return Classify(Signature{})
			}
			return Classify(sig)
		}),
	}
}

// Fixed returns a Detector that always reports d without consulting the host.
func Fixed(d Device) *Detector {
	return &Detector{device: func() Device { return d }}
}

// Device returns the memoized classification.
func (det *Detector) Device() Device {
	return det.device()
}
