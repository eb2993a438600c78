// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"sync"

	"github.com/inkshim/inkshim/pkg/device"
)

// identityOnce and detectOnce cache host inspection for the lifetime of the
// process. The host identity is immutable while the process runs.
//
// INVARIANT: neither closure may panic. sync.OnceValue propagates the panic
// on every call, creating a persistent crash condition.
var (
	identityOnce = sync.OnceValues(func() (Identity, error) {
		return HostIdentity(context.Background())
	})

	detectOnce = sync.OnceValue(func() device.Device {
		return DetectDeviceFrom(device.SignatureFunc(func() (device.Signature, error) {
			id, err := identityOnce()
			return id.Signature, err
		}))
	})
)

// DetectIdentity returns the identity of the running host. The host is
// inspected once; later calls return the cached result.
func DetectIdentity() (Identity, error) {
	return identityOnce()
}

// DetectSDKVersion returns the cached host SDK level. Hosts whose identity
// cannot be read report NonAndroidSDK.
func DetectSDKVersion() int {
	id, err := identityOnce()
	if err != nil {
		return NonAndroidSDK
	}
	return id.SDKVersion
}

// DetectDevice returns the device profile of the running host, classified
// once from DetectIdentity.
func DetectDevice() device.Device {
	return detectOnce()
}

// DetectDeviceFrom classifies the signature reported by src. A failing
// source classifies as Generic.
func DetectDeviceFrom(src device.SignatureSource) device.Device {
	sig, err := src.Signature()
	if err != nil {
		return device.Generic
	}
	return device.Classify(sig)
}

// HostSignature adapts HostIdentity to a device.SignatureSource. Each call
// of Signature inspects the host again.
func HostSignature(ctx context.Context) device.SignatureSource {
	return device.SignatureFunc(func() (device.Signature, error) {
		id, err := HostIdentity(ctx)
		if err != nil {
			return device.Signature{}, err
		}
		return id.Signature, nil
	})
}
