// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
)

// NonAndroidSDK is the SDK level reported by hosts that are not Android.
// It is high enough to enable every SDK-gated feature.
const NonAndroidSDK = 1 << 10
