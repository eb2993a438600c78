// SPDX-License-Identifier: MPL-2.0

// Package platform reads the identity of the host the shim runs on.
//
// On Android the identity comes from the system build properties
// (/system/build.prop). Other hosts are described through gopsutil so the
// same classification path runs everywhere. The detected device profile is
// cached for the lifetime of the process.
package platform
