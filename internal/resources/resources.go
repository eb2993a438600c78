// SPDX-License-Identifier: MPL-2.0

// Package resources holds the assets bundled into the inkshim binary.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed all:assets
var bundle embed.FS

// Assets returns the bundled asset tree rooted at its top-level folder.
func Assets() fs.FS {
	sub, err := fs.Sub(bundle, "assets")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}
