// SPDX-License-Identifier: MPL-2.0

// Package assets exposes an application's bundled, read-only asset store as
// a tree of file-like nodes.
//
// A Tree is rooted at the store root (the empty path). Nodes are cheap
// handles created on demand; they are not interned, so resolving the same
// path twice yields two nodes with independent (but consistent) cached state.
//
// Metadata queries never fail: backing-store errors are converted into
// conservative defaults (IsDirectory reports true, Exists reports false,
// Size reports 0 and Children is empty). Only Open reports an error, as a
// *StreamOpenError, so callers can tell "no data" from "empty data".
//
// Three stores are provided: FSStore over an io/fs.FS (the bundle embedded
// in the binary), AferoStore over an afero filesystem (a directory on disk)
// and ZipStore over the assets/ folder of an application package.
package assets
