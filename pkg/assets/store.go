// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"errors"
	"io"
)

var (
	// ErrNoDescriptor is returned by Store.Length when the store cannot
	// report the entry length without reading it.
	ErrNoDescriptor = errors.New("no asset descriptor")
	// ErrIsDirectory is returned by Store.Open for directory paths.
	ErrIsDirectory = errors.New("asset is a directory")
	// ErrStreamOpen is the sentinel matched by StreamOpenError.
	ErrStreamOpen = errors.New("cannot open asset stream")
)

// Store is a read-only, hierarchical asset store. Paths are slash-separated
// and relative to the store root; the root itself is the empty string.
type Store interface {
	// List returns the names of the entries directly under path.
	List(path string) ([]string, error)
	// Open opens path for reading. Directories cannot be opened.
	Open(path string) (io.ReadCloser, error)
	// Length reports the byte length of path from metadata alone. Stores
	// that cannot do so for an entry return ErrNoDescriptor.
	Length(path string) (int64, error)
}

// Skipper is implemented by streams that can advance without reading.
// Skip returns the number of bytes actually skipped, which is less than n
// only at end of stream. An io.EOF alongside a short count is accepted.
type Skipper interface {
	Skip(n int64) (int64, error)
}
