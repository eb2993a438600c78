// SPDX-License-Identifier: MPL-2.0

package assets

import "fmt"

// StreamOpenError is returned when an asset cannot be opened for reading.
// It matches ErrStreamOpen with errors.Is and unwraps to the store error.
type StreamOpenError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StreamOpenError) Error() string {
	return fmt.Sprintf("open asset %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying store error.
func (e *StreamOpenError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStreamOpen.
func (e *StreamOpenError) Is(target error) bool { return target == ErrStreamOpen }
