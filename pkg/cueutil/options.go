// SPDX-License-Identifier: MPL-2.0

package cueutil

type (
	// schemaOptions holds configuration for decoding against a Schema.
	schemaOptions struct {
		maxFileSize int64
		concrete    bool
	}

	// Option configures a Schema.
	Option func(*schemaOptions)
)

// defaultOptions returns the default schema options.
func defaultOptions() schemaOptions {
	return schemaOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    false,
	}
}

// WithMaxFileSize sets the maximum document size DecodeCUE accepts.
// Default is DefaultMaxFileSize (1MB).
func WithMaxFileSize(size int64) Option {
	return func(o *schemaOptions) {
		o.maxFileSize = size
	}
}

// WithConcrete sets whether all values must be concrete after unification.
// Default is false: configuration fields are optional and defaults are
// applied after decoding.
func WithConcrete(concrete bool) Option {
	return func(o *schemaOptions) {
		o.concrete = concrete
	}
}
