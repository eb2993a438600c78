// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the documents accepted by DecodeCUE.
const DefaultMaxFileSize int64 = 1 << 20

// Schema is a compiled CUE definition. It is safe to reuse but not for
// concurrent use, because the underlying cue.Context is not.
type Schema struct {
	ctx  *cue.Context
	def  cue.Value
	opts schemaOptions
}

// CompileSchema compiles src and looks up the definition at defPath, for
// example "#Config".
func CompileSchema(src []byte, defPath string, opts ...Option) (*Schema, error) {
	ctx := cuecontext.New()
	root := ctx.CompileBytes(src)
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", root.Err())
	}
	def := root.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, def.Err())
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Schema{ctx: ctx, def: def, opts: o}, nil
}

// MaxFileSize returns the largest document the schema accepts.
func (s *Schema) MaxFileSize() int64 { return s.opts.maxFileSize }

// DecodeCUE compiles data as CUE, validates it against the schema and
// decodes the result. Fields may be left out; defaults are applied by the
// caller.
func (s *Schema) DecodeCUE(data []byte, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, s.opts.maxFileSize, filename); err != nil {
		return nil, err
	}
	user := s.ctx.CompileBytes(data, cue.Filename(filename))
	if user.Err() != nil {
		return nil, FormatError(user.Err(), filename)
	}
	return s.decode(user, filename)
}

// DecodeValue validates a Go value, typically a map parsed from another
// configuration format, against the schema.
func (s *Schema) DecodeValue(v any, filename string) (map[string]any, error) {
	user := s.ctx.Encode(v)
	if user.Err() != nil {
		return nil, FormatError(user.Err(), filename)
	}
	return s.decode(user, filename)
}

func (s *Schema) decode(user cue.Value, filename string) (map[string]any, error) {
	unified := s.def.Unify(user)
	if err := unified.Validate(cue.Concrete(s.opts.concrete)); err != nil {
		return nil, FormatError(err, filename)
	}
	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}
