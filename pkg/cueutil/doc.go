// SPDX-License-Identifier: MPL-2.0

// Package cueutil checks configuration documents against an embedded CUE
// schema.
//
// A Schema is compiled once from the embedded source and then used to decode
// user documents into plain maps, either from CUE text or from values that
// were parsed from another format (such as TOML) and encoded into CUE:
//
//	schema, err := cueutil.CompileSchema(schemaSrc, "#Config")
//	if err != nil {
//	    return err
//	}
//	m, err := schema.DecodeCUE(data, "config.cue")
//
// Errors carry the file name and a JSON-style path to the offending field.
package cueutil
