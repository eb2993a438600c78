// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for inkshim.
//
// The App type is the composition root: command handlers receive it and
// reach configuration and the platform facade only through it, so tests
// can swap either.
package cmd
