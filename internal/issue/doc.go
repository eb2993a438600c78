// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors for the inkshim CLI.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. The Issue catalog holds longer Markdown guidance that
// the CLI renders with glamour when a known failure occurs.
package issue
