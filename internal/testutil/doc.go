// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers that fail the test on error, reducing
// boilerplate in tests.
//
// It covers environment variables (MustSetenv, MustUnsetenv), files and
// directories (MustMkdirAll, MustWriteFile, MustWriteZip), resource cleanup
// (MustClose) and a controllable clock (FakeClock).
package testutil
