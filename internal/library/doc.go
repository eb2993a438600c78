// SPDX-License-Identifier: MPL-2.0

// Package library is the platform facade the reader core talks to.
//
// A Library answers device questions (which profile, e-ink or not, extra
// key bindings), exposes display metrics, version strings and locale
// preferences, and hands out resource files backed by an asset tree. Host
// details reach it through small provider interfaces so the facade behaves
// the same on an Android device, a desktop and in tests.
package library
