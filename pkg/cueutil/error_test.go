// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if err := FormatError(nil, "config.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filename", func(t *testing.T) {
		t.Parallel()
		orig := errors.New("some error")
		err := FormatError(orig, "config.cue")
		if !errors.Is(err, orig) {
			t.Errorf("FormatError() lost the original error: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "config.cue: ") {
			t.Errorf("error should start with the filename, got: %v", err)
		}
	})

	t.Run("wrapped CUE error keeps its path", func(t *testing.T) {
		t.Parallel()
		v := cuecontext.New().CompileString(`ui: verbose: bool & "yes"`)
		verr := v.Validate(cue.Concrete(true))
		if verr == nil {
			t.Fatal("expected a validation error")
		}
		err := FormatError(fmt.Errorf("decode: %w", verr), "config.cue")
		if !strings.HasPrefix(err.Error(), "config.cue: ") || !strings.Contains(err.Error(), "ui.verbose") {
			t.Errorf("FormatError() = %q, want the filename and the field path", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     []string
		expected string
	}{
		{nil, ""},
		{[]string{"ui"}, "ui"},
		{[]string{"look_n_feel", "eink_update_interval"}, "look_n_feel.eink_update_interval"},
		{[]string{"locales", "0", "tag"}, "locales[0].tag"},
		{[]string{"0"}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "a.cue"); err != nil {
		t.Errorf("CheckFileSize() at the limit = %v, want nil", err)
	}
	err := CheckFileSize(make([]byte, 11), 10, "a.cue")
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("CheckFileSize() over the limit = %v", err)
	}
}
