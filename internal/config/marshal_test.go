// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func TestMarshal(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.LookNFeel.EinkFastRefresh = boolPtr(true)

	t.Run("cue", func(t *testing.T) {
		t.Parallel()
		out, err := Marshal(cfg, FormatCUE)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if !strings.Contains(string(out), "eink_fast_refresh: true") {
			t.Errorf("CUE output missing flag:\n%s", out)
		}
		if strings.Contains(string(out), "show_status_bar") {
			t.Errorf("unset flag should be omitted:\n%s", out)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		out, err := Marshal(cfg, FormatYAML)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		var back Config
		if err := yaml.Unmarshal(out, &back); err != nil {
			t.Fatalf("yaml.Unmarshal() error = %v", err)
		}
		if back.LookNFeel.EinkUpdateInterval != DefaultEinkUpdateInterval {
			t.Errorf("EinkUpdateInterval = %d after YAML", back.LookNFeel.EinkUpdateInterval)
		}
		if back.LookNFeel.EinkFastRefresh == nil || !*back.LookNFeel.EinkFastRefresh {
			t.Error("EinkFastRefresh lost in YAML")
		}
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		out, err := Marshal(cfg, FormatTOML)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		var back Config
		if err := toml.Unmarshal(out, &back); err != nil {
			t.Fatalf("toml.Unmarshal() error = %v", err)
		}
		if back.LookNFeel.BatteryLevelToTurnScreenOff != DefaultBatteryLevelToTurnScreenOff {
			t.Errorf("BatteryLevelToTurnScreenOff = %d after TOML", back.LookNFeel.BatteryLevelToTurnScreenOff)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		if _, err := Marshal(cfg, Format("json5")); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Marshal() error = %v, want ErrInvalidFormat", err)
		}
	})
}
