// SPDX-License-Identifier: MPL-2.0

package library

import (
	"slices"
	"testing"

	"golang.org/x/text/language"

	"github.com/inkshim/inkshim/pkg/device"
)

func TestLibrary_DefaultLanguageCodes(t *testing.T) {
	t.Parallel()

	available := []language.Tag{
		language.MustParse("en-US"),
		language.MustParse("en-GB"),
		language.MustParse("de-DE"),
		language.MustParse("de-AT"),
		language.MustParse("be-BY"),
		language.MustParse("uk-UA"),
		language.MustParse("fr"),
	}

	tests := []struct {
		name   string
		locale LocaleInfo
		want   []string
	}{
		{
			name: "nothing known",
			want: []string{"multi"},
		},
		{
			name:   "language only",
			locale: LocaleInfo{Language: "en", Available: available},
			want:   []string{"en", "multi"},
		},
		{
			name:   "sim country matches locales",
			locale: LocaleInfo{Language: "en", SIMCountry: "AT", Available: available},
			want:   []string{"de", "en", "multi"},
		},
		{
			name:   "network country is lowercased",
			locale: LocaleInfo{Language: "fr", NetworkCountry: "gb", Available: available},
			want:   []string{"en", "fr", "multi"},
		},
		{
			name:   "belarus adds russian",
			locale: LocaleInfo{SIMCountry: "BY", Available: available},
			want:   []string{"be", "multi", "ru"},
		},
		{
			name:   "ukraine by network adds russian",
			locale: LocaleInfo{Language: "en", SIMCountry: "US", NetworkCountry: "UA", Available: available},
			want:   []string{"en", "multi", "ru", "uk"},
		},
		{
			name:   "country without a region tag",
			locale: LocaleInfo{SIMCountry: "FR", Available: available},
			want:   []string{"multi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newTestLibrary(device.Generic, WithLocale(StaticLocale(tt.locale)))
			if got := l.DefaultLanguageCodes(); !slices.Equal(got, tt.want) {
				t.Errorf("DefaultLanguageCodes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableLocales(t *testing.T) {
	t.Parallel()

	base := AvailableLocales()
	if len(base) == 0 {
		t.Fatal("AvailableLocales() returned nothing")
	}

	tags := AvailableLocales("BY", "", "not-a-country")
	if !slices.Contains(tags, language.MustParse("be-BY")) {
		t.Errorf("AvailableLocales(BY) should contain be-BY")
	}
	if len(tags) > len(base)+1 {
		t.Errorf("unexpected extra tags: %d > %d", len(tags), len(base)+1)
	}
}

func TestLanguageFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"empty", nil, ""},
		{"lang with encoding", map[string]string{"LANG": "de_AT.UTF-8"}, "de"},
		{"lc_all wins", map[string]string{"LC_ALL": "fr_FR", "LANG": "en_US"}, "fr"},
		{"posix is skipped", map[string]string{"LC_ALL": "C", "LC_MESSAGES": "ru_RU@euro"}, "ru"},
		{"garbage is skipped", map[string]string{"LC_ALL": "???", "LANG": "uk"}, "uk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getenv := func(k string) string { return tt.env[k] }
			if got := LanguageFromEnv(getenv); got != tt.want {
				t.Errorf("LanguageFromEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}
