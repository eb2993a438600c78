// SPDX-License-Identifier: MPL-2.0

package library

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// multiLanguageCode is always offered so books in any language match.
const multiLanguageCode = "multi"

// russianSpeakingCountries add Russian to the defaults.
var russianSpeakingCountries = []string{"ru", "by", "ua"}

// DefaultLanguageCodes returns the languages offered by default for book
// metadata and hyphenation, sorted and without duplicates. It contains the
// host language, the language of every available locale whose country
// matches the SIM or network country, Russian for Russian-speaking
// countries, and "multi".
func (l *Library) DefaultLanguageCodes() []string {
	info := l.locale.Locale()
	sim := strings.ToLower(info.SIMCountry)
	network := strings.ToLower(info.NetworkCountry)

	set := map[string]struct{}{multiLanguageCode: {}}
	if info.Language != "" {
		set[info.Language] = struct{}{}
	}
	for _, tag := range info.Available {
		region, conf := tag.Region()
		if conf != language.Exact {
			continue
		}
		country := strings.ToLower(region.String())
		if country != sim && country != network {
			continue
		}
		base, _ := tag.Base()
		set[base.String()] = struct{}{}
	}
	if slices.Contains(russianSpeakingCountries, sim) || slices.Contains(russianSpeakingCountries, network) {
		set["ru"] = struct{}{}
	}

	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// AvailableLocales returns the locales the host can display, extended with
// the most likely locale of each given country.
func AvailableLocales(countries ...string) []language.Tag {
	tags := slices.Clone(display.Supported.Tags())
	for _, c := range countries {
		if c == "" {
			continue
		}
		region, err := language.ParseRegion(c)
		if err != nil {
			continue
		}
		base, conf := language.Make("und-" + region.String()).Base()
		if conf == language.No {
			continue
		}
		tag, err := language.Compose(base, region)
		if err != nil {
			continue
		}
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// LanguageFromEnv derives a base language from POSIX locale variables such
// as "de_AT.UTF-8". It checks LC_ALL, LC_MESSAGES and LANG in order and
// returns "" when none parses.
func LanguageFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		v, _, _ = strings.Cut(v, ".")
		v, _, _ = strings.Cut(v, "@")
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		return base.String()
	}
	return ""
}
