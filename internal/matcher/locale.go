package matcher

import "github.com/vitebski/schema-synth/internal/keys"

func localeMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:         "TimeZoneMatcher",
			Key:        keys.TimeZone,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"id", "count", "flag", "enabled", "aware"},
			Strong:     []string{"timezone", "tzname", "ianazone", "olsonzone"},
			Combos:     [][]string{{"time", "zone"}, {"tz", "name"}},
			Tokens:     []string{"tz", "timezone"},
		},
		// ahead of LanguageMatcher so that "LanguageTag" is a locale
		&Rule{
			ID:         "LocaleMatcher",
			Key:        keys.Locale,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  2,
			Exclude:    []string{"id", "count", "date"},
			Strong:     []string{"locale", "culture", "languagetag", "langtag", "bcp47"},
			Tokens:     []string{"locale", "culture"},
		},
		&Rule{
			ID:         "LanguageMatcher",
			Key:        keys.Language,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  2,
			Exclude:    []string{"id", "count", "programming", "level", "proficiency", "skill"},
			Strong:     []string{"language", "mothertongue"},
			Tokens:     []string{"language", "lang", "tongue"},
		},
	}
}
