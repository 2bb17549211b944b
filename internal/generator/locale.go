package generator

import (
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/naming"
	"github.com/vitebski/schema-synth/pkg/models"
)

// languageCodes, languageISO3 and languageNames describe the distinct
// languages behind localeCodes, index aligned
var languageCodes, languageISO3, languageNames = languageTables(localeCodes)

func languageTables(locales []string) (codes, iso3, names []string) {
	seen := make(map[language.Base]bool)
	for _, locale := range locales {
		base, _ := language.MustParse(locale).Base()
		if seen[base] {
			continue
		}
		seen[base] = true
		codes = append(codes, base.String())
		iso3 = append(iso3, base.ISO3())
		names = append(names, display.English.Languages().Name(base))
	}
	return codes, iso3, names
}

// fitting keeps the values that fit the column without truncation
func fitting(column models.ColumnMetadata, values []string) []string {
	if !column.HasMaxLength() {
		return values
	}
	var out []string
	for _, v := range values {
		if int64(utf8.RuneCountInString(v)) <= column.MaxLength {
			out = append(out, v)
		}
	}
	return out
}

func timeZoneChoices(column models.ColumnMetadata) []string {
	if naming.ColumnTokens(column.Name).Has("offset") {
		return utcOffsets
	}
	if zones := fitting(column, ianaTimeZones); len(zones) > 1 {
		return zones
	}
	return utcOffsets
}

func localeChoices(column models.ColumnMetadata) []string {
	if locales := fitting(column, localeCodes); len(locales) > 0 {
		return locales
	}
	return languageCodes
}

// languageChoices gives names to wide columns and ISO 639 codes to narrow
// ones, three letter codes when the column is exactly three wide
func languageChoices(column models.ColumnMetadata) []string {
	tokens := naming.ColumnTokens(column.Name)
	switch {
	case column.HasMaxLength() && column.MaxLength == 3:
		return languageISO3
	case column.HasMaxLength() && column.MaxLength < 3, tokens.Has("code"), tokens.Has("iso"):
		return languageCodes
	}
	if names := fitting(column, languageNames); len(names) == len(languageNames) {
		return names
	}
	return languageCodes
}

func choiceDraw(e *env, choices func(models.ColumnMetadata) []string) drawFunc {
	return func(column models.ColumnMetadata) (models.Value, error) {
		return models.Text(e.pick(choices(column))), nil
	}
}

func choiceDomain(choices func(models.ColumnMetadata) []string) func(models.ColumnMetadata) int64 {
	return func(column models.ColumnMetadata) int64 { return int64(len(choices(column))) }
}

func localeStrategies(e *env) []*strategy {
	return []*strategy{
		{
			key:      keys.TimeZone,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   choiceDomain(timeZoneChoices),
			draw:     choiceDraw(e, timeZoneChoices),
		},
		{
			key:      keys.Locale,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   choiceDomain(localeChoices),
			draw:     choiceDraw(e, localeChoices),
		},
		{
			key:      keys.Language,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   choiceDomain(languageChoices),
			draw:     choiceDraw(e, languageChoices),
		},
	}
}
