package generator

import (
	"fmt"
	"math"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

func stateNames() []string {
	out := make([]string, len(usStates))
	for i, s := range usStates {
		out[i] = s.name
	}
	return out
}

func stateCodes() []string {
	out := make([]string, len(usStates))
	for i, s := range usStates {
		out[i] = s.code
	}
	return out
}

func countryField(field func(country) string) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = field(c)
	}
	return out
}

// coordinateScale is the declared scale, or six places when none is declared
func coordinateScale(column models.ColumnMetadata) int64 {
	if column.NumericScale > 0 {
		return column.NumericScale
	}
	return 6
}

// coordinate draws a value in [-limit, limit] rounded to the column scale
func coordinate(e *env, limit float64) drawFunc {
	return func(column models.ColumnMetadata) (models.Value, error) {
		scale := coordinateScale(column)
		factor := math.Pow(10, float64(scale))
		limit := limit
		if column.NumericPrecision > scale {
			if ceiling := math.Pow(10, float64(column.NumericPrecision-scale)) - 1/factor; ceiling < limit {
				limit = ceiling
			}
		}
		v := math.Round((e.rng.Float64()*2*limit-limit)*factor) / factor
		if sqltype.Is(column.DataType, sqltype.String) {
			return models.Text(fmt.Sprintf("%.*f", scale, v)), nil
		}
		return models.Decimal(v, int(scale)), nil
	}
}

func coordinateDomain(limit int64) func(models.ColumnMetadata) int64 {
	return func(column models.ColumnMetadata) int64 {
		return mul(2*limit, pow(10, coordinateScale(column))) + 1
	}
}

func addressStrategies(e *env) []*strategy {
	states, codes := stateNames(), stateCodes()
	countryNames := countryField(func(c country) string { return c.name })
	alpha2 := countryField(func(c country) string { return c.alpha2 })
	alpha3 := countryField(func(c country) string { return c.alpha3 })

	return []*strategy{
		{
			key:      keys.AddressLine1,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Address().StreetAddress() }),
		},
		{
			key:      keys.AddressLine2,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Address().SecondaryAddress() }),
		},
		{
			key:      keys.AddressCity,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Address().City() }),
		},
		{
			key:      keys.AddressState,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(states)),
			draw:     listDraw(e, states),
		},
		{
			key:      keys.AddressStateCode,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(codes)),
			draw:     listDraw(e, codes),
		},
		{
			key:      keys.AddressPostalCode,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOrInt,
			domain: func(column models.ColumnMetadata) int64 {
				if sqltype.Is(column.DataType, sqltype.Integer) {
					lo, hi := intRange(column, 501, 99950)
					return hi - lo + 1
				}
				return Unbounded
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				if sqltype.Is(column.DataType, sqltype.Integer) {
					return models.Int(e.between(intRange(column, 501, 99950))), nil
				}
				return models.Text(e.faker.Address().PostCode()), nil
			},
		},
		{
			key:      keys.AddressCountry,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(countryNames)),
			draw:     listDraw(e, countryNames),
		},
		{
			key:      keys.AddressCountryCode2,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(alpha2)),
			draw:     listDraw(e, alpha2),
		},
		{
			key:      keys.AddressCountryCode3,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(alpha3)),
			draw:     listDraw(e, alpha3),
		},
		{
			key:      keys.AddressCounty,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(counties)),
			draw: textDraw(func(column models.ColumnMetadata) string {
				county := e.pick(counties)
				if !column.HasMaxLength() || column.MaxLength >= int64(len(county))+7 {
					county += " County"
				}
				return county
			}),
		},
		{
			key:      keys.AddressRegion,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(regions)),
			draw:     listDraw(e, regions),
		},
		{
			key:      keys.Latitude,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOrFloat,
			domain:   coordinateDomain(90),
			draw:     coordinate(e, 90),
		},
		{
			key:      keys.Longitude,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOrFloat,
			domain:   coordinateDomain(180),
			draw:     coordinate(e, 180),
		},
	}
}
