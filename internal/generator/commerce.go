package generator

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

const (
	defaultScale = 2
	minPrice     = 0.5
	maxPrice     = 2000.0
	maxQuantity  = 100
)

// titleCase title-cases an English phrase. Casers keep state, so each call
// builds its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// decimalBounds returns the scale and the largest magnitude a decimal column
// can hold, capped at limit. Floating point types report precision in bits,
// so only exact numerics are bounded by it.
func decimalBounds(column models.ColumnMetadata, limit float64) (int64, float64) {
	floating := sqltype.IsNamed(column.DataType, "float", "real", "double", "double precision", "float4", "float8")
	scale := column.NumericScale
	if scale <= 0 && (floating || column.NumericPrecision == 0) {
		scale = defaultScale
	}
	if !floating && column.NumericPrecision > 0 {
		ceiling := math.Pow(10, float64(column.NumericPrecision-scale)) - math.Pow(10, -float64(scale))
		if ceiling < limit {
			limit = ceiling
		}
	}
	return scale, limit
}

func roundTo(v float64, scale int64) float64 {
	factor := math.Pow(10, float64(scale))
	return math.Round(v*factor) / factor
}

func commerceStrategies(e *env) []*strategy {
	return []*strategy{
		{
			key:      keys.ProductName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(productAdjectives) * len(productMaterials) * len(productNouns)),
			draw: textDraw(func(models.ColumnMetadata) string {
				return titleCase(e.pick(productAdjectives) + " " + e.pick(productMaterials) + " " + e.pick(productNouns))
			}),
		},
		{
			key:      keys.ProductCode,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(26 * 26 * 10000),
			draw: textDraw(func(models.ColumnMetadata) string {
				return letters(e, 2) + "-" + digits(e, 4)
			}),
		},
		{
			key:      keys.CompanyName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Company().Name() }),
		},
		{
			key:      keys.DepartmentName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(departments)),
			draw:     textDraw(func(models.ColumnMetadata) string { return titleCase(e.pick(departments)) }),
		},
		{
			key:      keys.CurrencyCode,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(currencyCodes)),
			draw:     listDraw(e, currencyCodes),
		},
		{
			key:      keys.Price,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Decimal},
			domain: func(column models.ColumnMetadata) int64 {
				scale, limit := decimalBounds(column, maxPrice)
				if limit < minPrice {
					return int64(limit*math.Pow(10, float64(scale))) + 1
				}
				return int64((limit-minPrice)*math.Pow(10, float64(scale))) + 1
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				scale, limit := decimalBounds(column, maxPrice)
				lo := minPrice
				if limit < lo {
					lo = 0
				}
				return models.Decimal(roundTo(lo+e.rng.Float64()*(limit-lo), scale), int(scale)), nil
			},
		},
		{
			key:      keys.Quantity,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  intOnly,
			domain:   func(column models.ColumnMetadata) int64 { return quantityCeiling(column) },
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				return models.Int(e.between(1, quantityCeiling(column))), nil
			},
		},
		{
			key:      keys.Color,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Color().ColorName() }),
		},
		{
			key:      keys.Size,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(sizes)),
			draw:     listDraw(e, sizes),
		},
		{
			key:      keys.Description,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(column models.ColumnMetadata) string {
				if column.HasMaxLength() && column.MaxLength < 200 {
					words := int(column.MaxLength / 8)
					if words < 3 {
						words = 3
					}
					return e.faker.Lorem().Sentence(words)
				}
				return e.faker.Lorem().Paragraph(2)
			}),
		},
		{
			key:      keys.Notes,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(models.ColumnMetadata) string {
				return e.faker.Lorem().Sentence(4 + e.intn(9))
			}),
		},
	}
}

func quantityCeiling(column models.ColumnMetadata) int64 {
	if ceiling := integerCeiling(column); ceiling < maxQuantity {
		return ceiling
	}
	return maxQuantity
}
