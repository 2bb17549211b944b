package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

var fallbackKeys = map[sqltype.Category]string{
	sqltype.String:    keys.AnyString,
	sqltype.Integer:   keys.AnyInteger,
	sqltype.Decimal:   keys.AnyDecimal,
	sqltype.Date:      keys.AnyDate,
	sqltype.Time:      keys.AnyTime,
	sqltype.Binary:    keys.AnyBinary,
	sqltype.Boolean:   keys.AnyBoolean,
	sqltype.GUID:      keys.AnyGUID,
	sqltype.Spatial:   keys.AnySpatial,
	sqltype.JSON:      keys.AnyJSON,
	sqltype.XML:       keys.AnyXML,
	sqltype.Hierarchy: keys.AnyHierarchy,
	sqltype.Enum:      keys.AnyEnum,
	sqltype.Set:       keys.AnySet,
}

// FallbackKey returns the generic key for a category, or any_value when the
// category has none
func FallbackKey(category sqltype.Category) string {
	if key, ok := fallbackKeys[category]; ok {
		return key
	}
	return keys.AnyValue
}

// categoryFallback accepts every column of one category
type categoryFallback struct {
	category sqltype.Category
}

func (f categoryFallback) Name() string         { return "Fallback(" + f.category.String() + ")" }
func (f categoryFallback) Priority() int        { return PriorityFallback }
func (f categoryFallback) GeneratorKey() string { return FallbackKey(f.category) }

func (f categoryFallback) Matches(column models.ColumnMetadata, _ models.TableMetadata) bool {
	return sqltype.Categorize(column.DataType) == f.category
}

// anyValue matches everything and keeps classification total
type anyValue struct{}

func (anyValue) Name() string                                             { return "AnyValueFallback" }
func (anyValue) Priority() int                                            { return PriorityLast }
func (anyValue) GeneratorKey() string                                     { return keys.AnyValue }
func (anyValue) Matches(models.ColumnMetadata, models.TableMetadata) bool { return true }

func fallbackMatchers() []Matcher {
	var out []Matcher
	for _, c := range sqltype.Categories() {
		if c == sqltype.Unknown {
			continue
		}
		out = append(out, categoryFallback{category: c})
	}
	return append(out, anyValue{})
}
