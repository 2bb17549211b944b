package matcher

import (
	"strings"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/naming"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

type nameRoute struct {
	key     string
	context []string
}

// SpecialNameMatcher handles columns called exactly "Name". The column says
// nothing on its own so the owning table picks the generator. Routes are
// tried in order and the first table context that fits wins.
type SpecialNameMatcher struct {
	routes []nameRoute
}

// NewSpecialNameMatcher builds the dispatcher with its default route chain
func NewSpecialNameMatcher() *SpecialNameMatcher {
	return &SpecialNameMatcher{
		routes: []nameRoute{
			{key: keys.ProductName, context: productContext},
			{key: keys.FullName, context: personContext},
			{key: keys.CompanyName, context: companyContext},
			{key: keys.DepartmentName, context: departmentContext},
			{key: keys.AddressCountry, context: countryContext},
			{key: keys.AddressState, context: stateContext},
			{key: keys.AddressRegion, context: regionContext},
			{key: keys.AddressCity, context: cityContext},
			{key: keys.AddressCounty, context: countyContext},
		},
	}
}

// Name identifies the matcher in classification reports
func (m *SpecialNameMatcher) Name() string { return "SpecialNameMatcher" }

// Priority ranks the dispatcher with the high priority rules
func (m *SpecialNameMatcher) Priority() int { return PriorityHigh }

// GeneratorKey returns the first route's key. Use Resolve for the key a
// given table routes to.
func (m *SpecialNameMatcher) GeneratorKey() string {
	return m.routes[0].key
}

// GeneratorKeys lists every key the routes can produce
func (m *SpecialNameMatcher) GeneratorKeys() []string {
	out := make([]string, len(m.routes))
	for i, r := range m.routes {
		out[i] = r.key
	}
	return out
}

// Matches reports whether some route accepts the column
func (m *SpecialNameMatcher) Matches(column models.ColumnMetadata, table models.TableMetadata) bool {
	_, ok := m.Resolve(column, table)
	return ok
}

// Resolve returns the key of the first route whose context fits the table
func (m *SpecialNameMatcher) Resolve(column models.ColumnMetadata, table models.TableMetadata) (string, bool) {
	if !sqltype.Is(column.DataType, sqltype.String) {
		return "", false
	}
	if !strings.EqualFold(naming.StripDecoration(column.Name), "name") {
		return "", false
	}

	// only the table name counts here, a "Person" schema says nothing about "Production.Product"
	tableTokens := naming.ContextTokens(tableOf(column, table))
	for _, route := range m.routes {
		if tableTokens.Intersects(naming.NewTokenSet(route.context...)) {
			return route.key, true
		}
	}
	return "", false
}
