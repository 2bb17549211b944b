package classifier

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/matcher"
	"github.com/vitebski/schema-synth/pkg/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

// stub always accepts or always rejects
type stub struct {
	name     string
	priority int
	key      string
	accept   bool
}

func (s stub) Name() string         { return s.name }
func (s stub) Priority() int        { return s.priority }
func (s stub) GeneratorKey() string { return s.key }
func (s stub) Matches(models.ColumnMetadata, models.TableMetadata) bool {
	return s.accept
}

func TestHigherPriorityWins(t *testing.T) {
	c := New(quietLogger(),
		stub{name: "low", priority: 5, key: "low_key", accept: true},
		stub{name: "high", priority: 20, key: "high_key", accept: true},
		stub{name: "mid", priority: 10, key: "mid_key", accept: true},
	)

	r, err := c.Classify(models.ColumnMetadata{Name: "x"}, models.TableMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "high_key", r.Key)
	assert.Equal(t, "high", r.Matcher)
	assert.Equal(t, 20, r.Priority)
}

func TestRegistrationOrderBreaksTies(t *testing.T) {
	first := stub{name: "first", priority: 10, key: "first_key", accept: true}
	second := stub{name: "second", priority: 10, key: "second_key", accept: true}

	r, err := New(quietLogger(), first, second).Classify(models.ColumnMetadata{}, models.TableMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "first_key", r.Key)

	r, err = New(quietLogger(), second, first).Classify(models.ColumnMetadata{}, models.TableMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "second_key", r.Key)
}

func TestRejectingMatchersAreSkipped(t *testing.T) {
	c := New(quietLogger(),
		stub{name: "no", priority: 30, key: "no_key"},
		stub{name: "yes", priority: 0, key: "yes_key", accept: true},
	)

	r, err := c.Classify(models.ColumnMetadata{}, models.TableMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "yes_key", r.Key)
}

func TestNoMatch(t *testing.T) {
	c := New(quietLogger(), stub{name: "no", priority: 10, key: "k"})

	_, err := c.Classify(models.ColumnMetadata{}, models.TableMetadata{})
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = c.ClassifyTable(models.TableMetadata{Name: "t", Columns: []models.ColumnMetadata{{Name: "c"}}})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestNewDoesNotReorderCallerSlice(t *testing.T) {
	bank := []matcher.Matcher{
		stub{name: "a", priority: 0},
		stub{name: "b", priority: 10},
	}
	c := New(quietLogger(), bank...)

	assert.Equal(t, "a", bank[0].Name())
	assert.Equal(t, "b", c.Matchers()[0].Name())
}

func TestDefaultBankScenarios(t *testing.T) {
	c := NewDefault(quietLogger())

	tests := []struct {
		name  string
		table models.TableMetadata
		col   models.ColumnMetadata
		want  string
	}{
		{
			name:  "city in orders",
			table: models.TableMetadata{Schema: "dbo", Name: "orders"},
			col:   models.ColumnMetadata{Name: "city", DataType: "nvarchar", MaxLength: 50},
			want:  keys.AddressCity,
		},
		{
			name:  "country region",
			table: models.TableMetadata{Schema: "Person", Name: "Address"},
			col:   models.ColumnMetadata{Name: "CountryRegion", DataType: "nvarchar", MaxLength: 50},
			want:  keys.AddressCountry,
		},
		{
			name:  "product name",
			table: models.TableMetadata{Schema: "Production", Name: "Product"},
			col:   models.ColumnMetadata{Name: "Name", DataType: "nvarchar", MaxLength: 50},
			want:  keys.ProductName,
		},
		{
			name:  "person name",
			table: models.TableMetadata{Schema: "Person", Name: "Person"},
			col:   models.ColumnMetadata{Name: "[name]", DataType: "nvarchar", MaxLength: 50},
			want:  keys.FullName,
		},
		{
			name:  "widget name",
			table: models.TableMetadata{Schema: "dbo", Name: "Widget"},
			col:   models.ColumnMetadata{Name: "Name", DataType: "nvarchar", MaxLength: 50},
			want:  keys.AnyString,
		},
		{
			name:  "tiny flag",
			table: models.TableMetadata{Schema: "dbo", Name: "Widget"},
			col:   models.ColumnMetadata{Name: "Flags", DataType: "tinyint", IsNullable: true},
			want:  keys.AnyInteger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.Classify(tt.col, tt.table)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Key)
		})
	}
}

func TestDefaultBankIsTotal(t *testing.T) {
	c := NewDefault(quietLogger())
	for _, dt := range []string{"nvarchar", "int", "decimal", "datetime", "time", "varbinary", "bit", "uniqueidentifier", "", "mystery"} {
		r, err := c.Classify(models.ColumnMetadata{Name: "whatever", DataType: dt}, models.TableMetadata{})
		require.NoError(t, err, dt)
		assert.NotEmpty(t, r.Key)
	}
}

func TestExplain(t *testing.T) {
	c := NewDefault(quietLogger())
	col := models.ColumnMetadata{Name: "CountryRegion", DataType: "nvarchar", MaxLength: 50}
	table := models.TableMetadata{Schema: "Person", Name: "Address"}

	candidates := c.Explain(col, table)
	require.Len(t, candidates, len(c.Matchers()))

	accepted := map[string]bool{}
	for i, cand := range candidates {
		if i > 0 {
			assert.LessOrEqual(t, cand.Priority, candidates[i-1].Priority)
		}
		accepted[cand.Matcher] = cand.Accepted
	}
	assert.True(t, accepted["CountryMatcher"])
	assert.False(t, accepted["CountyMatcher"])
	assert.False(t, accepted["RegionMatcher"])
	assert.True(t, accepted["AnyValueFallback"])
}

func TestKeys(t *testing.T) {
	all := NewDefault(quietLogger()).Keys()
	assert.Contains(t, all, keys.ProductName)
	assert.Contains(t, all, keys.AddressCounty)
	assert.Contains(t, all, keys.AnyValue)

	seen := map[string]bool{}
	for _, k := range all {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
