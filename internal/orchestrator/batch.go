package orchestrator

import (
	"strings"

	"github.com/vitebski/schema-synth/pkg/models"
)

// Batch holds the generated values of one table, stored column by column
type Batch struct {
	Table   models.TableMetadata
	Plans   []ColumnPlan
	Columns [][]models.Value
	Rows    int
}

// ColumnNames returns the planned column names in insert order
func (b *Batch) ColumnNames() []string {
	names := make([]string, len(b.Plans))
	for i, p := range b.Plans {
		names[i] = p.Column.Name
	}
	return names
}

// Row returns the values of row i in column order
func (b *Batch) Row(i int) []models.Value {
	row := make([]models.Value, len(b.Columns))
	for c, values := range b.Columns {
		row[c] = values[i]
	}
	return row
}

// Values returns the column with the given name
func (b *Batch) Values(column string) ([]models.Value, bool) {
	for i, p := range b.Plans {
		if strings.EqualFold(p.Column.Name, column) {
			return b.Columns[i], true
		}
	}
	return nil, false
}
