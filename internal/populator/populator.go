package populator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vitebski/schema-synth/internal/analyzer"
	"github.com/vitebski/schema-synth/internal/connector"
	"github.com/vitebski/schema-synth/internal/orchestrator"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

// DefaultBatchSize is the number of rows sent per transaction
const DefaultBatchSize = 100

// DatabasePopulator populates database tables with generated data
type DatabasePopulator struct {
	DB             *connector.DatabaseConnector
	SchemaAnalyzer *analyzer.SchemaAnalyzer
	Orchestrator   *orchestrator.Orchestrator
	NumRecords     int
	BatchSize      int
	InsertedRows   map[string]int
	FailedTables   map[string]bool
	Logger         logrus.FieldLogger

	order      []string
	referenced map[string][]string
}

// NewDatabasePopulator creates a new database populator
func NewDatabasePopulator(
	db *connector.DatabaseConnector,
	schemaAnalyzer *analyzer.SchemaAnalyzer,
	orch *orchestrator.Orchestrator,
	numRecords int,
	logger logrus.FieldLogger,
) *DatabasePopulator {
	return &DatabasePopulator{
		DB:             db,
		SchemaAnalyzer: schemaAnalyzer,
		Orchestrator:   orch,
		NumRecords:     numRecords,
		BatchSize:      DefaultBatchSize,
		InsertedRows:   make(map[string]int),
		FailedTables:   make(map[string]bool),
		Logger:         logger,
	}
}

// PopulateDatabase fills every analyzed table in dependency order. A failed
// table is recorded and the run moves on to the next one.
func (dp *DatabasePopulator) PopulateDatabase(ctx context.Context) bool {
	orderedTables, circularTables := dp.SchemaAnalyzer.GetTableInsertionOrder()
	dp.order = orderedTables
	dp.referenced = referencedColumns(dp.SchemaAnalyzer.Tables)

	success := true
	for _, key := range orderedTables {
		if err := ctx.Err(); err != nil {
			dp.Logger.Errorf("Population interrupted before %s: %v", key, err)
			dp.FailedTables[key] = true
			success = false
			continue
		}

		table, ok := dp.SchemaAnalyzer.Table(key)
		if !ok {
			continue
		}
		if circularTables[key] {
			dp.Logger.Infof("Populating circular dependency table: %s", key)
		} else {
			dp.Logger.Infof("Populating table: %s", key)
		}

		if err := dp.populateTable(ctx, table); err != nil {
			dp.Logger.Errorf("Error populating table %s: %v", key, err)
			dp.FailedTables[key] = true
			success = false
		}
	}

	if ctx.Err() == nil {
		dp.resolveDeferredReferences(circularTables)
	}
	return success
}

func (dp *DatabasePopulator) populateTable(ctx context.Context, table models.TableMetadata) error {
	key := table.Key()

	numRecords := dp.NumRecords
	if dp.SchemaAnalyzer.ManyToManyTables[key] {
		numRecords = dp.calculateManyToManyRecords(table)
		if numRecords == 0 {
			dp.Logger.Warningf("Referenced tables of %s have no data, skipping", key)
			return nil
		}
	}

	batch, err := dp.Orchestrator.Generate(ctx, table, numRecords)
	if err != nil {
		return err
	}
	if len(batch.Plans) == 0 {
		dp.Logger.Warningf("No insertable columns found for table: %s", key)
		return nil
	}

	inserted, err := dp.InsertBatch(batch)
	dp.InsertedRows[key] = inserted
	if err != nil {
		// only rows that reached the database may be referenced
		dp.Orchestrator.Forget(key)
		for i, plan := range batch.Plans {
			dp.Orchestrator.AddReferences(key, plan.Column.Name, batch.Columns[i][:inserted])
		}
		return err
	}

	if err := dp.loadGeneratedKeys(table); err != nil {
		dp.Logger.Warningf("Could not read generated keys of %s: %v", key, err)
	}
	dp.Logger.Infof("Successfully populated table %s with %d records", key, inserted)
	return nil
}

// InsertBatch writes the batch in transactions of BatchSize rows and returns
// how many rows were committed
func (dp *DatabasePopulator) InsertBatch(batch *orchestrator.Batch) (int, error) {
	size := dp.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	insertSQL := dp.insertStatement(batch)

	inserted := 0
	for start := 0; start < batch.Rows; start += size {
		end := start + size
		if end > batch.Rows {
			end = batch.Rows
		}

		paramsList := make([][]interface{}, 0, end-start)
		for r := start; r < end; r++ {
			row := batch.Row(r)
			params := make([]interface{}, len(row))
			for i, v := range row {
				params[i] = v.Arg()
			}
			paramsList = append(paramsList, params)
		}

		if _, err := dp.DB.ExecuteMany(insertSQL, paramsList); err != nil {
			return inserted, fmt.Errorf("insert into %s: %w", batch.Table.Key(), err)
		}
		inserted = end
	}
	return inserted, nil
}

func (dp *DatabasePopulator) insertStatement(batch *orchestrator.Batch) string {
	d := dp.DB.Dialect
	names := make([]string, len(batch.Plans))
	values := make([]string, len(batch.Plans))
	for i, plan := range batch.Plans {
		names[i] = d.QuoteIdentifier(plan.Column.Name)
		values[i] = valueExpression(d, plan.Column, d.Placeholder(i+1))
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		d.QualifiedTable(batch.Table.Schema, batch.Table.Name),
		strings.Join(names, ", "),
		strings.Join(values, ", "),
	)
}

// valueExpression wraps a placeholder for types that are sent as text and
// parsed by the server
func valueExpression(d connector.Dialect, column models.ColumnMetadata, placeholder string) string {
	switch {
	case sqltype.Is(column.DataType, sqltype.Spatial):
		if d != connector.SQLServer {
			return "ST_GeomFromText(" + placeholder + ")"
		}
		if sqltype.IsNamed(column.DataType, "geography") {
			return "geography::STGeomFromText(" + placeholder + ", 4326)"
		}
		return "geometry::STGeomFromText(" + placeholder + ", 0)"
	case d == connector.SQLServer && sqltype.Is(column.DataType, sqltype.Hierarchy):
		return "hierarchyid::Parse(" + placeholder + ")"
	}
	return placeholder
}

// loadGeneratedKeys reads back referenced columns the database filled in
// itself, such as identity keys, so that child tables can point at them
func (dp *DatabasePopulator) loadGeneratedKeys(table models.TableMetadata) error {
	d := dp.DB.Dialect
	for _, name := range dp.referenced[strings.ToLower(table.Key())] {
		column, ok := table.Column(name)
		if !ok || column.Insertable() {
			continue
		}

		query := fmt.Sprintf("SELECT %s FROM %s", d.QuoteIdentifier(column.Name), d.QualifiedTable(table.Schema, table.Name))
		rows, err := dp.DB.ExecuteQuery(query)
		if err != nil {
			return err
		}
		values := make([]models.Value, 0, len(rows))
		for _, row := range rows {
			values = append(values, driverValue(firstValue(row)))
		}
		dp.Orchestrator.AddReferences(table.Key(), column.Name, values)
		dp.Logger.Debugf("Loaded %d generated %s values", len(values), column.QualifiedName())
	}
	return nil
}

// resolveDeferredReferences is the second pass over nullable foreign keys
// that could not be filled on insert: references inside a cycle and self
// references. Each row still holding NULL gets a random existing parent.
func (dp *DatabasePopulator) resolveDeferredReferences(circularTables map[string]bool) {
	d := dp.DB.Dialect
	rng := dp.Orchestrator.Source.Rand()

	for _, table := range dp.SchemaAnalyzer.Tables {
		key := table.Key()
		if dp.FailedTables[key] || dp.InsertedRows[key] == 0 {
			continue
		}

		for _, fk := range table.ForeignKeys {
			parent := fk.ReferencedKey()
			deferred := parent == key || (circularTables[key] && circularTables[parent])
			if !deferred || !fk.IsNullable {
				continue
			}

			pkColumn, ok := singlePrimaryKey(table)
			if !ok {
				dp.Logger.Warningf("No single-column primary key found for table %s, skipping update of %s", key, fk.Column)
				continue
			}

			pool := dp.Orchestrator.References(parent, fk.ReferencedColumn)
			if len(pool) == 0 {
				dp.Logger.Warningf("Referenced table %s has no data, skipping update for %s.%s", parent, key, fk.Column)
				continue
			}

			qualified := d.QualifiedTable(table.Schema, table.Name)
			selectSQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NULL",
				d.QuoteIdentifier(pkColumn), qualified, d.QuoteIdentifier(fk.Column))
			rows, err := dp.DB.ExecuteQuery(selectSQL)
			if err != nil {
				dp.Logger.Errorf("Error reading rows of %s to update: %v", key, err)
				continue
			}

			updateSQL := fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s",
				qualified, d.QuoteIdentifier(fk.Column), d.Placeholder(1), d.QuoteIdentifier(pkColumn), d.Placeholder(2))
			updated := 0
			for _, row := range rows {
				pkValue := firstValue(row)
				if pkValue == nil {
					continue
				}
				ref := pool[rng.Intn(len(pool))]
				if _, err := dp.DB.ExecuteStatement(updateSQL, ref.Arg(), pkValue); err != nil {
					dp.Logger.Errorf("Error updating foreign key %s.%s: %v", key, fk.Column, err)
					continue
				}
				updated++
			}
			dp.Logger.Infof("Updated %d rows of %s.%s to reference %s", updated, key, fk.Column, parent)
		}
	}
}

// calculateManyToManyRecords calculates how many records to insert for a
// many-to-many table: the number of parent combinations, capped at twice the
// requested count
func (dp *DatabasePopulator) calculateManyToManyRecords(table models.TableMetadata) int {
	referencedTables := make(map[string]int)
	for _, fk := range table.ForeignKeys {
		n := len(dp.Orchestrator.References(fk.ReferencedKey(), fk.ReferencedColumn))
		if current, ok := referencedTables[fk.ReferencedKey()]; !ok || n < current {
			referencedTables[fk.ReferencedKey()] = n
		}
	}

	limit := 2 * dp.NumRecords
	totalPossibleCombinations := 1
	for _, n := range referencedTables {
		if n == 0 {
			return 0
		}
		totalPossibleCombinations *= n
		if totalPossibleCombinations > limit {
			return limit
		}
	}
	return totalPossibleCombinations
}

// Result summarizes the last PopulateDatabase run
func (dp *DatabasePopulator) Result() models.PopulationResult {
	var result models.PopulationResult
	for _, key := range dp.order {
		if dp.FailedTables[key] {
			continue
		}
		result.SuccessfulTables = append(result.SuccessfulTables, key)
		result.TotalRecords += dp.InsertedRows[key]
	}
	for key := range dp.FailedTables {
		result.FailedTables = append(result.FailedTables, key)
	}
	sort.Strings(result.FailedTables)
	return result
}

// referencedColumns maps each lowercased table key to the columns foreign
// keys point at
func referencedColumns(tables []models.TableMetadata) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, fk := range t.ForeignKeys {
			key := strings.ToLower(fk.ReferencedKey())
			id := key + "." + strings.ToLower(fk.ReferencedColumn)
			if seen[id] {
				continue
			}
			seen[id] = true
			out[key] = append(out[key], fk.ReferencedColumn)
		}
	}
	return out
}

func singlePrimaryKey(table models.TableMetadata) (string, bool) {
	var name string
	for _, c := range table.Columns {
		if c.IsPrimaryKey {
			if name != "" {
				return "", false
			}
			name = c.Name
		}
	}
	return name, name != ""
}

func firstValue(row map[string]interface{}) interface{} {
	for _, v := range row {
		return v
	}
	return nil
}

// driverValue turns a scanned column back into a Value
func driverValue(v interface{}) models.Value {
	switch x := v.(type) {
	case nil:
		return models.Null()
	case int64:
		return models.Int(x)
	case int32:
		return models.Int(int64(x))
	case int:
		return models.Int(int64(x))
	case float64:
		return models.Decimal(x, 6)
	case bool:
		return models.Bool(x)
	case []byte:
		return models.Bytes(x)
	case time.Time:
		return models.Timestamp(x)
	case string:
		return models.Text(x)
	default:
		return models.Text(fmt.Sprintf("%v", x))
	}
}
