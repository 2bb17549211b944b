package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yourbasic/graph"

	"github.com/vitebski/schema-synth/internal/connector"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

// unboundedTextLength is the declared length from which MySQL text types
// count as unbounded (mediumtext and longtext)
const unboundedTextLength = 16777215

// SchemaAnalyzer analyzes database schema, detects dependencies, and sorts tables for population
type SchemaAnalyzer struct {
	DB               *connector.DatabaseConnector
	Schemas          []string
	Tables           []models.TableMetadata
	ManyToManyTables map[string]bool
	DependencyGraph  *graph.Mutable
	TableIndexMap    map[string]int
	Logger           logrus.FieldLogger
}

// NewSchemaAnalyzer creates a new schema analyzer. Without schemas it
// inspects the dialect's default schema, or the database itself for MySQL.
func NewSchemaAnalyzer(db *connector.DatabaseConnector, schemas []string, logger logrus.FieldLogger) *SchemaAnalyzer {
	if len(schemas) == 0 && db != nil {
		if s := db.Dialect.DefaultSchema(); s != "" {
			schemas = []string{s}
		} else if db.Database != "" {
			schemas = []string{db.Database}
		}
	}
	return &SchemaAnalyzer{
		DB:               db,
		Schemas:          schemas,
		ManyToManyTables: make(map[string]bool),
		TableIndexMap:    make(map[string]int),
		Logger:           logger,
	}
}

// AnalyzeSchema introspects tables, columns and foreign keys
func (sa *SchemaAnalyzer) AnalyzeSchema() error {
	if len(sa.Schemas) == 0 {
		return fmt.Errorf("no schema to analyze")
	}

	columnsQuery, fkQuery, err := introspectionQueries(sa.DB.Dialect, len(sa.Schemas))
	if err != nil {
		return err
	}
	params := make([]interface{}, len(sa.Schemas))
	for i, s := range sa.Schemas {
		params[i] = s
	}

	columnRows, err := sa.DB.ExecuteQuery(columnsQuery, params...)
	if err != nil {
		sa.Logger.Errorf("Error getting columns: %v", err)
		return fmt.Errorf("introspect columns: %w", err)
	}

	fkRows, err := sa.DB.ExecuteQuery(fkQuery, params...)
	if err != nil {
		sa.Logger.Errorf("Error getting foreign keys: %v", err)
		return fmt.Errorf("introspect foreign keys: %w", err)
	}

	tables := make(map[string]*models.TableMetadata)
	var order []string
	for _, row := range columnRows {
		column := parseColumn(row)
		key := models.TableKey(column.Schema, column.Table)
		table, ok := tables[key]
		if !ok {
			table = &models.TableMetadata{Schema: column.Schema, Name: column.Table}
			tables[key] = table
			order = append(order, key)
		}
		table.Columns = append(table.Columns, column)
	}

	for _, row := range fkRows {
		fk := models.ForeignKey{
			ConstraintName:   asString(row["constraint_name"]),
			Schema:           asString(row["table_schema"]),
			Table:            asString(row["table_name"]),
			Column:           asString(row["column_name"]),
			ReferencedSchema: asString(row["referenced_schema"]),
			ReferencedTable:  asString(row["referenced_table"]),
			ReferencedColumn: asString(row["referenced_column"]),
		}
		table, ok := tables[models.TableKey(fk.Schema, fk.Table)]
		if !ok {
			continue
		}
		if c, ok := table.Column(fk.Column); ok {
			fk.IsNullable = c.IsNullable
		}
		table.ForeignKeys = append(table.ForeignKeys, fk)
	}

	loaded := make([]models.TableMetadata, 0, len(order))
	for _, key := range order {
		loaded = append(loaded, *tables[key])
	}
	sa.LoadTables(loaded)

	sa.Logger.Infof("Analyzed %d tables in %s", len(sa.Tables), strings.Join(sa.Schemas, ", "))
	return nil
}

// LoadTables installs table metadata from any source and builds the
// dependency graph. Tables are kept sorted by qualified name.
func (sa *SchemaAnalyzer) LoadTables(tables []models.TableMetadata) {
	sa.Tables = append([]models.TableMetadata(nil), tables...)
	sort.SliceStable(sa.Tables, func(i, j int) bool { return sa.Tables[i].Key() < sa.Tables[j].Key() })

	sa.TableIndexMap = make(map[string]int, len(sa.Tables))
	for i, t := range sa.Tables {
		sa.TableIndexMap[t.Key()] = i
	}

	// Edges run from the referenced table to the referencing one, so a
	// topological order puts parents first. Self references carry no edge.
	sa.DependencyGraph = graph.New(len(sa.Tables))
	for i, t := range sa.Tables {
		for _, fk := range t.ForeignKeys {
			parent, ok := sa.TableIndexMap[fk.ReferencedKey()]
			if !ok {
				sa.Logger.Warningf("Table %s references %s outside the analyzed schemas", t.Key(), fk.ReferencedKey())
				continue
			}
			if parent != i {
				sa.DependencyGraph.Add(parent, i)
			}
		}
	}

	sa.detectManyToManyTables()
}

// detectManyToManyTables detects tables that represent many-to-many relationships
func (sa *SchemaAnalyzer) detectManyToManyTables() {
	sa.ManyToManyTables = make(map[string]bool)
	for _, table := range sa.Tables {
		fks := table.ForeignKeys
		if len(fks) < 2 || len(table.Columns) == 0 {
			continue
		}

		pkColumns := 0
		for _, col := range table.Columns {
			if col.IsPrimaryKey {
				pkColumns++
			}
		}

		// Most columns are foreign keys and they make up the primary key
		if float64(len(fks))/float64(len(table.Columns)) >= 0.5 && pkColumns >= len(fks)-1 {
			referencedTables := make(map[string]bool)
			for _, fk := range fks {
				referencedTables[fk.ReferencedKey()] = true
			}
			if len(referencedTables) >= 2 {
				sa.ManyToManyTables[table.Key()] = true
			}
		}
	}
}

// GetCircularTables returns tables involved in circular dependencies
func (sa *SchemaAnalyzer) GetCircularTables() map[string]bool {
	circular := make(map[string]bool)
	if sa.DependencyGraph == nil {
		return circular
	}
	for _, component := range graph.StrongComponents(sa.DependencyGraph) {
		if len(component) < 2 {
			continue
		}
		for _, v := range component {
			circular[sa.Tables[v].Key()] = true
		}
	}
	return circular
}

// GetTableInsertionOrder determines the order in which tables should be
// populated. Parents come before children; tables in a cycle follow the
// rest, sorted by name.
func (sa *SchemaAnalyzer) GetTableInsertionOrder() ([]string, map[string]bool) {
	circular := sa.GetCircularTables()

	// Sort the acyclic remainder
	acyclic := graph.New(len(sa.Tables))
	for v := range sa.Tables {
		if circular[sa.Tables[v].Key()] {
			continue
		}
		sa.DependencyGraph.Visit(v, func(w int, _ int64) bool {
			if !circular[sa.Tables[w].Key()] {
				acyclic.Add(v, w)
			}
			return false
		})
	}

	order, ok := graph.TopSort(acyclic)
	if !ok {
		// unreachable once the strong components are removed
		sa.Logger.Errorf("Dependency graph still has a cycle, falling back to name order")
		order = make([]int, len(sa.Tables))
		for i := range order {
			order[i] = i
		}
	}

	var ordered, cycles []string
	for _, v := range order {
		key := sa.Tables[v].Key()
		if circular[key] {
			cycles = append(cycles, key)
		} else {
			ordered = append(ordered, key)
		}
	}
	sort.Strings(cycles)
	return append(ordered, cycles...), circular
}

// SchemaInfo packages the analyzed tables with their insertion order
func (sa *SchemaAnalyzer) SchemaInfo() *models.SchemaInfo {
	ordered, circular := sa.GetTableInsertionOrder()
	return &models.SchemaInfo{
		Tables:         sa.Tables,
		OrderedTables:  ordered,
		CircularTables: circular,
	}
}

// Table returns the analyzed table with the given qualified name
func (sa *SchemaAnalyzer) Table(key string) (models.TableMetadata, bool) {
	i, ok := sa.TableIndexMap[key]
	if !ok {
		return models.TableMetadata{}, false
	}
	return sa.Tables[i], true
}

func parseColumn(row map[string]interface{}) models.ColumnMetadata {
	column := models.ColumnMetadata{
		Schema:           asString(row["table_schema"]),
		Table:            asString(row["table_name"]),
		Name:             asString(row["column_name"]),
		Ordinal:          int(asInt64(row["ordinal_position"])),
		DataType:         strings.ToLower(asString(row["data_type"])),
		ColumnType:       asString(row["column_type"]),
		NumericPrecision: asInt64(row["numeric_precision"]),
		NumericScale:     asInt64(row["numeric_scale"]),
		IsNullable:       asBool(row["is_nullable"]),
		IsIdentity:       asBool(row["is_identity"]),
		IsComputed:       asBool(row["is_computed"]),
		IsPrimaryKey:     asBool(row["is_primary_key"]),
		IsUnique:         asBool(row["is_unique"]),
	}

	length := row["max_length"]
	switch {
	case length == nil && sqltype.Is(column.DataType, sqltype.String):
		// text without a declared length
		column.MaxLength = models.Unbounded
	case length != nil:
		column.MaxLength = asInt64(length)
		if column.MaxLength >= unboundedTextLength || column.MaxLength < 0 {
			column.MaxLength = models.Unbounded
		}
	}
	return column
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case int16:
		return int64(n)
	case uint8:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	default:
		parsed, _ := strconv.ParseInt(strings.TrimSpace(asString(v)), 10, 64)
		return parsed
	}
}

// asBool reads flags that arrive as booleans, integers or YES/NO strings
func asBool(v interface{}) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case int64, int32, int, int16, uint8, uint64, float64:
		return asInt64(v) != 0
	default:
		switch strings.ToUpper(strings.TrimSpace(asString(v))) {
		case "YES", "Y", "TRUE", "T", "1":
			return true
		}
		return false
	}
}
