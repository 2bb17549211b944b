package models

import "strings"

// Unbounded is the MaxLength sentinel for max/text columns
const Unbounded int64 = -1

// ColumnMetadata describes one introspected column. It is read-only once built.
type ColumnMetadata struct {
	Schema           string `yaml:"schema"`
	Table            string `yaml:"table"`
	Name             string `yaml:"name"`
	Ordinal          int    `yaml:"ordinal"`
	DataType         string `yaml:"data_type"`
	ColumnType       string `yaml:"column_type"`
	MaxLength        int64  `yaml:"max_length"`
	NumericPrecision int64  `yaml:"precision"`
	NumericScale     int64  `yaml:"scale"`
	IsNullable       bool   `yaml:"nullable"`
	IsIdentity       bool   `yaml:"identity"`
	IsComputed       bool   `yaml:"computed"`
	IsPrimaryKey     bool   `yaml:"primary_key"`
	IsUnique         bool   `yaml:"unique"`
}

// HasMaxLength reports whether the column declares a positive, bounded length
func (c ColumnMetadata) HasMaxLength() bool {
	return c.MaxLength > 0
}

// IsUnboundedLength reports whether the column is declared as max/text
func (c ColumnMetadata) IsUnboundedLength() bool {
	return c.MaxLength == Unbounded
}

// QualifiedName returns schema.table.column
func (c ColumnMetadata) QualifiedName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Schema, c.Table, c.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// Insertable reports whether a value has to be supplied on insert
func (c ColumnMetadata) Insertable() bool {
	return !c.IsIdentity && !c.IsComputed
}

// ForeignKey represents a foreign key relationship
type ForeignKey struct {
	Schema           string `yaml:"schema"`
	Table            string `yaml:"table"`
	Column           string `yaml:"column"`
	ReferencedSchema string `yaml:"referenced_schema"`
	ReferencedTable  string `yaml:"referenced_table"`
	ReferencedColumn string `yaml:"referenced_column"`
	IsNullable       bool   `yaml:"nullable"`
	ConstraintName   string `yaml:"constraint"`
}

// ReferencedKey returns the qualified name of the referenced table
func (fk ForeignKey) ReferencedKey() string {
	return TableKey(fk.ReferencedSchema, fk.ReferencedTable)
}

// TableMetadata is an immutable table description with its ordered columns
type TableMetadata struct {
	Schema      string           `yaml:"schema"`
	Name        string           `yaml:"name"`
	Columns     []ColumnMetadata `yaml:"columns"`
	ForeignKeys []ForeignKey     `yaml:"foreign_keys"`
}

// Key returns the qualified table name used as a map key
func (t TableMetadata) Key() string {
	return TableKey(t.Schema, t.Name)
}

// Column looks up a column by case-insensitive name
func (t TableMetadata) Column(name string) (ColumnMetadata, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ColumnMetadata{}, false
}

// ForeignKeyFor returns the foreign key that constrains the named column, if any
func (t TableMetadata) ForeignKeyFor(column string) (ForeignKey, bool) {
	for _, fk := range t.ForeignKeys {
		if strings.EqualFold(fk.Column, column) {
			return fk, true
		}
	}
	return ForeignKey{}, false
}

// TableKey builds the qualified name schema.table, or just table without a schema
func TableKey(schema, table string) string {
	if schema == "" {
		return table
	}
	return schema + "." + table
}

// SchemaInfo represents the analyzed database schema
type SchemaInfo struct {
	Tables         []TableMetadata `yaml:"tables"`
	OrderedTables  []string        `yaml:"-"`
	CircularTables map[string]bool `yaml:"-"`
}

// Table looks up a table by its qualified key
func (s *SchemaInfo) Table(key string) (TableMetadata, bool) {
	for _, t := range s.Tables {
		if t.Key() == key {
			return t, true
		}
	}
	return TableMetadata{}, false
}

// PopulationResult represents the result of the population process
type PopulationResult struct {
	SuccessfulTables []string
	FailedTables     []string
	TotalRecords     int
}
