package analyzer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitebski/schema-synth/pkg/models"
)

// schemaFile is the on-disk form of an analyzed schema
type schemaFile struct {
	Tables []models.TableMetadata `yaml:"tables"`
}

// LoadSchemaFile reads table metadata from a YAML file in place of live
// introspection. Column schema and table fields default from the table.
func LoadSchemaFile(path string) ([]models.TableMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse schema file %s: %w", path, err)
	}

	for i := range file.Tables {
		t := &file.Tables[i]
		if t.Name == "" {
			return nil, fmt.Errorf("schema file %s: table %d has no name", path, i+1)
		}
		for j := range t.Columns {
			c := &t.Columns[j]
			if c.Schema == "" {
				c.Schema = t.Schema
			}
			if c.Table == "" {
				c.Table = t.Name
			}
			if c.Ordinal == 0 {
				c.Ordinal = j + 1
			}
		}
		for j := range t.ForeignKeys {
			fk := &t.ForeignKeys[j]
			if fk.Schema == "" {
				fk.Schema = t.Schema
			}
			if fk.Table == "" {
				fk.Table = t.Name
			}
			if fk.ReferencedSchema == "" {
				fk.ReferencedSchema = t.Schema
			}
			if c, ok := t.Column(fk.Column); ok {
				fk.IsNullable = c.IsNullable
			}
		}
	}
	return file.Tables, nil
}

// WriteSchemaFile saves tables in the format LoadSchemaFile reads
func WriteSchemaFile(path string, tables []models.TableMetadata) error {
	data, err := yaml.Marshal(schemaFile{Tables: tables})
	if err != nil {
		return fmt.Errorf("encode schema file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
