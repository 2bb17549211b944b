package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitebski/schema-synth/internal/connector"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
source:
  dialect: sqlserver
  host: db.internal
  database: AdventureWorks
  user: sa
  password: secret
  schemas: [Person, Sales]
target:
  dialect: postgres
  host: pg.internal
  port: 6432
  database: synth
  user: writer
generation:
  rows: 250
  seed: 42
  workers: 4
  exclude_tables: [dbo.ErrorLog, AWBuildVersion]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlserver", cfg.Source.Dialect)
	assert.Equal(t, []string{"Person", "Sales"}, cfg.Source.Schemas)
	assert.Equal(t, 6432, cfg.Target.Port)
	assert.Equal(t, 250, cfg.Generation.Rows)
	assert.Equal(t, int64(42), cfg.Generation.Seed)
	assert.Equal(t, 4, cfg.Generation.Workers)

	assert.True(t, cfg.IsExcluded("dbo", "ErrorLog"))
	assert.True(t, cfg.IsExcluded("dbo", "awbuildversion"))
	assert.False(t, cfg.IsExcluded("Person", "ErrorLog"))

	require.NoError(t, cfg.ValidateSource())
	require.NoError(t, cfg.ValidateTarget())
}

func TestEnvironmentFallback(t *testing.T) {
	t.Setenv("SYNTH_SOURCE_DIALECT", "postgres")
	t.Setenv("SYNTH_SOURCE_HOST", "env-host")
	t.Setenv("SYNTH_SOURCE_DATABASE", "env-db")
	t.Setenv("SYNTH_SOURCE_USER", "env-user")
	t.Setenv("SYNTH_SOURCE_SCHEMAS", "public, sales ,")
	t.Setenv("SYNTH_ROWS", "33")
	t.Setenv("SYNTH_SEED", "7")

	path := writeConfig(t, `
source:
  host: file-host
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-host", cfg.Source.Host, "file values win over the environment")
	assert.Equal(t, "env-db", cfg.Source.Database)
	assert.Equal(t, "postgres", cfg.Source.Dialect)
	assert.Equal(t, []string{"public", "sales"}, cfg.Source.Schemas)
	assert.Equal(t, 33, cfg.Generation.Rows)
	assert.Equal(t, int64(7), cfg.Generation.Seed)

	// no target configured: write back to the source
	assert.Equal(t, cfg.Source, cfg.Target)
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Source.Dialect)
	assert.Equal(t, "mysql", cfg.Target.Dialect)
	assert.Equal(t, defaultRows, cfg.Generation.Rows)

	assert.Error(t, cfg.ValidateSource(), "a source database is required")

	cfg.SchemaFile = "schema.yaml"
	assert.NoError(t, cfg.ValidateSource(), "a schema file replaces the source")
}

func TestValidation(t *testing.T) {
	base := Database{Dialect: "mysql", Database: "shop", User: "root"}

	tests := []struct {
		name   string
		mutate func(d *Database)
	}{
		{"dialect", func(d *Database) { d.Dialect = "oracle" }},
		{"database", func(d *Database) { d.Database = "" }},
		{"user", func(d *Database) { d.User = "" }},
		{"port", func(d *Database) { d.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			assert.Error(t, d.validate("source"))
		})
	}
	assert.NoError(t, base.validate("source"))

	cfg := &Config{Target: base, Generation: Generation{Rows: -1}}
	assert.Error(t, cfg.ValidateTarget())
}

func TestConnector(t *testing.T) {
	d := Database{Dialect: "pg", Host: "h", Database: "db", User: "u"}
	dc, err := d.Connector(nil)
	require.NoError(t, err)
	assert.Equal(t, connector.Postgres, dc.Dialect)
	assert.Equal(t, "5432", dc.Port)

	d.Port = 6543
	dc, err = d.Connector(nil)
	require.NoError(t, err)
	assert.Equal(t, "6543", dc.Port)

	_, err = (&Database{Dialect: "db2"}).Connector(nil)
	assert.Error(t, err)
}

func TestBadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "source: [unclosed"))
	assert.Error(t, err)
}

func TestOverridesWinOverFileAndEnvironment(t *testing.T) {
	t.Setenv("SYNTH_SOURCE_USER", "env-user")
	path := writeConfig(t, `
source:
  host: file-host
  database: shop
generation:
  rows: 5
`)
	cfg, err := Load(path, func(c *Config) {
		c.Source.Host = "flag-host"
		c.Generation.Rows = 50
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-host", cfg.Source.Host)
	assert.Equal(t, "env-user", cfg.Source.User)
	assert.Equal(t, 50, cfg.Generation.Rows)
	assert.Equal(t, "flag-host", cfg.Target.Host, "the target follows the overridden source")
}
