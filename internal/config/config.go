// Package config loads run settings from a YAML file with environment
// fallbacks. Command line flags are applied on top by the caller through
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vitebski/schema-synth/internal/connector"
)

const (
	defaultRows    = 10
	defaultDialect = "mysql"
)

// Config represents the top-level YAML configuration.
type Config struct {
	Source     Database   `yaml:"source"`
	Target     Database   `yaml:"target"`
	Generation Generation `yaml:"generation"`
	SchemaFile string     `yaml:"schema_file"`
}

// Database holds connection parameters for one engine.
type Database struct {
	Dialect  string   `yaml:"dialect"`
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	Database string   `yaml:"database"`
	User     string   `yaml:"user"`
	Password string   `yaml:"password"`
	Schemas  []string `yaml:"schemas"`
}

// Generation tunes how much data is produced and how.
type Generation struct {
	Rows          int      `yaml:"rows"`
	Seed          int64    `yaml:"seed"`
	Workers       int      `yaml:"workers"`
	ExcludeTables []string `yaml:"exclude_tables"`
}

// Override changes a loaded config before environment fallbacks and
// defaults apply. Command line flags are passed in this way.
type Override func(*Config)

// Load reads and parses a YAML config file. An empty path yields a config
// built from the environment alone.
func Load(path string, overrides ...Override) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	for _, override := range overrides {
		override(&cfg)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// applyEnv fills in empty fields from SYNTH_* environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	c.Source.applyEnv("SYNTH_SOURCE_")
	c.Target.applyEnv("SYNTH_TARGET_")

	g := &c.Generation
	if g.Rows == 0 {
		g.Rows = envInt("SYNTH_ROWS")
	}
	if g.Seed == 0 {
		if s := os.Getenv("SYNTH_SEED"); s != "" {
			if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
				g.Seed = seed
			}
		}
	}
	if g.Workers == 0 {
		g.Workers = envInt("SYNTH_WORKERS")
	}
	if len(g.ExcludeTables) == 0 {
		g.ExcludeTables = envList("SYNTH_EXCLUDE_TABLES")
	}
	if c.SchemaFile == "" {
		c.SchemaFile = os.Getenv("SYNTH_SCHEMA_FILE")
	}
}

func (d *Database) applyEnv(prefix string) {
	if d.Dialect == "" {
		d.Dialect = os.Getenv(prefix + "DIALECT")
	}
	if d.Host == "" {
		d.Host = os.Getenv(prefix + "HOST")
	}
	if d.Port == 0 {
		d.Port = envInt(prefix + "PORT")
	}
	if d.Database == "" {
		d.Database = os.Getenv(prefix + "DATABASE")
	}
	if d.User == "" {
		d.User = os.Getenv(prefix + "USER")
	}
	if d.Password == "" {
		d.Password = os.Getenv(prefix + "PASSWORD")
	}
	if len(d.Schemas) == 0 {
		d.Schemas = envList(prefix + "SCHEMAS")
	}
}

// applyDefaults fills what neither the file nor the environment set. An
// unset target is the source itself.
func (c *Config) applyDefaults() {
	if c.Source.Dialect == "" {
		c.Source.Dialect = defaultDialect
	}
	if c.Target.Database == "" && c.Target.Host == "" {
		schemas := c.Target.Schemas
		c.Target = c.Source
		if len(schemas) > 0 {
			c.Target.Schemas = schemas
		}
	}
	if c.Target.Dialect == "" {
		c.Target.Dialect = c.Source.Dialect
	}
	if c.Generation.Rows == 0 {
		c.Generation.Rows = defaultRows
	}
}

// ValidateSource checks what analyze and classify need: a schema file or a
// reachable source database.
func (c *Config) ValidateSource() error {
	if c.SchemaFile != "" {
		return nil
	}
	return c.Source.validate("source")
}

// ValidateTarget checks what inserting generated rows needs.
func (c *Config) ValidateTarget() error {
	if c.Generation.Rows < 0 {
		return fmt.Errorf("generation.rows must not be negative, got %d", c.Generation.Rows)
	}
	if c.Generation.Workers < 0 {
		return fmt.Errorf("generation.workers must not be negative, got %d", c.Generation.Workers)
	}
	return c.Target.validate("target")
}

func (d *Database) validate(name string) error {
	if _, err := connector.ParseDialect(d.Dialect); err != nil {
		return fmt.Errorf("%s.dialect: %w", name, err)
	}
	if d.Database == "" {
		return fmt.Errorf("%s.database is required", name)
	}
	if d.User == "" {
		return fmt.Errorf("%s.user is required", name)
	}
	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("%s.port %d is out of range", name, d.Port)
	}
	return nil
}

// Connector builds a connector for the database. Zero ports take the
// dialect default.
func (d *Database) Connector(logger logrus.FieldLogger) (*connector.DatabaseConnector, error) {
	dialect, err := connector.ParseDialect(d.Dialect)
	if err != nil {
		return nil, err
	}
	port := ""
	if d.Port != 0 {
		port = strconv.Itoa(d.Port)
	}
	return connector.NewDatabaseConnector(dialect, d.Host, port, d.User, d.Password, d.Database, logger), nil
}

// ExcludeSet returns a set of excluded table names for O(1) lookup.
// Names are matched case-insensitively, with or without the schema.
func (c *Config) ExcludeSet() map[string]bool {
	set := make(map[string]bool, len(c.Generation.ExcludeTables))
	for _, t := range c.Generation.ExcludeTables {
		set[strings.ToLower(t)] = true
	}
	return set
}

func envInt(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return n
}

func envList(name string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(name), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsExcluded reports whether a table is listed in generation.exclude_tables
func (c *Config) IsExcluded(schema, table string) bool {
	set := c.ExcludeSet()
	return set[strings.ToLower(table)] || (schema != "" && set[strings.ToLower(schema+"."+table)])
}
