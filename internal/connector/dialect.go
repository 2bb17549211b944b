package connector

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect names a supported database engine
type Dialect string

const (
	MySQL     Dialect = "mysql"
	Postgres  Dialect = "postgres"
	SQLServer Dialect = "sqlserver"
)

// ParseDialect accepts the dialect names and a few common aliases
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pg", "pgx":
		return Postgres, nil
	case "sqlserver", "mssql", "tsql":
		return SQLServer, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q (want mysql, postgres or sqlserver)", name)
	}
}

// DefaultPort returns the engine's standard port
func (d Dialect) DefaultPort() string {
	switch d {
	case Postgres:
		return "5432"
	case SQLServer:
		return "1433"
	default:
		return "3306"
	}
}

// DefaultSchema is the schema tables live in when none is configured
func (d Dialect) DefaultSchema() string {
	switch d {
	case Postgres:
		return "public"
	case SQLServer:
		return "dbo"
	default:
		return ""
	}
}

// Placeholder returns the bind parameter for the n-th argument, counting from 1
func (d Dialect) Placeholder(n int) string {
	switch d {
	case Postgres:
		return "$" + strconv.Itoa(n)
	case SQLServer:
		return "@p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

// Placeholders returns n comma separated bind parameters starting at from
func (d Dialect) Placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.Placeholder(from + i)
	}
	return strings.Join(parts, ", ")
}

// QuoteIdentifier quotes a table or column name, escaping the quote character
func (d Dialect) QuoteIdentifier(name string) string {
	switch d {
	case Postgres:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	case SQLServer:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
}

// QualifiedTable quotes schema.table, or just the table without a schema
func (d Dialect) QualifiedTable(schema, table string) string {
	if schema == "" {
		return d.QuoteIdentifier(table)
	}
	return d.QuoteIdentifier(schema) + "." + d.QuoteIdentifier(table)
}
