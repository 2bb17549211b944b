package connector

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"
)

// DatabaseConnector handles database connection and query execution
type DatabaseConnector struct {
	Dialect  Dialect
	Host     string
	Port     string
	User     string
	Password string
	Database string
	DB       *sql.DB
	Logger   logrus.FieldLogger
}

// NewDatabaseConnector creates a new database connector. An empty port
// falls back to the dialect's default.
func NewDatabaseConnector(dialect Dialect, host, port, user, password, database string, logger logrus.FieldLogger) *DatabaseConnector {
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = dialect.DefaultPort()
	}
	return &DatabaseConnector{
		Dialect:  dialect,
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		Database: database,
		Logger:   logger,
	}
}

// NewWithDB wraps an already open handle
func NewWithDB(dialect Dialect, db *sql.DB, logger logrus.FieldLogger) *DatabaseConnector {
	return &DatabaseConnector{Dialect: dialect, DB: db, Logger: logger}
}

// Connect establishes a connection to the database
func (dc *DatabaseConnector) Connect() error {
	if dc.Database == "" {
		return fmt.Errorf("database name must be provided for %s", dc.Dialect)
	}

	db, err := dc.open()
	if err != nil {
		dc.Logger.Errorf("Error connecting to %s database: %v", dc.Dialect, err)
		return err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		dc.Logger.Errorf("Error pinging %s database: %v", dc.Dialect, err)
		return fmt.Errorf("ping %s: %w", dc.Dialect, err)
	}

	dc.DB = db
	dc.Logger.Infof("Connected to %s database: %s", dc.Dialect, dc.Database)
	return nil
}

func (dc *DatabaseConnector) open() (*sql.DB, error) {
	addr := net.JoinHostPort(dc.Host, dc.Port)

	switch dc.Dialect {
	case MySQL:
		cfg := mysql.NewConfig()
		cfg.User = dc.User
		cfg.Passwd = dc.Password
		cfg.Net = "tcp"
		cfg.Addr = addr
		cfg.DBName = dc.Database
		cfg.ParseTime = true
		conn, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("mysql config: %w", err)
		}
		return sql.OpenDB(conn), nil

	case Postgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(dc.User, dc.Password),
			Host:   addr,
			Path:   "/" + dc.Database,
		}
		cfg, err := pgx.ParseConfig(u.String())
		if err != nil {
			return nil, fmt.Errorf("postgres config: %w", err)
		}
		return stdlib.OpenDB(*cfg), nil

	case SQLServer:
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(dc.User, dc.Password),
			Host:     addr,
			RawQuery: url.Values{"database": {dc.Database}}.Encode(),
		}
		conn, err := mssql.NewConnector(u.String())
		if err != nil {
			return nil, fmt.Errorf("sqlserver config: %w", err)
		}
		return sql.OpenDB(conn), nil

	default:
		return nil, fmt.Errorf("unsupported dialect %q", dc.Dialect)
	}
}

// Disconnect closes the database connection
func (dc *DatabaseConnector) Disconnect() {
	if dc.DB != nil {
		if err := dc.DB.Close(); err != nil {
			dc.Logger.Errorf("Error closing database connection: %v", err)
		} else {
			dc.Logger.Infof("%s connection closed", dc.Dialect)
		}
	}
}

func (dc *DatabaseConnector) ensureConnected() error {
	if dc.DB == nil {
		return dc.Connect()
	}
	return nil
}

// ExecuteQuery executes a SQL query and returns the results
func (dc *DatabaseConnector) ExecuteQuery(query string, params ...interface{}) ([]map[string]interface{}, error) {
	if err := dc.ensureConnected(); err != nil {
		return nil, err
	}

	rows, err := dc.DB.Query(query, params...)
	if err != nil {
		dc.Logger.Errorf("Error executing query: %v", err)
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			dc.Logger.Errorf("Error scanning row: %v", err)
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			// text comes back as []byte from the mysql driver
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		dc.Logger.Errorf("Error iterating rows: %v", err)
		return nil, fmt.Errorf("rows: %w", err)
	}
	return results, nil
}

// ExecuteStatement executes a SQL statement and returns the number of affected rows
func (dc *DatabaseConnector) ExecuteStatement(query string, params ...interface{}) (int64, error) {
	if err := dc.ensureConnected(); err != nil {
		return 0, err
	}

	result, err := dc.DB.Exec(query, params...)
	if err != nil {
		dc.Logger.Errorf("Error executing statement: %v", err)
		return 0, fmt.Errorf("exec: %w", err)
	}
	return result.RowsAffected()
}

// ExecuteMany executes a SQL statement once per parameter set inside one
// transaction. Nothing is committed if any execution fails.
func (dc *DatabaseConnector) ExecuteMany(query string, paramsList [][]interface{}) (int64, error) {
	if err := dc.ensureConnected(); err != nil {
		return 0, err
	}

	tx, err := dc.DB.Begin()
	if err != nil {
		dc.Logger.Errorf("Error starting transaction: %v", err)
		return 0, fmt.Errorf("begin: %w", err)
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		dc.Logger.Errorf("Error preparing statement: %v", err)
		tx.Rollback()
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	var totalAffected int64
	for _, params := range paramsList {
		result, err := stmt.Exec(params...)
		if err != nil {
			dc.Logger.Errorf("Error executing batch statement: %v", err)
			tx.Rollback()
			return 0, fmt.Errorf("exec batch: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		totalAffected += affected
	}

	if err := tx.Commit(); err != nil {
		dc.Logger.Errorf("Error committing transaction: %v", err)
		return 0, fmt.Errorf("commit: %w", err)
	}
	return totalAffected, nil
}
