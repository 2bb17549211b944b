package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vitebski/schema-synth/internal/analyzer"
	"github.com/vitebski/schema-synth/internal/classifier"
	"github.com/vitebski/schema-synth/internal/connector"
	"github.com/vitebski/schema-synth/internal/orchestrator"
	"github.com/vitebski/schema-synth/pkg/models"
)

// SetupLogging configures the logging system. Logs go to stderr so that
// reports and previews on stdout stay clean.
func SetupLogging(logLevel string) *logrus.Logger {
	logger := logrus.New()

	// Get log level from environment variable or parameter
	levelStr := logLevel
	if levelStr == "" {
		levelStr = os.Getenv("SYNTH_LOG_LEVEL")
		if levelStr == "" {
			levelStr = "info"
		}
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)

	logger.Debugf("Logging configured with level: %s", level)
	return logger
}

// LoadEnvironmentVariables loads environment variables from .env file.
// It returns false when the source connection is still incomplete.
func LoadEnvironmentVariables(envFile string, logger *logrus.Logger) bool {
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		sampleEnvFile := envFile + ".sample"
		if _, err := os.Stat(sampleEnvFile); err == nil {
			logger.Infof("No %s file found, but %s exists. Consider copying %s to %s and updating it.",
				envFile, sampleEnvFile, sampleEnvFile, envFile)
		}
	}

	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			logger.Warningf("Error loading %s file: %v", envFile, err)
		} else {
			logger.Infof("Loaded environment variables from %s", envFile)
		}
	} else {
		logger.Debugf("No %s file found, using existing environment variables", envFile)
	}

	requiredVars := []string{"SYNTH_SOURCE_USER", "SYNTH_SOURCE_DATABASE"}
	var missingVars []string
	for _, v := range requiredVars {
		if os.Getenv(v) == "" {
			missingVars = append(missingVars, v)
		}
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		for _, env := range os.Environ() {
			if !strings.HasPrefix(env, "SYNTH_") {
				continue
			}
			parts := strings.SplitN(env, "=", 2)
			if len(parts) != 2 {
				continue
			}
			if strings.HasSuffix(parts[0], "_PASSWORD") {
				logger.Debugf("%s=********", parts[0])
			} else {
				logger.Debugf("%s=%s", parts[0], parts[1])
			}
		}
	}

	if len(missingVars) > 0 {
		logger.Debugf("Environment does not set: %s", strings.Join(missingVars, ", "))
		return false
	}
	return true
}

// GetEnvInt gets an integer value from environment variable
func GetEnvInt(varName string, defaultValue int) int {
	value := os.Getenv(varName)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// PrintSummary prints a summary of the population process
func PrintSummary(w io.Writer, tables int, result models.PopulationResult) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(w, "DATABASE POPULATION SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Total tables processed: %d\n", tables)
	fmt.Fprintf(w, "Successfully populated tables: %d\n", len(result.SuccessfulTables))
	fmt.Fprintf(w, "Failed tables: %d\n", len(result.FailedTables))
	fmt.Fprintf(w, "Total records inserted: %s\n", humanize.Comma(int64(result.TotalRecords)))

	if len(result.FailedTables) > 0 {
		fmt.Fprintln(w, "\nFailed tables:")
		for _, table := range result.FailedTables {
			fmt.Fprintf(w, "  - %s\n", table)
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", 50))
}

// PrintSchemaAnalysis prints a detailed analysis of the database schema
func PrintSchemaAnalysis(w io.Writer, schemaAnalyzer *analyzer.SchemaAnalyzer) {
	tables := schemaAnalyzer.Tables
	manyToManyTables := schemaAnalyzer.ManyToManyTables
	orderedTables, circularTables := schemaAnalyzer.GetTableInsertionOrder()

	columns, withForeignKeys := 0, 0
	for _, t := range tables {
		columns += len(t.Columns)
		if len(t.ForeignKeys) > 0 {
			withForeignKeys++
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintln(w, "DATABASE SCHEMA ANALYSIS REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	fmt.Fprintln(w, "\n1. BASIC STATISTICS")
	fmt.Fprintf(w, "   Total tables: %d\n", len(tables))
	fmt.Fprintf(w, "   Total columns: %s\n", humanize.Comma(int64(columns)))
	fmt.Fprintf(w, "   Tables with foreign keys: %d\n", withForeignKeys)
	fmt.Fprintf(w, "   Many-to-many relationship tables: %d\n", len(manyToManyTables))
	fmt.Fprintf(w, "   Tables in circular dependencies: %d\n", len(circularTables))

	var standalone, dependent int
	for _, t := range tables {
		switch {
		case circularTables[t.Key()] || manyToManyTables[t.Key()]:
		case len(t.ForeignKeys) == 0:
			standalone++
		default:
			dependent++
		}
	}

	fmt.Fprintln(w, "\n2. TABLE CATEGORIES")
	fmt.Fprintf(w, "   Standalone tables (no foreign keys): %d\n", standalone)
	fmt.Fprintf(w, "   Dependent tables (with foreign keys, no circular deps): %d\n", dependent)
	fmt.Fprintf(w, "   Many-to-many tables: %d\n", len(manyToManyTables))
	fmt.Fprintf(w, "   Tables in circular dependencies: %d\n", len(circularTables))

	if len(circularTables) > 0 {
		fmt.Fprintln(w, "\n3. CIRCULAR DEPENDENCIES")
		fmt.Fprintf(w, "   Tables involved: %s\n", strings.Join(sortedKeys(circularTables), ", "))
		fmt.Fprintln(w, "\n   Direct circular dependencies:")
		for _, t := range tables {
			for _, fk := range t.ForeignKeys {
				parent := fk.ReferencedKey()
				if parent != t.Key() && circularTables[t.Key()] && circularTables[parent] {
					fmt.Fprintf(w, "     %s.%s -> %s\n", t.Key(), fk.Column, parent)
				}
			}
		}
	}

	if len(manyToManyTables) > 0 {
		fmt.Fprintln(w, "\n4. MANY-TO-MANY RELATIONSHIP TABLES")
		fmt.Fprintf(w, "   Tables: %s\n", strings.Join(sortedKeys(manyToManyTables), ", "))
	}

	fmt.Fprintln(w, "\n5. RECOMMENDED TABLE INSERTION ORDER")
	for i, key := range orderedTables {
		category := "Standalone"
		t, _ := schemaAnalyzer.Table(key)
		if manyToManyTables[key] {
			category = "Many-to-Many"
		} else if circularTables[key] {
			category = "Circular"
		} else if len(t.ForeignKeys) > 0 {
			category = "Dependent"
		}
		fmt.Fprintf(w, "   %3d. %s (%s)\n", i+1, key, category)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
}

// PrintClassificationReport lists the generator chosen for every column.
// With explain set, each column is followed by every matcher's verdict.
func PrintClassificationReport(w io.Writer, tables []models.TableMetadata, c *classifier.Classifier, explain bool) error {
	for _, t := range tables {
		fmt.Fprintf(w, "\n%s\n", t.Key())
		for _, column := range t.Columns {
			if !column.Insertable() {
				fmt.Fprintf(w, "  %-32s %-18s (generated by the database)\n", column.Name, column.DataType)
				continue
			}
			result, err := c.Classify(column, t)
			if err != nil {
				return fmt.Errorf("classify %s: %w", column.QualifiedName(), err)
			}
			fmt.Fprintf(w, "  %-32s %-18s %-22s %s\n", column.Name, column.DataType, result.Key, result.Matcher)

			if !explain {
				continue
			}
			for _, candidate := range c.Explain(column, t) {
				mark := " "
				if candidate.Accepted {
					mark = "*"
				}
				fmt.Fprintf(w, "      %s %4d %-28s %s\n", mark, candidate.Priority, candidate.Matcher, candidate.Key)
			}
		}
	}
	return nil
}

// PrintBatchPreview prints up to limit generated rows of a batch
func PrintBatchPreview(w io.Writer, batch *orchestrator.Batch, limit int) {
	fmt.Fprintf(w, "\n%s (%s rows)\n", batch.Table.Key(), humanize.Comma(int64(batch.Rows)))
	if len(batch.Plans) == 0 {
		fmt.Fprintln(w, "  no insertable columns")
		return
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(batch.ColumnNames(), " | "))

	rows := batch.Rows
	if limit >= 0 && rows > limit {
		rows = limit
	}
	for i := 0; i < rows; i++ {
		row := batch.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cells, " | "))
	}
	if rows < batch.Rows {
		fmt.Fprintf(w, "  ... %s more\n", humanize.Comma(int64(batch.Rows-rows)))
	}
}

// VerifyTablePopulation verifies that all tables have at least the minimum number of records
func VerifyTablePopulation(db *connector.DatabaseConnector, tables []models.TableMetadata, minRecords int, logger logrus.FieldLogger) (bool, []string, map[string]int) {
	logger.Infof("Verifying that all tables have at least %d record(s)...", minRecords)

	emptyTables := []string{}
	partiallyPopulatedTables := make(map[string]int)

	for _, table := range tables {
		key := table.Key()
		query := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", db.Dialect.QualifiedTable(table.Schema, table.Name))
		result, err := db.ExecuteQuery(query)
		if err != nil {
			logger.Warningf("Could not verify record count for table: %s", key)
			emptyTables = append(emptyTables, key)
			continue
		}

		if len(result) == 0 {
			logger.Warningf("No result returned for count query on table: %s", key)
			emptyTables = append(emptyTables, key)
			continue
		}

		count, err := strconv.ParseInt(fmt.Sprintf("%v", result[0]["count"]), 10, 64)
		if err != nil {
			logger.Warningf("Could not parse count for table %s: %v", key, err)
			emptyTables = append(emptyTables, key)
			continue
		}

		if count == 0 {
			logger.Warningf("Table %s has no records", key)
			emptyTables = append(emptyTables, key)
		} else if count < int64(minRecords) {
			logger.Warningf("Table %s has only %d/%d expected records", key, count, minRecords)
			partiallyPopulatedTables[key] = int(count)
		}
	}

	success := len(emptyTables) == 0 && len(partiallyPopulatedTables) == 0

	if success {
		logger.Info("Verification successful: All tables have at least the minimum number of records")
	} else {
		if len(emptyTables) > 0 {
			logger.Errorf("Verification failed: %d tables have no records", len(emptyTables))
		}
		if len(partiallyPopulatedTables) > 0 {
			logger.Errorf("Verification failed: %d tables are partially populated", len(partiallyPopulatedTables))
		}
	}

	return success, emptyTables, partiallyPopulatedTables
}

// PrintVerificationResults prints the results of the table population verification
func PrintVerificationResults(w io.Writer, emptyTables []string, partiallyPopulatedTables map[string]int, minRecords int) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(w, "TABLE POPULATION VERIFICATION RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	if len(emptyTables) == 0 && len(partiallyPopulatedTables) == 0 {
		fmt.Fprintf(w, "✅ All tables have at least %d record(s)\n", minRecords)
		fmt.Fprintln(w, strings.Repeat("=", 50))
		return
	}

	if len(emptyTables) > 0 {
		fmt.Fprintf(w, "❌ %d tables have no records:\n", len(emptyTables))
		for _, table := range emptyTables {
			fmt.Fprintf(w, "  - %s\n", table)
		}
		fmt.Fprintln(w)
	}

	if len(partiallyPopulatedTables) > 0 {
		fmt.Fprintf(w, "⚠️  %d tables are partially populated:\n", len(partiallyPopulatedTables))
		for _, table := range sortedCounts(partiallyPopulatedTables) {
			fmt.Fprintf(w, "  - %s: %d/%d records\n", table, partiallyPopulatedTables[table], minRecords)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 50))
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func sortedCounts(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
