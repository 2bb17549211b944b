package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vitebski/schema-synth/internal/analyzer"
	"github.com/vitebski/schema-synth/internal/classifier"
	"github.com/vitebski/schema-synth/internal/config"
	"github.com/vitebski/schema-synth/internal/connector"
	"github.com/vitebski/schema-synth/internal/generator"
	"github.com/vitebski/schema-synth/internal/orchestrator"
	"github.com/vitebski/schema-synth/internal/populator"
	"github.com/vitebski/schema-synth/internal/randsrc"
	"github.com/vitebski/schema-synth/internal/utils"
	"github.com/vitebski/schema-synth/pkg/models"
)

// flags shared by every command
type options struct {
	configPath string
	envFile    string
	logLevel   string
	schemaFile string

	dialect  string
	host     string
	port     int
	database string
	user     string
	password string
	schemas  []string

	rows    int
	seed    int64
	workers int
	exclude []string
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "schema-synth",
		Short: "Generate realistic synthetic rows for relational database schemas",
		Long: `Schema Synth

Introspects a MySQL, PostgreSQL or SQL Server schema, classifies every
column by its name, type and table, and fills the tables with plausible
values in foreign key order.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&opts.envFile, "env-file", "e", ".env", "Path to .env file")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.schemaFile, "schema-file", "", "Read table metadata from a YAML file instead of the source database")
	flags.StringVar(&opts.dialect, "dialect", "", "Source dialect: mysql, postgres or sqlserver (default: mysql)")
	flags.StringVarP(&opts.host, "host", "H", "", "Source host (default: localhost)")
	flags.IntVarP(&opts.port, "port", "P", 0, "Source port (default: the dialect's port)")
	flags.StringVarP(&opts.database, "database", "d", "", "Source database name")
	flags.StringVarP(&opts.user, "user", "u", "", "Source user")
	flags.StringVarP(&opts.password, "password", "p", "", "Source password")
	flags.StringSliceVar(&opts.schemas, "schemas", nil, "Schemas to analyze (default: the dialect's default schema)")
	flags.IntVarP(&opts.rows, "rows", "r", 0, "Number of rows to generate per table (default: 10)")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Columns generated in parallel (default: one per CPU)")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "Tables to leave out, as table or schema.table")

	rootCmd.AddCommand(analyzeCommand(opts), classifyCommand(opts), generateCommand(opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func analyzeCommand(opts *options) *cobra.Command {
	var writeSchema string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the schema analysis and insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			schemaAnalyzer, source, err := analyze(cfg, logger)
			if err != nil {
				return err
			}
			if source != nil {
				defer source.Disconnect()
			}

			utils.PrintSchemaAnalysis(cmd.OutOrStdout(), schemaAnalyzer)
			if writeSchema != "" {
				if err := analyzer.WriteSchemaFile(writeSchema, schemaAnalyzer.Tables); err != nil {
					return err
				}
				logger.Infof("Wrote %d tables to %s", len(schemaAnalyzer.Tables), writeSchema)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&writeSchema, "write-schema", "", "Save the analyzed tables to a schema file")
	return cmd
}

func classifyCommand(opts *options) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "classify [table...]",
		Short: "Show the generator chosen for every column",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			schemaAnalyzer, source, err := analyze(cfg, logger)
			if err != nil {
				return err
			}
			if source != nil {
				defer source.Disconnect()
			}

			tables := schemaAnalyzer.Tables
			if len(args) > 0 {
				tables = nil
				for _, name := range args {
					table, ok := schemaAnalyzer.Table(name)
					if !ok {
						return fmt.Errorf("table %s not found", name)
					}
					tables = append(tables, table)
				}
			}
			return utils.PrintClassificationReport(cmd.OutOrStdout(), tables, classifier.NewDefault(logger), explain)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "List every matcher's verdict for each column")
	return cmd
}

func generateCommand(opts *options) *cobra.Command {
	var (
		dryRun     bool
		preview    int
		batchSize  int
		verify     bool
		minRecords int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate rows and insert them into the target database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			schemaAnalyzer, source, err := analyze(cfg, logger)
			if err != nil {
				return err
			}
			if source != nil {
				defer source.Disconnect()
			}
			if len(schemaAnalyzer.Tables) == 0 {
				return fmt.Errorf("no tables found to populate")
			}

			orch := newOrchestrator(cfg, logger)
			if dryRun {
				return previewBatches(ctx, cmd, schemaAnalyzer, orch, cfg.Generation.Rows, preview)
			}

			if err := cfg.ValidateTarget(); err != nil {
				return err
			}
			target, err := cfg.Target.Connector(logger)
			if err != nil {
				return err
			}
			if err := target.Connect(); err != nil {
				return fmt.Errorf("connect to target: %w", err)
			}
			defer target.Disconnect()

			dbPopulator := populator.NewDatabasePopulator(target, schemaAnalyzer, orch, cfg.Generation.Rows, logger)
			dbPopulator.BatchSize = batchSize

			logger.Info("Starting database population...")
			success := dbPopulator.PopulateDatabase(ctx)
			result := dbPopulator.Result()
			utils.PrintSummary(cmd.OutOrStdout(), len(schemaAnalyzer.Tables), result)

			verificationSuccess := true
			if verify {
				var emptyTables []string
				var partiallyPopulatedTables map[string]int
				verificationSuccess, emptyTables, partiallyPopulatedTables = utils.VerifyTablePopulation(
					target, schemaAnalyzer.Tables, minRecords, logger,
				)
				utils.PrintVerificationResults(cmd.OutOrStdout(), emptyTables, partiallyPopulatedTables, minRecords)
			}

			if !success {
				return fmt.Errorf("%d tables failed to populate", len(result.FailedTables))
			}
			if !verificationSuccess {
				return fmt.Errorf("verification failed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print generated rows instead of inserting them")
	cmd.Flags().IntVar(&preview, "preview", 5, "Rows per table printed by --dry-run; negative prints all")
	cmd.Flags().IntVar(&batchSize, "batch-size", populator.DefaultBatchSize, "Rows per insert transaction")
	cmd.Flags().BoolVarP(&verify, "verify", "v", false, "Verify that all tables have been populated with the expected number of records")
	cmd.Flags().IntVarP(&minRecords, "min-records", "n", 1, "Minimum number of records each table should have for verification")
	return cmd
}

// load sets up logging and builds the config. Flags that were set win over
// the file and the environment.
func (o *options) load(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	logger := utils.SetupLogging(o.logLevel)
	utils.LoadEnvironmentVariables(o.envFile, logger)

	changed := cmd.Flags().Changed
	cfg, err := config.Load(o.configPath, func(c *config.Config) {
		if changed("schema-file") {
			c.SchemaFile = o.schemaFile
		}
		if changed("dialect") {
			c.Source.Dialect = o.dialect
		}
		if changed("host") {
			c.Source.Host = o.host
		}
		if changed("port") {
			c.Source.Port = o.port
		}
		if changed("database") {
			c.Source.Database = o.database
		}
		if changed("user") {
			c.Source.User = o.user
		}
		if changed("password") {
			c.Source.Password = o.password
		}
		if changed("schemas") {
			c.Source.Schemas = o.schemas
		}
		if changed("rows") {
			c.Generation.Rows = o.rows
		}
		if changed("seed") {
			c.Generation.Seed = o.seed
		}
		if changed("workers") {
			c.Generation.Workers = o.workers
		}
		if changed("exclude") {
			c.Generation.ExcludeTables = o.exclude
		}
	})
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ValidateSource(); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// analyze loads table metadata from the schema file or the source database
// and drops excluded tables. The returned connector is nil for schema files.
func analyze(cfg *config.Config, logger *logrus.Logger) (*analyzer.SchemaAnalyzer, *connector.DatabaseConnector, error) {
	var (
		schemaAnalyzer *analyzer.SchemaAnalyzer
		source         *connector.DatabaseConnector
		tables         []models.TableMetadata
	)

	if cfg.SchemaFile != "" {
		loaded, err := analyzer.LoadSchemaFile(cfg.SchemaFile)
		if err != nil {
			return nil, nil, err
		}
		schemaAnalyzer = analyzer.NewSchemaAnalyzer(nil, cfg.Source.Schemas, logger)
		tables = loaded
		logger.Infof("Loaded %d tables from %s", len(tables), cfg.SchemaFile)
	} else {
		db, err := cfg.Source.Connector(logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Connect(); err != nil {
			return nil, nil, fmt.Errorf("connect to source: %w", err)
		}
		source = db

		schemaAnalyzer = analyzer.NewSchemaAnalyzer(db, cfg.Source.Schemas, logger)
		if err := schemaAnalyzer.AnalyzeSchema(); err != nil {
			db.Disconnect()
			return nil, nil, fmt.Errorf("analyze schema: %w", err)
		}
		tables = schemaAnalyzer.Tables
	}

	kept := make([]models.TableMetadata, 0, len(tables))
	for _, t := range tables {
		if cfg.IsExcluded(t.Schema, t.Name) {
			logger.Infof("Excluding table %s", t.Key())
			continue
		}
		kept = append(kept, t)
	}
	schemaAnalyzer.LoadTables(kept)
	return schemaAnalyzer, source, nil
}

func newOrchestrator(cfg *config.Config, logger *logrus.Logger) *orchestrator.Orchestrator {
	var src *randsrc.Source
	if cfg.Generation.Seed == 0 {
		src = randsrc.NewFromClock()
	} else {
		src = randsrc.New(cfg.Generation.Seed)
	}
	logger.Infof("Using seed %d", src.InitialSeed())

	return orchestrator.New(
		classifier.NewDefault(logger),
		generator.NewDefault(src, logger, generator.Options{}),
		src,
		cfg.Generation.Workers,
		logger,
	)
}

// previewBatches generates every table in insertion order and prints a few
// rows of each without touching a database
func previewBatches(ctx context.Context, cmd *cobra.Command, sa *analyzer.SchemaAnalyzer, orch *orchestrator.Orchestrator, rows, limit int) error {
	ordered, _ := sa.GetTableInsertionOrder()
	for _, key := range ordered {
		table, ok := sa.Table(key)
		if !ok {
			continue
		}
		batch, err := orch.Generate(ctx, table, rows)
		if err != nil {
			return err
		}
		utils.PrintBatchPreview(cmd.OutOrStdout(), batch, limit)
	}
	return nil
}
