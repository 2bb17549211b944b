// Package orchestrator turns table metadata into batches of generated rows.
// It classifies every insertable column, fans generation out per column and
// aligns the results into rows.
package orchestrator

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vitebski/schema-synth/internal/classifier"
	"github.com/vitebski/schema-synth/internal/generator"
	"github.com/vitebski/schema-synth/internal/randsrc"
	"github.com/vitebski/schema-synth/pkg/models"
)

// ColumnPlan is the classification of one insertable column
type ColumnPlan struct {
	Column     models.ColumnMetadata
	Key        string
	Matcher    string
	Unique     bool
	ForeignKey *models.ForeignKey
}

// Orchestrator generates batches for tables, remembering the values of
// earlier batches so that foreign keys can point at them
type Orchestrator struct {
	Classifier *classifier.Classifier
	Generators *generator.Registry
	Source     *randsrc.Source
	Workers    int
	Logger     logrus.FieldLogger

	mu         sync.RWMutex
	references map[string][]models.Value
}

// New creates an orchestrator. workers <= 0 uses one worker per CPU.
func New(c *classifier.Classifier, g *generator.Registry, src *randsrc.Source, workers int, logger logrus.FieldLogger) *Orchestrator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{
		Classifier: c,
		Generators: g,
		Source:     src,
		Workers:    workers,
		Logger:     logger,
		references: make(map[string][]models.Value),
	}
}

// Plan classifies every column that needs a value on insert
func (o *Orchestrator) Plan(table models.TableMetadata) ([]ColumnPlan, error) {
	primaryKeys := 0
	for _, c := range table.Columns {
		if c.IsPrimaryKey {
			primaryKeys++
		}
	}

	var plans []ColumnPlan
	for _, column := range table.Columns {
		if !column.Insertable() {
			continue
		}
		result, err := o.Classifier.Classify(column, table)
		if err != nil {
			return nil, fmt.Errorf("plan %s: %w", table.Key(), err)
		}
		plan := ColumnPlan{
			Column:  column,
			Key:     result.Key,
			Matcher: result.Matcher,
			Unique:  column.IsUnique || (column.IsPrimaryKey && primaryKeys == 1),
		}
		if fk, ok := table.ForeignKeyFor(column.Name); ok {
			plan.ForeignKey = &fk
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Generate produces up to rows rows for the table. The batch holds fewer rows
// when a unique column could not reach the requested count.
func (o *Orchestrator) Generate(ctx context.Context, table models.TableMetadata, rows int) (*Batch, error) {
	plans, err := o.Plan(table)
	if err != nil {
		return nil, err
	}
	batch := &Batch{Table: table, Plans: plans, Columns: make([][]models.Value, len(plans))}
	if rows <= 0 || len(plans) == 0 {
		return batch, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, plan := range plans {
		i, plan := i, plan
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values, err := o.columnValues(plan, rows)
			if err != nil {
				return fmt.Errorf("generate %s: %w", plan.Column.QualifiedName(), err)
			}
			batch.Columns[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.align(batch, rows)
	o.dedupeCompositeKey(batch)
	o.remember(batch)

	o.Logger.WithFields(logrus.Fields{
		"table":   table.Key(),
		"columns": len(plans),
		"rows":    batch.Rows,
	}).Debug("Generated batch")
	return batch, nil
}

// columnValues draws a column from a parent batch when it is a foreign key
// to a table generated earlier in the run, and from its generator otherwise
func (o *Orchestrator) columnValues(plan ColumnPlan, rows int) ([]models.Value, error) {
	if fk := plan.ForeignKey; fk != nil {
		if pool := o.References(fk.ReferencedKey(), fk.ReferencedColumn); len(pool) > 0 {
			return o.sample(pool, rows, plan.Unique), nil
		}
		if plan.Column.IsNullable {
			o.Logger.Warningf("No values for %s.%s yet, leaving %s empty",
				fk.ReferencedKey(), fk.ReferencedColumn, plan.Column.QualifiedName())
			return nullColumn(rows), nil
		}
	}
	return o.Generators.Generate(plan.Key, plan.Column, rows, plan.Unique)
}

// sample draws rows values from a parent pool, without replacement for
// unique columns
func (o *Orchestrator) sample(pool []models.Value, rows int, unique bool) []models.Value {
	rng := o.Source.Rand()
	if unique {
		n := rows
		if n > len(pool) {
			n = len(pool)
		}
		values := make([]models.Value, 0, n)
		for _, i := range rng.Perm(len(pool))[:n] {
			values = append(values, pool[i])
		}
		return values
	}

	values := make([]models.Value, rows)
	for i := range values {
		values[i] = pool[rng.Intn(len(pool))]
	}
	return values
}

func nullColumn(rows int) []models.Value {
	values := make([]models.Value, rows)
	for i := range values {
		values[i] = models.Null()
	}
	return values
}

// align truncates every column to the shortest one, so that a unique column
// that fell short never leaves a row half filled
func (o *Orchestrator) align(batch *Batch, requested int) {
	n := requested
	for _, values := range batch.Columns {
		if len(values) < n {
			n = len(values)
		}
	}
	if n < requested {
		o.Logger.WithFields(logrus.Fields{
			"table":     batch.Table.Key(),
			"requested": requested,
			"produced":  n,
		}).Warn("Unique columns fell short, truncating the batch")
	}
	for i := range batch.Columns {
		batch.Columns[i] = batch.Columns[i][:n]
	}
	batch.Rows = n
}

// dedupeCompositeKey drops rows that repeat a composite primary key
func (o *Orchestrator) dedupeCompositeKey(batch *Batch) {
	var keyColumns []int
	for i, plan := range batch.Plans {
		if plan.Column.IsPrimaryKey {
			keyColumns = append(keyColumns, i)
		}
	}
	if len(keyColumns) < 2 {
		return
	}

	seen := make(map[string]struct{}, batch.Rows)
	keep := make([]int, 0, batch.Rows)
	for row := 0; row < batch.Rows; row++ {
		parts := make([]string, len(keyColumns))
		for j, c := range keyColumns {
			parts[j] = batch.Columns[c][row].Key()
		}
		key := strings.Join(parts, "\x00")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, row)
	}
	if len(keep) == batch.Rows {
		return
	}

	o.Logger.Infof("Dropped %d rows repeating the primary key of %s", batch.Rows-len(keep), batch.Table.Key())
	for c, values := range batch.Columns {
		kept := make([]models.Value, len(keep))
		for j, row := range keep {
			kept[j] = values[row]
		}
		batch.Columns[c] = kept
	}
	batch.Rows = len(keep)
}

func (o *Orchestrator) remember(batch *Batch) {
	for i, plan := range batch.Plans {
		o.AddReferences(batch.Table.Key(), plan.Column.Name, batch.Columns[i])
	}
}

// AddReferences records values that foreign keys to table.column may use.
// Nulls are skipped.
func (o *Orchestrator) AddReferences(table, column string, values []models.Value) {
	key := referenceKey(table, column)
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, v := range values {
		if !v.IsNull() {
			o.references[key] = append(o.references[key], v)
		}
	}
}

// References returns the values recorded for table.column
func (o *Orchestrator) References(table, column string) []models.Value {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.references[referenceKey(table, column)]
}

func referenceKey(table, column string) string {
	return strings.ToLower(table + "." + column)
}

// Forget drops every value recorded for the table
func (o *Orchestrator) Forget(table string) {
	prefix := strings.ToLower(table) + "."
	o.mu.Lock()
	defer o.mu.Unlock()
	for key := range o.references {
		if strings.HasPrefix(key, prefix) {
			delete(o.references, key)
		}
	}
}
