// Package matcher holds the bank of heuristic rules that infer what kind of
// real-world data a column holds.
package matcher

import (
	"strings"

	"github.com/vitebski/schema-synth/internal/naming"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

// Priority bands. Higher bands are evaluated first.
const (
	PriorityTypeDriven = 30
	PriorityHigh       = 20
	PriorityDefault    = 10
	PriorityWeak       = 5
	PriorityFallback   = 0
	PriorityLast       = -100
)

// Matcher is one classification rule. Matches must be pure and must not panic
// on zero-valued metadata.
type Matcher interface {
	Name() string
	Priority() int
	GeneratorKey() string
	Matches(column models.ColumnMetadata, table models.TableMetadata) bool
}

// Dispatcher is a Matcher whose key depends on the owning table rather than
// the column. GeneratorKey reports the first key it can produce.
type Dispatcher interface {
	Matcher
	Resolve(column models.ColumnMetadata, table models.TableMetadata) (string, bool)
	GeneratorKeys() []string
}

// Resolve evaluates m and returns the key it assigns to the column
func Resolve(m Matcher, column models.ColumnMetadata, table models.TableMetadata) (string, bool) {
	if d, ok := m.(Dispatcher); ok {
		return d.Resolve(column, table)
	}
	if m.Matches(column, table) {
		return m.GeneratorKey(), true
	}
	return "", false
}

// KeysOf lists every key m can emit
func KeysOf(m Matcher) []string {
	if d, ok := m.(Dispatcher); ok {
		return d.GeneratorKeys()
	}
	return []string{m.GeneratorKey()}
}

// stopSchemas are schemas whose columns rarely hold personal or address data
var stopSchemas = naming.NewTokenSet(
	"production", "inventory", "log", "logging", "system", "sys", "auth",
	"audit", "config", "configuration", "etl", "staging", "security",
	"metadata", "internal", "queue", "job", "monitoring", "diagnostic",
)

// Rule is a declarative matcher evaluated as a fixed pipeline: type gate,
// length gate, schema stop-list, exclusion tokens and lookalikes, strong
// normalized names, then token heuristics. Rejections always run before
// acceptances.
type Rule struct {
	ID   string
	Key  string
	Rank int

	// type gate: the column passes if its category or its base type name is listed
	Categories []sqltype.Category
	TypeNames  []string

	// length gates, applied to string columns only
	ExactLength int64
	MinLength   int64
	MaxLength   int64

	// StopSchemas rejects columns whose schema tokens hit the stop-list
	StopSchemas bool

	// Exclude rejects columns carrying any of these tokens
	Exclude []string

	// Strong accepts when the normalized column name contains one of these
	Strong []string

	// ungated heuristics
	Tokens   []string
	Combos   [][]string
	Contains []string

	// gated heuristics only accept when the table or schema tokens intersect Context
	Context      []string
	GatedTokens  []string
	GatedCombos  [][]string
	GatedExactly []string

	// Check runs last and may accept on its own
	Check func(column models.ColumnMetadata, table models.TableMetadata) bool
}

// Name returns the rule ID
func (r *Rule) Name() string { return r.ID }

// Priority returns the rule's band
func (r *Rule) Priority() int { return r.Rank }

// GeneratorKey returns the key assigned to accepted columns
func (r *Rule) GeneratorKey() string { return r.Key }

// Matches runs the rule pipeline
func (r *Rule) Matches(column models.ColumnMetadata, table models.TableMetadata) bool {
	if !r.typeAllowed(column.DataType) {
		return false
	}
	if !r.lengthAllowed(column) {
		return false
	}
	if r.StopSchemas && naming.ContextTokens(schemaOf(column, table)).Intersects(stopSchemas) {
		return false
	}

	tokens := naming.ColumnTokens(column.Name)
	if len(r.Exclude) > 0 && tokens.Intersects(naming.NewTokenSet(r.Exclude...)) {
		return false
	}

	normalized := naming.Normalize(column.Name)
	if r.lookalike(normalized) {
		return false
	}
	for _, strong := range r.Strong {
		if strings.Contains(normalized, strong) {
			return true
		}
	}

	if acceptsTokens(tokens, normalized, r.Tokens, r.Combos, r.Contains) {
		return true
	}

	if len(r.Context) > 0 && (len(r.GatedTokens) > 0 || len(r.GatedCombos) > 0 || len(r.GatedExactly) > 0) {
		if inContext(column, table, r.Context...) {
			if acceptsTokens(tokens, normalized, r.GatedTokens, r.GatedCombos, nil) {
				return true
			}
			for _, exact := range r.GatedExactly {
				if normalized == exact {
					return true
				}
			}
		}
	}

	if r.Check != nil {
		return r.Check(column, table)
	}
	return false
}

// lookalike reports whether the normalized name carries an excluded word that
// embeds a Contains fragment, "capacityinfo" for "city"
func (r *Rule) lookalike(normalized string) bool {
	for _, fragment := range r.Contains {
		for _, excluded := range r.Exclude {
			if len(excluded) > len(fragment) && strings.Contains(excluded, fragment) && strings.Contains(normalized, excluded) {
				return true
			}
		}
	}
	return false
}

func (r *Rule) typeAllowed(dataType string) bool {
	if len(r.Categories) == 0 && len(r.TypeNames) == 0 {
		return true
	}
	if sqltype.Is(dataType, r.Categories...) {
		return true
	}
	return len(r.TypeNames) > 0 && sqltype.IsNamed(dataType, r.TypeNames...)
}

func (r *Rule) lengthAllowed(column models.ColumnMetadata) bool {
	if !sqltype.Is(column.DataType, sqltype.String) {
		return true
	}
	if r.ExactLength > 0 && column.MaxLength != r.ExactLength {
		return false
	}
	if r.MinLength > 0 && column.HasMaxLength() && column.MaxLength < r.MinLength {
		return false
	}
	if r.MaxLength > 0 && (column.IsUnboundedLength() || column.MaxLength > r.MaxLength) {
		return false
	}
	return true
}

func acceptsTokens(tokens naming.TokenSet, normalized string, single []string, combos [][]string, contains []string) bool {
	for _, t := range single {
		if tokens.Has(t) {
			return true
		}
	}
	for _, combo := range combos {
		if tokens.HasAll(combo...) {
			return true
		}
	}
	for _, c := range contains {
		if strings.Contains(normalized, c) {
			return true
		}
	}
	return false
}

// schemaOf prefers the table's schema and falls back to the column's
func schemaOf(column models.ColumnMetadata, table models.TableMetadata) string {
	if table.Schema != "" {
		return table.Schema
	}
	return column.Schema
}

func tableOf(column models.ColumnMetadata, table models.TableMetadata) string {
	if table.Name != "" {
		return table.Name
	}
	return column.Table
}

// inContext reports whether the owning table or schema carries any of the words
func inContext(column models.ColumnMetadata, table models.TableMetadata, words ...string) bool {
	return naming.ContextTokens(schemaOf(column, table), tableOf(column, table)).Intersects(naming.NewTokenSet(words...))
}

// tableInContext only looks at the table name
func tableInContext(column models.ColumnMetadata, table models.TableMetadata, words ...string) bool {
	return naming.ContextTokens(tableOf(column, table)).Intersects(naming.NewTokenSet(words...))
}
