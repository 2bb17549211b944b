// Package classifier assigns a generator key to every column by running the
// matcher bank from the highest priority band down.
package classifier

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vitebski/schema-synth/internal/matcher"
	"github.com/vitebski/schema-synth/pkg/models"
)

// ErrNoMatch is returned when no matcher accepts a column. The default bank
// always ends in a catch-all, so only custom banks can produce it.
var ErrNoMatch = errors.New("no matcher accepted the column")

// Result is the outcome of classifying one column
type Result struct {
	Key      string
	Matcher  string
	Priority int
}

// Classifier evaluates an ordered matcher bank
type Classifier struct {
	matchers []matcher.Matcher
	logger   logrus.FieldLogger
}

// New orders matchers by descending priority. Matchers sharing a priority
// keep the order they were passed in, which makes registration order the
// tie-break.
func New(logger logrus.FieldLogger, matchers ...matcher.Matcher) *Classifier {
	ordered := make([]matcher.Matcher, len(matchers))
	copy(ordered, matchers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() > ordered[j].Priority()
	})
	return &Classifier{matchers: ordered, logger: logger}
}

// NewDefault builds a classifier over the full default bank
func NewDefault(logger logrus.FieldLogger) *Classifier {
	return New(logger, matcher.DefaultBank()...)
}

// Matchers returns the bank in evaluation order
func (c *Classifier) Matchers() []matcher.Matcher {
	out := make([]matcher.Matcher, len(c.matchers))
	copy(out, c.matchers)
	return out
}

// Classify returns the key chosen by the first accepting matcher
func (c *Classifier) Classify(column models.ColumnMetadata, table models.TableMetadata) (Result, error) {
	for _, m := range c.matchers {
		key, ok := matcher.Resolve(m, column, table)
		if !ok {
			continue
		}
		c.logger.WithFields(logrus.Fields{
			"column":  column.QualifiedName(),
			"key":     key,
			"matcher": m.Name(),
		}).Debug("Classified column")
		return Result{Key: key, Matcher: m.Name(), Priority: m.Priority()}, nil
	}
	return Result{}, ErrNoMatch
}

// Candidate is one matcher's verdict in an explanation
type Candidate struct {
	Matcher  string
	Priority int
	Key      string
	Accepted bool
}

// Explain evaluates every matcher against the column without stopping at the
// first acceptance. Candidates come back in evaluation order.
func (c *Classifier) Explain(column models.ColumnMetadata, table models.TableMetadata) []Candidate {
	candidates := make([]Candidate, 0, len(c.matchers))
	for _, m := range c.matchers {
		key, ok := matcher.Resolve(m, column, table)
		if !ok {
			key = m.GeneratorKey()
		}
		candidates = append(candidates, Candidate{
			Matcher:  m.Name(),
			Priority: m.Priority(),
			Key:      key,
			Accepted: ok,
		})
	}
	return candidates
}

// ClassifyTable classifies every column of a table in column order
func (c *Classifier) ClassifyTable(table models.TableMetadata) ([]Result, error) {
	results := make([]Result, 0, len(table.Columns))
	for _, col := range table.Columns {
		r, err := c.Classify(col, table)
		if err != nil {
			return nil, fmt.Errorf("classify %s: %w", col.QualifiedName(), err)
		}
		results = append(results, r)
	}
	return results, nil
}

// Keys lists every generator key the bank can emit, without duplicates
func (c *Classifier) Keys() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.matchers {
		for _, k := range matcher.KeysOf(m) {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}
