package generator

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

const (
	// defaultNullRate applies to nullable columns on the plain path
	defaultNullRate = 0.10

	// minAttempts is the floor of the unique path retry budget
	minAttempts = 100

	// attemptFactor multiplies the unique target into the retry budget
	attemptFactor = 10

	// Unbounded marks a domain too large to cap a unique request
	Unbounded int64 = math.MaxInt64
)

type drawFunc func(column models.ColumnMetadata) (models.Value, error)

// strategy is the shared implementation behind every registered generator.
// The generator supplies a draw function and optionally a domain size; the
// sampling contract lives here.
type strategy struct {
	key      string
	env      *env
	nullRate float64

	// accepts lists the categories the generator handles. typeNames admits
	// engine types that fall outside every category, such as inet.
	accepts   []sqltype.Category
	typeNames []string

	// domain returns the number of distinct values the generator can produce
	// for the column. nil means Unbounded.
	domain func(column models.ColumnMetadata) int64

	draw drawFunc

	// shape post-processes each drawn value. nil means plain truncation.
	shape func(column models.ColumnMetadata, v models.Value) models.Value
}

func (s *strategy) Key() string { return s.key }

// Generate implements Strategy
func (s *strategy) Generate(column models.ColumnMetadata, count int, unique bool) ([]models.Value, error) {
	if err := s.checkType(column); err != nil {
		return nil, err
	}
	if count <= 0 {
		return []models.Value{}, nil
	}
	if unique {
		return s.generateUnique(column, count)
	}
	return s.generatePlain(column, count)
}

func (s *strategy) checkType(column models.ColumnMetadata) error {
	if len(s.accepts) == 0 && len(s.typeNames) == 0 {
		return nil
	}
	if sqltype.Is(column.DataType, s.accepts...) || sqltype.IsNamed(column.DataType, s.typeNames...) {
		return nil
	}
	return fmt.Errorf("%w: %s cannot generate %q for %s", ErrUnsupportedType, s.key, column.DataType, column.QualifiedName())
}

func (s *strategy) generatePlain(column models.ColumnMetadata, count int) ([]models.Value, error) {
	values := make([]models.Value, 0, count)
	for i := 0; i < count; i++ {
		if column.IsNullable && s.env.rng.Float64() < s.nullRate {
			values = append(values, models.Null())
			continue
		}
		v, err := s.next(column)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *strategy) generateUnique(column models.ColumnMetadata, count int) ([]models.Value, error) {
	fields := logrus.Fields{
		"generator": s.key,
		"table":     column.Table,
		"column":    column.Name,
		"requested": count,
	}

	target := int64(count)
	if theoreticalMax := s.theoreticalMax(column); theoreticalMax < target {
		s.env.logger.WithFields(fields).WithField("max", theoreticalMax).
			Info("Unique request exceeds the value domain, capping")
		target = theoreticalMax
	}
	if target <= 0 {
		return []models.Value{}, nil
	}

	maxAttempts := target * attemptFactor
	if maxAttempts < minAttempts {
		maxAttempts = minAttempts
	}

	seen := make(map[string]struct{}, target)
	values := make([]models.Value, 0, target)
	for attempt := int64(0); attempt < maxAttempts && int64(len(values)) < target; attempt++ {
		v, err := s.next(column)
		if err != nil {
			return nil, err
		}
		key := v.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, v)
	}

	if int64(len(values)) < target {
		s.env.logger.WithFields(fields).WithField("produced", len(values)).
			Warn("Could not reach the unique target, returning a partial set")
	}
	return values, nil
}

func (s *strategy) theoreticalMax(column models.ColumnMetadata) int64 {
	if s.domain == nil {
		return Unbounded
	}
	return s.domain(column)
}

func (s *strategy) next(column models.ColumnMetadata) (models.Value, error) {
	v, err := s.draw(column)
	if err != nil {
		return models.Value{}, fmt.Errorf("%s: %w", s.key, err)
	}
	if s.shape != nil {
		return s.shape(column, v), nil
	}
	return truncate(column, v), nil
}

// truncate cuts text values to the declared length
func truncate(column models.ColumnMetadata, v models.Value) models.Value {
	text, ok := v.AsText()
	if !ok || v.Kind() != models.KindText || !column.HasMaxLength() {
		return v
	}
	return models.Text(truncateString(text, column.MaxLength))
}

// truncateEmail shortens the local part and keeps the @domain suffix. When
// even the domain does not fit it falls back to plain truncation.
func truncateEmail(column models.ColumnMetadata, v models.Value) models.Value {
	text, ok := v.AsText()
	if !ok || !column.HasMaxLength() || int64(utf8.RuneCountInString(text)) <= column.MaxLength {
		return v
	}
	at := strings.LastIndexByte(text, '@')
	if at <= 0 {
		return truncate(column, v)
	}
	local, domain := text[:at], text[at:]
	room := column.MaxLength - int64(utf8.RuneCountInString(domain))
	if room < 1 {
		return truncate(column, v)
	}
	return models.Text(truncateString(local, room) + domain)
}

func truncateString(s string, max int64) string {
	if max <= 0 || int64(utf8.RuneCountInString(s)) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// fixedDomain sizes a generator that draws from a reference list
func fixedDomain(n int) func(models.ColumnMetadata) int64 {
	return func(models.ColumnMetadata) int64 { return int64(n) }
}

// pow returns base^exp saturating at Unbounded
func pow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		if result > Unbounded/base {
			return Unbounded
		}
		result *= base
	}
	return result
}

// mul multiplies saturating at Unbounded
func mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > Unbounded/b {
		return Unbounded
	}
	return a * b
}

func textDraw(f func(column models.ColumnMetadata) string) drawFunc {
	return func(column models.ColumnMetadata) (models.Value, error) {
		return models.Text(f(column)), nil
	}
}

func listDraw(e *env, values []string) drawFunc {
	return func(models.ColumnMetadata) (models.Value, error) {
		return models.Text(e.pick(values)), nil
	}
}
