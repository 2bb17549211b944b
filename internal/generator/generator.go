// Package generator produces batches of synthetic values for classified
// columns. Every generator follows the same sampling contract: exactly count
// draws on the plain path, a best-effort distinct set on the unique path.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jaswdr/faker"
	"github.com/sirupsen/logrus"

	"github.com/vitebski/schema-synth/internal/randsrc"
	"github.com/vitebski/schema-synth/pkg/models"
)

var (
	// ErrUnsupportedType is returned when a generator is asked for a column
	// whose data type it cannot produce. It signals a wiring mistake, not a
	// shortfall in the data.
	ErrUnsupportedType = errors.New("unsupported data type for generator")

	// ErrUnknownGenerator is returned by the registry for keys nobody registered
	ErrUnknownGenerator = errors.New("unknown generator key")
)

// Strategy generates values for one generator key
type Strategy interface {
	Key() string
	Generate(column models.ColumnMetadata, count int, unique bool) ([]models.Value, error)
}

// Options tune the default registry
type Options struct {
	// Now anchors every date window. Defaults to time.Now.
	Now func() time.Time
}

// env is the state shared by every generator of one registry
type env struct {
	src    *randsrc.Source
	rng    *rand.Rand
	faker  faker.Faker
	now    func() time.Time
	logger logrus.FieldLogger
}

func newEnv(src *randsrc.Source, logger logrus.FieldLogger, opts Options) *env {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &env{
		src:    src,
		rng:    src.Rand(),
		faker:  faker.NewWithSeed(src),
		now:    now,
		logger: logger,
	}
}

// intn returns a value in [0, n). n <= 0 yields 0.
func (e *env) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return e.rng.Intn(n)
}

// between returns a value in [lo, hi]
func (e *env) between(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi - lo)
	if span == ^uint64(0) {
		return lo + int64(e.rng.Uint64())
	}
	return lo + int64(e.rng.Uint64()%(span+1))
}

func (e *env) pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[e.intn(len(values))]
}

// Registry maps generator keys to strategies
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register adds a strategy, replacing any previous one with the same key
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Key()] = s
}

// Get looks up the strategy for a key
func (r *Registry) Get(key string) (Strategy, error) {
	s, ok := r.strategies[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, key)
	}
	return s, nil
}

// Has reports whether a key is registered
func (r *Registry) Has(key string) bool {
	_, ok := r.strategies[key]
	return ok
}

// Keys lists the registered keys in sorted order
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Generate runs the strategy registered for key
func (r *Registry) Generate(key string, column models.ColumnMetadata, count int, unique bool) ([]models.Value, error) {
	s, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	return s.Generate(column, count, unique)
}

// NewDefault builds a registry holding a generator for every key the default
// matcher bank can emit. All generators draw from src.
func NewDefault(src *randsrc.Source, logger logrus.FieldLogger, opts Options) *Registry {
	e := newEnv(src, logger, opts)
	r := NewRegistry()

	groups := [][]*strategy{
		personStrategies(e),
		contactStrategies(e),
		localeStrategies(e),
		addressStrategies(e),
		paymentStrategies(e),
		commerceStrategies(e),
		temporalStrategies(e),
		fallbackStrategies(e),
	}
	for _, group := range groups {
		for _, s := range group {
			r.Register(s)
		}
	}
	return r
}
