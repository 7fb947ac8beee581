package novelty

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"unicode/utf8"

	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/validator"
)

// Generator produces raw candidates. *sampler.Sampler implements it.
type Generator interface {
	Generate(ctx context.Context, seed string, count int) ([]string, error)
	MaxLength() int
}

// Filter is safe for concurrent use if its Generator is.
type Filter struct {
	gen         Generator
	index       *corpus.Index
	alphabet    validator.Alphabet
	oversample  float64
	maxAttempts int
	unique      bool
	log         *slog.Logger
}

// New creates a filter that rejects names found in index.
func New(gen Generator, index *corpus.Index, alphabet validator.Alphabet, opts ...Option) *Filter {
	if gen == nil {
		panic("novelty: generator cannot be nil")
	}
	if index == nil {
		panic("novelty: corpus index cannot be nil")
	}
	if alphabet == nil {
		panic("novelty: alphabet cannot be nil")
	}

	f := &Filter{
		gen:         gen,
		index:       index,
		alphabet:    alphabet,
		oversample:  DefaultOversample,
		maxAttempts: DefaultMaxAttempts,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// MaxLength reports the maximum name length of the underlying generator.
func (f *Filter) MaxLength() int {
	return f.gen.MaxLength()
}

// Generate returns exactly count names that start with seed and are not in
// the corpus, in the order they were accepted.
func (f *Filter) Generate(ctx context.Context, seed string, count int) ([]string, error) {
	if err := f.check(seed, count); err != nil {
		return nil, err
	}

	accepted := make([]string, 0, count)
	var seen map[string]struct{}
	if f.unique {
		seen = make(map[string]struct{}, count)
	}

	for attempt := 1; len(accepted) < count; attempt++ {
		if attempt > f.maxAttempts {
			return nil, fmt.Errorf("%w: accepted %d of %d after %d batches",
				ErrGenerationExhausted, len(accepted), count, f.maxAttempts)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch := f.batchSize(count - len(accepted))
		candidates, err := f.gen.Generate(ctx, seed, batch)
		if err != nil {
			return nil, err
		}

		before := len(accepted)
		for _, name := range candidates {
			if !f.accept(name, seen) {
				continue
			}
			accepted = append(accepted, name)
			if seen != nil {
				seen[name] = struct{}{}
			}
			if len(accepted) == count {
				break
			}
		}

		f.log.DebugContext(ctx, "candidate batch filtered",
			logger.Attempt(attempt),
			slog.Int("requested", batch),
			slog.Int("accepted", len(accepted)-before),
			slog.Int("missing", count-len(accepted)),
		)
	}

	return accepted, nil
}

func (f *Filter) check(seed string, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if !validator.ValidSeed(f.alphabet, seed) {
		return fmt.Errorf("%w: %q", ErrInvalidSeed, seed)
	}
	if n, max := utf8.RuneCountInString(seed), f.gen.MaxLength(); n >= max {
		return fmt.Errorf("%w: %d characters, maximum name length is %d", ErrSeedTooLong, n, max)
	}
	return nil
}

func (f *Filter) batchSize(missing int) int {
	return int(math.Ceil(float64(missing) * f.oversample))
}

func (f *Filter) accept(name string, seen map[string]struct{}) bool {
	if name == "" || f.index.Contains(name) {
		return false
	}
	if seen != nil {
		if _, dup := seen[name]; dup {
			return false
		}
	}
	return true
}
