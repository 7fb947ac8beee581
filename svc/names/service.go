package names

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/sanitizer"
	"github.com/dmitrymomot/namegen/pkg/validator"
)

// Generator produces novel names. *novelty.Filter implements it.
type Generator interface {
	Generate(ctx context.Context, seed string, count int) ([]string, error)
	MaxLength() int
}

// Request is a generation request as typed by a user.
// Count is kept as text so that non-numeric input is reported as a
// validation error instead of failing to bind.
type Request struct {
	Seed  string
	Count string
}

// Result holds the normalized seed and the generated names (lower-case).
type Result struct {
	Seed  string
	Count int
	Names []string
}

// Service validates user input and runs the generator.
type Service struct {
	gen      Generator
	alphabet validator.Alphabet
	maxCount int
	log      *slog.Logger
}

// NewService creates a Service. It panics if gen or alphabet is nil.
func NewService(gen Generator, alphabet validator.Alphabet, opts ...Option) *Service {
	if gen == nil {
		panic("names: generator cannot be nil")
	}
	if alphabet == nil {
		panic("names: alphabet cannot be nil")
	}

	s := &Service{
		gen:      gen,
		alphabet: alphabet,
		maxCount: DefaultMaxCount,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxCount returns the largest accepted count.
func (s *Service) MaxCount() int {
	return s.maxCount
}

// MaxSeedLength returns the longest accepted seed in characters.
func (s *Service) MaxSeedLength() int {
	return s.gen.MaxLength() - 1
}

// Validate normalizes req and checks it. The returned error, if any, is a
// validator.ValidationErrors.
func (s *Service) Validate(req Request) (seed string, count int, err error) {
	seed = sanitizer.Seed(req.Seed)
	raw := strings.TrimSpace(req.Count)
	if raw == "" {
		raw = "1"
	}

	rules := []validator.Rule{
		validator.SeedAlphabet("seed", seed, s.alphabet),
		validator.MaxRunes("seed", seed, s.MaxSeedLength()),
	}

	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		rules = append(rules, validator.Integer("count", raw))
	} else {
		rules = append(rules,
			validator.MinNum("count", n, 1),
			validator.MaxNum("count", n, s.maxCount),
		)
	}

	if err := validator.Apply(rules...); err != nil {
		return seed, 0, err
	}
	return seed, n, nil
}

// Generate validates req and returns the generated names.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	seed, count, err := s.Validate(req)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	names, err := s.gen.Generate(ctx, seed, count)
	if err != nil {
		s.log.ErrorContext(ctx, "generation failed",
			logger.Component("names"),
			logger.Seed(seed),
			logger.Count(count),
			logger.Error(err),
		)
		return Result{}, err
	}

	s.log.InfoContext(ctx, "names generated",
		logger.Component("names"),
		logger.Seed(seed),
		logger.Count(count),
		logger.Duration(time.Since(start)),
	)
	return Result{Seed: seed, Count: count, Names: names}, nil
}

// ValidateNames checks a list of previously generated names submitted back
// for download and returns them normalized.
func (s *Service) ValidateNames(names []string) ([]string, error) {
	names = sanitizer.Names(names)
	maxLen := s.gen.MaxLength()
	err := validator.Apply(
		validator.MinNum("names", len(names), 1),
		validator.MaxItems("names", names, s.maxCount),
		validator.Each("names", names, func(field, name string) validator.Rule {
			return validator.SeedAlphabet(field, name, s.alphabet)
		}),
		validator.Each("names", names, func(field, name string) validator.Rule {
			return validator.MaxRunes(field, name, maxLen)
		}),
	)
	if err != nil {
		return nil, err
	}
	return names, nil
}
