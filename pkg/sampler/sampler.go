package sampler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"unicode/utf8"

	"github.com/dmitrymomot/namegen/pkg/model"
	"github.com/dmitrymomot/namegen/pkg/vocab"
)

// namePattern matches a well formed candidate: START, lower-case letters, END.
var namePattern = regexp.MustCompile(
	regexp.QuoteMeta(string(vocab.StartSymbol)) + `([a-z]+)` + regexp.QuoteMeta(string(vocab.EndSymbol)),
)

// Sampler draws candidate names from a model. It holds no per-call state and
// is safe for concurrent use unless built WithRand.
type Sampler struct {
	vocab     *vocab.Vocabulary
	model     model.Adapter
	maxLength int
	float64   func() float64
}

// New creates a sampler for the vocabulary the model was trained with.
func New(v *vocab.Vocabulary, m model.Adapter, opts ...Option) *Sampler {
	if v == nil {
		panic("sampler: vocabulary cannot be nil")
	}
	if m == nil {
		panic("sampler: model cannot be nil")
	}

	s := &Sampler{
		vocab:     v,
		model:     m,
		maxLength: DefaultMaxLength,
		float64:   rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxLength returns the configured maximum candidate length.
func (s *Sampler) MaxLength() int {
	return s.maxLength
}

// Generate returns exactly count candidates that start with seed.
// Malformed candidates are returned as empty strings.
func (s *Sampler) Generate(ctx context.Context, seed string, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	prefix := string(vocab.StartSymbol) + seed
	encoded, err := s.vocab.Encode(prefix)
	if err != nil {
		return nil, err
	}

	width := s.model.StateWidth()
	sess := newSession(count, []rune(prefix), encoded, width)

	steps := s.maxLength - utf8.RuneCountInString(seed)
	for step := 0; step < steps && !sess.done(); step++ {
		pred, err := s.model.Predict(ctx, sess.inputs, sess.state)
		if err != nil {
			return nil, errors.Join(model.ErrPredict, err)
		}
		if err := pred.Validate(count, s.vocab.Size(), width); err != nil {
			return nil, errors.Join(model.ErrPredict, err)
		}
		sess.state = pred.State

		for i := range count {
			if sess.finished[i] {
				sess.feed(i, s.vocab.End())
				continue
			}
			idx, err := s.draw(pred.Probs[i])
			if err != nil {
				return nil, errors.Join(model.ErrPredict, fmt.Errorf("sequence %d: %w", i, err))
			}
			// PAD has no character of its own.
			if idx == vocab.PadIndex {
				idx = s.vocab.Start()
			}
			r, _ := s.vocab.Symbol(idx)
			sess.append(i, r, idx, idx == s.vocab.End())
		}
	}

	names := make([]string, count)
	for i, text := range sess.texts {
		names[i] = parse(text)
	}
	return names, nil
}

// draw picks an index with probability proportional to its mass.
// Negative and NaN entries carry no mass.
func (s *Sampler) draw(probs []float32) (int, error) {
	var total float64
	for _, p := range probs {
		if p > 0 {
			total += float64(p)
		}
	}
	if total <= 0 || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: total mass %v", model.ErrInvalidDistribution, total)
	}

	target := s.float64() * total
	var cumulative float64
	last := 0
	for idx, p := range probs {
		if !(p > 0) {
			continue
		}
		cumulative += float64(p)
		last = idx
		if target < cumulative {
			return idx, nil
		}
	}
	// Rounding can leave target just past the final bucket.
	return last, nil
}

func parse(text []rune) string {
	m := namePattern.FindStringSubmatch(string(text))
	if m == nil {
		return ""
	}
	return m[1]
}
