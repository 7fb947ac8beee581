package novelty_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/model"
	"github.com/dmitrymomot/namegen/pkg/novelty"
	"github.com/dmitrymomot/namegen/pkg/sampler"
	"github.com/dmitrymomot/namegen/pkg/vocab"
)

// fakeGenerator returns the scripted batches in order, repeating the last one.
type fakeGenerator struct {
	batches   [][]string
	err       error
	maxLength int
	requests  []int
}

func (g *fakeGenerator) Generate(_ context.Context, _ string, count int) ([]string, error) {
	g.requests = append(g.requests, count)
	if g.err != nil {
		return nil, g.err
	}
	batch := g.batches[min(len(g.requests), len(g.batches))-1]
	out := make([]string, count)
	copy(out, batch)
	return out, nil
}

func (g *fakeGenerator) MaxLength() int {
	if g.maxLength == 0 {
		return sampler.DefaultMaxLength
	}
	return g.maxLength
}

func newVocab(t *testing.T, names ...string) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New(names)
	require.NoError(t, err)
	return v
}

func TestFilter_Generate(t *testing.T) {
	t.Parallel()

	v := newVocab(t, "anna", "bob", "carl")
	idx := corpus.New("anna", "bob", "carl")

	t.Run("returns exactly count novel names", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{
			{"anna", "", "bo", "Bob", "nab"},
			{"carl", "lar", "ana", "x", "y"},
		}}
		names, err := novelty.New(gen, idx, v).Generate(context.Background(), "", 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"bo", "nab", "lar", "ana"}, names)
		for _, name := range names {
			assert.False(t, idx.Contains(name))
		}
	})

	t.Run("requests ceil of oversampled shortfall", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{
			{"ab", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
			{"ac", "ad", "ae"},
			{"af", "ag"},
		}}
		names, err := novelty.New(gen, idx, v).Generate(context.Background(), "a", 10)
		require.NoError(t, err)
		assert.Len(t, names, 10)
		// 10 -> 15, 9 -> 14, 6 -> 9, then 4 -> 6 and 2 -> 3 repeating "af", "ag".
		assert.Equal(t, []int{15, 14, 9, 6, 3}, gen.requests)
	})

	t.Run("surplus candidates are discarded", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{{"ab", "ac", "ad"}}}
		names, err := novelty.New(gen, idx, v).Generate(context.Background(), "", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"ab", "ac"}, names)
		assert.Equal(t, []int{3}, gen.requests)
	})

	t.Run("duplicates are allowed by default", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{{"nab", "nab", "nab"}}}
		names, err := novelty.New(gen, idx, v).Generate(context.Background(), "", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"nab", "nab"}, names)
	})

	t.Run("unique rejects repeats within a call", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{
			{"nab", "nab", "nab"},
			{"nab", "lar"},
		}}
		names, err := novelty.New(gen, idx, v, novelty.WithUnique()).Generate(context.Background(), "", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"nab", "lar"}, names)
	})

	t.Run("custom oversample", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{{"ab", "ac", "ad", "ae"}}}
		_, err := novelty.New(gen, idx, v, novelty.WithOversample(2)).Generate(context.Background(), "", 2)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, gen.requests)
	})

	t.Run("exhaustion after max attempts", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{batches: [][]string{{"anna", "nab"}, {"", "bob"}}}
		_, err := novelty.New(gen, idx, v, novelty.WithMaxAttempts(3)).Generate(context.Background(), "", 3)
		require.ErrorIs(t, err, novelty.ErrGenerationExhausted)
		assert.Contains(t, err.Error(), "accepted 1 of 3 after 3 batches")
		assert.Len(t, gen.requests, 3)
	})

	t.Run("generator error is returned as is", func(t *testing.T) {
		t.Parallel()

		boom := errors.Join(model.ErrPredict, errors.New("boom"))
		gen := &fakeGenerator{err: boom}
		_, err := novelty.New(gen, idx, v).Generate(context.Background(), "", 1)
		require.ErrorIs(t, err, model.ErrPredict)
		assert.Len(t, gen.requests, 1)
	})

	t.Run("canceled context stops between batches", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		gen := &fakeGenerator{batches: [][]string{{"ab"}}}
		_, err := novelty.New(gen, idx, v).Generate(ctx, "", 1)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, gen.requests)
	})
}

func TestFilter_Generate_RejectsBeforeSampling(t *testing.T) {
	t.Parallel()

	v := newVocab(t, "anna", "bob")
	idx := corpus.New("anna", "bob")

	tests := []struct {
		name  string
		seed  string
		count int
		want  error
	}{
		{"digits in seed", "123", 1, novelty.ErrInvalidSeed},
		{"unknown letter", "az", 1, novelty.ErrInvalidSeed},
		{"marker in seed", "<a", 1, novelty.ErrInvalidSeed},
		{"zero count", "", 0, novelty.ErrInvalidCount},
		{"negative count", "a", -3, novelty.ErrInvalidCount},
		{"seed as long as max length", "aaaa", 1, novelty.ErrSeedTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &fakeGenerator{batches: [][]string{{"nab"}}, maxLength: 4}
			_, err := novelty.New(gen, idx, v).Generate(context.Background(), tt.seed, tt.count)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, gen.requests, "sampler must not be invoked")
		})
	}
}

func TestFilter_WithSampler(t *testing.T) {
	t.Parallel()

	v := newVocab(t, "anna", "bob")

	// scripted emits text one character per step, then END. The step counter
	// travels in the recurrent state like any real model memory would.
	scripted := func(text string) model.Func {
		indices, err := v.Encode(text)
		require.NoError(t, err)
		return model.Func{Width: 8, Fn: func(_ context.Context, inputs [][]int, state model.State) (model.Prediction, error) {
			pred := model.Prediction{Probs: make([][]float32, len(inputs)), State: model.ZeroState(len(inputs), 8)}
			for i := range inputs {
				step := int(state.Hidden[i][0])
				p := make([]float32, v.Size())
				if step < len(indices) {
					p[indices[step]] = 1
				} else {
					p[v.End()] = 1
				}
				pred.Probs[i] = p
				pred.State.Hidden[i][0] = float32(step + 1)
			}
			return pred, nil
		}}
	}

	t.Run("always END exhausts without accepting", func(t *testing.T) {
		t.Parallel()

		s := sampler.New(v, scripted(""))
		names, err := s.Generate(context.Background(), "", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "", ""}, names)

		_, err = novelty.New(s, corpus.New("anna"), v, novelty.WithMaxAttempts(5)).Generate(context.Background(), "", 3)
		require.ErrorIs(t, err, novelty.ErrGenerationExhausted)
	})

	t.Run("model that only knows a real name never returns it", func(t *testing.T) {
		t.Parallel()

		s := sampler.New(v, scripted("bob"))
		_, err := novelty.New(s, corpus.New("Bob"), v, novelty.WithMaxAttempts(5)).Generate(context.Background(), "", 2)
		require.ErrorIs(t, err, novelty.ErrGenerationExhausted)
	})

	t.Run("novel names pass", func(t *testing.T) {
		t.Parallel()

		s := sampler.New(v, scripted("bob"))
		names, err := novelty.New(s, corpus.New("anna"), v).Generate(context.Background(), "", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "bob", "bob"}, names)
	})
}

func TestFilter_MaxLength(t *testing.T) {
	t.Parallel()

	idx := corpus.New("anna")
	v := newVocab(t, "anna")

	assert.Equal(t, 5, novelty.New(&fakeGenerator{maxLength: 5}, idx, v).MaxLength())
	assert.Equal(t, sampler.DefaultMaxLength, novelty.New(&fakeGenerator{}, idx, v).MaxLength())
}

func TestNew_Panics(t *testing.T) {
	t.Parallel()

	v := newVocab(t, "anna")
	idx := corpus.New("anna")
	gen := &fakeGenerator{}

	assert.Panics(t, func() { novelty.New(nil, idx, v) })
	assert.Panics(t, func() { novelty.New(gen, nil, v) })
	assert.Panics(t, func() { novelty.New(gen, idx, nil) })
	assert.Panics(t, func() { novelty.New(gen, idx, v, novelty.WithOversample(0.5)) })
	assert.Panics(t, func() { novelty.New(gen, idx, v, novelty.WithMaxAttempts(0)) })
	assert.Panics(t, func() { novelty.New(gen, idx, v, novelty.WithLogger(nil)) })
}
