package names_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/validator"
	"github.com/dmitrymomot/namegen/svc/names"
)

type letters string

func (l letters) IsKnown(r rune) bool { return strings.ContainsRune(string(l), r) }

type call struct {
	seed  string
	count int
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls []call
	names []string
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, seed string, count int) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call{seed: seed, count: count})
	if g.err != nil {
		return nil, g.err
	}
	out := make([]string, count)
	for i := range out {
		out[i] = g.names[i%len(g.names)]
	}
	return out, nil
}

func (g *fakeGenerator) MaxLength() int { return 6 }

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

const alphabet = letters("abcdefghijklmnopqrstuvwxyz")

func TestService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the seed and defaults count to one", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{names: []string{"anya"}}
		svc := names.NewService(gen, alphabet)

		res, err := svc.Generate(context.Background(), names.Request{Seed: "  AN ", Count: ""})
		require.NoError(t, err)

		assert.Equal(t, "an", res.Seed)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t, []string{"anya"}, res.Names)
		assert.Equal(t, []call{{seed: "an", count: 1}}, gen.calls)
	})

	t.Run("empty seed is allowed", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{names: []string{"bo", "li"}}
		svc := names.NewService(gen, alphabet)

		res, err := svc.Generate(context.Background(), names.Request{Count: " 2 "})
		require.NoError(t, err)
		assert.Equal(t, []string{"bo", "li"}, res.Names)
	})

	rejected := []struct {
		name  string
		req   names.Request
		field string
	}{
		{"zero count", names.Request{Count: "0"}, "count"},
		{"negative count", names.Request{Count: "-3"}, "count"},
		{"count above maximum", names.Request{Count: "11"}, "count"},
		{"non-numeric count", names.Request{Count: "many"}, "count"},
		{"fractional count", names.Request{Count: "2.5"}, "count"},
		{"digits in seed", names.Request{Seed: "123"}, "seed"},
		{"seed leaves no room", names.Request{Seed: "abcdef"}, "seed"},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := &fakeGenerator{names: []string{"x"}}
			svc := names.NewService(gen, alphabet, names.WithMaxCount(10))

			_, err := svc.Generate(context.Background(), tc.req)
			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs, "expected validation errors, got %v", err)
			assert.True(t, verrs.Has(tc.field), "fields: %v", verrs.Fields())
			assert.Zero(t, gen.callCount(), "generator must not run for rejected input")
		})
	}

	t.Run("generator errors pass through", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		svc := names.NewService(&fakeGenerator{err: boom}, alphabet)

		_, err := svc.Generate(context.Background(), names.Request{Count: "1"})
		require.ErrorIs(t, err, boom)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestService_ValidateNames(t *testing.T) {
	t.Parallel()

	svc := names.NewService(&fakeGenerator{names: []string{"x"}}, alphabet, names.WithMaxCount(2))

	got, err := svc.ValidateNames([]string{" Anya ", "", "bo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"anya", "bo"}, got)

	_, err = svc.ValidateNames([]string{"a", "b", "c"})
	require.True(t, validator.ExtractValidationErrors(err).Has("names"))

	_, err = svc.ValidateNames([]string{"ok", "n0pe"})
	require.True(t, validator.ExtractValidationErrors(err).Has("names[1]"))

	_, err = svc.ValidateNames(nil)
	require.True(t, validator.IsValidationError(err))
}

func TestNewService_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { names.NewService(nil, alphabet) })
	assert.Panics(t, func() { names.NewService(&fakeGenerator{}, nil) })
	assert.Panics(t, func() { names.WithMaxCount(0) })
}
