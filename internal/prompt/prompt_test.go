package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/internal/prompt"
	"github.com/dmitrymomot/namegen/pkg/novelty"
	"github.com/dmitrymomot/namegen/svc/names"
)

type letters string

func (l letters) IsKnown(r rune) bool { return strings.ContainsRune(string(l), r) }

type generator struct {
	seeds []string
	err   error
}

func (g *generator) Generate(_ context.Context, seed string, count int) ([]string, error) {
	g.seeds = append(g.seeds, seed)
	if g.err != nil {
		return nil, g.err
	}
	out := make([]string, count)
	for i := range out {
		out[i] = seed + strings.Repeat("x", i+1)
	}
	return out, nil
}

func (g *generator) MaxLength() int { return 8 }

func run(t *testing.T, gen *generator, input string) string {
	t.Helper()

	svc := names.NewService(gen, letters("abcdefghijklmnopqrstuvwxyz"), names.WithMaxCount(5))
	var out bytes.Buffer
	require.NoError(t, prompt.New(svc, strings.NewReader(input), &out).Run(context.Background()))
	return out.String()
}

func TestPrompt_Run(t *testing.T) {
	t.Parallel()

	t.Run("generates until the exit input", func(t *testing.T) {
		t.Parallel()

		gen := &generator{}
		out := run(t, gen, " An \n2\n\n\n0\n")

		assert.Equal(t, []string{"an", ""}, gen.seeds)
		assert.Contains(t, out, "1: anx\n2: anxx\n")
		assert.Contains(t, out, "1: x\n")
		assert.NotContains(t, out, "2: xx")
		assert.True(t, strings.HasSuffix(out, "See you again\n"))
	})

	t.Run("re-prompts on invalid seed and count", func(t *testing.T) {
		t.Parallel()

		gen := &generator{}
		out := run(t, gen, "b0b\nabcdefgh\nbo\nmany\n0\n-2\n6\n1\n0\n")

		assert.Equal(t, []string{"bo"}, gen.seeds)
		assert.Equal(t, 2, strings.Count(out, "Please type alphabetical characters"))
		assert.Equal(t, 4, strings.Count(out, "Please type a whole number"))
		assert.Contains(t, out, "must be at least 1")
		assert.Contains(t, out, "must be at most 5")
		assert.Contains(t, out, "1: box\n")
	})

	t.Run("end of input exits", func(t *testing.T) {
		t.Parallel()

		gen := &generator{}
		out := run(t, gen, "an\n")
		assert.Empty(t, gen.seeds)
		assert.Contains(t, out, "See you again")
	})

	t.Run("generation failure keeps the loop running", func(t *testing.T) {
		t.Parallel()

		gen := &generator{err: novelty.ErrGenerationExhausted}
		out := run(t, gen, "a\n1\nb\n1\n0\n")
		assert.Equal(t, []string{"a", "b"}, gen.seeds)
		assert.Equal(t, 2, strings.Count(out, "Could not generate names"))
	})
}

func TestPrompt_Once(t *testing.T) {
	t.Parallel()

	svc := names.NewService(&generator{}, letters("ab"), names.WithMaxCount(3))
	var out bytes.Buffer
	p := prompt.New(svc, strings.NewReader(""), &out)

	require.NoError(t, p.Once(context.Background(), "ab", "3"))
	assert.Contains(t, out.String(), "3: abxxx\n")

	err := p.Once(context.Background(), "ab", "4")
	require.Error(t, err)

	boom := errors.New("boom")
	p = prompt.New(names.NewService(&generator{err: boom}, letters("ab")), strings.NewReader(""), &out)
	require.ErrorIs(t, p.Once(context.Background(), "a", "1"), boom)

	assert.Panics(t, func() { prompt.New(nil, nil, nil) })
}
