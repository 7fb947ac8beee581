package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Source produces raw corpus names.
type Source interface {
	Names(ctx context.Context) ([]string, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) ([]string, error)

// Names calls f(ctx).
func (f SourceFunc) Names(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// ReadNames reads one name per line. Blank lines are skipped and surrounding
// whitespace is trimmed; any line that is not valid UTF-8 fails the read.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidEncoding, line)
		}
		if name := strings.TrimSpace(string(raw)); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// FileSource reads names from a local file.
func FileSource(path string) Source {
	return SourceFunc(func(ctx context.Context) ([]string, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		names, err := ReadNames(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return names, nil
	})
}

// Load fetches names from all sources concurrently and builds an index from
// their union. The first failing source cancels the others.
func Load(ctx context.Context, sources ...Source) (*Index, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	results := make([][]string, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			names, err := src.Names(ctx)
			if err != nil {
				return errors.Join(ErrSourceFailed, err)
			}
			results[i] = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := New(slices.Concat(results...)...)
	if idx.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	return idx, nil
}
