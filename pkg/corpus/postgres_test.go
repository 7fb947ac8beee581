package corpus_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/corpus"
)

// fakeRows serves a single text column from memory.
type fakeRows struct {
	values []string
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return fmt.Errorf("expected 1 destination, got %d", len(dest))
	}
	p, ok := dest[0].(*string)
	if !ok {
		return fmt.Errorf("unexpected destination %T", dest[0])
	}
	*p = r.values[r.pos-1]
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	return []any{r.values[r.pos-1]}, nil
}

type fakeQuerier struct {
	rows    *fakeRows
	err     error
	queries []string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestPostgresSource(t *testing.T) {
	t.Parallel()

	t.Run("reads first column", func(t *testing.T) {
		t.Parallel()

		rows := &fakeRows{values: []string{"anna", "bob"}}
		db := &fakeQuerier{rows: rows}

		names, err := corpus.PostgresSource(db, "SELECT name FROM people").Names(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"anna", "bob"}, names)
		assert.Equal(t, []string{"SELECT name FROM people"}, db.queries)
		assert.True(t, rows.closed)
	})

	t.Run("empty query uses default", func(t *testing.T) {
		t.Parallel()

		db := &fakeQuerier{rows: &fakeRows{}}
		_, err := corpus.PostgresSource(db, "").Names(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{corpus.DefaultQuery}, db.queries)
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("relation does not exist")
		_, err := corpus.PostgresSource(&fakeQuerier{err: boom}, "").Names(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("rows error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection lost")
		db := &fakeQuerier{rows: &fakeRows{values: []string{"anna"}, err: boom}}
		_, err := corpus.PostgresSource(db, "").Names(context.Background())
		require.ErrorIs(t, err, boom)
	})
}
