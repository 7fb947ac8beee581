package corpus

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DefaultQuery selects the names table created by the pg package migrations.
const DefaultQuery = "SELECT name FROM corpus_names"

// Querier is the subset of *pgxpool.Pool used to read corpus rows.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads the first column of every row returned by query.
// The column must be a non-null text value. An empty query uses DefaultQuery.
func PostgresSource(db Querier, query string) Source {
	if query == "" {
		query = DefaultQuery
	}
	return SourceFunc(func(ctx context.Context) ([]string, error) {
		rows, err := db.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("postgres query: %w", err)
		}
		names, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return nil, fmt.Errorf("postgres rows: %w", err)
		}
		return names, nil
	})
}
