package bootstrap

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/pg"
	"github.com/dmitrymomot/namegen/pkg/redis"
)

// openSources connects to every configured corpus backend. Connections that
// stay open are registered as closers and readiness checks.
func (a *App) openSources(ctx context.Context, cfg CorpusConfig) ([]corpus.Source, error) {
	var sources []corpus.Source

	if cfg.File != "" {
		sources = append(sources, a.logged("file", corpus.FileSource(cfg.File)))
	}

	if cfg.S3.Bucket != "" {
		client, err := corpus.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		sources = append(sources, a.logged("s3", corpus.S3Source(client, cfg.S3.Bucket, cfg.S3.Key)))
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("corpus redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.checks = append(a.checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		sources = append(sources, a.logged("redis", corpus.RedisSource(client, cfg.Redis.Key)))
	}

	if cfg.Postgres.Enabled() {
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("corpus postgres: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		a.checks = append(a.checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})

		if cfg.Postgres.Migrate {
			if err := pg.Migrate(ctx, pool, cfg.Postgres, a.Log.With(logger.Component("migrate"))); err != nil {
				return nil, err
			}
		}
		sources = append(sources, a.logged("postgres", corpus.PostgresSource(pool, cfg.Postgres.Query)))
	}

	return sources, nil
}

// logged reports how many names src returned.
func (a *App) logged(name string, src corpus.Source) corpus.Source {
	return corpus.SourceFunc(func(ctx context.Context) ([]string, error) {
		names, err := src.Names(ctx)
		if err != nil {
			a.Log.ErrorContext(ctx, "corpus source failed", logger.Source(name), logger.Error(err))
			return nil, err
		}
		a.Log.DebugContext(ctx, "corpus source loaded", logger.Source(name), logger.Count(len(names)))
		return names, nil
	})
}
