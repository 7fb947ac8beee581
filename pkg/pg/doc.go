// Package pg connects to the PostgreSQL database that can hold the training
// corpus, using the pgx/v5 driver.
//
// Connect opens a *pgxpool.Pool and retries with a linear back-off until the
// database answers a ping. Migrate applies the embedded goose migrations,
// which create the corpus_names table read by corpus.PostgresSource:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if cfg.Migrate {
//		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//			return err
//		}
//	}
//
//	src := corpus.PostgresSource(pool, cfg.Query)
//
// Healthcheck returns a func(context.Context) error for readiness probes.
package pg
