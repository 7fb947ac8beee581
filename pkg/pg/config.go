package pg

import "time"

type Config struct {
	ConnectionString  string        `env:"CORPUS_PG_URL"`                                 // ConnectionString enables the Postgres corpus source when set.
	Query             string        `env:"CORPUS_PG_QUERY"`                               // Query selects one text column of names; empty means corpus.DefaultQuery.
	MaxOpenConns      int32         `env:"CORPUS_PG_MAX_OPEN_CONNS" envDefault:"4"`       // MaxOpenConns is the maximum number of open connections.
	MaxIdleConns      int32         `env:"CORPUS_PG_MAX_IDLE_CONNS" envDefault:"1"`       // MaxIdleConns is the minimum number of idle connections kept open.
	HealthCheckPeriod time.Duration `env:"CORPUS_PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the period between pool health checks.
	MaxConnIdleTime   time.Duration `env:"CORPUS_PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime is the maximum time a connection may be idle.
	MaxConnLifetime   time.Duration `env:"CORPUS_PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime is the maximum time a connection may be reused.

	RetryAttempts int           `env:"CORPUS_PG_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of connection attempts.
	RetryInterval time.Duration `env:"CORPUS_PG_RETRY_INTERVAL" envDefault:"2s"` // RetryInterval is multiplied by the attempt number between attempts.

	Migrate         bool   `env:"CORPUS_PG_MIGRATE" envDefault:"false"`                      // Migrate applies the embedded migrations on startup.
	MigrationsTable string `env:"CORPUS_PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"` // MigrationsTable stores the applied migration version.
}

// Enabled reports whether a connection string is configured.
func (c Config) Enabled() bool {
	return c.ConnectionString != ""
}
