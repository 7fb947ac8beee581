package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"CORPUS_REDIS_URL"`                              // ConnectionURL enables the Redis corpus source when set, e.g. "redis://:password@localhost:6379/0".
	Key            string        `env:"CORPUS_REDIS_KEY" envDefault:"corpus:names"`    // Key is the set holding the names.
	RetryAttempts  int           `env:"CORPUS_REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"CORPUS_REDIS_RETRY_INTERVAL" envDefault:"2s"`   // RetryInterval is the wait between attempts.
	ConnectTimeout time.Duration `env:"CORPUS_REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // ConnectTimeout bounds all attempts together.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
