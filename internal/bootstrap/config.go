package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/model/remote"
	"github.com/dmitrymomot/namegen/pkg/pg"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/redis"
)

// Config is the application configuration, parsed from the environment.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	AppName  string `env:"APP_NAME" envDefault:"namegen"`
	LogLevel string `env:"LOG_LEVEL"` // empty keeps the APP_ENV default

	HTTP       httpserver.Config
	Model      remote.Config
	Corpus     CorpusConfig
	Vocabulary VocabularyConfig
	Generator  GeneratorConfig
	RateLimit  ratelimiter.Config
}

// CorpusConfig lists the corpus sources. Every configured source is read
// and the names are merged; at least one is required.
type CorpusConfig struct {
	File     string `env:"CORPUS_FILE"`
	S3       corpus.S3Config
	Redis    redis.Config
	Postgres pg.Config
}

// VocabularyConfig points at the names the model was trained on. When File
// is empty CORPUS_FILE is used, and without either the merged corpus.
// Verify runs one prediction at start-up and fails on a size mismatch.
type VocabularyConfig struct {
	File   string `env:"VOCAB_FILE"`
	Verify bool   `env:"VOCAB_VERIFY" envDefault:"true"`
}

// GeneratorConfig tunes sampling and the novelty filter.
type GeneratorConfig struct {
	MaxLength     int           `env:"GEN_MAX_LENGTH" envDefault:"17"`
	Oversample    float64       `env:"GEN_OVERSAMPLE" envDefault:"1.5"`
	MaxAttempts   int           `env:"GEN_MAX_ATTEMPTS" envDefault:"100"`
	MaxCount      int           `env:"GEN_MAX_COUNT" envDefault:"100"`
	Unique        bool          `env:"GEN_UNIQUE" envDefault:"false"`
	WarmUp        bool          `env:"GEN_WARMUP" envDefault:"true"`
	WarmUpTimeout time.Duration `env:"GEN_WARMUP_TIMEOUT" envDefault:"30s"`
}

// Validate checks the values that would otherwise make constructors panic.
func (c Config) Validate() error {
	var errs []error
	if c.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}
	g := c.Generator
	if g.MaxLength < 2 {
		errs = append(errs, fmt.Errorf("GEN_MAX_LENGTH must be at least 2, got %d", g.MaxLength))
	}
	if !(g.Oversample >= 1) {
		errs = append(errs, fmt.Errorf("GEN_OVERSAMPLE must be at least 1, got %v", g.Oversample))
	}
	if g.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("GEN_MAX_ATTEMPTS must be at least 1, got %d", g.MaxAttempts))
	}
	if g.MaxCount < 1 {
		errs = append(errs, fmt.Errorf("GEN_MAX_COUNT must be at least 1, got %d", g.MaxCount))
	}
	if c.RateLimit.Enabled {
		if err := c.RateLimit.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
