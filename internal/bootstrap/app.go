// Package bootstrap wires the generator from configuration: corpus sources,
// vocabulary, model adapter, sampler, novelty filter and the names service.
// Both binaries build an App and use what they need from it.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dmitrymomot/namegen/pkg/clientip"
	"github.com/dmitrymomot/namegen/pkg/corpus"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/model"
	"github.com/dmitrymomot/namegen/pkg/model/remote"
	"github.com/dmitrymomot/namegen/pkg/novelty"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/requestid"
	"github.com/dmitrymomot/namegen/pkg/sampler"
	"github.com/dmitrymomot/namegen/pkg/vocab"
	"github.com/dmitrymomot/namegen/svc/names"
)

// App holds the wired components. Close releases the connections it opened.
type App struct {
	Config     Config
	Log        *slog.Logger
	Corpus     *corpus.Index
	Vocabulary *vocab.Vocabulary
	Model      model.Adapter
	Sampler    *sampler.Sampler
	Filter     *novelty.Filter
	Names      *names.Service

	limiter *ratelimiter.Bucket
	checks  []httpserver.Check
	closers []func() error
}

// Option overrides a component that would otherwise come from Config.
type Option func(*options)

type options struct {
	log      *slog.Logger
	adapter  model.Adapter
	sources  []corpus.Source
	training corpus.Source
	rand     *rand.Rand
}

// WithLogger replaces the logger built from APP_ENV and LOG_LEVEL.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bootstrap: logger cannot be nil")
	}
	return func(o *options) { o.log = l }
}

// WithAdapter skips the remote model client.
func WithAdapter(m model.Adapter) Option {
	if m == nil {
		panic("bootstrap: model adapter cannot be nil")
	}
	return func(o *options) { o.adapter = m }
}

// WithSources adds corpus sources to the configured ones.
func WithSources(sources ...corpus.Source) Option {
	return func(o *options) { o.sources = append(o.sources, sources...) }
}

// WithTrainingNames sets the source of the names the model was trained on.
// It takes precedence over VOCAB_FILE and CORPUS_FILE.
func WithTrainingNames(src corpus.Source) Option {
	if src == nil {
		panic("bootstrap: training names source cannot be nil")
	}
	return func(o *options) { o.training = src }
}

// WithRand makes sampling deterministic. The resulting App must not serve
// concurrent requests.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bootstrap: rand cannot be nil")
	}
	return func(o *options) { o.rand = r }
}

var _ names.Generator = (*novelty.Filter)(nil)

// New validates cfg and builds every component. The corpus is loaded before
// New returns.
func New(ctx context.Context, cfg Config, opts ...Option) (app *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Log: o.log}
	if a.Log == nil {
		a.Log = newLogger(cfg)
	}
	defer func() {
		if err != nil {
			if cerr := a.Close(); cerr != nil {
				a.Log.WarnContext(ctx, "failed to release resources", logger.Error(cerr))
			}
		}
	}()

	sources, err := a.openSources(ctx, cfg.Corpus)
	if err != nil {
		return nil, err
	}
	sources = append(sources, o.sources...)

	start := time.Now()
	a.Corpus, err = corpus.Load(ctx, sources...)
	if err != nil {
		return nil, err
	}
	a.Log.InfoContext(ctx, "corpus loaded",
		logger.Count(a.Corpus.Len()),
		slog.Int("sources", len(sources)),
		logger.Duration(time.Since(start)),
	)

	a.Vocabulary, err = a.buildVocabulary(ctx, cfg, o)
	if err != nil {
		return nil, err
	}

	a.Model = o.adapter
	if a.Model == nil {
		adapter, err := remote.New(cfg.Model)
		if err != nil {
			return nil, err
		}
		a.Model = adapter
	}
	if p, ok := a.Model.(interface{ Ping(context.Context) error }); ok {
		a.checks = append(a.checks, httpserver.Check{Name: "model", Fn: p.Ping})
	}
	if cfg.Vocabulary.Verify {
		if err := a.verifyVocabulary(ctx); err != nil {
			return nil, err
		}
	}

	gen := cfg.Generator
	samplerOpts := []sampler.Option{sampler.WithMaxLength(gen.MaxLength)}
	if o.rand != nil {
		samplerOpts = append(samplerOpts, sampler.WithRand(o.rand))
	}
	a.Sampler = sampler.New(a.Vocabulary, a.Model, samplerOpts...)

	filterOpts := []novelty.Option{
		novelty.WithOversample(gen.Oversample),
		novelty.WithMaxAttempts(gen.MaxAttempts),
		novelty.WithLogger(a.Log.With(logger.Component("novelty"))),
	}
	if gen.Unique {
		filterOpts = append(filterOpts, novelty.WithUnique())
	}
	a.Filter = novelty.New(a.Sampler, a.Corpus, a.Vocabulary, filterOpts...)

	a.Names = names.NewService(a.Filter, a.Vocabulary,
		names.WithMaxCount(gen.MaxCount),
		names.WithLogger(a.Log.With(logger.Component("names"))),
	)

	if cfg.RateLimit.Enabled {
		store := ratelimiter.NewMemoryStore(
			ratelimiter.WithCleanup(cfg.RateLimit.CleanupInterval, cfg.RateLimit.StaleAfter),
		)
		a.closers = append(a.closers, store.Close)
		a.limiter, err = ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return nil, err
		}
	}

	a.Log.InfoContext(ctx, "generator ready",
		slog.Int("vocabulary", a.Vocabulary.Size()),
		slog.Int("max_length", a.Sampler.MaxLength()),
		slog.Int("max_count", a.Names.MaxCount()),
	)
	return a, nil
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithEnvironment(cfg.AppEnv, cfg.AppName)}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	opts = append(opts, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		clientip.LoggerExtractor(),
	))
	return logger.New(opts...)
}

// WarmUp generates one name so the first request does not pay for model
// start-up. Failures are logged and do not stop the application.
func (a *App) WarmUp(ctx context.Context) {
	if !a.Config.Generator.WarmUp {
		return
	}
	if d := a.Config.Generator.WarmUpTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	start := time.Now()
	if _, err := a.Filter.Generate(ctx, "", 1); err != nil {
		a.Log.WarnContext(ctx, "warm-up failed", logger.Error(err))
		return
	}
	a.Log.InfoContext(ctx, "warm-up complete", logger.Duration(time.Since(start)))
}

// Checks returns the readiness checks of the opened dependencies.
func (a *App) Checks() []httpserver.Check {
	return slices.Clone(a.checks)
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
