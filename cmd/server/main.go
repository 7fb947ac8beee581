// Command server serves the name generator over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/namegen/internal/bootstrap"
	"github.com/dmitrymomot/namegen/pkg/config"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg bootstrap.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Log.Error("failed to close resources", logger.Error(err))
		}
	}()
	logger.SetAsDefault(app.Log)

	app.WarmUp(ctx)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(app.Log.With(logger.Component("http"))),
		httpserver.WithStopHook(func() { app.Log.Info("http server stopped") }),
	)
	if err := srv.Run(ctx, app.Router()); err != nil {
		app.Log.Error("http server failed", logger.Error(err), slog.String("addr", cfg.HTTP.Addr))
		return err
	}
	return nil
}
