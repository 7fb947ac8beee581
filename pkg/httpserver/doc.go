// Package httpserver runs an http.Handler with graceful shutdown and provides
// liveness and readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is canceled, SIGINT or SIGTERM arrives, or the
// listener fails. In-flight requests get ShutdownTimeout to finish.
package httpserver
