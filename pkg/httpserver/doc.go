// Package httpserver runs an http.Handler until its context is cancelled or
// the process receives SIGINT/SIGTERM, then drains in-flight requests within
// Config.ShutdownTimeout.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Healthcheck builds a readiness handler from named dependency checks, e.g.
// redis.Healthcheck.
package httpserver
