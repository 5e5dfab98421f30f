// Command slimauth-demo serves a small HTTP API on top of the session
// cookie, JWT access tokens and a Redis revocation list.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/slimauth/pkg/config"
	"github.com/dmitrymomot/slimauth/pkg/environment"
	"github.com/dmitrymomot/slimauth/pkg/httpserver"
	"github.com/dmitrymomot/slimauth/pkg/logger"
	"github.com/dmitrymomot/slimauth/pkg/redis"
	"github.com/dmitrymomot/slimauth/pkg/session"
	"github.com/dmitrymomot/slimauth/pkg/tokenvalidator"
)

type appConfig struct {
	Service  string        `env:"SERVICE_NAME" envDefault:"slimauth-demo"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	TokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`

	// Validation results are cached for this long; revocations made by
	// other instances become visible after at most this delay.
	ValidationCacheTTL  time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"30s"`
	ValidationCacheSize int           `env:"TOKEN_CACHE_SIZE" envDefault:"4096"`

	HTTP    httpserver.Config
	Session session.Config
	Redis   redis.Config
	JWT     tokenvalidator.JWTConfig
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Session.Environment, cfg.Service),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("slimauth-demo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn("close redis client", logger.Error(err))
		}
	}()

	a, err := newApp(cfg, rdb, log)
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, a.router())
}
