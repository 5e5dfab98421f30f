// Package config loads configuration structs from environment variables.
//
// Fields are described with github.com/caarlos0/env struct tags. Before the
// first load a .env file in the working directory is read with
// github.com/joho/godotenv when present; variables already set in the
// process environment win.
//
// Load caches the result per configuration type, so every package can ask
// for its config without re-parsing. Parse skips the cache and accepts an
// explicit environment, which is what tests use.
//
//	type SessionConfig struct {
//	    Secret string        `env:"SESSION_SECRET,required"`
//	    TTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
package config
