// Package redis connects to Redis with retries and exposes a health check.
//
// The revocation-list access-token validator stores revoked tokens in Redis;
// this package builds the client it needs from a Config populated from the
// environment.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil { log.Fatal(err) }
//	defer client.Close()
//
//	probe := redis.Healthcheck(client)
package redis
