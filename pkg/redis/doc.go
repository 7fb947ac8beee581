// Package redis connects to the Redis server that can hold the training
// corpus as a set of names.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	src := corpus.RedisSource(client, cfg.Key)
//
// Connect retries the initial ping RetryAttempts times within ConnectTimeout.
// Healthcheck returns a func(context.Context) error for readiness probes.
package redis
