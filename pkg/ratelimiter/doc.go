// Package ratelimiter limits how often a client may ask for generated names.
//
// Every generation request runs the model for several batches, so the
// generate endpoints are guarded by a token bucket per client key:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, clientip.Key))
//
// A bucket starts full with Capacity tokens and regains RefillRate tokens
// every RefillInterval. Each request takes one token. The middleware sets
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset, plus
// Retry-After when the request is denied.
package ratelimiter
