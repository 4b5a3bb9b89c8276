// Package kv is the durable key/value store behind the endpoint and session
// stores. Keys in use: "token", "user", "api_base_url".
package kv

import "context"

// Repository is a durable string-keyed blob store. Get returns (nil, nil)
// when the key is absent; Set upserts; Delete and Clear are no-op successes
// when there is nothing to remove.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
