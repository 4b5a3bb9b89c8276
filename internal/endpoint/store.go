// Package endpoint owns the configured backend base address. The value is
// persisted under the "api_base_url" key and cached in memory after the
// first successful read; a hardcoded default covers an empty or unreadable
// store so Get never fails.
package endpoint

import (
	"context"
	"strings"
	"sync"

	"github.com/levietphu/campuspark/internal/common"
	"github.com/levietphu/campuspark/internal/storage/kv"
)

const baseURLKey = "api_base_url"

// DefaultBaseURL is used when no endpoint has ever been configured.
const DefaultBaseURL = "http://192.168.137.213:8000"

// Store resolves and updates the backend base URL. One instance is owned by
// the composition root and shared by reference; the cache makes repeated
// reads cheap and keeps Set immediately visible within the process.
type Store struct {
	repo       kv.Repository
	defaultURL string

	mu     sync.Mutex
	cached string
}

// NewStore builds a Store over the given repository. defaultURL may be
// empty, in which case DefaultBaseURL applies.
func NewStore(repo kv.Repository, defaultURL string) *Store {
	if defaultURL == "" {
		defaultURL = DefaultBaseURL
	}
	return &Store{repo: repo, defaultURL: defaultURL}
}

// Get returns the configured base URL. Storage failures and missing values
// fall back to the default; the caller never sees an error.
func (s *Store) Get(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != "" {
		return s.cached
	}

	value, err := s.repo.Get(ctx, baseURLKey)
	if err != nil {
		// A transient read failure must not shadow a configured value, so
		// the default is served without being cached.
		return s.defaultURL
	}
	if len(value) == 0 {
		s.cached = s.defaultURL
		return s.cached
	}

	s.cached = string(value)
	return s.cached
}

// Set validates, persists and caches a new base URL. On validation or
// persistence failure the previous value stays in effect.
func (s *Store) Set(ctx context.Context, rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return common.NewError(common.KindInvalidEndpoint, "endpoint must not be empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return common.NewError(common.KindInvalidEndpoint, "endpoint must start with http:// or https://: %q", trimmed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Set(ctx, baseURLKey, []byte(trimmed)); err != nil {
		return common.WrapError(common.KindInvalidEndpoint, err, "failed to persist endpoint")
	}

	s.cached = trimmed
	return nil
}
