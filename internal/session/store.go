// Package session persists the authentication credential and the last-known
// user profile under the "token" and "user" keys. Load tolerates missing or
// corrupt entries by reporting no session; Save writes both entries in one
// transaction so the store never holds a credential from one session next
// to the profile of another; Clear removes both the same way and is a no-op
// on an empty store.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/levietphu/campuspark/internal/dbx"
	"github.com/levietphu/campuspark/internal/models"
	"github.com/levietphu/campuspark/internal/storage/kv"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load reads the saved session. It returns (nil, nil) when the credential or
// profile is missing or the profile fails to parse; storage errors are also
// downgraded to "no session" so a broken store never blocks startup.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	repo := kv.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, tokenKey)
	if err != nil || len(token) == 0 {
		return nil, nil
	}

	userData, err := repo.Get(ctx, userKey)
	if err != nil || len(userData) == 0 {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(userData, &profile); err != nil {
		return nil, nil
	}

	return &models.Session{Credential: string(token), Profile: profile}, nil
}

// Save writes the credential and serialized profile together. A failure on
// either entry rolls both back, leaving the previous session intact.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	userData, err := json.Marshal(sess.Profile)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, []byte(sess.Credential)); err != nil {
			return fmt.Errorf("save credential: %w", err)
		}
		if err := repo.Set(ctx, userKey, userData); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		return nil
	})
}

// Clear removes both entries in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		if err := repo.Delete(ctx, userKey); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		return nil
	})
}

// Credential returns just the saved credential, or "" when absent. Used by
// the request client to attach the authorization header without parsing the
// profile.
func (s *Store) Credential(ctx context.Context) string {
	token, err := kv.NewSQLiteRepository(s.db).Get(ctx, tokenKey)
	if err != nil {
		return ""
	}
	return string(token)
}
