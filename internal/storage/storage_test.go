package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/levietphu/campuspark/internal/storage/kv"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "campuspark.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The settings table must exist and be usable right away.
	repo := kv.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "api_base_url", []byte("http://x:8000")))

	v, err := repo.Get(ctx, "api_base_url")
	require.NoError(t, err)
	require.Equal(t, []byte("http://x:8000"), v)
}

func TestInitDatabase_ReopenExisting(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "campuspark.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	repo := kv.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "token", []byte("demo_token_1")))
	require.NoError(t, db.Close())

	// Second open must not fail on already-applied migrations.
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v, err := kv.NewSQLiteRepository(db).Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("demo_token_1"), v)
}
