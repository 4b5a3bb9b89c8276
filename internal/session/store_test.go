package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/levietphu/campuspark/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:session_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM settings`)
	require.NoError(t, err)

	return NewStore(db), db
}

// blockKeyWrites installs triggers that make every write touching the given
// settings key fail, to exercise mid-save storage failures.
func blockKeyWrites(t *testing.T, db *sql.DB, key string) {
	t.Helper()
	for _, stmt := range []string{
		`CREATE TRIGGER block_ins BEFORE INSERT ON settings WHEN NEW.key = '` + key + `'
		 BEGIN SELECT RAISE(ABORT, 'disk full'); END;`,
		`CREATE TRIGGER block_upd BEFORE UPDATE ON settings WHEN NEW.key = '` + key + `'
		 BEGIN SELECT RAISE(ABORT, 'disk full'); END;`,
		`CREATE TRIGGER block_del BEFORE DELETE ON settings WHEN OLD.key = '` + key + `'
		 BEGIN SELECT RAISE(ABORT, 'disk full'); END;`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	t.Cleanup(func() {
		for _, name := range []string{"block_ins", "block_upd", "block_del"} {
			_, _ = db.Exec(`DROP TRIGGER IF EXISTS ` + name)
		}
	})
}

func sampleSession() *models.Session {
	return &models.Session{
		Credential: "demo-3f6c0e1a",
		Profile: models.UserProfile{
			StudentID:   "102220120",
			DisplayName: "Lê Viết Vĩnh Phú",
			Balance:     decimal.NewFromInt(180000),
			RFIDTag:     "33aaf20c",
		},
	}
}

func TestStore_LoadEmptyReturnsNone(t *testing.T) {
	store, _ := setupStore(t)

	sess, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "demo-3f6c0e1a", got.Credential)
	require.Equal(t, "102220120", got.Profile.StudentID)
	require.True(t, decimal.NewFromInt(180000).Equal(got.Profile.Balance))
}

func TestStore_LoadMissingProfileReturnsNone(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO settings(key,value) VALUES('token', 'demo-x')`)
	require.NoError(t, err)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess, "credential without profile is no session")
}

func TestStore_LoadCorruptProfileReturnsNone(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO settings(key,value) VALUES('token', 'demo-x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO settings(key,value) VALUES('user', 'not-json{')`)
	require.NoError(t, err)

	sess, err := store.Load(ctx)
	require.NoError(t, err, "corrupt profile must not raise")
	require.Nil(t, sess)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx), "clear on empty store is a no-op")

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)
	require.Empty(t, store.Credential(ctx))
}

func TestStore_SaveIsAtomic(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))

	// The profile write fails mid-save; the new credential must not land
	// next to the old profile.
	blockKeyWrites(t, db, "user")
	err := store.Save(ctx, &models.Session{
		Credential: "demo-new",
		Profile:    models.UserProfile{StudentID: "102220068", DisplayName: "Trần Quang Khải"},
	})
	require.Error(t, err)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "demo-3f6c0e1a", got.Credential, "failed save must not leave a new credential behind")
	require.Equal(t, "102220120", got.Profile.StudentID)
}

func TestStore_ClearIsAtomic(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession()))

	blockKeyWrites(t, db, "user")
	require.Error(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got, "failed clear must leave the session whole")
	require.Equal(t, "demo-3f6c0e1a", got.Credential)
}

func TestStore_Credential(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.Empty(t, store.Credential(ctx))
	require.NoError(t, store.Save(ctx, sampleSession()))
	require.Equal(t, "demo-3f6c0e1a", store.Credential(ctx))
}
