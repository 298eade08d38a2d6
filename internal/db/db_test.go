package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	for _, table := range []string{"users", "sessions", "verification_tokens", "properties", "leads"} {
		var name string
		err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	// Reopening an already-migrated database applies nothing and succeeds.
	d, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`INSERT INTO users (id, name, email, password_hash) VALUES ('u1', 'A', 'a@example.com', 'h')`)
	assert.NoError(t, err)
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`INSERT INTO leads (id, full_name, phone, property_id) VALUES ('l1', 'A', '1', 'missing')`)
	assert.Error(t, err)
}
