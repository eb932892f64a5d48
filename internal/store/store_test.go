package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(filepath.Join(t.TempDir(), "productflow.db"))
	require.NoError(t, err)
	return client
}

func TestClient_ReadMissing(t *testing.T) {
	client := newTestClient(t)

	value, ok, err := client.Read("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestClient_WriteRead(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.Write(KeyProducts, `[{"id":"1"}]`))

	value, ok, err := client.Read(KeyProducts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestClient_WriteOverwrites(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.Write(KeyUser, "first"))
	require.NoError(t, client.Write(KeyUser, "second"))

	value, ok, err := client.Read(KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestClient_Delete(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.Write(KeyUser, "value"))
	require.NoError(t, client.Delete(KeyUser))

	_, ok, err := client.Read(KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing record is a no-op.
	require.NoError(t, client.Delete(KeyUser))
}

func TestClient_DeleteThenWriteAgain(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.Write(KeyUser, "value"))
	require.NoError(t, client.Delete(KeyUser))
	require.NoError(t, client.Write(KeyUser, "fresh"))

	value, ok, err := client.Read(KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh", value)
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Read("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Write("k", "v"))
	value, ok, err := m.Read("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, m.Delete("k"))
	_, ok, err = m.Read("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
