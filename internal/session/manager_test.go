package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jon4hz/productflow/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	m, err := NewManager(st, 0)
	require.NoError(t, err)
	return m, st
}

func TestManager_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
		wantRole Role
	}{
		{
			name:     "manager with correct password",
			username: "manager",
			password: "123",
			want:     true,
			wantRole: RoleManager,
		},
		{
			name:     "keeper with correct password",
			username: "keeper",
			password: "123",
			want:     true,
			wantRole: RoleStoreKeeper,
		},
		{
			name:     "wrong password",
			username: "manager",
			password: "1234",
			want:     false,
		},
		{
			name:     "unknown user",
			username: "admin",
			password: "123",
			want:     false,
		},
		{
			name:     "empty credentials",
			username: "",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)

			ok, err := m.Login(context.Background(), tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, m.IsAuthenticated())

			if tt.want {
				user := m.Current()
				require.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.wantRole, user.Role)
			} else {
				assert.Nil(t, m.Current())
			}
		})
	}
}

func TestManager_LoginPersistsUser(t *testing.T) {
	m, st := newTestManager(t)

	ok, err := m.Login(context.Background(), "manager", "123")
	require.NoError(t, err)
	require.True(t, ok)

	raw, found, err := st.Read(store.KeyUser)
	require.NoError(t, err)
	require.True(t, found)

	var user User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	assert.Equal(t, "manager", user.Username)
	// The persisted record must not contain the password.
	assert.NotContains(t, raw, "password")
}

func TestManager_LoginDelayRespectsContext(t *testing.T) {
	st := store.NewMemory()
	m, err := NewManager(st, time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := m.Login(ctx, "manager", "123")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.IsAuthenticated())
}

func TestManager_Logout(t *testing.T) {
	m, st := newTestManager(t)

	ok, err := m.Login(context.Background(), "keeper", "123")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())

	_, found, err := st.Read(store.KeyUser)
	require.NoError(t, err)
	assert.False(t, found)

	// Logging out again is a no-op.
	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())
}

func TestManager_UpdateUser(t *testing.T) {
	m, st := newTestManager(t)

	ok, err := m.Login(context.Background(), "manager", "123")
	require.NoError(t, err)
	require.True(t, ok)

	name := "Johnny Manager"
	email := "not even an email"
	require.NoError(t, m.UpdateUser(Update{Name: &name, Email: &email}))

	user := m.Current()
	require.NotNil(t, user)
	assert.Equal(t, "Johnny Manager", user.Name)
	// Any string is accepted, there is no format validation.
	assert.Equal(t, "not even an email", user.Email)
	// Untouched fields survive the merge.
	assert.Equal(t, "+1 (555) 123-4567", user.Phone)

	raw, found, err := st.Read(store.KeyUser)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, "Johnny Manager")
}

func TestManager_UpdateUserWithoutSession(t *testing.T) {
	m, st := newTestManager(t)

	name := "ghost"
	require.NoError(t, m.UpdateUser(Update{Name: &name}))

	assert.False(t, m.IsAuthenticated())
	_, found, err := st.Read(store.KeyUser)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewManager_RestoresPersistedSession(t *testing.T) {
	st := store.NewMemory()
	raw, err := json.Marshal(User{ID: "2", Username: "keeper", Role: RoleStoreKeeper, Name: "Jane Keeper"})
	require.NoError(t, err)
	require.NoError(t, st.Write(store.KeyUser, string(raw)))

	m, err := NewManager(st, 0)
	require.NoError(t, err)

	assert.True(t, m.IsAuthenticated())
	user := m.Current()
	require.NotNil(t, user)
	assert.Equal(t, "keeper", user.Username)
	assert.Equal(t, RoleStoreKeeper, user.Role)
}

func TestNewManager_DiscardsCorruptSession(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Write(store.KeyUser, "{not json"))

	m, err := NewManager(st, 0)
	require.NoError(t, err)

	assert.False(t, m.IsAuthenticated())
	_, found, err := st.Read(store.KeyUser)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleStoreKeeper.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestManager_CurrentReturnsCopy(t *testing.T) {
	m, _ := newTestManager(t)

	ok, err := m.Login(context.Background(), "manager", "123")
	require.NoError(t, err)
	require.True(t, ok)

	user := m.Current()
	user.Name = "mutated"
	assert.Equal(t, "John Manager", m.Current().Name)
}
