package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func testSession() *Session {
	return &Session{
		ID:          42,
		Username:    "alice",
		Email:       "alice@example.com",
		FullName:    "Alice Example",
		PhoneNumber: "5550100",
		Roles:       []string{RoleCustomer},
		Token:       "T1",
	}
}

func Test_LoadAbsent(t *testing.T) {
	store := testStore(t)
	assert.Nil(t, store.Load())
}

func Test_LoadMalformed(t *testing.T) {
	store := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0700))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	// malformed storage is treated as logged out, never an error
	assert.Nil(t, store.Load())
}

func Test_SaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)
	req := require.New(t)

	req.NoError(store.Save(testSession()))

	loaded := store.Load()
	req.NotNil(loaded)
	assert.Equal(t, testSession(), loaded)
}

func Test_PatchTokenOnlyToken(t *testing.T) {
	store := testStore(t)
	req := require.New(t)

	req.NoError(store.Save(testSession()))
	req.NoError(store.PatchToken("T2"))

	loaded := store.Load()
	req.NotNil(loaded)
	assert.Equal(t, "T2", loaded.Token)

	want := testSession()
	want.Token = "T2"
	assert.Equal(t, want, loaded)
}

func Test_PatchTokenNoSession(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.PatchToken("T2"))
	assert.Nil(t, store.Load())
}

func Test_UpdateProfileLeavesRolesAndToken(t *testing.T) {
	store := testStore(t)
	req := require.New(t)

	req.NoError(store.Save(testSession()))
	req.NoError(store.UpdateProfile("Alice B. Example", "alice.b@example.com", ""))

	loaded := store.Load()
	req.NotNil(loaded)
	assert.Equal(t, "Alice B. Example", loaded.FullName)
	assert.Equal(t, "alice.b@example.com", loaded.Email)
	assert.Equal(t, "5550100", loaded.PhoneNumber)
	assert.Equal(t, []string{RoleCustomer}, loaded.Roles)
	assert.Equal(t, "T1", loaded.Token)
}

func Test_ClearIdempotent(t *testing.T) {
	store := testStore(t)
	req := require.New(t)

	req.NoError(store.Save(testSession()))
	req.NoError(store.Clear())
	assert.Nil(t, store.Load())

	// clearing again is harmless
	req.NoError(store.Clear())
}

func Test_HasRole(t *testing.T) {
	tests := []struct {
		name     string
		session  *Session
		role     string
		expected bool
	}{
		{
			name:     "nil session",
			session:  nil,
			role:     RoleAdmin,
			expected: false,
		},
		{
			name:     "member",
			session:  &Session{Roles: []string{RoleAdmin, RoleBanker}},
			role:     RoleBanker,
			expected: true,
		},
		{
			name:     "not a member",
			session:  &Session{Roles: []string{RoleCustomer}},
			role:     RoleAdmin,
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.session.HasRole(test.role))
		})
	}
}
