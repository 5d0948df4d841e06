package nav

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsbank/obsctl/pkg/session"
)

func Test_Links(t *testing.T) {
	tests := []struct {
		name     string
		session  *session.Session
		expected []string
	}{
		{
			name:     "logged out",
			session:  nil,
			expected: []string{"login", "register", "about"},
		},
		{
			name:     "no roles",
			session:  &session.Session{Roles: []string{}},
			expected: []string{"accounts", "transfer", "bills", "recurring", "history"},
		},
		{
			name:     "customer",
			session:  &session.Session{Roles: []string{session.RoleCustomer}},
			expected: []string{"accounts", "transfer", "bills", "recurring", "history"},
		},
		{
			name:     "banker",
			session:  &session.Session{Roles: []string{session.RoleBanker}},
			expected: []string{"banker"},
		},
		{
			name:     "admin",
			session:  &session.Session{Roles: []string{session.RoleAdmin}},
			expected: []string{"admin"},
		},
		{
			name:     "admin and banker shows admin only",
			session:  &session.Session{Roles: []string{session.RoleBanker, session.RoleAdmin}},
			expected: []string{"admin"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Links(test.session))
		})
	}
}

func Test_RequireSession(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	err := RequireSession(store)
	assert.Error(t, err)

	require.NoError(t, store.Save(&session.Session{Username: "alice", Token: "T1"}))
	assert.NoError(t, RequireSession(store))

	// the gate is authentication-only: a customer session passes even
	// though the admin console will answer 403 server-side
	require.NoError(t, store.Save(&session.Session{
		Username: "carol",
		Roles:    []string{session.RoleCustomer},
		Token:    "T2",
	}))
	assert.NoError(t, RequireSession(store))
}
