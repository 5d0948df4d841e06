package auth

import (
	"path/filepath"
	"testing"

	"github.com/obsbank/obsctl/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AuthHeader(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	assert.Equal(t, "", AuthHeader(store))

	require.NoError(t, store.Save(&session.Session{Username: "alice", Token: "T1"}))
	assert.Equal(t, "Bearer T1", AuthHeader(store))

	// refreshed token must be picked up on the next call, not cached
	require.NoError(t, store.PatchToken("T2"))
	assert.Equal(t, "Bearer T2", AuthHeader(store))

	require.NoError(t, store.Clear())
	assert.Equal(t, "", AuthHeader(store))
}
