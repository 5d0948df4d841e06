package auth

import (
	"github.com/obsbank/obsctl/pkg/session"
)

// AuthHeader returns the Authorization header value for the current
// session, or an empty string when no session is stored. The value is
// derived from the store at call time on every request: the token can be
// silently replaced mid-session by a refresh, so it must never be cached.
func AuthHeader(store *session.Store) string {
	sess := store.Load()
	if sess == nil {
		return ""
	}
	return "Bearer " + sess.Token
}
