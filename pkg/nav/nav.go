package nav

import (
	"github.com/pkg/errors"

	"github.com/obsbank/obsctl/pkg/session"
)

// Command names making up each navigation set.
var (
	adminLinks    = []string{"admin"}
	bankerLinks   = []string{"banker"}
	customerLinks = []string{"accounts", "transfer", "bills", "recurring", "history"}
	publicLinks   = []string{"login", "register", "about"}
)

// Links computes the visible navigation set for a session. Precedence
// is exclusive and tiered (admin over banker over customer), so an
// elevated role suppresses the ordinary customer set entirely and a
// user holding both elevated roles gets the admin console. Membership
// is checked per role; admin does not imply banker.
func Links(sess *session.Session) []string {
	switch {
	case sess == nil:
		return publicLinks
	case sess.IsAdmin():
		return adminLinks
	case sess.IsBanker():
		return bankerLinks
	default:
		return customerLinks
	}
}

// RequireSession guards protected commands: with no stored session the
// command never runs and the user is sent to login instead. This gate
// checks authentication only; role enforcement for the banker and admin
// consoles happens server-side, and a customer invoking them simply gets
// the server's 403 back.
func RequireSession(store *session.Store) error {
	if store.Load() == nil {
		return errors.New("not logged in, run 'obsctl login' first")
	}
	return nil
}
