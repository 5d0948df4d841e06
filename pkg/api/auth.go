package api

import (
	"github.com/pkg/errors"

	"github.com/obsbank/obsctl/pkg/session"
)

// Register creates a new account. It is a pure pass-through: local
// session state is never touched regardless of the outcome, and a fresh
// registration still requires an explicit login.
func (c *Client) Register(r RegisterRequest) (string, error) {
	if err := c.validateRequest(r); err != nil {
		return "", err
	}

	msg := MessageResponse{}
	if err := c.doJSON("POST", "/api/auth/signup", nil, r, &msg); err != nil {
		return "", err
	}

	return msg.Message, nil
}

// Login authenticates and persists the returned session. On failure the
// local session is cleared so a stale login can never outlive rejected
// credentials.
func (c *Client) Login(username string, password string) (*session.Session, error) {
	r := LoginRequest{
		Username: username,
		Password: password,
	}
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	payload := session.Session{}
	if err := c.doJSON("POST", "/api/auth/signin", nil, r, &payload); err != nil {
		_ = c.store.Clear()
		return nil, err
	}

	if payload.Token == "" {
		_ = c.store.Clear()
		return nil, errors.New("signin response is missing a token")
	}

	if err := c.store.Save(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return &payload, nil
}

// Logout notifies the server and always clears the local session, even
// when the signout call fails or the server is unreachable. The returned
// error is informational; the user is logged out locally either way.
func (c *Client) Logout() error {
	remoteErr := c.doJSON("POST", "/api/auth/signout", nil, nil, nil)

	if err := c.store.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return remoteErr
}

// UpdateProfile edits the editable profile fields. Roles and the bearer
// token are never modified by a profile update.
func (c *Client) UpdateProfile(r ProfileUpdateRequest) (*session.Session, error) {
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	if err := c.doJSON("PUT", "/api/users/profile", nil, r, nil); err != nil {
		return nil, err
	}

	if err := c.store.UpdateProfile(r.FullName, r.Email, r.PhoneNumber); err != nil {
		return nil, errors.Wrap(err, "failed to update stored session")
	}

	return c.store.Load(), nil
}
