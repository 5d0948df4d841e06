package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store reads and writes the session file. All access is synchronous;
// the CLI issues storage calls from a single goroutine except for the
// token-refresh path, which is best-effort and tolerates lost writes.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session file location under the user config
// directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config dir")
	}
	return filepath.Join(configDir, "obsctl", "session.json"), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored session, or nil when there is none. A missing
// or unreadable file and a file that does not parse are all treated as
// "not logged in" rather than an error.
func (s *Store) Load() *Session {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	sess := Session{}
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil
	}
	if sess.Token == "" {
		return nil
	}

	return &sess
}

// Save overwrites the stored session wholesale.
func (s *Store) Save(sess *Session) error {
	if sess == nil {
		return errors.New("cannot save nil session")
	}

	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "failed to create session dir")
	}

	if err := os.WriteFile(s.path, b, 0600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}

	return nil
}

// PatchToken replaces only the token field of an existing stored session.
// When no session is stored this is a no-op: a refreshed token without a
// session to attach it to is meaningless.
func (s *Store) PatchToken(newToken string) error {
	sess := s.Load()
	if sess == nil {
		return nil
	}

	sess.Token = newToken
	return s.Save(sess)
}

// UpdateProfile merges the editable profile fields into the stored
// session. Roles and token are never touched by profile edits.
func (s *Store) UpdateProfile(fullName string, email string, phoneNumber string) error {
	sess := s.Load()
	if sess == nil {
		return errors.New("no session to update")
	}

	if fullName != "" {
		sess.FullName = fullName
	}
	if email != "" {
		sess.Email = email
	}
	if phoneNumber != "" {
		sess.PhoneNumber = phoneNumber
	}

	return s.Save(sess)
}

// Clear removes the stored session. Clearing an already absent session
// is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}
	return nil
}
