package session

// Wire values for the roles claim returned by the signin endpoint.
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleBanker   = "ROLE_BANKER"
	RoleCustomer = "ROLE_CUSTOMER"
)

// Session is the locally held record of the authenticated user and their
// bearer credential. It is persisted as a single JSON document and is the
// sole source of truth for "am I logged in": a stored session means
// logged in, absence means logged out.
type Session struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Roles       []string `json:"roles"`
	Token       string   `json:"token"`
}

func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}

func (s *Session) IsBanker() bool {
	return s.HasRole(RoleBanker)
}
