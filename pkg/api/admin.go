package api

import (
	"fmt"
)

// Admin console operations. Same gating model as the banker operations:
// the admin role is assumed and enforced server-side.

func (c *Client) AllUsers() ([]User, error) {
	users := []User{}
	if err := c.doJSON("GET", "/api/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateBanker(r CreateBankerRequest) (*User, error) {
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	user := User{}
	if err := c.doJSON("POST", "/api/admin/create-banker", nil, r, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ToggleUserActive(id int64) (*User, error) {
	user := User{}
	path := fmt.Sprintf("/api/admin/users/%d/toggle-active", id)
	if err := c.doJSON("PUT", path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(id int64) error {
	return c.doJSON("DELETE", fmt.Sprintf("/api/admin/users/%d", id), nil, nil, nil)
}
