package api

import (
	"net/url"
)

func (c *Client) MyAccounts() ([]Account, error) {
	accounts := []Account{}
	if err := c.doJSON("GET", "/api/accounts/my-accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount opens a new account of the given type. The account type
// is query-encoded, matching the server's contract; business fields ride
// in the body and only apply to CURRENT accounts.
func (c *Client) CreateAccount(r CreateAccountRequest) (*Account, error) {
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("accountType", r.AccountType)

	account := Account{}
	if err := c.doJSON("POST", "/api/accounts/create", query, r, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
