package api

import (
	"fmt"
	"net/url"
)

// Banker console operations. The client only gates visibility of these
// commands; authorization is enforced server-side by the banker role on
// the bearer token.

func (c *Client) PendingTransactions() ([]Transaction, error) {
	transactions := []Transaction{}
	if err := c.doJSON("GET", "/api/transactions/pending", nil, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) ApproveTransaction(id int64) error {
	return c.doJSON("PUT", fmt.Sprintf("/api/transactions/%d/approve", id), nil, nil, nil)
}

func (c *Client) RejectTransaction(id int64) error {
	return c.doJSON("PUT", fmt.Sprintf("/api/transactions/%d/reject", id), nil, nil, nil)
}

func (c *Client) SearchAccount(accountNumber string) (*Account, error) {
	query := url.Values{}
	query.Set("accountNumber", accountNumber)

	account := Account{}
	if err := c.doJSON("GET", "/api/accounts/search", query, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ToggleAccountActive freezes an active account or unfreezes a frozen
// one and returns the new state.
func (c *Client) ToggleAccountActive(accountNumber string) (*Account, error) {
	account := Account{}
	path := fmt.Sprintf("/api/accounts/%s/toggle-active", accountNumber)
	if err := c.doJSON("PUT", path, nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) Deposit(r DepositRequest) (*Transaction, error) {
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	transaction := Transaction{}
	if err := c.doJSON("POST", "/api/accounts/deposit", nil, r, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) AccountTransactions(accountNumber string) ([]Transaction, error) {
	transactions := []Transaction{}
	path := fmt.Sprintf("/api/banker/accounts/%s/transactions", accountNumber)
	if err := c.doJSON("GET", path, nil, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) DownloadAccountStatement(accountNumber string) ([]byte, string, error) {
	return c.download(fmt.Sprintf("/api/banker/accounts/%s/statement", accountNumber))
}
