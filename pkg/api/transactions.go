package api

import (
	"fmt"
)

func (c *Client) Transfer(r TransferRequest) (*Transaction, error) {
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	transaction := Transaction{}
	if err := c.doJSON("POST", "/api/transactions/transfer", nil, r, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) TransactionHistory(accountNumber string) ([]Transaction, error) {
	transactions := []Transaction{}
	path := fmt.Sprintf("/api/transactions/%s", accountNumber)
	if err := c.doJSON("GET", path, nil, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// DownloadInvoice fetches the invoice document for a single transaction.
func (c *Client) DownloadInvoice(transactionID int64) ([]byte, string, error) {
	return c.download(fmt.Sprintf("/api/transactions/%d/invoice", transactionID))
}

// DownloadStatement fetches the account statement document.
func (c *Client) DownloadStatement(accountNumber string) ([]byte, string, error) {
	return c.download(fmt.Sprintf("/api/transactions/%s/statement", accountNumber))
}
