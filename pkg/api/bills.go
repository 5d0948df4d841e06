package api

import (
	"net/url"
	"strconv"
)

// PayBill submits a bill payment. This endpoint takes its arguments
// query-encoded with an empty body; that is the server's contract, not a
// choice made here.
func (c *Client) PayBill(r BillPayRequest) (string, error) {
	if err := c.validateRequest(r); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("accountNumber", r.AccountNumber)
	query.Set("billerName", r.BillerName)
	query.Set("amount", strconv.FormatFloat(r.Amount, 'f', -1, 64))

	msg := MessageResponse{}
	if err := c.doJSON("POST", "/api/bills/pay", query, nil, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (c *Client) MyBills() ([]Bill, error) {
	bills := []Bill{}
	if err := c.doJSON("GET", "/api/bills/my-bills", nil, nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}
