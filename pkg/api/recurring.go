package api

import (
	"fmt"
)

func (c *Client) CreateRecurringPayment(r CreateRecurringRequest) (*RecurringPayment, error) {
	if err := c.validateRequest(r); err != nil {
		return nil, err
	}

	payment := RecurringPayment{}
	if err := c.doJSON("POST", "/api/recurring/create", nil, r, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) RecurringPayments(accountNumber string) ([]RecurringPayment, error) {
	payments := []RecurringPayment{}
	path := fmt.Sprintf("/api/recurring/%s", accountNumber)
	if err := c.doJSON("GET", path, nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) StopRecurringPayment(id int64) error {
	path := fmt.Sprintf("/api/recurring/%d/stop", id)
	return c.doJSON("PUT", path, nil, nil, nil)
}
