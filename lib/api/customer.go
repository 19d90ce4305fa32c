// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Gender values accepted by the backend.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// DateLayout is the wire format for calendar dates (ISO 8601 date).
const DateLayout = "2006-01-02"

// Customer is a customer record within a tenant. ID is zero until the
// record is persisted. Age is derived from DateOfBirth: the client
// recomputes it at read and edit time and submits the computed value;
// it is never edited directly.
type Customer struct {
	ID          int64  `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
}

// Age computes whole years elapsed between dateOfBirth and today. A
// birthday not yet reached this year counts one year less. Never
// negative: a future date of birth yields zero.
func Age(dateOfBirth, today time.Time) int {
	age := today.Year() - dateOfBirth.Year()
	if today.Month() < dateOfBirth.Month() ||
		(today.Month() == dateOfBirth.Month() && today.Day() < dateOfBirth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// AgeOn recomputes the customer's age from its date of birth as of the
// given day. Returns an error when the date of birth does not parse.
func (customer Customer) AgeOn(today time.Time) (int, error) {
	dateOfBirth, err := time.Parse(DateLayout, customer.DateOfBirth)
	if err != nil {
		return 0, fmt.Errorf("api: invalid dateOfBirth %q: %w", customer.DateOfBirth, err)
	}
	return Age(dateOfBirth, today), nil
}

// ListCustomers retrieves one page of customers. The query's search
// term filters server-side when present.
func (c *Client) ListCustomers(ctx context.Context, query PageQuery) (*Page[Customer], error) {
	var page Page[Customer]
	if err := c.get(ctx, c.routes.Customer, &page, query.Values()); err != nil {
		return nil, fmt.Errorf("api: listing customers: %w", err)
	}
	return &page, nil
}

// GetCustomer retrieves a customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var customer Customer
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.routes.Customer, id), &customer); err != nil {
		return nil, fmt.Errorf("api: fetching customer %d: %w", id, err)
	}
	return &customer, nil
}

// CreateCustomer creates a new customer record.
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	body, err := c.doRequest(ctx, http.MethodPost, c.routes.Customer, customer)
	if err != nil {
		return nil, fmt.Errorf("api: creating customer: %w", err)
	}

	var created Customer
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("api: failed to parse created customer: %w", err)
	}
	return &created, nil
}

// UpdateCustomer updates an existing customer. The record's ID selects
// the target; the backend expects it in the body, not the path.
func (c *Client) UpdateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	if customer.ID == 0 {
		return nil, fmt.Errorf("api: customer ID is required for update")
	}

	body, err := c.doRequest(ctx, http.MethodPut, c.routes.Customer, customer)
	if err != nil {
		return nil, fmt.Errorf("api: updating customer %d: %w", customer.ID, err)
	}

	var updated Customer
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("api: failed to parse updated customer: %w", err)
	}
	return &updated, nil
}

// DeleteCustomer deletes a customer by ID.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", c.routes.Customer, id), nil); err != nil {
		return fmt.Errorf("api: deleting customer %d: %w", id, err)
	}
	return nil
}
