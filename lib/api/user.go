// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Role and status values this client assigns to newly created users.
// The backend offers no role/status selection to this console.
const (
	RoleAdmin    = "ADMIN"
	StatusActive = "ACTIVE"
)

// User is a staff account within a tenant. Password is write-only: it
// is present only on creation and never returned by the backend or
// re-submitted on edit.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

// ListUsers retrieves one page of users. The user endpoint has no
// search support, so any search term is dropped before encoding.
func (c *Client) ListUsers(ctx context.Context, query PageQuery) (*Page[User], error) {
	query.Search = ""
	var page Page[User]
	if err := c.get(ctx, c.routes.User, &page, query.Values()); err != nil {
		return nil, fmt.Errorf("api: listing users: %w", err)
	}
	return &page, nil
}

// GetUser retrieves a user by ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.routes.User, id), &user); err != nil {
		return nil, fmt.Errorf("api: fetching user %d: %w", id, err)
	}
	return &user, nil
}

// CreateUser creates a new user record.
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	body, err := c.doRequest(ctx, http.MethodPost, c.routes.User, user)
	if err != nil {
		return nil, fmt.Errorf("api: creating user: %w", err)
	}

	var created User
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("api: failed to parse created user: %w", err)
	}
	return &created, nil
}

// UpdateUser updates an existing user. The password field must be
// empty; the backend never accepts a password on update.
func (c *Client) UpdateUser(ctx context.Context, user User) (*User, error) {
	if user.ID == 0 {
		return nil, fmt.Errorf("api: user ID is required for update")
	}
	if user.Password != "" {
		return nil, fmt.Errorf("api: password must not be set on update")
	}

	body, err := c.doRequest(ctx, http.MethodPut, c.routes.User, user)
	if err != nil {
		return nil, fmt.Errorf("api: updating user %d: %w", user.ID, err)
	}

	var updated User
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("api: failed to parse updated user: %w", err)
	}
	return &updated, nil
}

// DeleteUser deletes a user by ID.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", c.routes.User, id), nil); err != nil {
		return fmt.Errorf("api: deleting user %d: %w", id, err)
	}
	return nil
}
