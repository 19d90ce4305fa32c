// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tessera-admin/tessera/lib/secret"
)

// LoginResponse is the payload returned after successful
// authentication.
type LoginResponse struct {
	// Token is the bearer token for subsequent requests.
	Token string `json:"token"`
}

// Login authenticates against a tenant with the company code, username,
// and password. The caller owns the session store; on success it should
// persist the returned token there.
//
// The password crosses the heap briefly at the JSON serialization
// boundary; the copy lives only for the duration of the call.
func (c *Client) Login(ctx context.Context, companyCode, username string, password *secret.Buffer) (*LoginResponse, error) {
	if companyCode == "" {
		return nil, fmt.Errorf("api: company code is required for login")
	}
	if username == "" {
		return nil, fmt.Errorf("api: username is required for login")
	}
	if password == nil {
		return nil, fmt.Errorf("api: password is required for login")
	}

	requestBody := map[string]any{
		"companyCode": companyCode,
		"username":    username,
		"password":    password.String(),
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.routes.Auth+"/login", requestBody)
	if err != nil {
		return nil, fmt.Errorf("api: login failed: %w", err)
	}

	var response LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: failed to parse login response: %w", err)
	}
	if response.Token == "" {
		return nil, fmt.Errorf("api: login response carried no token")
	}
	return &response, nil
}
