// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tessera-admin/tessera/lib/secret"
)

// RegisterRequest is the payload for registering a new tenant: the
// company identity plus the initial admin account.
type RegisterRequest struct {
	CompanyCode   string
	CompanyName   string
	CompanyEmail  string
	AdminUsername string
	AdminEmail    string
	AdminPassword *secret.Buffer
}

// RegisterTenant creates a new tenant company along with its initial
// admin account. Registration is unauthenticated: it is how a tenant
// comes to exist in the first place.
func (c *Client) RegisterTenant(ctx context.Context, request RegisterRequest) error {
	if request.CompanyCode == "" {
		return fmt.Errorf("api: company code is required for registration")
	}
	if request.AdminPassword == nil {
		return fmt.Errorf("api: admin password is required for registration")
	}

	requestBody := map[string]any{
		"companyCode":   request.CompanyCode,
		"companyName":   request.CompanyName,
		"companyEmail":  request.CompanyEmail,
		"adminUsername": request.AdminUsername,
		"adminEmail":    request.AdminEmail,
		"adminPassword": request.AdminPassword.String(),
	}

	if _, err := c.doRequest(ctx, http.MethodPost, c.routes.TenantAdmin+"/register", requestBody); err != nil {
		return fmt.Errorf("api: tenant registration failed: %w", err)
	}
	return nil
}
