// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tessera-admin/tessera/lib/secret"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if body["companyCode"] != "ACME" || body["username"] != "alice" || body["password"] != "password123" {
			t.Errorf("unexpected login body: %v", body)
		}

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
	}))

	password, err := secret.NewFromString("password123")
	if err != nil {
		t.Fatalf("secret buffer: %v", err)
	}
	defer password.Close()

	response, err := client.Login(context.Background(), "ACME", "alice", password)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if response.Token != "tok-1" {
		t.Errorf("token = %q, want tok-1", response.Token)
	}
}

func TestLoginStructuredFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"status":  401,
			"error":   "Unauthorized",
			"message": "Invalid credentials",
			"path":    "/api/auth/login",
		})
	}))

	password, err := secret.NewFromString("wrong-password")
	if err != nil {
		t.Fatalf("secret buffer: %v", err)
	}
	defer password.Close()

	_, err = client.Login(context.Background(), "ACME", "alice", password)
	if err == nil {
		t.Fatal("expected login failure")
	}

	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected structured error, got %v", err)
	}
	if apiErr.Status != 401 || apiErr.Message != "Invalid credentials" {
		t.Errorf("unexpected structured error: %+v", apiErr)
	}
}

func TestListCustomersQueryEncoding(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("pageNo") != "2" || query.Get("pageSize") != "25" {
			t.Errorf("unexpected paging params: %v", query)
		}
		if query.Get("sortBy") != "email" || query.Get("sortDir") != "desc" {
			t.Errorf("unexpected sort params: %v", query)
		}
		if query.Get("search") != "smith" {
			t.Errorf("expected search=smith, got %v", query)
		}

		json.NewEncoder(w).Encode(Page[Customer]{
			Content:       []Customer{{ID: 7, FirstName: "Jane", LastName: "Smith"}},
			PageNumber:    2,
			PageSize:      25,
			TotalElements: 51,
			TotalPages:    3,
			HasPrevious:   true,
		})
	}))

	page, err := client.ListCustomers(context.Background(), PageQuery{
		Page: 2, Size: 25, SortBy: "email", SortDir: "desc", Search: "smith",
	})
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	if page.TotalElements != 51 || len(page.Content) != 1 {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestListUsersDropsSearchTerm(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.URL.Query()["search"]; present {
			t.Error("user listing must not send a search parameter")
		}
		json.NewEncoder(w).Encode(Page[User]{})
	}))

	query := DefaultPageQuery(10)
	query.Search = "stray"
	if _, err := client.ListUsers(context.Background(), query); err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
}

func TestDeleteCustomerPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/customer/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeleteCustomer(context.Background(), 42); err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
}

func TestUpdateUserRejectsPassword(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent")
	}))

	_, err := client.UpdateUser(context.Background(), User{ID: 3, Password: "leaked"})
	if err == nil {
		t.Fatal("expected error for password on update")
	}
}

func TestUnparseableErrorBodyDegradesToPlainError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := client.GetCustomer(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := AsError(err); ok {
		t.Error("plain-text body must not produce a structured error")
	}
}
