// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/tessera-admin/tessera/lib/session"
	"github.com/tessera-admin/tessera/lib/testutil"
)

func newAuthorizedClient(t *testing.T, handler http.Handler) (*Client, *session.Store, <-chan struct{}) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("session.Open failed: %v", err)
	}

	unauthorized := make(chan struct{}, 1)
	client, err := NewClient(ClientConfig{
		BaseURL: server.URL,
		HTTPClient: &http.Client{Transport: &Authorizer{
			Session:        store,
			OnUnauthorized: func() { unauthorized <- struct{}{} },
		}},
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, store, unauthorized
}

func TestAuthorizerAttachesBearerToken(t *testing.T) {
	var sawHeader string
	client, store, _ := newAuthorizedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Page[User]{})
	}))

	if err := store.SetToken("tok-xyz"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	if _, err := client.ListUsers(context.Background(), DefaultPageQuery(10)); err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if sawHeader != "Bearer tok-xyz" {
		t.Errorf("Authorization header = %q, want bearer token", sawHeader)
	}
}

func TestAuthorizerSkipsHeaderWithoutToken(t *testing.T) {
	var sawHeader string
	client, _, _ := newAuthorizedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Page[User]{})
	}))

	if _, err := client.ListUsers(context.Background(), DefaultPageQuery(10)); err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if sawHeader != "" {
		t.Errorf("expected no Authorization header, got %q", sawHeader)
	}
}

func TestAuthorizerReadsTokenAtDispatchTime(t *testing.T) {
	headers := make(chan string, 2)
	client, store, _ := newAuthorizedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Page[User]{})
	}))

	if err := store.SetToken("first"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	if _, err := client.ListUsers(context.Background(), DefaultPageQuery(10)); err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if err := store.SetToken("second"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	if _, err := client.ListUsers(context.Background(), DefaultPageQuery(10)); err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if got := testutil.RequireReceive(t, headers, time.Second, "first header"); got != "Bearer first" {
		t.Errorf("first request header = %q", got)
	}
	if got := testutil.RequireReceive(t, headers, time.Second, "second header"); got != "Bearer second" {
		t.Errorf("second request header = %q", got)
	}
}

func TestAuthorizerClearsSessionOn401(t *testing.T) {
	client, store, unauthorized := newAuthorizedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"status":  401,
			"message": "Token expired",
		})
	}))

	if err := store.SetToken("stale"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	_, err := client.ListUsers(context.Background(), DefaultPageQuery(10))
	if err == nil {
		t.Fatal("expected the original 401 failure to propagate")
	}
	if !IsStatus(err, 401) {
		t.Errorf("expected structured 401, got %v", err)
	}

	if store.IsAuthenticated() {
		t.Error("expected session cleared after 401")
	}
	testutil.RequireReceive(t, unauthorized, time.Second, "unauthorized callback")
}

func TestAuthorizerLeavesOtherFailuresAlone(t *testing.T) {
	client, store, unauthorized := newAuthorizedClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"status": 403, "message": "No"})
	}))

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	if _, err := client.ListUsers(context.Background(), DefaultPageQuery(10)); err == nil {
		t.Fatal("expected failure")
	}

	if !store.IsAuthenticated() {
		t.Error("403 must not clear the session")
	}
	testutil.RequireNoReceive(t, unauthorized, 50*time.Millisecond, "no unauthorized callback for 403")
}
