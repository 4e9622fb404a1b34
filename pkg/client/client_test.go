package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/api"
	"github.com/studio-admin-api/internal/config"
	"github.com/studio-admin-api/internal/mocks"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			SessionCookie: "admin_session",
			SessionTTL:    time.Hour,
		},
	}
	services := service.NewServices(mocks.NewRepositories(), zerolog.Nop())
	sessions := api.NewSessionStore(cfg.Auth.SessionTTL)
	router := api.NewRouter(services, sessions, nil, cfg, zerolog.Nop())
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newLoggedInClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx := context.Background()
	if _, err := c.Signup(ctx, "Jane", "jane@example.com", "s3cret"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	account, err := c.Login(ctx, "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if account.Role != "admin" {
		t.Fatalf("role = %q, want admin", account.Role)
	}
	return c
}

func TestClientAuthFlow(t *testing.T) {
	srv := newTestServer(t)
	c := newLoggedInClient(t, srv)
	ctx := context.Background()

	me, err := c.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.Email != "jane@example.com" {
		t.Errorf("me email = %q", me.Email)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := c.Me(ctx); err == nil {
		t.Error("me after logout should fail")
	}
}

func TestClientRejectedWithoutSession(t *testing.T) {
	srv := newTestServer(t)
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = Products(c).List(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 401 {
		t.Errorf("anonymous list returned %v, want APIError 401", err)
	}
}

func TestClientResourceRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	c := newLoggedInClient(t, srv)
	ctx := context.Background()
	products := Products(c)

	created, err := products.Create(ctx, &models.ProductInput{
		Name:  "Practice Shoes",
		Price: models.OptFloat{Valid: true, Value: 29.99},
		Stock: models.OptInt{Valid: true, Value: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "practice-shoes" {
		t.Errorf("slug = %q", created.Slug)
	}

	listed, err := products.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("list = %d records", len(listed))
	}

	patched, err := products.UpdateStatus(ctx, created.ID, "out-of-stock")
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Status != "out-of-stock" || patched.Price != 29.99 {
		t.Errorf("patch result: status=%q price=%v", patched.Status, patched.Price)
	}

	if err := products.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = products.Get(ctx, created.ID)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Errorf("get after delete returned %v, want APIError 404", err)
	}
}

func productID(p *models.Product) int { return p.ID }

func TestStoreReconciliation(t *testing.T) {
	srv := newTestServer(t)
	c := newLoggedInClient(t, srv)
	ctx := context.Background()

	var notes []string
	store := NewStore(Products(c), productID, NotifierFunc(func(m string) { notes = append(notes, m) }))

	if err := store.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 0 || store.Err() != nil {
		t.Fatalf("fresh store: len=%d err=%v", store.Len(), store.Err())
	}

	first, err := store.Create(ctx, &models.ProductInput{
		Name:  "Practice Shoes",
		Price: models.OptFloat{Valid: true, Value: 29.99},
		Stock: models.OptInt{Valid: true, Value: 10},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := store.Create(ctx, &models.ProductInput{
		Name:  "Leg Warmers",
		Price: models.OptFloat{Valid: true, Value: 12.50},
		Stock: models.OptInt{Valid: true, Value: 40},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// New records are prepended
	records := store.Records()
	if len(records) != 2 || records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("unexpected cache order: %v then %v", records[0].ID, records[1].ID)
	}

	// Patch merges by identity
	if _, err := store.SetStatus(ctx, first.ID, "out-of-stock"); err != nil {
		t.Fatalf("patch: %v", err)
	}
	for _, r := range store.Records() {
		if r.ID == first.ID && r.Status != "out-of-stock" {
			t.Errorf("cache missed the status merge: %q", r.Status)
		}
	}

	// Filtering is local and pure
	matched := store.Filter(func(p *models.Product) bool { return p.Status == "out-of-stock" })
	if len(matched) != 1 || matched[0].ID != first.ID {
		t.Errorf("filter matched %d records", len(matched))
	}
	if store.Len() != 2 {
		t.Error("filter must not mutate the cache")
	}

	// Delete removes by identity
	if err := store.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("cache len after delete = %d, want 1", store.Len())
	}

	if len(notes) != 0 {
		t.Errorf("successful mutations produced notifications: %v", notes)
	}
}

func TestStoreFailureLeavesCacheUntouched(t *testing.T) {
	srv := newTestServer(t)
	c := newLoggedInClient(t, srv)
	ctx := context.Background()

	var notes []string
	store := NewStore(Products(c), productID, NotifierFunc(func(m string) { notes = append(notes, m) }))

	if _, err := store.Create(ctx, &models.ProductInput{
		Name:  "Practice Shoes",
		Price: models.OptFloat{Valid: true, Value: 29.99},
		Stock: models.OptInt{Valid: true, Value: 10},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Invalid payload: server rejects, cache keeps its single record and
	// the failure is surfaced as a notification.
	_, err := store.Create(ctx, &models.ProductInput{Name: ""})
	if err == nil {
		t.Fatal("invalid create should fail")
	}
	if store.Len() != 1 {
		t.Errorf("failed create changed cache, len=%d", store.Len())
	}
	if len(notes) != 1 {
		t.Fatalf("expected one notification, got %v", notes)
	}

	// Mutating a missing identity fails without touching the cache.
	if _, err := store.SetStatus(ctx, 999, "inactive"); err == nil {
		t.Fatal("patching a missing record should fail")
	}
	if store.Len() != 1 || len(notes) != 2 {
		t.Errorf("failed patch side effects: len=%d notes=%v", store.Len(), notes)
	}
}

func TestStoreLoadError(t *testing.T) {
	srv := newTestServer(t)
	// Unauthenticated client: Load fails and the error state is
	// distinguishable from an empty collection.
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var notes []string
	store := NewStore(Products(c), productID, NotifierFunc(func(m string) { notes = append(notes, m) }))

	if err := store.Load(context.Background()); err == nil {
		t.Fatal("load without a session should fail")
	}
	if store.Err() == nil {
		t.Error("load failure should be reported by Err")
	}
	if len(notes) != 1 {
		t.Errorf("expected one notification, got %v", notes)
	}
}
