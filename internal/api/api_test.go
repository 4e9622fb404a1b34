package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/config"
	"github.com/studio-admin-api/internal/mocks"
	"github.com/studio-admin-api/internal/service"
)

const testCookie = "admin_session"

func newTestRouter(t *testing.T) (*gin.Engine, *SessionStore) {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			SessionCookie: testCookie,
			SessionTTL:    time.Hour,
		},
	}
	services := service.NewServices(mocks.NewRepositories(), zerolog.Nop())
	sessions := NewSessionStore(cfg.Auth.SessionTTL)
	return NewRouter(services, sessions, nil, cfg, zerolog.Nop()), sessions
}

func doJSON(router *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// loginAs signs up an account and returns its session cookie.
func loginAs(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()
	signup := map[string]string{"name": "Jane", "email": email, "password": "s3cret"}
	if w := doJSON(router, http.MethodPost, "/api/auth/signup", signup, nil); w.Code != http.StatusCreated {
		t.Fatalf("signup returned %d: %s", w.Code, w.Body.String())
	}

	login := map[string]string{"email": email, "password": "s3cret"}
	w := doJSON(router, http.MethodPost, "/api/auth/login", login, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	if w := doJSON(router, http.MethodGet, "/health", nil, nil); w.Code != http.StatusOK {
		t.Errorf("health returned %d", w.Code)
	}
}

func TestSignup(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/auth/signup",
		map[string]string{"name": "Jane", "email": "jane@example.com", "password": "pw"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID   int    `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.ID == 0 || resp.User.Role != "admin" {
		t.Errorf("unexpected signup response: %+v", resp)
	}

	// Missing fields
	w = doJSON(router, http.MethodPost, "/api/auth/signup", map[string]string{"name": "Jane"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("signup without email returned %d, want 400", w.Code)
	}

	// Duplicate email
	w = doJSON(router, http.MethodPost, "/api/auth/signup",
		map[string]string{"name": "Other", "email": "jane@example.com", "password": "pw"}, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate signup returned %d, want 409", w.Code)
	}
}

func TestLoginFailures(t *testing.T) {
	router, _ := newTestRouter(t)
	loginAs(t, router, "jane@example.com")

	w := doJSON(router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "jane@example.com", "password": "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password returned %d, want 401", w.Code)
	}

	w = doJSON(router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nobody@example.com", "password": "pw"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email returned %d, want 401", w.Code)
	}
}

func TestMeAndLogout(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := loginAs(t, router, "jane@example.com")

	w := doJSON(router, http.MethodGet, "/api/auth/me", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("me returned %d", w.Code)
	}

	if w := doJSON(router, http.MethodPost, "/api/auth/logout", nil, cookie); w.Code != http.StatusOK {
		t.Fatalf("logout returned %d", w.Code)
	}

	// The session is gone after logout
	if w := doJSON(router, http.MethodGet, "/api/auth/me", nil, cookie); w.Code != http.StatusUnauthorized {
		t.Errorf("me after logout returned %d, want 401", w.Code)
	}
}

func TestAdminGate(t *testing.T) {
	router, sessions := newTestRouter(t)

	// No session
	if w := doJSON(router, http.MethodGet, "/api/products", nil, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous list returned %d, want 401", w.Code)
	}

	// Garbage token
	bad := &http.Cookie{Name: testCookie, Value: "not-a-session"}
	if w := doJSON(router, http.MethodGet, "/api/products", nil, bad); w.Code != http.StatusUnauthorized {
		t.Errorf("bogus session returned %d, want 401", w.Code)
	}

	// Valid session, wrong role
	token := sessions.Create(Session{AccountID: 7, Email: "ed@example.com", Role: "editor"})
	editor := &http.Cookie{Name: testCookie, Value: token}
	if w := doJSON(router, http.MethodGet, "/api/products", nil, editor); w.Code != http.StatusForbidden {
		t.Errorf("editor list returned %d, want 403", w.Code)
	}
}

func TestProductCRUD(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := loginAs(t, router, "admin@example.com")

	// Create
	w := doJSON(router, http.MethodPost, "/api/products",
		map[string]any{"name": "Practice Shoes", "price": 29.99, "stock": 10}, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var product struct {
		ID     int     `json:"id"`
		Slug   string  `json:"slug"`
		Status string  `json:"status"`
		Price  float64 `json:"price"`
		Sold   int     `json:"sold"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if product.Slug != "practice-shoes" || product.Status != "active" || product.Sold != 0 {
		t.Errorf("unexpected created product: %+v", product)
	}

	// List contains it exactly once
	w = doJSON(router, http.MethodGet, "/api/products", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}
	var listed []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("list decode: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("list has %d records, want 1", len(listed))
	}

	// Get
	path := "/api/products/1"
	if w := doJSON(router, http.MethodGet, path, nil, cookie); w.Code != http.StatusOK {
		t.Errorf("get returned %d", w.Code)
	}

	// Validation failure on create
	w = doJSON(router, http.MethodPost, "/api/products", map[string]any{"name": ""}, cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid create returned %d, want 400", w.Code)
	}

	// Patch status
	w = doJSON(router, http.MethodPatch, path, map[string]string{"status": "out-of-stock"}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("patch returned %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("patch decode: %v", err)
	}
	if product.Status != "out-of-stock" || product.Price != 29.99 {
		t.Errorf("patch result: %+v", product)
	}

	// Patch without a status
	w = doJSON(router, http.MethodPatch, path, map[string]string{}, cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty patch returned %d, want 400", w.Code)
	}

	// Delete, then the record is gone
	if w := doJSON(router, http.MethodDelete, path, nil, cookie); w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}
	if w := doJSON(router, http.MethodGet, path, nil, cookie); w.Code != http.StatusNotFound {
		t.Errorf("get after delete returned %d, want 404", w.Code)
	}
	if w := doJSON(router, http.MethodDelete, path, nil, cookie); w.Code != http.StatusNotFound {
		t.Errorf("second delete returned %d, want 404", w.Code)
	}
}

func TestNonNumericID(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := loginAs(t, router, "admin@example.com")

	if w := doJSON(router, http.MethodGet, "/api/coaches/abc", nil, cookie); w.Code != http.StatusNotFound {
		t.Errorf("non-numeric id returned %d, want 404", w.Code)
	}
}

func TestStats(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := loginAs(t, router, "admin@example.com")

	doJSON(router, http.MethodPost, "/api/events",
		map[string]any{"title": "Summer Gala", "date": "2024-07-01"}, cookie)

	w := doJSON(router, http.MethodGet, "/api/stats", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("stats returned %d", w.Code)
	}
	var counts map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &counts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if counts["events"] != 1 {
		t.Errorf("events count = %d, want 1", counts["events"])
	}
	if counts["products"] != 0 {
		t.Errorf("products count = %d, want 0", counts["products"])
	}
}

func TestSessionExpiry(t *testing.T) {
	sessions := NewSessionStore(time.Millisecond)
	token := sessions.Create(Session{AccountID: 1, Role: "admin"})

	time.Sleep(5 * time.Millisecond)
	if _, ok := sessions.Get(token); ok {
		t.Error("expired session still resolvable")
	}
}
