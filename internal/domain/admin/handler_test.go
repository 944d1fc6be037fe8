package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zenora/zenora-api/internal/pkg/jwt"
	"github.com/zenora/zenora-api/internal/pkg/password"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	hash, err := password.HashWithCost("correct horse", 4)
	if err != nil {
		t.Fatal(err)
	}
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	h := NewHandler(NewService("Studio@Zenorawellness.com", hash, jwtSvc))

	bookings := Section{Path: "/bookings", Routes: func(auth func(http.Handler) http.Handler) chi.Router {
		r := chi.NewRouter()
		r.Use(auth)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
		return r
	}}
	return h.Routes(jwtSvc, bookings)
}

func login(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginAndAccessSection(t *testing.T) {
	h := newTestRouter(t)

	rec := login(t, h, `{"email":"studio@zenorawellness.com","password":"correct horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Data.AccessToken == "" {
		t.Fatalf("expected token, got %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+env.Data.AccessToken)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected section handler to run, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+env.Data.AccessToken)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "studio@zenorawellness.com") {
		t.Fatalf("unexpected /me response %d %s", rr.Code, rr.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newTestRouter(t)

	for _, body := range []string{
		`{"email":"studio@zenorawellness.com","password":"wrong"}`,
		`{"email":"someone@example.com","password":"correct horse"}`,
	} {
		if rec := login(t, h, body); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", body, rec.Code)
		}
	}
}

func TestSectionsRequireToken(t *testing.T) {
	h := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestLoginNotConfigured(t *testing.T) {
	h := NewHandler(NewService("", "", jwt.NewService("s", time.Hour))).Routes(jwt.NewService("s", time.Hour))

	if rec := login(t, h, `{"email":"a@b.co","password":"x"}`); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
