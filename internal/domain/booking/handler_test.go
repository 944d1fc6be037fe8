package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestCreateHandler(t *testing.T) {
	h := NewHandler(newTestService(newFakeRepo(), nil)).PublicRoutes(nil)

	body := `{"date":"2026-10-21","time":"10:30","name":"Jane Doe","email":"jane@example.com"}`
	rec, env := doRequest(t, h, http.MethodPost, "/", body, map[string]string{"Idempotency-Key": "k1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created BookingCreatedResponse
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.Status != "requested" || created.Message != AcknowledgementMessage {
		t.Fatalf("unexpected response %+v", created)
	}

	rec, env = doRequest(t, h, http.MethodPost, "/", body, map[string]string{"Idempotency-Key": "k1"})
	if rec.Code != http.StatusConflict || env.Error.Code != "DUPLICATE_SUBMISSION" {
		t.Fatalf("expected duplicate conflict, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateHandlerValidation(t *testing.T) {
	h := NewHandler(newTestService(newFakeRepo(), nil)).PublicRoutes(nil)

	rec, env := doRequest(t, h, http.MethodPost, "/", `{"date":"21/10/2026","time":"10:30","name":"J","email":"nope"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	for _, field := range []string{"date", "name", "email"} {
		if _, ok := env.Error.Details[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, env.Error.Details)
		}
	}

	rec, env = doRequest(t, h, http.MethodPost, "/", `{"date":"2026-12-25","time":"10:30","name":"Jane","email":"jane@example.com"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity || env.Error.Details["date"] == "" {
		t.Fatalf("expected out-of-window rejection, got %d %s", rec.Code, rec.Body.String())
	}

	rec, _ = doRequest(t, h, http.MethodPost, "/", `{"date":"2026-10-21","unexpected":true}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestAvailabilityHandler(t *testing.T) {
	h := NewHandler(newTestService(newFakeRepo(), nil)).PublicRoutes(nil)

	rec, env := doRequest(t, h, http.MethodGet, "/availability", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var a AvailabilityResponse
	if err := json.Unmarshal(env.Data, &a); err != nil {
		t.Fatal(err)
	}
	if len(a.Days) != WindowDays || a.Days[0].Label != "Mon 19 Oct" {
		t.Fatalf("unexpected days %+v", a.Days)
	}
}

func TestAdminRoutesRequireMiddleware(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	h := NewHandler(newTestService(newFakeRepo(), nil)).AdminRoutes(deny)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	b, err := svc.Create(context.Background(), validRequest(), RequestMeta{})
	if err != nil {
		t.Fatal(err)
	}
	pass := func(next http.Handler) http.Handler { return next }
	h := NewHandler(svc).AdminRoutes(pass)

	rec, _ := doRequest(t, h, http.MethodPatch, "/"+b.ID.String()+"/status", `{"status":"archived"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	rec, env := doRequest(t, h, http.MethodPatch, "/"+b.ID.String()+"/status", `{"status":"confirmed"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var resp BookingResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil || resp.Status != "confirmed" {
		t.Fatalf("unexpected response %+v %v", resp, err)
	}
}
