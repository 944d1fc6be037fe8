package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type envelope struct {
	Success bool             `json:"success"`
	Data    *SessionResponse `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testClient struct {
	t       *testing.T
	handler http.Handler
	base    string
}

func (c *testClient) do(method, path, body string) (int, envelope) {
	c.t.Helper()
	req := httptest.NewRequest(method, c.base+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			c.t.Fatalf("decode %s %s: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec.Code, env
}

func newTestClient(t *testing.T, submitter Submitter) *testClient {
	t.Helper()
	store := NewSessionStore(time.Minute, func() *Controller {
		return NewController(newTestWizard(submitter))
	}, nil)
	t.Cleanup(store.Close)

	h := NewHandler(store).Routes(nil)
	c := &testClient{t: t, handler: h}

	status, env := c.do(http.MethodPost, "/", "")
	if status != http.StatusCreated || env.Data == nil {
		t.Fatalf("create session: %d", status)
	}
	if env.Data.Open {
		t.Fatal("new session must start closed")
	}
	c.base = "/" + env.Data.SessionID.String()
	return c
}

func TestWizardHTTPScenario(t *testing.T) {
	c := newTestClient(t, DelaySubmitter{Delay: time.Millisecond})

	if status, env := c.do(http.MethodPut, "/date", `{"date":"2026-10-21"}`); status != http.StatusConflict || env.Error.Code != "DIALOG_CLOSED" {
		t.Fatalf("expected DIALOG_CLOSED, got %d", status)
	}

	status, env := c.do(http.MethodPost, "/open", "")
	if status != http.StatusOK || !env.Data.Open || env.Data.Wizard.Step != StepDate {
		t.Fatalf("open: %d %+v", status, env.Data)
	}
	day := env.Data.Wizard.Days[2].Value

	if status, env := c.do(http.MethodPost, "/advance", ""); status != http.StatusConflict || env.Error.Code != "GUARD_UNMET" {
		t.Fatalf("expected GUARD_UNMET, got %d", status)
	}

	steps := []struct {
		method, path, body string
	}{
		{http.MethodPut, "/date", `{"date":"` + day + `"}`},
		{http.MethodPost, "/advance", ""},
		{http.MethodPut, "/time", `{"time":"10:30"}`},
		{http.MethodPost, "/advance", ""},
		{http.MethodPut, "/details", `{"name":"Jane Doe","email":"jane@example.com","message":""}`},
	}
	for _, s := range steps {
		if status, _ := c.do(s.method, s.path, s.body); status != http.StatusOK {
			t.Fatalf("%s %s: %d", s.method, s.path, status)
		}
	}

	status, env = c.do(http.MethodPost, "/submit", "")
	if status != http.StatusOK || env.Data.Wizard.Step != StepSuccess || env.Data.Wizard.Confirmation == nil {
		t.Fatalf("submit: %d %+v", status, env.Data)
	}

	c.do(http.MethodPost, "/close", "")
	_, env = c.do(http.MethodPost, "/open", "")
	if env.Data.Wizard.Step != StepDate || env.Data.Wizard.Draft != (Draft{}) {
		t.Fatalf("reopened dialog must be blank, got %+v", env.Data.Wizard)
	}
}

func TestWizardHTTPFailureIsAState(t *testing.T) {
	c := newTestClient(t, SubmitterFunc(func(ctx context.Context, p Payload) (Result, error) {
		return Result{}, errors.New("backend down")
	}))

	_, env := c.do(http.MethodPost, "/open", "")
	day := env.Data.Wizard.Days[0].Value
	c.do(http.MethodPut, "/date", `{"date":"`+day+`"}`)
	c.do(http.MethodPost, "/advance", "")
	c.do(http.MethodPut, "/time", `{"time":"16:00"}`)
	c.do(http.MethodPost, "/advance", "")

	c.do(http.MethodPut, "/details", `{"name":"Jane Doe","email":"bad","message":""}`)
	status, env := c.do(http.MethodPost, "/submit", "")
	if status != http.StatusUnprocessableEntity || env.Error.Details["email"] == "" {
		t.Fatalf("expected validation error, got %d", status)
	}

	c.do(http.MethodPut, "/details", `{"name":"Jane Doe","email":"jane@example.com","message":""}`)
	status, env = c.do(http.MethodPost, "/submit", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 for failed submission, got %d", status)
	}
	v := env.Data.Wizard
	if v.Step != StepDetails || v.LastError == "" || v.Draft.Email != "jane@example.com" {
		t.Fatalf("expected DETAILS with error, got %+v", v)
	}

	_, env = c.do(http.MethodDelete, "/error", "")
	if env.Data.Wizard.LastError != "" {
		t.Fatal("expected error to be dismissed")
	}
}

func TestWizardHTTPUnknownSession(t *testing.T) {
	c := newTestClient(t, nil)
	c.base = "/00000000-0000-0000-0000-000000000000"

	if status, _ := c.do(http.MethodGet, "/", ""); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}

	c.base = "/not-a-uuid"
	if status, _ := c.do(http.MethodGet, "/", ""); status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestWizardHTTPDeleteSession(t *testing.T) {
	c := newTestClient(t, nil)

	if status, _ := c.do(http.MethodDelete, "/", ""); status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}
	if status, _ := c.do(http.MethodGet, "/", ""); status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}
