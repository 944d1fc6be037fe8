package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zenora/zenora-api/internal/config"
	"github.com/zenora/zenora-api/internal/domain/admin"
	"github.com/zenora/zenora-api/internal/domain/booking"
	"github.com/zenora/zenora-api/internal/domain/contact"
	"github.com/zenora/zenora-api/internal/domain/content"
	"github.com/zenora/zenora-api/internal/domain/wizard"
	"github.com/zenora/zenora-api/internal/middleware"
	"github.com/zenora/zenora-api/internal/pkg/jwt"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newLimitedTestRouter(t, nil)
}

func newLimitedTestRouter(t *testing.T, intake func(http.Handler) http.Handler) http.Handler {
	t.Helper()

	bookingService := booking.NewService(nil, nil, nil, nil, booking.Config{})
	sessions := wizard.NewSessionStore(time.Minute, func() *wizard.Controller {
		return wizard.NewController(wizard.New(wizard.Options{}))
	}, nil)
	jwtService := jwt.NewService("test-secret", time.Hour)

	return newRouter(routerDeps{
		allowedOrigins: []string{"http://localhost:3000"},
		intake:         intake,
		jwt:            jwtService,
		bookings:       booking.NewHandler(bookingService),
		contact:        contact.NewHandler(contact.NewService(nil, nil, nil, "")),
		wizard:         wizard.NewHandler(sessions),
		content:        content.NewHandler(content.DefaultPage(booking.WindowDays)),
		admin:          admin.NewHandler(admin.NewService("", "", jwtService)),
	})
}

func TestRouterMountsPublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/v1/ping", http.StatusOK},
		{http.MethodGet, "/api/v1/bookings/availability", http.StatusOK},
		{http.MethodGet, "/api/v1/content", http.StatusOK},
		{http.MethodPost, "/api/v1/wizard/sessions", http.StatusCreated},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("expected status %d, got %d: %s", tc.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAdminSectionsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/admin/bookings", "/api/admin/contact-messages", "/api/admin/me"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rr.Code)
		}
	}
}

func TestAdminLoginDisabledWithoutCredentials(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"email":"admin@zenorawellness.com","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestNewSubmitterSelection(t *testing.T) {
	svc := booking.NewService(nil, nil, nil, nil, booking.Config{})

	if _, ok := newSubmitter(&config.Config{BookingAPIURL: "http://intake.local"}, svc).(wizard.ClientSubmitter); !ok {
		t.Fatal("expected remote submitter when BOOKING_API_URL is set")
	}
	if _, ok := newSubmitter(&config.Config{WizardMockDelay: time.Second}, svc).(wizard.DelaySubmitter); !ok {
		t.Fatal("expected delay submitter when WIZARD_MOCK_DELAY is set")
	}
	if _, ok := newSubmitter(&config.Config{}, svc).(wizard.ServiceSubmitter); !ok {
		t.Fatal("expected in-process submitter by default")
	}
}

func TestWizardIntakeSharesRateLimit(t *testing.T) {
	router := newLimitedTestRouter(t, middleware.NewRateLimiter(1, 1).Handler)

	send := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "1.2.3.4:5555"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	rr := send(http.MethodPost, "/api/v1/wizard/sessions")
	if rr.Code != http.StatusCreated {
		t.Fatalf("first session: expected 201, got %d", rr.Code)
	}
	var env struct {
		Data struct {
			SessionID string `json:"session_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	for i := 0; i < 3; i++ {
		if rr := send(http.MethodPost, "/api/v1/wizard/sessions"); rr.Code != http.StatusTooManyRequests {
			t.Fatalf("session #%d after budget: expected 429, got %d", i+2, rr.Code)
		}
	}

	base := "/api/v1/wizard/sessions/" + env.Data.SessionID
	if rr := send(http.MethodPost, base+"/open"); rr.Code != http.StatusOK {
		t.Fatalf("open must not be limited, got %d", rr.Code)
	}
	if rr := send(http.MethodPost, base+"/submit"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("submit after budget: expected 429, got %d", rr.Code)
	}
	if rr := send(http.MethodPost, "/api/v1/bookings"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("bookings after budget: expected 429, got %d", rr.Code)
	}
}
