package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected generated id echoed in header, ctx=%q header=%q", seen, rr.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "client-supplied" {
		t.Fatalf("expected client id to be kept, got %q", seen)
	}
}

func TestRecoverReturns500(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected remote host, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded ip, got %q", got)
	}
}

func TestRateLimiterBlocksAfterBurstPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Handler(http.HandlerFunc(okHandler))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.RemoteAddr = ip + ":1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("198.51.100.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send("198.51.100.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := send("198.51.100.2"); code != http.StatusOK {
		t.Fatalf("other ip must have its own bucket, got %d", code)
	}
}

func TestRateLimiterEvictsIdleVisitorsOnInterval(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	rl.allow("198.51.100.1")
	rl.allow("198.51.100.2")

	// idle long enough, but no sweep happens before the interval passes
	now = now.Add(idleLimiterTTL + time.Second)
	rl.lastSweep = now
	rl.allow("198.51.100.3")
	if n := len(rl.visitors); n != 3 {
		t.Fatalf("expected 3 visitors before the sweep interval, got %d", n)
	}

	now = now.Add(sweepInterval)
	rl.allow("198.51.100.3")
	if n := len(rl.visitors); n != 1 {
		t.Fatalf("expected idle visitors evicted, got %d", n)
	}
	if _, ok := rl.visitors["198.51.100.3"]; !ok {
		t.Fatal("active visitor must survive the sweep")
	}
}
