package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOOKING_WINDOW_DAYS", "not-a-number")
	t.Setenv("BOOKING_SUBMIT_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://zenorawellness.com, http://localhost:3000,")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.BookingWindowDays != 14 {
		t.Fatalf("expected fallback window 14, got %d", cfg.BookingWindowDays)
	}
	if cfg.BookingSubmitTimeout != 3*time.Second {
		t.Fatalf("expected 3s submit timeout, got %s", cfg.BookingSubmitTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://zenorawellness.com" {
		t.Fatalf("unexpected origins %#v", cfg.AllowedOrigins)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := &Config{BookingTimezone: "Mars/Olympus_Mons"}
	if cfg.Location() != time.UTC {
		t.Fatal("expected UTC fallback")
	}

	cfg.BookingTimezone = "UTC"
	if cfg.Location().String() != "UTC" {
		t.Fatalf("expected UTC, got %s", cfg.Location())
	}
}
