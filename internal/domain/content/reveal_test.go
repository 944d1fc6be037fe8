package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRevealTriggerFiresOnce(t *testing.T) {
	trigger := DefaultPage(14).Reveals[1].Trigger()

	if trigger.Observe(0.9) {
		t.Fatal("must not fire below the threshold line")
	}
	if !trigger.Observe(0.74) {
		t.Fatal("expected first qualifying observation to fire")
	}
	if trigger.Observe(0.5) || trigger.Observe(0.74) {
		t.Fatal("trigger must fire only once")
	}
	if !trigger.Fired() {
		t.Fatal("expected Fired")
	}
}

func TestRevealTriggerConcurrentObservers(t *testing.T) {
	trigger := &RevealTrigger{Threshold: 0.8}
	var fired atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if trigger.Observe(0.1) {
				fired.Add(1)
			}
		}()
	}
	wg.Wait()
	if fired.Load() != 1 {
		t.Fatalf("expected exactly one firing, got %d", fired.Load())
	}
}

func TestScrubProgress(t *testing.T) {
	cases := []struct {
		name                 string
		top, height, vh, out float64
	}{
		{"below viewport", 1200, 400, 800, 0},
		{"entering", 800, 400, 800, 0},
		{"halfway", 200, 400, 800, 0.5},
		{"leaving", -400, 400, 800, 1},
		{"gone", -1000, 400, 800, 1},
		{"degenerate", 0, 0, 0, 0},
	}
	for _, tc := range cases {
		if got := ScrubProgress(tc.top, tc.height, tc.vh); got != tc.out {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.out, got)
		}
	}
}

func TestCountUp(t *testing.T) {
	if got := CountUp(500, 0, CountUpDuration); got != 0 {
		t.Fatalf("expected 0 at start, got %d", got)
	}
	// 1-(0.5)^3 = 0.875
	if got := CountUp(500, time.Second, CountUpDuration); got != 437 {
		t.Fatalf("expected 437 halfway, got %d", got)
	}
	if got := CountUp(98, 3*time.Second, CountUpDuration); got != 98 {
		t.Fatalf("expected final value, got %d", got)
	}
	prev := -1
	for ms := 0; ms <= 2000; ms += 50 {
		v := CountUp(50, time.Duration(ms)*time.Millisecond, CountUpDuration)
		if v < prev {
			t.Fatalf("count-up must not decrease: %d after %d", v, prev)
		}
		prev = v
	}
}

func TestEaseOutCubicBounds(t *testing.T) {
	if EaseOutCubic(-1) != 0 || EaseOutCubic(0) != 0 || EaseOutCubic(1) != 1 || EaseOutCubic(2) != 1 {
		t.Fatal("ease must be clamped to [0,1]")
	}
}

func TestContentHandler(t *testing.T) {
	h := NewHandler(DefaultPage(14)).Routes()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data Page `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Data.Services) != 6 || len(env.Data.Stats) != 3 || len(env.Data.Testimonials) != 2 {
		t.Fatalf("unexpected content %+v", env.Data)
	}
	if env.Data.Contact.Email != "hello@zenorawellness.com" || env.Data.BookingWindow != 14 {
		t.Fatalf("unexpected contact/window %+v", env.Data.Contact)
	}
}
