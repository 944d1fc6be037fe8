package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(ttl time.Duration) *SessionStore {
	return NewSessionStore(ttl, func() *Controller {
		return NewController(newTestWizard(DelaySubmitter{Delay: time.Millisecond}))
	}, nil)
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := newTestStore(time.Minute)
	now := fixedNow
	store.now = func() time.Time { return now }

	sess := store.Create()
	if got, err := store.Get(sess.ID); err != nil || got != sess {
		t.Fatalf("get: %v", err)
	}
	if _, err := store.Get(uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	now = now.Add(30 * time.Second)
	_, _ = store.Get(sess.ID)
	now = now.Add(45 * time.Second)
	if n := store.Sweep(); n != 0 {
		t.Fatalf("touched session must survive, swept %d", n)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected idle session to be gone, got %v", err)
	}
	if n := store.Sweep(); n != 1 || store.Len() != 0 {
		t.Fatalf("expected sweep to drop 1 session, dropped %d (len %d)", n, store.Len())
	}
}

func TestSessionDeleteClosesDialog(t *testing.T) {
	store := newTestStore(time.Minute)
	sess := store.Create()
	sess.Controller.Open()

	if err := store.Delete(sess.ID); err != nil {
		t.Fatal(err)
	}
	if sess.Controller.IsOpen() {
		t.Fatal("deleted session's dialog must be closed")
	}
	if err := store.Delete(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStoreCloseStopsJanitor(t *testing.T) {
	store := newTestStore(time.Minute)
	store.Start()
	sess := store.Create()
	sess.Controller.Open()

	store.Close()
	store.Close()

	if store.Len() != 0 || sess.Controller.IsOpen() {
		t.Fatal("close must drop and close every session")
	}
}
