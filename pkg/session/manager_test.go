package session

import (
	"errors"
	"testing"
)

type memStore struct {
	m map[string]string
}

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *memStore) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *memStore) Remove(key string) error {
	delete(s.m, key)
	return nil
}

// brokenStore models unavailable storage: reads absent, writes fail.
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool)  { return "", false }
func (brokenStore) Set(string, string) error   { return errors.New("storage unavailable") }
func (brokenStore) Remove(string) error        { return nil }

func TestBootstrapEmptyStore(t *testing.T) {
	m := NewManager(newMemStore())
	if _, ok := m.Current(); ok {
		t.Fatalf("expected anonymous session")
	}
	if m.State() != Anonymous {
		t.Fatalf("expected Anonymous state")
	}
}

func TestBootstrapValidRecord(t *testing.T) {
	st := newMemStore()
	st.m[sessionKey] = `{"identity":{"id":"u1","name":"Asha Rao","mobile":"9999999999"},"token":"abc123"}`
	m := NewManager(st)
	id, ok := m.Current()
	if !ok {
		t.Fatalf("expected authenticated session")
	}
	if id.Name != "Asha Rao" {
		t.Fatalf("expected Asha Rao, got %q", id.Name)
	}
	if tok, ok := m.Token(); !ok || tok != "abc123" {
		t.Fatalf("expected token abc123, got %q", tok)
	}
}

func TestBootstrapPartialRecordsDegradeToAnonymous(t *testing.T) {
	partials := []string{
		`{"token":"abc123"}`,
		`{"identity":{"id":"u1","name":"Asha Rao"}}`,
		`{"identity":{"name":"no id"},"token":"abc123"}`,
		`not json`,
	}
	for _, raw := range partials {
		st := newMemStore()
		st.m[sessionKey] = raw
		m := NewManager(st)
		if _, ok := m.Current(); ok {
			t.Fatalf("%s: expected anonymous session", raw)
		}
		if _, ok := m.Token(); ok {
			t.Fatalf("%s: expected no token", raw)
		}
		if _, ok := st.m[sessionKey]; ok {
			t.Fatalf("%s: expected partial record cleared", raw)
		}
	}
}

func TestLoginPersistsAndTransitions(t *testing.T) {
	st := newMemStore()
	m := NewManager(st)
	id := Identity{ID: "u1", Name: "Asha Rao", Mobile: "9999999999"}
	if err := m.Login(id, "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := m.Current()
	if !ok || got.Name != "Asha Rao" {
		t.Fatalf("expected current identity Asha Rao, got %+v", got)
	}
	if _, ok := st.m[sessionKey]; !ok {
		t.Fatalf("expected session persisted")
	}

	// rehydrate from the same store
	m2 := NewManager(st)
	if tok, ok := m2.Token(); !ok || tok != "abc123" {
		t.Fatalf("expected rehydrated token abc123, got %q", tok)
	}
}

func TestLoginOverwrites(t *testing.T) {
	m := NewManager(newMemStore())
	if err := m.Login(Identity{ID: "u1", Name: "Asha Rao"}, "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Login(Identity{ID: "u2", Name: "Ravi Iyer"}, "def456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, _ := m.Current()
	if id.ID != "u2" {
		t.Fatalf("expected last login to win, got %+v", id)
	}
	if tok, _ := m.Token(); tok != "def456" {
		t.Fatalf("expected token def456, got %q", tok)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	st := newMemStore()
	m := NewManager(st)
	_ = m.Login(Identity{ID: "u1", Name: "Asha Rao"}, "abc123")

	if err := m.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("expected anonymous after logout")
	}
	if _, ok := m.Token(); ok {
		t.Fatalf("expected token cleared")
	}
	if _, ok := st.m[sessionKey]; ok {
		t.Fatalf("expected store cleared")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	m := NewManager(newMemStore())
	_ = m.Login(Identity{ID: "u1", Name: "Asha Rao"}, "abc123")
	if err := m.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("second logout: unexpected error: %v", err)
	}
	if m.State() != Anonymous {
		t.Fatalf("expected Anonymous state")
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	m := NewManager(newMemStore())
	if err := m.Login(Identity{ID: "u1"}, ""); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestUnavailableStorageIsNotFatal(t *testing.T) {
	m := NewManager(brokenStore{})
	if _, ok := m.Current(); ok {
		t.Fatalf("expected anonymous session")
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("logout against unavailable storage: %v", err)
	}
}

func TestSubscribeSeesTransitions(t *testing.T) {
	m := NewManager(newMemStore())
	ch := m.Subscribe()
	_ = m.Login(Identity{ID: "u1", Name: "Asha Rao"}, "abc123")
	if s := <-ch; s != Authenticated {
		t.Fatalf("expected Authenticated, got %v", s)
	}
	_ = m.Logout()
	if s := <-ch; s != Anonymous {
		t.Fatalf("expected Anonymous, got %v", s)
	}
}

func TestFirstName(t *testing.T) {
	if got := (Identity{Name: "Asha Rao"}).FirstName(); got != "Asha" {
		t.Fatalf("expected Asha, got %q", got)
	}
	if got := (Identity{Name: ""}).FirstName(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
