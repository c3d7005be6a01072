package session

import (
	"testing"
)

type testConfig struct {
	path string
	url  string
}

func (c *testConfig) BasePath() string { return c.path }
func (c *testConfig) APIURL() string   { return c.url }

func TestStoreRoundTrip(t *testing.T) {
	st, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := st.Get("missing"); ok {
		t.Fatalf("expected absent for missing key")
	}

	if err := st.Set("k", "v1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := st.Get("k"); !ok || v != "v1" {
		t.Fatalf("expected v1, got %q, %v", v, ok)
	}

	// overwrite
	if err := st.Set("k", "v2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := st.Get("k"); v != "v2" {
		t.Fatalf("expected v2, got %q", v)
	}
}

func TestStoreRemoveIdempotent(t *testing.T) {
	st, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.Remove("never-set"); err != nil {
		t.Fatalf("removing an absent key should not error: %v", err)
	}
	_ = st.Set("k", "v")
	if err := st.Remove("k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := st.Get("k"); ok {
		t.Fatalf("expected absent after remove")
	}
	if err := st.Remove("k"); err != nil {
		t.Fatalf("second remove should not error: %v", err)
	}
}

func TestStoreSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	st, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.Set("session", `{"token":"abc123"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st2, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := st2.Get("session"); !ok || v != `{"token":"abc123"}` {
		t.Fatalf("expected persisted value, got %q, %v", v, ok)
	}
}
