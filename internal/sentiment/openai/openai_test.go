package openai

import "testing"

func TestNew(t *testing.T) {
	a, err := New("sk-test", "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Name() != "openai" {
		t.Errorf("Name() = %q, want openai", a.Name())
	}
	if a.model != "gpt-4o" {
		t.Errorf("model = %q, want default gpt-4o", a.model)
	}
}

func TestNew_MissingKey(t *testing.T) {
	if _, err := New("", "gpt-4o"); err == nil {
		t.Error("expected error for missing API key")
	}
}
