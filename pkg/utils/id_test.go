package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if len(id) != 16 {
		t.Fatalf("expected 16 hex characters, got %d (%q)", len(id), id)
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Fatalf("expected hex-encoded id, got %q: %v", id, err)
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateRequestID()
		if seen[id] {
			t.Fatalf("duplicate request id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestGenerateIDUnique(t *testing.T) {
	first := GenerateID()
	second := GenerateID()
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
