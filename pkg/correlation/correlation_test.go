package correlation

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIDIsUniqueValidUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		got := NewID()
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("NewID() returned invalid UUID: %v, error: %v", got, err)
		}
		if seen[got] {
			t.Errorf("NewID() returned duplicate ID: %v", got)
		}
		seen[got] = true
	}
}

func TestNewUUIDIsUnique(t *testing.T) {
	a := NewUUID()
	b := NewUUID()
	if a == b {
		t.Error("NewUUID() returned duplicate UUIDs")
	}
	if a == uuid.Nil {
		t.Error("NewUUID() returned nil UUID")
	}
}

func BenchmarkNewID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewID()
	}
}

func BenchmarkNewUUID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewUUID()
	}
}
