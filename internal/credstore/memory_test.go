package credstore

import "testing"

func TestMemoryMissingKeyIsEmpty(t *testing.T) {
	m := NewMemory()
	v, err := m.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "" {
		t.Errorf("Get() = %q, want empty for missing key", v)
	}
}

func TestMemorySetGetRemove(t *testing.T) {
	m := NewMemory()
	if err := m.Set(KeyRefreshToken, "rtok"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, _ := m.Get(KeyRefreshToken)
	if v != "rtok" {
		t.Errorf("Get() = %q", v)
	}

	if err := m.Remove(KeyRefreshToken); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	// Removing an absent key is a no-op, not an error.
	if err := m.Remove(KeyRefreshToken); err != nil {
		t.Fatalf("Remove() second call error = %v", err)
	}
	v, _ = m.Get(KeyRefreshToken)
	if v != "" {
		t.Errorf("Get() after Remove = %q", v)
	}
}
