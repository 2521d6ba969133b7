package level

import "testing"

func TestSecretsSetOnce(t *testing.T) {
	var s Secrets
	if !s.Set(5) {
		t.Error("Expected first Set to report a new secret")
	}
	if s.Set(5) {
		t.Error("Expected second Set to report nothing new")
	}
	if !s.Has(5) || s.Has(4) {
		t.Errorf("Expected only secret 5 set, got %b", uint64(s))
	}
	s.Set(63)
	if s.Count() != 2 {
		t.Errorf("Expected 2 secrets, got %d", s.Count())
	}
}

func TestSecretsPanicOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for secret 64")
		}
	}()
	var s Secrets
	s.Set(64)
}
