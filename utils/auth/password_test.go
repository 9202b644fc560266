package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}

	if err := VerifyPassword(hash, "wrong password entirely"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("short"); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("a perfectly fine password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := VerifyPassword(hash, "a different password"); err != ErrPasswordMismatch {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestIsPasswordValid(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"1234567", false},
		{"12345678", true},
		{"a much longer passphrase", true},
	}

	for _, tt := range tests {
		if got := IsPasswordValid(tt.password); got != tt.want {
			t.Errorf("IsPasswordValid(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
