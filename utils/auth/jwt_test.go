package auth

import (
	"testing"
	"time"
)

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "uniscout-test",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := testManager()

	token, jti, err := manager.GenerateAccessToken(42, "user@example.com", 3)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if jti == "" {
		t.Error("expected a non-empty JTI")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("user ID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.TokenType != "access" {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenVersion != 3 {
		t.Errorf("token version = %d, want 3", claims.TokenVersion)
	}
	if claims.ID != jti {
		t.Errorf("claims JTI = %q, want %q", claims.ID, jti)
	}
}

func TestRefreshTokenType(t *testing.T) {
	manager := testManager()

	token, _, err := manager.GenerateRefreshToken(7, "user@example.com", 0)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := testManager()
	other := NewJWTManager(JWTConfig{
		Secret:        "a-different-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "uniscout-test",
	})

	token, _, err := manager.GenerateAccessToken(1, "user@example.com", 0)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := testManager()

	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage input must not validate")
	}
}

func TestExpiredToken(t *testing.T) {
	manager := NewJWTManager(JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		Expiry:        -time.Minute,
		RefreshExpiry: -time.Minute,
		Issuer:        "uniscout-test",
	})

	token, _, err := manager.GenerateAccessToken(1, "user@example.com", 0)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := manager.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestGetTokenExpiry(t *testing.T) {
	manager := testManager()

	token, _, err := manager.GenerateAccessToken(1, "user@example.com", 0)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	exp, err := manager.GetTokenExpiry(token)
	if err != nil {
		t.Fatalf("failed to read expiry: %v", err)
	}

	remaining := time.Until(exp)
	if remaining <= 0 || remaining > time.Hour {
		t.Errorf("expiry %v outside the expected window", remaining)
	}
}
