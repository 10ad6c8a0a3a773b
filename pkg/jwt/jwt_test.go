package jwt

import (
	"testing"
	"time"

	"dental-clinic-api/config"

	"github.com/google/uuid"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "desk@clinic.test", "receptionist")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "receptionist" {
		t.Errorf("role = %q, want receptionist", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "admin@clinic.test", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateAccessToken(uuid.New(), "a@clinic.test", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := testService("secret-b").ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := testService("test-secret").ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for malformed input")
	}
}
