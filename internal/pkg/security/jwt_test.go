package security

import (
	"strings"
	"testing"

	"Quill/internal/api/config"
)

func TestGenerateToken_Roundtrip(t *testing.T) {
	Configure(config.JWTConfig{Secret: "test-secret", ExpiryHours: 1})

	token, err := GenerateToken("64f1b2c3d4e5f60718293a4b")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != "64f1b2c3d4e5f60718293a4b" {
		t.Errorf("claims.UserID = %q", claims.UserID)
	}
	if claims.Issuer != "Quill" {
		t.Errorf("claims.Issuer = %q", claims.Issuer)
	}
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	Configure(config.JWTConfig{Secret: "test-secret", ExpiryHours: 1})

	token, err := GenerateToken("64f1b2c3d4e5f60718293a4b")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err = ValidateToken(tampered); err == nil {
		t.Error("ValidateToken() accepted a tampered token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	Configure(config.JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	token, err := GenerateToken("64f1b2c3d4e5f60718293a4b")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	Configure(config.JWTConfig{Secret: "another-secret", ExpiryHours: 1})
	if _, err = ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	// 过期时长为 0，签发即过期
	Configure(config.JWTConfig{Secret: "test-secret", ExpiryHours: 0})
	token, err := GenerateToken("64f1b2c3d4e5f60718293a4b")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token)
	if err == nil {
		t.Fatal("ValidateToken() accepted an expired token")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("error = %v, want token-expired failure", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	Configure(config.JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted garbage input")
	}
}
