package auth

import (
	"testing"
	"time"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "crediya-auth",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.GenerateToken("user-42", "ana@crediya.com", "1020304050", []string{RoleAdvisor})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if tokenString == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := svc.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.Subject != "user-42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "user-42")
	}
	if claims.Email != "ana@crediya.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "ana@crediya.com")
	}
	if claims.Document != "1020304050" {
		t.Errorf("Document = %q, want %q", claims.Document, "1020304050")
	}
	if !claims.HasRole(RoleAdvisor) {
		t.Errorf("HasRole(%q) = false, want true", RoleAdvisor)
	}
	if claims.HasRole(RoleAdmin) {
		t.Errorf("HasRole(%q) = true, want false", RoleAdmin)
	}
	if claims.Issuer != "crediya-auth" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "crediya-auth")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "crediya-auth",
		Expiration: -1 * time.Hour, // already expired
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	tokenString, err := svc.GenerateToken("user-42", "ana@crediya.com", "1020304050", []string{RoleClient})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(tokenString); err == nil {
		t.Fatal("ValidateToken() accepted an expired token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	tokenString, err := svc.GenerateToken("user-42", "ana@crediya.com", "1020304050", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other, err := NewJWTService(JWTConfig{Secret: "a-different-secret", Issuer: "crediya-auth"})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	if _, err := other.ValidateToken(tokenString); err == nil {
		t.Fatal("ValidateToken() accepted a token signed with another secret")
	}
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	if _, err := NewJWTService(JWTConfig{}); err == nil {
		t.Fatal("NewJWTService() accepted empty configuration")
	}
}
