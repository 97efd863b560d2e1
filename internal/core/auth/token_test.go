package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	user := &domain.User{ID: 7, Role: domain.RoleAdmin, Name: "Alice", Email: "alice@example.com"}

	token, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, ok := codec.Verify(token)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if !claims.IsAdmin() {
		t.Fatalf("expected IsAdmin true for admin claims")
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	token, err := NewCodec("one", time.Hour).Issue(&domain.User{ID: 1, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := NewCodec("two", time.Hour).Verify(token); ok {
		t.Fatalf("expected verification to fail with wrong secret")
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	now := time.Now().Add(-2 * time.Hour)
	claims := Claims{
		UserID: 1,
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, ok := codec.Verify(token); ok {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestCodec_Verify_Malformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := codec.Verify(raw); ok {
			t.Fatalf("expected %q to fail verification", raw)
		}
	}
}

func TestCodec_Verify_WrongAlgorithm(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	// alg=none with an empty signature must never pass.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, ok := codec.Verify(token); ok {
		t.Fatalf("expected unsigned token to fail verification")
	}
}

func TestClaims_IsAdmin_Nil(t *testing.T) {
	var claims *Claims
	if claims.IsAdmin() {
		t.Fatalf("nil claims must not be admin")
	}
	if (&Claims{Role: domain.RoleUser}).IsAdmin() {
		t.Fatalf("USER role must not be admin")
	}
}
