package utils

import (
	"strings"
	"testing"

	"github.com/greenloop/ewaste-rewards-backend/internal/config"
)

func TestGenerateCouponCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := GenerateCouponCode(10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != 10 {
			t.Fatalf("expected length 10, got %d (%q)", len(code), code)
		}
		for _, c := range code {
			if !strings.ContainsRune(couponAlphabet, c) {
				t.Fatalf("code %q contains %q outside the alphabet", code, c)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate code %q within 100 draws", code)
		}
		seen[code] = true
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("user-1", "ada@example.com", "customer", cfg)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ValidateJWT(token, cfg)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims["sub"] != "user-1" || claims["role"] != "customer" {
		t.Errorf("unexpected claims: %v", claims)
	}

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	if _, err := ValidateJWT(token, other); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}
