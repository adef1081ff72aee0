package infra

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	token, err := issuer.Issue("cust1", "Customer")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "cust1" || claims.Role != "Customer" {
		t.Errorf("claims = %+v, want cust1/Customer", claims)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret", time.Hour)
	other, _ := NewTokenIssuer("other-secret", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong signing key", func() string { tok, _ := other.Issue("cust1", "Customer"); return tok }()},
		{"expired", func() string {
			expired, _ := NewTokenIssuer("test-secret", -time.Minute)
			tok, _ := expired.Issue("cust1", "Customer")
			return tok
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := issuer.Verify(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestIssuerRequiresSecret(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); err == nil {
		t.Error("empty secret accepted")
	}
}
