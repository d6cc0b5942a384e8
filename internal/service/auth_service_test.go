package service

import (
	"testing"
)

func TestHRLogin(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, nil, "test-secret", "demo_password")

	testCases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"correct password", "demo_password", nil},
		{"surrounding whitespace trimmed", "  demo_password  ", nil},
		{"wrong password", "letmein", ErrInvalidMasterPassword},
		{"empty password", "", ErrInvalidMasterPassword},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := auth.HRLogin(tc.password)
			if err != tc.wantErr {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && token == "" {
				t.Error("expected a signed token")
			}
		})
	}
}

func TestHRLoginTokenValidates(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, nil, "test-secret", "demo_password")
	token, err := auth.HRLogin("demo_password")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "hr" {
		t.Errorf("subject = %q, want hr", claims.Subject)
	}
	if claims.ID == "" {
		t.Error("expected a session id claim")
	}

	// A token signed under a different secret is rejected.
	other := NewAuthService(nil, nil, nil, nil, "other-secret", "demo_password")
	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("cross-secret validation err = %v, want ErrInvalidToken", err)
	}
}

func TestHRLoginDisabledWithoutPassword(t *testing.T) {
	auth := NewAuthService(nil, nil, nil, nil, "test-secret", "")
	if _, err := auth.HRLogin(""); err != ErrInvalidMasterPassword {
		t.Errorf("err = %v, want ErrInvalidMasterPassword", err)
	}
}
