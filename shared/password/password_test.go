package password_test

import (
	"errors"
	"strings"
	"testing"

	"dost/shared/password"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "empty password", password: "", expectError: true},
		{name: "short password", password: "abc"},
		{name: "long password", password: strings.Repeat("a", 100), expectError: true},
		{name: "password with special characters", password: "P@ssw0rd!#$%^&*()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if hash != "" {
					t.Errorf("expected empty hash when error occurs, got %s", hash)
				}
				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
				t.Errorf("expected bcrypt hash format, got %s", hash)
			}
			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("expected verification to succeed, got error: %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	testPassword := "testPassword123"
	validHash, err := password.Hash(testPassword)
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectError bool
		invalid     bool
	}{
		{name: "valid password and hash", password: testPassword, hash: validHash},
		{name: "wrong password", password: "wrongPassword", hash: validHash, expectError: true, invalid: true},
		{name: "empty password", password: "", hash: validHash, expectError: true, invalid: true},
		{name: "empty hash", password: testPassword, hash: "", expectError: true, invalid: true},
		{name: "invalid hash format", password: testPassword, hash: "invalid_hash", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if !tt.expectError {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Error("expected error, got nil")
			} else if tt.invalid && !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("expected ErrInvalidPassword, got %v", err)
			}
		})
	}
}

func TestHashConsistency(t *testing.T) {
	pwd := "testPassword"

	hashes := make([]string, 3)
	for i := range hashes {
		hash, err := password.Hash(pwd)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		hashes[i] = hash
	}

	// Salted hashes must differ but all verify the same password.
	for i, hash1 := range hashes {
		for j, hash2 := range hashes {
			if i != j && hash1 == hash2 {
				t.Errorf("expected different hashes, got identical: %s", hash1)
			}
		}
	}

	for _, hash := range hashes {
		if err := password.Verify(pwd, hash); err != nil {
			t.Errorf("failed to verify password with hash %s: %v", hash, err)
		}
	}
}
