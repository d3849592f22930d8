package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces a verifiable bcrypt hash", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("expected hashing to succeed, got error: %v", err)
		}
		if !strings.HasPrefix(hash, "$2") {
			t.Fatalf("expected a bcrypt hash, got %q", hash)
		}
		if !CheckPassword("correct horse battery staple", hash) {
			t.Fatal("expected the original password to verify")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := HashPassword("same-password")
		if err != nil {
			t.Fatalf("expected hashing to succeed, got error: %v", err)
		}
		second, err := HashPassword("same-password")
		if err != nil {
			t.Fatalf("expected hashing to succeed, got error: %v", err)
		}
		if first == second {
			t.Fatal("expected distinct hashes for the same password")
		}
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("right-password")
	if err != nil {
		t.Fatalf("expected hashing to succeed, got error: %v", err)
	}

	t.Run("rejects a wrong password", func(t *testing.T) {
		if CheckPassword("wrong-password", hash) {
			t.Fatal("expected wrong password to fail verification")
		}
	})

	t.Run("rejects a malformed hash", func(t *testing.T) {
		if CheckPassword("right-password", "not-a-hash") {
			t.Fatal("expected malformed hash to fail verification")
		}
	})
}
