// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "hunter2" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if err := CheckPassword(hash, "hunter2"); err != nil {
		t.Errorf("Correct password rejected: %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Two hashes of the same password should differ (random salt)")
	}
}

func TestGenerateImageName(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := GenerateImageName()
		if !strings.HasSuffix(name, ".jpg") {
			t.Fatalf("Expected .jpg suffix, got %q", name)
		}
		if strings.ContainsAny(name, "/\\") {
			t.Fatalf("Image name must not contain path separators: %q", name)
		}
		if seen[name] {
			t.Fatalf("Duplicate image name generated: %q", name)
		}
		seen[name] = true
	}
}
