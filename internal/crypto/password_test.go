package crypto

import (
	"strings"
	"testing"
)

func TestGeneratePassword_LengthAndAlphabet(t *testing.T) {
	pw, err := GeneratePassword(64)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	if len(pw) != 64 {
		t.Fatalf("password length = %d, want 64", len(pw))
	}

	for _, r := range pw {
		if !strings.ContainsRune(defaultPasswordAlphabet, r) {
			t.Fatalf("character %q outside the allowed alphabet", r)
		}
	}
}

func TestGeneratePasswordFrom_CustomAlphabet(t *testing.T) {
	const digits = "0123456789"

	pw, err := GeneratePasswordFrom(24, digits)
	if err != nil {
		t.Fatalf("GeneratePasswordFrom error: %v", err)
	}
	if len(pw) != 24 {
		t.Fatalf("password length = %d, want 24", len(pw))
	}

	for _, r := range pw {
		if !strings.ContainsRune(digits, r) {
			t.Fatalf("character %q outside the custom alphabet", r)
		}
	}
}

func TestGeneratePasswordFrom_EmptyAlphabetUsesDefault(t *testing.T) {
	pw, err := GeneratePasswordFrom(16, "")
	if err != nil {
		t.Fatalf("GeneratePasswordFrom error: %v", err)
	}

	for _, r := range pw {
		if !strings.ContainsRune(defaultPasswordAlphabet, r) {
			t.Fatalf("character %q outside the default alphabet", r)
		}
	}
}

func TestGeneratePassword_DefaultLength(t *testing.T) {
	pw, err := GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	if len(pw) != DefaultPasswordLength {
		t.Fatalf("password length = %d, want %d", len(pw), DefaultPasswordLength)
	}
}

func TestGeneratePassword_Randomness(t *testing.T) {
	p1, err := GeneratePassword(32)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	p2, err := GeneratePassword(32)
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}

	if p1 == p2 {
		t.Fatalf("expected two generated passwords to differ")
	}
}
