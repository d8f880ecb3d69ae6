package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3nha-forte")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "s3nha-forte" {
		t.Fatal("hash must not equal the plain password")
	}
	if !Verify(hash, "s3nha-forte") {
		t.Error("Verify should accept the original password")
	}
	if Verify(hash, "outra-senha") {
		t.Error("Verify should reject a different password")
	}
}

func TestGenerateTemporary(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pw, err := GenerateTemporary()
		if err != nil {
			t.Fatalf("GenerateTemporary: %v", err)
		}
		if len(pw) != tempLength {
			t.Fatalf("length = %d, want %d", len(pw), tempLength)
		}
		for _, r := range pw {
			if !strings.ContainsRune(tempAlphabet, r) {
				t.Fatalf("unexpected character %q in %q", r, pw)
			}
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Error("temporary passwords should not repeat")
	}
}
