package common

import (
	"strings"
	"testing"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- GenerateTemporaryPassword ----------

func TestGenerateTemporaryPassword_LengthAndCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		p, err := GenerateTemporaryPassword()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p) != TemporaryPasswordLength {
			t.Fatalf("expected length %d, got %d (%q)", TemporaryPasswordLength, len(p), p)
		}
		for _, r := range p {
			if !strings.ContainsRune(TemporaryPasswordCharset, r) {
				t.Fatalf("rune %q is outside the charset", r)
			}
		}
	}
}

func TestGenerateTemporaryPassword_EntropyHint(t *testing.T) {
	a, _ := GenerateTemporaryPassword()
	b, _ := GenerateTemporaryPassword()
	if a == b {
		t.Logf("warning: two generated passwords are identical (%q); extremely unlikely", a)
	}
}
