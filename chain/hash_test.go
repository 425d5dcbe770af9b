package chain

import (
	"strings"
	"testing"
)

func TestParseHash(t *testing.T) {
	h := Hash{0xde, 0xad, 0xbe, 0xef}
	parsed, err := ParseHash(h.String())
	if err != nil {
		t.Fatalf("Could not parse rendered hash: %s", err)
	}
	if parsed != h {
		t.Error("Hash did not survive the string roundtrip")
	}
}

func TestParseHashRejectsGarbage(t *testing.T) {
	for _, s := range []string{
		"",
		"deadbeef",
		strings.Repeat("zz", HashSize),
		strings.Repeat("ab", HashSize+1),
	} {
		if _, err := ParseHash(s); err != ErrHashFormat {
			t.Errorf("Expected ErrHashFormat for %q, got %v", s, err)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !(Hash{}).IsZero() {
		t.Error("Zero hash not recognized")
	}
	if (Hash{0x01}).IsZero() {
		t.Error("Nonzero hash reported as zero")
	}
}

func TestFingerprint(t *testing.T) {
	h := Hash{0xde, 0xad, 0xbe, 0xef}
	fp := h.Fingerprint()
	if !strings.HasPrefix(fp, "x") || !strings.HasSuffix(fp, "x") {
		t.Errorf("Fingerprint %q is not bubblebabble framed", fp)
	}
	parsed, err := ParseFingerprint(fp)
	if err != nil {
		t.Fatalf("Could not parse fingerprint: %s", err)
	}
	if parsed != h {
		t.Error("Hash did not survive the fingerprint roundtrip")
	}
}

func TestFromSlice(t *testing.T) {
	h := FromSlice([]byte{0x01, 0x02})
	if h[0] != 0x01 || h[1] != 0x02 || h[2] != 0x00 {
		t.Error("FromSlice did not copy into the fixed array")
	}
	if !strings.HasPrefix(h.String(), "0102") {
		t.Errorf("Unexpected rendering %s", h.String())
	}
}
