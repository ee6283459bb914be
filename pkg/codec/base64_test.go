package codec

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeBase64_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
		{0x00, 0xff, 0x10, 0x20, 0x30},
	}
	for _, in := range inputs {
		enc := EncodeBase64(in)
		dec, err := DecodeBase64Strict(enc)
		if len(in) == 0 {
			// Empty input encodes to "", which DecodeBase64Strict rejects
			// (length must be a positive multiple of 4) — not a round trip
			// case the strict decoder is meant to accept.
			continue
		}
		if err != nil {
			t.Errorf("DecodeBase64Strict(EncodeBase64(%q)) error: %v", in, err)
			continue
		}
		if !bytes.Equal(dec, in) {
			t.Errorf("round trip %q -> %q -> %q", in, enc, dec)
		}
	}
}

func TestDecodeBase64Strict_RejectsBadLength(t *testing.T) {
	if _, err := DecodeBase64Strict("abc"); err == nil {
		t.Error("DecodeBase64Strict() with length not a multiple of 4 should error")
	}
}

func TestDecodeBase64Strict_RejectsInvalidChar(t *testing.T) {
	if _, err := DecodeBase64Strict("ab!="); err == nil {
		t.Error("DecodeBase64Strict() with invalid character should error")
	}
}

func TestDecodeBase64Strict_RejectsCharacterAfterPadding(t *testing.T) {
	if _, err := DecodeBase64Strict("a=bc"); err == nil {
		t.Error("DecodeBase64Strict() with a character after '=' should error")
	}
}

func TestDecodeBase64Strict_KnownValue(t *testing.T) {
	got, err := DecodeBase64Strict("Zm9vYmFy")
	if err != nil {
		t.Fatalf("DecodeBase64Strict() error: %v", err)
	}
	if string(got) != "foobar" {
		t.Errorf("DecodeBase64Strict() = %q, want %q", got, "foobar")
	}
}
