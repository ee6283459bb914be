package codec

import (
	"bytes"
	"testing"
)

func TestDecodeMAC_ColonHex(t *testing.T) {
	b, err := DecodeMAC("00:11:22:AA:bb:CC", 6)
	if err != nil {
		t.Fatalf("DecodeMAC() error: %v", err)
	}
	want := []byte{0x00, 0x11, 0x22, 0xAA, 0xBB, 0xCC}
	if !bytes.Equal(b, want) {
		t.Errorf("DecodeMAC() = %x, want %x", b, want)
	}
}

func TestDecodeMAC_LegacyIntList(t *testing.T) {
	b, err := DecodeMAC("0;17;34;170;187;204", 6)
	if err != nil {
		t.Fatalf("DecodeMAC() error: %v", err)
	}
	want := []byte{0, 17, 34, 170, 187, 204}
	if !bytes.Equal(b, want) {
		t.Errorf("DecodeMAC() = %v, want %v", b, want)
	}
}

func TestDecodeMAC_WrongLength(t *testing.T) {
	if _, err := DecodeMAC("00:11:22", 6); err == nil {
		t.Error("DecodeMAC() with wrong length should error")
	}
}

func TestDecodeMAC_Unconstrained(t *testing.T) {
	b, err := DecodeMAC("00:11:22:33:44:55:66:77:88:99:AA:BB:CC:DD:EE:FF:00:11:22:33", 0)
	if err != nil {
		t.Fatalf("DecodeMAC() with expectedLen 0 error: %v", err)
	}
	if len(b) != 20 {
		t.Errorf("DecodeMAC() length = %d, want 20", len(b))
	}
}

func TestEncodeMAC_AlwaysColonHex(t *testing.T) {
	got := EncodeMAC([]byte{0x00, 0x11, 0xAB})
	want := "00:11:AB"
	if got != want {
		t.Errorf("EncodeMAC() = %q, want %q", got, want)
	}
}

func TestClonedMACTokens(t *testing.T) {
	for _, tok := range []string{"random", "permanent", "preserve", "stable"} {
		if !IsClonedMACToken(tok) {
			t.Errorf("IsClonedMACToken(%q) = false, want true", tok)
		}
	}
	if IsClonedMACToken("00:11:22:33:44:55") {
		t.Error("IsClonedMACToken() on a real MAC should be false")
	}
}
