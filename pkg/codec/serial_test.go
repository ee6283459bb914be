package codec

import (
	"testing"

	"github.com/nmkeyfile/keyfile/pkg/catalog"
)

func TestDecodeParity(t *testing.T) {
	cases := map[string]int32{
		"E": catalog.ParityEven,
		"e": catalog.ParityEven,
		"O": catalog.ParityOdd,
		"o": catalog.ParityOdd,
		"N": catalog.ParityNone,
		"n": catalog.ParityNone,
	}
	for raw, want := range cases {
		got, err := DecodeParity(raw)
		if err != nil {
			t.Errorf("DecodeParity(%q) error: %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("DecodeParity(%q) = %d, want %d", raw, got, want)
		}
	}
	if _, err := DecodeParity("X"); err == nil {
		t.Error("DecodeParity(\"X\") should error")
	}
	if _, err := DecodeParity("EE"); err == nil {
		t.Error("DecodeParity(\"EE\") should error")
	}
}

func TestEncodeParity_AlwaysASCIICode(t *testing.T) {
	got, err := EncodeParity(catalog.ParityEven)
	if err != nil {
		t.Fatalf("EncodeParity() error: %v", err)
	}
	if got != 'E' {
		t.Errorf("EncodeParity(ParityEven) = %d, want %d ('E')", got, int32('E'))
	}
}
