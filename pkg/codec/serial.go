package codec

import (
	"fmt"

	"github.com/nmkeyfile/keyfile/pkg/catalog"
)

// DecodeParity accepts the ASCII codes 'E'/'e'/'O'/'o'/'N'/'n' or the
// single-character strings of the same, mapping to the parity enum.
func DecodeParity(raw string) (int32, error) {
	if len(raw) != 1 {
		return 0, fmt.Errorf("codec: serial parity %q is not a single character", raw)
	}
	switch raw[0] {
	case 'E', 'e':
		return catalog.ParityEven, nil
	case 'O', 'o':
		return catalog.ParityOdd, nil
	case 'N', 'n':
		return catalog.ParityNone, nil
	default:
		return 0, fmt.Errorf("codec: unrecognized serial parity %q", raw)
	}
}

// EncodeParity always writes the ASCII code as an integer, not the
// character.
func EncodeParity(v int32) (int32, error) {
	switch v {
	case catalog.ParityEven:
		return 'E', nil
	case catalog.ParityOdd:
		return 'O', nil
	case catalog.ParityNone:
		return 'N', nil
	default:
		return 0, fmt.Errorf("codec: unrecognized parity value %d", v)
	}
}
