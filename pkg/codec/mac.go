package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// ClonedMACTokens are reserved values for a "cloned MAC" property that
// bypass MAC validation entirely and pass through verbatim.
var ClonedMACTokens = map[string]bool{
	"random":          true,
	"permanent":       true,
	"preserve":        true,
	"stable":          true,
}

// IsClonedMACToken reports whether raw is a reserved cloned-MAC token.
func IsClonedMACToken(raw string) bool {
	return ClonedMACTokens[raw]
}

// DecodeMAC accepts either colon-separated hex bytes or a legacy
// semicolon-separated decimal list, and validates the decoded length
// against expectedLen unless expectedLen is 0 (unconstrained).
func DecodeMAC(raw string, expectedLen int) ([]byte, error) {
	var out []byte
	if strings.Contains(raw, ":") {
		fields := strings.Split(raw, ":")
		out = make([]byte, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("codec: invalid MAC hex byte %q: %w", f, err)
			}
			out = append(out, byte(v))
		}
	} else {
		fields := strings.Split(strings.TrimRight(raw, ";"), ";")
		out = make([]byte, 0, len(fields))
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := BoundedInt(f, 0, 255)
			if err != nil {
				return nil, fmt.Errorf("codec: invalid MAC integer byte %q: %w", f, err)
			}
			out = append(out, byte(v))
		}
	}
	if expectedLen != 0 && len(out) != expectedLen {
		return nil, fmt.Errorf("codec: MAC address length %d, want %d", len(out), expectedLen)
	}
	return out, nil
}

// EncodeMAC always emits the colon-separated hex form, regardless of
// which form the value was originally read in.
func EncodeMAC(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, ":")
}
