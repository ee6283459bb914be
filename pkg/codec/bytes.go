package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeBytes implements the byte-blob grammar ("get_bytes"): empty
// string decodes to an empty (non-nil) blob; a string made entirely
// of whitespace, digits and ';' that reparses as a semicolon-terminated
// integer list decodes as that list; anything else is treated as the raw
// string bytes, with "\;" escapes unescaped to ";".
func DecodeBytes(raw string) ([]byte, error) {
	if raw == "" {
		return []byte{}, nil
	}
	if looksLikeIntList(raw) {
		if list, err := parseByteIntList(raw); err == nil {
			return list, nil
		}
	}
	return unescapeSemicolons(raw), nil
}

func looksLikeIntList(raw string) bool {
	for _, r := range raw {
		switch {
		case r == ' ' || r == '\t':
		case r >= '0' && r <= '9':
		case r == ';':
		default:
			return false
		}
	}
	return true
}

func parseByteIntList(raw string) ([]byte, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), ";")
	if trimmed == "" {
		return []byte{}, nil
	}
	fields := strings.Split(trimmed, ";")
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil || v > 255 {
			return nil, fmt.Errorf("codec: %q is not a 0-255 integer", f)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func unescapeSemicolons(raw string) []byte {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == ';' {
			b.WriteByte(';')
			i++
			continue
		}
		b.WriteByte(raw[i])
	}
	return []byte(b.String())
}

// EncodeBytesLegacy always emits the semicolon-terminated integer-list
// form; a raw password is always written this way.
func EncodeBytesLegacy(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteString(strconv.Itoa(int(v)))
		sb.WriteByte(';')
	}
	return sb.String()
}

// EncodeSSID emits a printable-ASCII string (escaping ';' as '\;') when
// every byte of b is printable, else falls back to the legacy
// integer-list form.
func EncodeSSID(b []byte) string {
	if !isAllPrintableASCII(b) {
		return EncodeBytesLegacy(b)
	}
	var sb strings.Builder
	for _, c := range b {
		if c == ';' {
			sb.WriteString("\\;")
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isAllPrintableASCII(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
