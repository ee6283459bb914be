// Package codec implements the value-grammar and orchestration layers of
// the keyfile translator: scalar and compound encodings, the
// per-property dispatch table, the generic property engine, and the
// setting/connection orchestrators that drive them against an
// inistore.Store and a catalog.Catalog.
package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundedInt parses s as a base-10 integer, accepting optional leading
// whitespace, and fails if the result falls outside [min, max] or s is
// empty.
func BoundedInt(s string, min, max int64) (int64, error) {
	trimmed := strings.TrimLeft(s, " \t")
	if trimmed == "" {
		return 0, fmt.Errorf("codec: empty integer")
	}
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("codec: not an integer: %w", err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("codec: %d out of range [%d, %d]", v, min, max)
	}
	return v, nil
}
