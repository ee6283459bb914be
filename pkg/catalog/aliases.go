package catalog

// aliasTable holds the bidirectional canonical↔short setting-name mapping.
// Legacy keyfiles used short group names (e.g. "wifi" instead of
// "802-11-wireless"); modern writers always use the canonical form.
type aliasTable struct {
	toCanon map[string]string
	toShrt  map[string]string
}

var legacyAliases = map[string]string{
	"ethernet":       "802-3-ethernet",
	"wifi":           "802-11-wireless",
	"wifi-security":  "802-11-wireless-security",
	"802-1x":         "802-1x", // canonical already; no short form
	"gsm":            "gsm",
	"cdma":           "cdma",
}

func newAliasTable() *aliasTable {
	t := &aliasTable{
		toCanon: make(map[string]string),
		toShrt:  make(map[string]string),
	}
	for short, canon := range legacyAliases {
		t.toCanon[short] = canon
		if _, exists := t.toShrt[canon]; !exists {
			t.toShrt[canon] = short
		}
	}
	return t
}

func (t *aliasTable) toCanonical(name string) string {
	if canon, ok := t.toCanon[name]; ok {
		return canon
	}
	return name
}

func (t *aliasTable) toShort(canonical string) string {
	if short, ok := t.toShrt[canonical]; ok {
		return short
	}
	return canonical
}
