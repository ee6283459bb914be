package codec

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nmkeyfile/keyfile/pkg/inistore"
)

// indexedKey is one matched occurrence of a singular/plural indexed key
// for an indexed array of addresses or routes, e.g. "address2" or
// "routes" (unindexed plural).
type indexedKey struct {
	Index int // -1 for the unindexed form
	Kind  int // 0 = singular ("address"/"route"), 1 = plural ("addresses"/"routes")
	Key   string
}

// parseIndexSuffix validates "<N>" strictly: either empty (unindexed,
// index -1), the literal "0", or a decimal starting with 1-9.
func parseIndexSuffix(suffix string) (int, bool) {
	if suffix == "" {
		return -1, true
	}
	if suffix == "0" {
		return 0, true
	}
	if suffix[0] < '1' || suffix[0] > '9' {
		return 0, false
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return v, true
}

// collectIndexedKeys finds every key in keys matching the singular or
// plural indexed forms, sorted by (index, kind, key string), with
// consecutive identical tuples collapsed to the later occurrence (an
// implementation choice, since duplicate-key enumeration order from the
// store is otherwise unspecified).
func collectIndexedKeys(keys []string, singular, plural string) []indexedKey {
	var matches []indexedKey
	for _, k := range keys {
		switch {
		case k == plural:
			matches = append(matches, indexedKey{Index: -1, Kind: 1, Key: k})
		case strings.HasPrefix(k, plural):
			if n, ok := parseIndexSuffix(k[len(plural):]); ok {
				matches = append(matches, indexedKey{Index: n, Kind: 1, Key: k})
			}
		case k == singular:
			matches = append(matches, indexedKey{Index: -1, Kind: 0, Key: k})
		case strings.HasPrefix(k, singular):
			if n, ok := parseIndexSuffix(k[len(singular):]); ok {
				matches = append(matches, indexedKey{Index: n, Kind: 0, Key: k})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Key < b.Key
	})
	deduped := matches[:0]
	for i, m := range matches {
		if i > 0 && m.Index == matches[i-1].Index && m.Kind == matches[i-1].Kind && m.Key == matches[i-1].Key {
			deduped[len(deduped)-1] = m
			continue
		}
		deduped = append(deduped, m)
	}
	return deduped
}

// addressArrayKeys / routeArrayKeys are the recognized key-name pairs for
// the two indexed arrays a setting may declare.
func addressArrayKeys(store *inistore.Store, group string) []indexedKey {
	return collectIndexedKeys(store.Keys(group), "address", "addresses")
}

func routeArrayKeys(store *inistore.Store, group string) []indexedKey {
	return collectIndexedKeys(store.Keys(group), "route", "routes")
}
