package codec

import (
	"github.com/nmkeyfile/keyfile/pkg/catalog"
	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

// hashOfStringMapProperty returns the declared map property that the
// setting-kind-aware "hash-of-string" rules populate for setting kind
// name, or "" if the kind has no implicit map behavior.
func hashOfStringMapProperty(setting string) string {
	switch setting {
	case "vpn":
		return "data"
	case "bond":
		return "options"
	case "user":
		return "data"
	case "wireguard":
		return "peers"
	default:
		return ""
	}
}

// ReadGroup resolves group through the catalog's alias table, obtains a
// fresh setting, and runs the property engine followed by any
// hash-of-string map population. A nil *model.Setting with a nil error
// means the group was skipped (unknown setting, WARN not vetoed).
func ReadGroup(cat *catalog.Catalog, e *Engine, group string) (*model.Setting, error) {
	canon := cat.Canonicalize(group)
	e.Ctx.Group, e.Ctx.Setting, e.Ctx.Property = group, canon, ""
	s, err := cat.New(canon)
	if err != nil {
		if werr := e.Ctx.Warn(SeverityWarn, "unknown setting %q, skipping group", group); werr != nil {
			return nil, werr
		}
		return nil, nil
	}
	if err := e.ReadSetting(group, s); err != nil {
		return nil, err
	}
	readHashOfString(e.Store, group, s)
	return s, nil
}

// WriteGroup writes s's properties followed by its hash-of-string map (if
// any) into the group named after its canonical setting kind.
func WriteGroup(e *Engine, s *model.Setting) error {
	group := s.Name()
	e.Store.EnsureGroup(group)
	if err := e.WriteSetting(group, s); err != nil {
		return err
	}
	writeHashOfString(e.Store, group, s)
	return nil
}

func readHashOfString(store *inistore.Store, group string, s *model.Setting) {
	mapProp := hashOfStringMapProperty(s.Name())
	if mapProp == "" {
		return
	}
	declared := make(map[string]bool)
	for _, p := range s.Properties() {
		if p.Type != model.TypeStringMap {
			declared[p.Name] = true
		}
	}
	m := make(map[string]string)
	for _, k := range store.Keys(group) {
		if declared[k] {
			continue
		}
		key := k
		if s.Name() == "user" {
			key = inistore.UnescapeKey(k)
		}
		v, _ := store.GetString(group, k)
		m[key] = v
	}
	if len(m) > 0 {
		s.Set(mapProp, m)
	}
}

func writeHashOfString(store *inistore.Store, group string, s *model.Setting) {
	mapProp := hashOfStringMapProperty(s.Name())
	if mapProp == "" {
		return
	}
	raw, ok := s.Get(mapProp)
	if !ok {
		return
	}
	m, ok := raw.(map[string]string)
	if !ok {
		return
	}
	for k, v := range m {
		key := k
		if s.Name() == "user" {
			key = inistore.EscapeKey(k)
		}
		store.SetString(group, key, v)
	}
}
