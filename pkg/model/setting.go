package model

import "fmt"

// SettingDef is the catalog's description of one setting kind: its
// canonical name and the ordered list of properties it declares. Setting
// instances are always created fresh from a SettingDef (pkg/catalog.New).
type SettingDef struct {
	Name       string
	Properties []PropertyDef
}

// PropertyByName returns the PropertyDef for name, or false if the setting
// does not declare that property.
func (d *SettingDef) PropertyByName(name string) (PropertyDef, bool) {
	for _, p := range d.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyDef{}, false
}

// Setting is a named bag of typed property values, all initialized from
// their catalog defaults on construction. The codec mutates it in place
// while reading, and only reads it while writing.
type Setting struct {
	Def    *SettingDef
	values map[string]any
}

// New creates a fresh Setting from def, with every property set to its
// declared default.
func New(def *SettingDef) *Setting {
	s := &Setting{
		Def:    def,
		values: make(map[string]any, len(def.Properties)),
	}
	for _, p := range def.Properties {
		s.values[p.Name] = p.Default
	}
	return s
}

// Name returns the setting's canonical kind name (e.g. "ipv4"), which is
// also used as its key within a Connection.
func (s *Setting) Name() string { return s.Def.Name }

// Get returns the current value of property name and whether the setting
// declares it at all.
func (s *Setting) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// MustGet panics if name is not a declared property; used internally by
// codecs that have already checked PropertyByName.
func (s *Setting) MustGet(name string) any {
	v, ok := s.values[name]
	if !ok {
		panic(fmt.Sprintf("model: setting %q has no property %q", s.Name(), name))
	}
	return v
}

// Set overwrites the value of property name. It is the caller's
// responsibility (the property engine) to ensure the value's dynamic type
// matches the property's declared Type.
func (s *Setting) Set(name string, value any) {
	s.values[name] = value
}

// IsDefault reports whether property name currently holds its catalog
// default value.
func (s *Setting) IsDefault(name string) bool {
	def, ok := s.Def.PropertyByName(name)
	if !ok {
		return true
	}
	return valuesEqual(s.values[name], def.Default)
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []byte:
		bv, ok := b.([]byte)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []uint32:
		bv, ok := b.([]uint32)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case map[string]string:
		bv, ok := b.(map[string]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if bv[k] != v {
				return false
			}
		}
		return true
	case []IPAddress:
		bv, ok := b.([]IPAddress)
		return ok && len(av) == len(bv) && len(av) == 0
	case []IPRoute:
		bv, ok := b.([]IPRoute)
		return ok && len(av) == len(bv) && len(av) == 0
	case []VF:
		bv, ok := b.([]VF)
		return ok && len(av) == len(bv) && len(av) == 0
	case []QdiscEntry:
		bv, ok := b.([]QdiscEntry)
		return ok && len(av) == len(bv) && len(av) == 0
	case []TfilterEntry:
		bv, ok := b.([]TfilterEntry)
		return ok && len(av) == len(bv) && len(av) == 0
	default:
		return a == b
	}
}

// Properties returns the setting's declared properties in catalog order.
func (s *Setting) Properties() []PropertyDef { return s.Def.Properties }
