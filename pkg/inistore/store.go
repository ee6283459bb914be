// Package inistore is the INI store external collaborator: a thin typed
// wrapper over gopkg.in/ini.v1 exposing exactly the group/key enumeration
// and typed getter/setter contract the codec depends on, and nothing else
// (no section merging, no comments, no DEFAULT-section magic).
package inistore

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ReservedVPNSecretsGroup is the one group name with codec-level meaning
// beyond "a setting name".
const ReservedVPNSecretsGroup = "vpn-secrets"

// Store wraps an *ini.File with the group/key/value contract the codec
// expects: insertion-order enumeration and typed accessors.
type Store struct {
	file *ini.File
}

// New returns an empty store, ready to be written into.
func New() *Store {
	f := ini.Empty(ini.LoadOptions{PreserveSurroundedQuote: true, IgnoreInlineComment: true})
	return &Store{file: f}
}

// Load parses raw keyfile bytes.
func Load(data []byte) (*Store, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		PreserveSurroundedQuote: true,
		AllowNonUniqueSections:  false,
		// ';' is part of the value grammar (integer lists, "\;" escapes,
		// trailing separators), never the start of an inline comment.
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("inistore: parse: %w", err)
	}
	return &Store{file: f}, nil
}

// LoadFile parses a keyfile from disk.
func LoadFile(path string) (*Store, error) {
	data, err := fileRead(path)
	if err != nil {
		return nil, fmt.Errorf("inistore: read %s: %w", path, err)
	}
	return Load(data)
}

// Groups returns every group name in the store, in file order, excluding
// ini.v1's implicit DEFAULT section.
func (s *Store) Groups() []string {
	var names []string
	for _, sec := range s.file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, sec.Name())
	}
	return names
}

// Keys returns every key name within group, in file order. A group that
// does not exist yields no keys.
func (s *Store) Keys(group string) []string {
	sec, err := s.file.GetSection(group)
	if err != nil {
		return nil
	}
	var names []string
	for _, k := range sec.Keys() {
		names = append(names, k.Name())
	}
	return names
}

// HasKey reports whether group has exactly this key present.
func (s *Store) HasKey(group, key string) bool {
	sec, err := s.file.GetSection(group)
	if err != nil {
		return false
	}
	return sec.HasKey(key)
}

func (s *Store) rawValue(group, key string) (string, bool) {
	sec, err := s.file.GetSection(group)
	if err != nil {
		return "", false
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", false
	}
	return k.Value(), true
}

// GetString returns the raw string value of group/key.
func (s *Store) GetString(group, key string) (string, bool) {
	return s.rawValue(group, key)
}

// GetInt32 parses group/key as a base-10 signed 32-bit integer.
func (s *Store) GetInt32(group, key string) (int32, bool, error) {
	raw, ok := s.rawValue(group, key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("inistore: %s.%s: not an integer: %w", group, key, err)
	}
	return int32(v), true, nil
}

// GetUint64 parses group/key as a base-10 unsigned 64-bit integer (spec
// §4.E: "the store lacks a direct getter" — base-10 string parse).
func (s *Store) GetUint64(group, key string) (uint64, bool, error) {
	raw, ok := s.rawValue(group, key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("inistore: %s.%s: not an unsigned integer: %w", group, key, err)
	}
	return v, true, nil
}

// GetBool parses group/key per ini.v1's boolean grammar (1/t/true/yes, etc).
func (s *Store) GetBool(group, key string) (bool, bool, error) {
	sec, err := s.file.GetSection(group)
	if err != nil {
		return false, false, nil
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return false, false, nil
	}
	v, err := k.Bool()
	if err != nil {
		return false, true, fmt.Errorf("inistore: %s.%s: not a boolean: %w", group, key, err)
	}
	return v, true, nil
}

// GetStringList splits group/key on comma, trimming surrounding whitespace
// from each element.
func (s *Store) GetStringList(group, key string) ([]string, bool) {
	raw, ok := s.rawValue(group, key)
	if !ok {
		return nil, false
	}
	if raw == "" {
		return []string{}, true
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// GetIntList splits group/key on semicolons and parses each element as a
// base-10 integer. The byte-blob legacy form and array<uint32> encodings
// share this grammar.
func (s *Store) GetIntList(group, key string) ([]int64, bool, error) {
	raw, ok := s.rawValue(group, key)
	if !ok {
		return nil, false, nil
	}
	raw = strings.TrimRight(strings.TrimSpace(raw), ";")
	if raw == "" {
		return []int64{}, true, nil
	}
	fields := strings.Split(raw, ";")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, true, fmt.Errorf("inistore: %s.%s: not an integer list: %w", group, key, err)
		}
		out = append(out, v)
	}
	return out, true, nil
}

// SetString stores a raw string value.
func (s *Store) SetString(group, key, value string) {
	s.section(group).Key(key).SetValue(value)
}

// SetInt32 stores v as a base-10 string.
func (s *Store) SetInt32(group, key string, v int32) {
	s.SetString(group, key, strconv.FormatInt(int64(v), 10))
}

// SetUint64 stores v as a base-10 string.
func (s *Store) SetUint64(group, key string, v uint64) {
	s.SetString(group, key, strconv.FormatUint(v, 10))
}

// SetBool stores v as "true"/"false".
func (s *Store) SetBool(group, key string, v bool) {
	s.SetString(group, key, strconv.FormatBool(v))
}

// SetStringList joins values with ",".
func (s *Store) SetStringList(group, key string, values []string) {
	s.SetString(group, key, strings.Join(values, ","))
}

// SetIntList joins values as a semicolon-terminated list (the legacy
// byte-blob / integer-array wire form).
func (s *Store) SetIntList(group, key string, values []int64) {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteByte(';')
	}
	s.SetString(group, key, b.String())
}

// RemoveKey deletes a single key from group, if present.
func (s *Store) RemoveKey(group, key string) {
	sec, err := s.file.GetSection(group)
	if err != nil {
		return
	}
	sec.DeleteKey(key)
}

func (s *Store) section(group string) *ini.Section {
	sec, err := s.file.GetSection(group)
	if err == nil {
		return sec
	}
	sec, _ = s.file.NewSection(group)
	return sec
}

// EnsureGroup creates group if absent, so that a setting with no writable
// non-default properties still produces an (empty) section on write.
func (s *Store) EnsureGroup(group string) {
	s.section(group)
}

// Bytes serializes the store to its on-disk keyfile representation.
func (s *Store) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("inistore: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile serializes and writes the store to path.
func (s *Store) WriteFile(path string) error {
	data, err := s.Bytes()
	if err != nil {
		return err
	}
	return fileWrite(path, data)
}

// EscapeKey escapes characters outside [A-Za-z0-9-] for use as a literal
// INI key. Used by the user-data setting's key-encoded map.
func EscapeKey(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isKeySafe(rune(c)) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\x%02x", c)
	}
	return b.String()
}

// UnescapeKey reverses EscapeKey.
func UnescapeKey(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' && i+3 < len(name) && name[i+1] == 'x' {
			if v, err := strconv.ParseUint(name[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

func isKeySafe(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		return true
	default:
		return false
	}
}
