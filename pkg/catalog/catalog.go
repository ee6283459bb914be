// Package catalog is the settings catalog external collaborator: given a
// setting name it yields a fresh settings object and the ordered list of
// its typed properties, and it supplies the canonical↔short alias table
// used by the setting orchestrator.
package catalog

import (
	"fmt"
	"sort"

	"github.com/nmkeyfile/keyfile/pkg/model"
)

// Catalog is the registry of every setting kind the codec understands.
// Zero value is not usable; construct with Default().
type Catalog struct {
	defs    map[string]*model.SettingDef
	aliases *aliasTable
}

// Default returns the catalog covering every setting kind the codec
// understands. Each call builds a fresh catalog, which is safe for
// concurrent read-only use.
func Default() *Catalog {
	c := &Catalog{
		defs:    make(map[string]*model.SettingDef),
		aliases: newAliasTable(),
	}
	for _, def := range allSettingDefs() {
		c.register(def)
	}
	return c
}

func (c *Catalog) register(def *model.SettingDef) {
	if _, exists := c.defs[def.Name]; exists {
		panic(fmt.Sprintf("catalog: duplicate setting definition %q", def.Name))
	}
	c.defs[def.Name] = def
}

// Lookup returns the definition for a canonical setting name.
func (c *Catalog) Lookup(name string) (*model.SettingDef, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// New creates a fresh setting of the given canonical kind, with every
// property at its declared default. It returns an error if name is not a
// recognized setting kind — the caller turns this into an "unknown
// setting name" warning and skips the group.
func (c *Catalog) New(name string) (*model.Setting, error) {
	def, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("catalog: unknown setting %q", name)
	}
	return model.New(def), nil
}

// Canonicalize resolves a group name (which may be a legacy short alias or
// already canonical) to its canonical setting name.
func (c *Catalog) Canonicalize(groupName string) string {
	return c.aliases.toCanonical(groupName)
}

// ShortName returns the legacy short alias for a canonical setting name, if
// one is registered, else the canonical name unchanged.
func (c *Catalog) ShortName(canonical string) string {
	return c.aliases.toShort(canonical)
}

// Names returns every registered canonical setting name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for n := range c.defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
