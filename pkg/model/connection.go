package model

// Connection is an ordered collection of Settings keyed by setting name,
// unique per connection. The connection owns its settings; settings do
// not cross-reference each other within the codec.
type Connection struct {
	order    []string
	settings map[string]*Setting
}

// NewConnection returns an empty connection.
func NewConnection() *Connection {
	return &Connection{settings: make(map[string]*Setting)}
}

// AddSetting adds s to the connection, replacing any existing setting of
// the same kind. The connection takes ownership of s.
func (c *Connection) AddSetting(s *Setting) {
	name := s.Name()
	if _, exists := c.settings[name]; !exists {
		c.order = append(c.order, name)
	}
	c.settings[name] = s
}

// Setting returns the setting of the given kind, if present.
func (c *Connection) Setting(name string) (*Setting, bool) {
	s, ok := c.settings[name]
	return s, ok
}

// HasSetting reports whether the connection has a setting of kind name.
func (c *Connection) HasSetting(name string) bool {
	_, ok := c.settings[name]
	return ok
}

// Settings returns all settings in the order they were added.
func (c *Connection) Settings() []*Setting {
	out := make([]*Setting, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.settings[name])
	}
	return out
}

// RemoveSetting drops the setting of kind name, if present.
func (c *Connection) RemoveSetting(name string) {
	if _, ok := c.settings[name]; !ok {
		return
	}
	delete(c.settings, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
