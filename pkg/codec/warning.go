package codec

import (
	"fmt"

	"github.com/nmkeyfile/keyfile/pkg/util"
)

// Severity classifies a Warning.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityInfoMissingFile
	SeverityWarn
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityInfoMissingFile:
		return "INFO_MISSING_FILE"
	case SeverityWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Warning is delivered synchronously to the embedder's Handler, carrying
// everything the handler needs to decide whether to veto.
type Warning struct {
	Group    string
	Setting  string
	Property string
	Severity Severity
	Message  string
}

// Handler is the embedder's warning callback. A non-nil return vetoes the
// operation.
type Handler func(w Warning) error

// Context threads a Handler and the currently active group/setting/property
// through one top-level read or write call, latching the first vetoed
// warning into err so every subsequent operation can short-circuit.
type Context struct {
	Handler  Handler
	Group    string
	Setting  string
	Property string
	err      error
}

// NewContext creates a Context for one top-level codec call.
func NewContext(handler Handler) *Context {
	return &Context{Handler: handler}
}

// Err returns the latched veto error, if any.
func (c *Context) Err() error { return c.err }

// Warn delivers a warning at the context's current location. If already
// vetoed, it returns the latched error without invoking the handler again.
// Otherwise it invokes the handler (if any) and, on veto, latches and
// returns a *util.VetoError.
func (c *Context) Warn(severity Severity, format string, args ...any) error {
	if c.err != nil {
		return c.err
	}
	w := Warning{
		Group:    c.Group,
		Setting:  c.Setting,
		Property: c.Property,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	}
	entry := util.WithGroup(w.Group).WithField("property", w.Property)
	if severity == SeverityWarn {
		util.WithSetting(w.Setting).WithFields(entry.Data).Warn(w.Message)
	} else {
		util.WithSetting(w.Setting).WithFields(entry.Data).Debug(w.Message)
	}
	if c.Handler == nil {
		return nil
	}
	if vetoErr := c.Handler(w); vetoErr != nil {
		c.err = &util.VetoError{
			Group:    w.Group,
			Setting:  w.Setting,
			Property: w.Property,
			Severity: severity.String(),
			Message:  w.Message,
		}
		return c.err
	}
	return nil
}
