package codec

import (
	"strconv"

	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

// SecretPolicy answers, for a secret property, what storage flags the
// embedder wants for it. The engine writes the property only when the
// returned flags are "none"; any other value (e.g. "agent-owned")
// suppresses it.
type SecretPolicy func(settingName, property string) string

// defaultSecretPolicy suppresses every secret unless the embedder supplies
// its own policy — the conservative default for an unconfigured caller.
func defaultSecretPolicy(string, string) string { return "agent-owned" }

// Engine is the generic property engine: it drives one setting's
// properties against an inistore.Store, honoring Dispatch overrides and
// falling back to the type-directed default codec.
type Engine struct {
	Store        *inistore.Store
	Ctx          *Context
	BaseDir      string
	SecretPolicy SecretPolicy
}

// NewEngine builds an Engine ready for one read or write call.
func NewEngine(store *inistore.Store, ctx *Context, baseDir string, policy SecretPolicy) *Engine {
	if policy == nil {
		policy = defaultSecretPolicy
	}
	return &Engine{Store: store, Ctx: ctx, BaseDir: baseDir, SecretPolicy: policy}
}

// ReadSetting runs the engine's read algorithm over every property of s,
// whose values live under group.
func (e *Engine) ReadSetting(group string, s *model.Setting) error {
	for _, p := range s.Properties() {
		if err := e.readProperty(group, s, p); err != nil {
			return err
		}
		if e.Ctx.Err() != nil {
			return e.Ctx.Err()
		}
	}
	return nil
}

func (e *Engine) readProperty(group string, s *model.Setting, p model.PropertyDef) error {
	if !p.Writable || p.Name == "name" {
		return nil
	}
	disp, hasDisp := lookupDispatch(s.Name(), p.Name)
	if hasDisp && disp.SkipRead {
		return nil
	}
	e.Ctx.Group, e.Ctx.Setting, e.Ctx.Property = group, s.Name(), p.Name

	noCheck := hasDisp && disp.NoCheckKey
	if !noCheck && !e.Store.HasKey(group, p.Name) {
		return nil
	}
	if hasDisp && disp.Reader != nil {
		return disp.Reader(e, group, s, p.Name)
	}
	return e.readDefault(group, s, p)
}

// readDefault implements the type-directed fallback codec used when no
// Dispatch override claims a property.
func (e *Engine) readDefault(group string, s *model.Setting, p model.PropertyDef) error {
	switch p.Type {
	case model.TypeString:
		v, _ := e.Store.GetString(group, p.Name)
		s.Set(p.Name, v)
	case model.TypeUint32:
		v, ok, err := e.Store.GetInt32(group, p.Name)
		if err != nil || (ok && v < 0) {
			return e.Ctx.Warn(SeverityWarn, "negative value for unsigned property %s", p.Name)
		}
		if ok {
			s.Set(p.Name, uint32(v))
		}
	case model.TypeInt32:
		v, ok, err := e.Store.GetInt32(group, p.Name)
		if err != nil {
			return e.Ctx.Warn(SeverityWarn, "invalid int32 for %s", p.Name)
		}
		if ok {
			s.Set(p.Name, v)
		}
	case model.TypeInt64:
		raw, ok := e.Store.GetString(group, p.Name)
		if ok {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return e.Ctx.Warn(SeverityWarn, "invalid int64 for %s", p.Name)
			}
			s.Set(p.Name, v)
		}
	case model.TypeUint64:
		v, ok, err := e.Store.GetUint64(group, p.Name)
		if err != nil {
			return e.Ctx.Warn(SeverityWarn, "invalid uint64 for %s", p.Name)
		}
		if ok {
			s.Set(p.Name, v)
		}
	case model.TypeBool:
		v, ok, err := e.Store.GetBool(group, p.Name)
		if err != nil {
			return e.Ctx.Warn(SeverityWarn, "invalid bool for %s", p.Name)
		}
		if ok {
			s.Set(p.Name, v)
		}
	case model.TypeByte:
		v, ok, err := e.Store.GetInt32(group, p.Name)
		if err != nil || (ok && (v < -128 || v > 127)) {
			return e.Ctx.Warn(SeverityWarn, "signed char out of range for %s", p.Name)
		}
		if ok {
			s.Set(p.Name, int8(v))
		}
	case model.TypeBytes:
		raw, ok := e.Store.GetString(group, p.Name)
		if ok {
			b, err := DecodeBytes(raw)
			if err != nil {
				return e.Ctx.Warn(SeverityWarn, "invalid byte blob for %s", p.Name)
			}
			s.Set(p.Name, b)
		}
	case model.TypeStringList:
		v, ok := e.Store.GetStringList(group, p.Name)
		if ok {
			s.Set(p.Name, v)
		}
	case model.TypeStringMap:
		// Filled only by the setting orchestrator's hash-of-string rules;
		// this fallback leaves a declared map property unchanged.
	case model.TypeUint32Array:
		list, ok, err := e.Store.GetIntList(group, p.Name)
		if err != nil {
			return e.Ctx.Warn(SeverityWarn, "invalid integer array for %s", p.Name)
		}
		if ok {
			out := make([]uint32, 0, len(list))
			for _, v := range list {
				if v < 0 || v > 1<<32-1 {
					if werr := e.Ctx.Warn(SeverityWarn, "out-of-range array element for %s", p.Name); werr != nil {
						return werr
					}
					continue
				}
				out = append(out, uint32(v))
			}
			s.Set(p.Name, out)
		}
	case model.TypeFlags:
		v, ok, err := e.Store.GetUint64(group, p.Name)
		if err != nil || (ok && v > 1<<32-1) {
			return e.Ctx.Warn(SeverityWarn, "flags value out of range for %s", p.Name)
		}
		if ok {
			s.Set(p.Name, uint32(v))
		}
	case model.TypeEnum:
		v, ok, err := e.Store.GetInt32(group, p.Name)
		if err != nil {
			return e.Ctx.Warn(SeverityWarn, "invalid enum for %s", p.Name)
		}
		if ok {
			s.Set(p.Name, v)
		}
	default:
		return e.Ctx.Warn(SeverityWarn, "unhandled type %s for %s", p.Type, p.Name)
	}
	return nil
}

// WriteSetting runs the engine's write algorithm over every property of
// s, in catalog order, emitting into group.
func (e *Engine) WriteSetting(group string, s *model.Setting) error {
	for _, p := range s.Properties() {
		if err := e.writeProperty(group, s, p); err != nil {
			return err
		}
		if e.Ctx.Err() != nil {
			return e.Ctx.Err()
		}
	}
	return nil
}

func (e *Engine) writeProperty(group string, s *model.Setting, p model.PropertyDef) error {
	if p.Name == "name" {
		return nil
	}
	disp, hasDisp := lookupDispatch(s.Name(), p.Name)
	if hasDisp && disp.SkipWrite {
		return nil
	}
	e.Ctx.Group, e.Ctx.Setting, e.Ctx.Property = group, s.Name(), p.Name

	if p.Secret && s.Name() != "vpn" {
		if e.SecretPolicy(s.Name(), p.Name) != "none" {
			return nil
		}
	}
	persistDefault := hasDisp && disp.PersistDefault
	if !persistDefault && s.IsDefault(p.Name) {
		return nil
	}
	if hasDisp && disp.Writer != nil {
		return disp.Writer(e, group, s, p.Name)
	}
	return e.writeDefault(group, s, p)
}

func (e *Engine) writeDefault(group string, s *model.Setting, p model.PropertyDef) error {
	v := s.MustGet(p.Name)
	switch p.Type {
	case model.TypeString:
		e.Store.SetString(group, p.Name, v.(string))
	case model.TypeUint32:
		e.Store.SetInt32(group, p.Name, int32(v.(uint32)))
	case model.TypeInt32:
		e.Store.SetInt32(group, p.Name, v.(int32))
	case model.TypeInt64:
		e.Store.SetString(group, p.Name, strconv.FormatInt(v.(int64), 10))
	case model.TypeUint64:
		e.Store.SetUint64(group, p.Name, v.(uint64))
	case model.TypeBool:
		e.Store.SetBool(group, p.Name, v.(bool))
	case model.TypeByte:
		e.Store.SetInt32(group, p.Name, int32(v.(int8)))
	case model.TypeBytes:
		e.Store.SetString(group, p.Name, EncodeBytesLegacy(v.([]byte)))
	case model.TypeStringList:
		e.Store.SetStringList(group, p.Name, v.([]string))
	case model.TypeUint32Array:
		list := v.([]uint32)
		ints := make([]int64, len(list))
		for i, u := range list {
			ints[i] = int64(u)
		}
		e.Store.SetIntList(group, p.Name, ints)
	case model.TypeFlags:
		e.Store.SetUint64(group, p.Name, uint64(v.(uint32)))
	case model.TypeEnum:
		e.Store.SetInt32(group, p.Name, v.(int32))
	}
	return nil
}
