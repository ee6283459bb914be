// Package model holds the in-memory connection/setting/property graph that
// the keyfile codec reads into and writes from. It knows nothing about INI
// syntax or the on-disk representation — that lives in pkg/inistore and
// pkg/codec.
package model

// Type identifies the declared type of a property, as exposed by the
// settings catalog (pkg/catalog). The generic property engine (pkg/codec)
// dispatches on this when no Dispatch override applies.
type Type int

const (
	TypeString Type = iota
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeBool
	TypeByte // signed char, range [-128, 127]
	TypeBytes
	TypeStringList
	TypeStringMap
	TypeUint32Array
	TypeEnum
	TypeFlags
	TypeAddressList
	TypeRouteList
	TypeVFList
	TypeQdiscList
	TypeTfilterList
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeBool:
		return "bool"
	case TypeByte:
		return "byte"
	case TypeBytes:
		return "bytes"
	case TypeStringList:
		return "string-list"
	case TypeStringMap:
		return "string-map"
	case TypeUint32Array:
		return "uint32-array"
	case TypeEnum:
		return "enum"
	case TypeFlags:
		return "flags"
	case TypeAddressList:
		return "address-list"
	case TypeRouteList:
		return "route-list"
	case TypeVFList:
		return "vf-list"
	case TypeQdiscList:
		return "qdisc-list"
	case TypeTfilterList:
		return "tfilter-list"
	default:
		return "unknown"
	}
}

// PropertyDef describes one property of a setting kind, as the catalog
// exposes it: declared type, default value, and read/write flags.
type PropertyDef struct {
	Name     string
	Type     Type
	Default  any
	Writable bool
	Secret   bool
}
