package model

// Family distinguishes IPv4 from IPv6 values.
type Family int

const (
	FamilyIPv4 Family = iota
	FamilyIPv6
)

// IPAddress is one entry of an ipv4/ipv6 "address" indexed array.
type IPAddress struct {
	Family     Family
	Address    string
	PrefixLen  uint32
	Gateway    string // "" if unset
}

// RouteAttrKind is the closed tagged-union discriminant for route
// attributes, over a small universe of attribute types.
type RouteAttrKind int

const (
	RouteAttrString RouteAttrKind = iota
	RouteAttrUint32
	RouteAttrBool
	RouteAttrIPAddress
)

// RouteAttr is one validated (name, typed value) pair from a route's
// "<key>_options" sibling key.
type RouteAttr struct {
	Name string
	Kind RouteAttrKind
	Str  string
	U32  uint32
	Bool bool
}

// IPRoute is one entry of an ipv4/ipv6 "route" indexed array.
type IPRoute struct {
	Family      Family
	Destination string
	PrefixLen   uint32
	Gateway     string // "" means "unspecified" (see the gateway-recovery quirk)
	HasGateway  bool
	Metric      int64 // -1 means "unset"
	Attributes  []RouteAttr
}

// VF is one SR-IOV virtual-function descriptor ("vf.<N>" keys).
type VF struct {
	Index uint32
	Descr string // the domain library's VF-descriptor grammar, opaque here
}

// QdiscEntry / TfilterEntry are one "qdisc.<parent>" / "tfilter.<parent>"
// entry of the tc setting.
type QdiscEntry struct {
	Parent string
	Spec   string
}

type TfilterEntry struct {
	Parent string
	Spec   string
}
