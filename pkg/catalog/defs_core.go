package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

// Metered enum values (connection.metered).
const (
	MeteredUnknown int32 = iota
	MeteredYes
	MeteredNo
	MeteredGuessYes
	MeteredGuessNo
)

// IP method enum values (ipv4.method / ipv6.method).
const (
	MethodAuto int32 = iota
	MethodManual
	MethodLinkLocal
	MethodShared
	MethodDisabled
	MethodIgnore
)

// addr-gen-mode enum values (ipv6.addr-gen-mode). Dispatch-overridden to
// read/write as a string, but the declared type stays TypeEnum so the
// catalog's generic metadata (default, writable) still applies.
const (
	AddrGenEUI64 int32 = iota
	AddrGenStablePrivacy
)

func connectionDef() *model.SettingDef {
	return def("connection",
		str("id", ""),
		str("uuid", ""),
		str("type", ""),
		str("interface-name", ""),
		boolean("autoconnect", true),
		i64("timestamp", 0),
		strList("permissions"),
		str("zone", ""),
		enum("metered", MeteredUnknown),
		boolean("read-only", false),
	)
}

func ipv4Def() *model.SettingDef {
	return def("ipv4",
		enum("method", MethodAuto),
		// "address"/"addresses"/"route"/"routes" are Dispatch-driven
		// multi-key properties; they still need catalog entries so the
		// generic engine's property enumeration (write path) and
		// default-skip checks have something to reference.
		model.PropertyDef{Name: "address-data", Type: model.TypeAddressList, Default: []model.IPAddress(nil), Writable: true},
		model.PropertyDef{Name: "route-data", Type: model.TypeRouteList, Default: []model.IPRoute(nil), Writable: true},
		str("gateway", ""),
		strList("dns"),
		strList("dns-search"),
		i64("route-metric", -1),
		boolean("never-default", false),
		boolean("may-fail", true),
		str("dhcp-client-id", ""),
		str("dhcp-hostname", ""),
	)
}

func ipv6Def() *model.SettingDef {
	return def("ipv6",
		enum("method", MethodAuto),
		model.PropertyDef{Name: "address-data", Type: model.TypeAddressList, Default: []model.IPAddress(nil), Writable: true},
		model.PropertyDef{Name: "route-data", Type: model.TypeRouteList, Default: []model.IPRoute(nil), Writable: true},
		str("gateway", ""),
		strList("dns"),
		strList("dns-search"),
		i64("route-metric", -1),
		enum("addr-gen-mode", AddrGenEUI64),
		enum("ip6-privacy", -1),
	)
}
