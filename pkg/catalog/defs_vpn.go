package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

func vpnDef() *model.SettingDef {
	return def("vpn",
		str("service-type", ""),
		str("user-name", ""),
		strMap("data"),
		secretMap("secrets"),
		boolean("persistent", false),
		u32("timeout", 0),
	)
}

func wireguardDef() *model.SettingDef {
	return def("wireguard",
		secretBytes("private-key"),
		u32("listen-port", 0),
		u32("fwmark", 0),
		// peers: an implicit map filled by the hash-of-string rules, one
		// entry per key of the [wireguard] group that is not a declared
		// property (routed like the VPN data map).
		strMap("peers"),
	)
}
