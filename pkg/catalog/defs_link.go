package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

// Wake-on-lan flag bits (802-3-ethernet.wake-on-lan).
const (
	WakeOnLanNone      uint32 = 0
	WakeOnLanPhy       uint32 = 1 << 0
	WakeOnLanUnicast   uint32 = 1 << 1
	WakeOnLanMulticast uint32 = 1 << 2
	WakeOnLanMagic     uint32 = 1 << 5
	WakeOnLanDefault   uint32 = 1 << 15
	WakeOnLanIgnore    uint32 = 1 << 16
)

func ethernetDef() *model.SettingDef {
	return def("802-3-ethernet",
		bytesProp("mac-address"),
		str("cloned-mac-address", ""),
		u32("mtu", 0),
		u32("speed", 0),
		str("duplex", ""),
		flags("wake-on-lan", WakeOnLanMagic),
		strList("s390-subchannels"),
	)
}

func wirelessDef() *model.SettingDef {
	return def("802-11-wireless",
		bytesProp("ssid"),
		str("mode", "infrastructure"),
		str("band", ""),
		u32("channel", 0),
		bytesProp("bssid"),
		bytesProp("mac-address"),
		str("cloned-mac-address", ""),
		boolean("hidden", false),
		enum("powersave", 0),
	)
}

func wirelessSecurityDef() *model.SettingDef {
	return def("802-11-wireless-security",
		str("key-mgmt", ""),
		str("auth-alg", ""),
		secretStr("psk"),
		secretBytes("wep-key0"),
		secretBytes("wep-key1"),
		secretBytes("wep-key2"),
		secretBytes("wep-key3"),
		enum("wep-key-type", 0),
	)
}

func bondDef() *model.SettingDef {
	return def("bond",
		str("interface-name", ""),
		str("mode", "balance-rr"),
		u32("miimon", 100),
		// arbitrary bond "options" are the hash-of-string implicit map
		strMap("options"),
	)
}

func bridgeDef() *model.SettingDef {
	return def("bridge",
		str("interface-name", ""),
		boolean("stp", true),
		u32("priority", 32768),
		u32("forward-delay", 15),
		u32("hello-time", 2),
		u32("ageing-time", 300),
		boolean("multicast-snooping", true),
	)
}

func teamDef() *model.SettingDef {
	return def("team",
		str("interface-name", ""),
		str("config", ""),
		str("runner", "roundrobin"),
	)
}

func vlanDef() *model.SettingDef {
	return def("vlan",
		u32("id", 0),
		str("parent", ""),
		flags("flags", 0),
	)
}

func infinibandDef() *model.SettingDef {
	return def("infiniband",
		bytesProp("mac-address"),
		u32("mtu", 0),
		str("transport-mode", "datagram"),
		i32("p-key", -1),
	)
}

func bluetoothDef() *model.SettingDef {
	return def("bluetooth",
		bytesProp("bdaddr"),
		str("type", "panu"),
	)
}
