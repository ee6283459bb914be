package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

// Serial parity values (serial.parity), the one-character scalar grammar
// for serial parity codes.
const (
	ParityNone  int32 = iota // 'N'
	ParityEven               // 'E'
	ParityOdd                // 'O'
)

func serialDef() *model.SettingDef {
	return def("serial",
		u32("baud", 57600),
		u32("bits", 8),
		enum("parity", ParityNone),
		u32("stopbits", 1),
		u64("send-delay", 0),
	)
}

func gsmDef() *model.SettingDef {
	return def("gsm",
		str("apn", ""),
		str("username", ""),
		secretStr("password"),
		secretStr("pin"),
		str("sim-id", ""),
	)
}

func cdmaDef() *model.SettingDef {
	return def("cdma",
		str("number", ""),
		str("username", ""),
		secretStr("password"),
	)
}

func pppDef() *model.SettingDef {
	return def("ppp",
		boolean("noauth", false),
		boolean("refuse-eap", false),
		boolean("refuse-pap", false),
		boolean("refuse-chap", false),
		boolean("refuse-mschap", false),
		boolean("refuse-mschapv2", false),
		u32("mru", 0),
		u32("mtu", 0),
		u32("lcp-echo-failure", 0),
		u32("lcp-echo-interval", 0),
	)
}

func pppoeDef() *model.SettingDef {
	return def("pppoe",
		str("parent", ""),
		str("service", ""),
		str("username", ""),
		secretStr("password"),
	)
}
