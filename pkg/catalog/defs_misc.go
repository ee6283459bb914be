package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

// Proxy method enum values (proxy.method).
const (
	ProxyMethodNone int32 = iota
	ProxyMethodAuto
	ProxyMethodManual
)

// SR-IOV autoprobe-drivers enum values (sriov.autoprobe-drivers).
const (
	AutoprobeDefault int32 = iota
	AutoprobeYes
	AutoprobeNo
)

func proxyDef() *model.SettingDef {
	return def("proxy",
		enum("method", ProxyMethodNone),
		str("pac-url", ""),
		str("pac-script", ""),
	)
}

func tcDef() *model.SettingDef {
	return def("tc",
		// qdiscs/tfilters are entirely Dispatch-driven ("qdisc.<parent>" /
		// "tfilter.<parent>" keys), so the catalog carries them only as
		// typed placeholders for property enumeration.
		model.PropertyDef{Name: "qdiscs", Type: model.TypeQdiscList, Default: []model.QdiscEntry(nil), Writable: true},
		model.PropertyDef{Name: "tfilters", Type: model.TypeTfilterList, Default: []model.TfilterEntry(nil), Writable: true},
	)
}

func sriovDef() *model.SettingDef {
	return def("sriov",
		u32("total-vfs", 0),
		model.PropertyDef{Name: "vfs", Type: model.TypeVFList, Default: []model.VF(nil), Writable: true},
		enum("autoprobe-drivers", AutoprobeDefault),
	)
}

func userDef() *model.SettingDef {
	return def("user",
		// data: a "user.data.<key>" map with a reversible key-escaping
		// grammar, stored here decoded.
		strMap("data"),
	)
}
