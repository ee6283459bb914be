package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

// allSettingDefs lists every setting kind the catalog registers. Order here
// has no runtime meaning (Default sorts names on demand via Names) but
// groups the definitions by family: core, link-layer, security, VPN, misc.
func allSettingDefs() []*model.SettingDef {
	return []*model.SettingDef{
		connectionDef(),
		ethernetDef(),
		wirelessDef(),
		wirelessSecurityDef(),
		eight021xDef(),
		ipv4Def(),
		ipv6Def(),
		vpnDef(),
		bondDef(),
		bridgeDef(),
		teamDef(),
		vlanDef(),
		infinibandDef(),
		bluetoothDef(),
		serialDef(),
		gsmDef(),
		cdmaDef(),
		pppDef(),
		pppoeDef(),
		proxyDef(),
		tcDef(),
		sriovDef(),
		wireguardDef(),
		userDef(),
	}
}
