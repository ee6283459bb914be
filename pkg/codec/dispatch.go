package codec

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/nmkeyfile/keyfile/pkg/model"
)

// propDispatch is one per-property Dispatch record.
type propDispatch struct {
	Property       string
	Reader         func(e *Engine, group string, s *model.Setting, prop string) error
	Writer         func(e *Engine, group string, s *model.Setting, prop string) error
	SkipRead       bool
	SkipWrite      bool
	NoCheckKey     bool
	PersistDefault bool
}

type settingDispatch struct {
	Setting    string
	Properties []propDispatch
}

// dispatchTable is the statically compiled, lexicographically sorted
// per-(setting, property) override table. Sort order is a structural
// invariant, asserted at package init below.
var dispatchTable = []settingDispatch{
	{Setting: "802-11-wireless", Properties: []propDispatch{
		{Property: "bssid", Reader: readMAC(0), Writer: writeMAC},
		{Property: "mac-address", Reader: readMAC(0), Writer: writeMAC},
		{Property: "ssid", Writer: writeSSID},
	}},
	{Setting: "802-1x", Properties: []propDispatch{
		{Property: "ca-cert", Reader: readCert, Writer: writeCert},
		{Property: "client-cert", Reader: readCert, Writer: writeCert},
		{Property: "phase2-ca-cert", Reader: readCert, Writer: writeCert},
		{Property: "private-key", Reader: readCert, Writer: writeCert},
	}},
	{Setting: "802-3-ethernet", Properties: []propDispatch{
		{Property: "cloned-mac-address", Reader: readClonedMAC},
		{Property: "mac-address", Reader: readMAC(6), Writer: writeMAC},
	}},
	{Setting: "bluetooth", Properties: []propDispatch{
		{Property: "bdaddr", Reader: readMAC(6), Writer: writeMAC},
	}},
	{Setting: "infiniband", Properties: []propDispatch{
		{Property: "mac-address", Reader: readMAC(20), Writer: writeMAC},
	}},
	{Setting: "ipv4", Properties: []propDispatch{
		{Property: "address-data", NoCheckKey: true, Reader: readAddressData(model.FamilyIPv4), Writer: writeAddressData},
		{Property: "dns", Reader: readDNS(model.FamilyIPv4)},
		{Property: "route-data", NoCheckKey: true, Reader: readRouteData(model.FamilyIPv4), Writer: writeRouteData},
	}},
	{Setting: "ipv6", Properties: []propDispatch{
		{Property: "addr-gen-mode", Reader: readAddrGenMode, Writer: writeAddrGenMode},
		{Property: "address-data", NoCheckKey: true, Reader: readAddressData(model.FamilyIPv6), Writer: writeAddressData},
		{Property: "dns", Reader: readDNS(model.FamilyIPv6)},
		{Property: "route-data", NoCheckKey: true, Reader: readRouteData(model.FamilyIPv6), Writer: writeRouteData},
	}},
	{Setting: "serial", Properties: []propDispatch{
		{Property: "parity", Reader: readParity, Writer: writeParity},
	}},
	{Setting: "sriov", Properties: []propDispatch{
		{Property: "vfs", NoCheckKey: true, Reader: readVFs, Writer: writeVFs},
	}},
	{Setting: "tc", Properties: []propDispatch{
		{Property: "qdiscs", NoCheckKey: true, Reader: readQdiscs, Writer: writeQdiscs},
		{Property: "tfilters", NoCheckKey: true, Reader: readTfilters, Writer: writeTfilters},
	}},
	{Setting: "wireguard", Properties: []propDispatch{
		{Property: "private-key", Reader: readBase64Bytes, Writer: writeBase64Bytes},
	}},
}

func init() {
	for i := 1; i < len(dispatchTable); i++ {
		if dispatchTable[i-1].Setting >= dispatchTable[i].Setting {
			panic(fmt.Sprintf("codec: dispatch table not sorted: %q >= %q", dispatchTable[i-1].Setting, dispatchTable[i].Setting))
		}
	}
	for _, sd := range dispatchTable {
		for i := 1; i < len(sd.Properties); i++ {
			if sd.Properties[i-1].Property >= sd.Properties[i].Property {
				panic(fmt.Sprintf("codec: dispatch table not sorted within %q: %q >= %q", sd.Setting, sd.Properties[i-1].Property, sd.Properties[i].Property))
			}
		}
	}
}

// lookupDispatch binary-searches the table on setting, then property.
func lookupDispatch(setting, property string) (*propDispatch, bool) {
	i := sort.Search(len(dispatchTable), func(i int) bool { return dispatchTable[i].Setting >= setting })
	if i >= len(dispatchTable) || dispatchTable[i].Setting != setting {
		return nil, false
	}
	props := dispatchTable[i].Properties
	j := sort.Search(len(props), func(j int) bool { return props[j].Property >= property })
	if j >= len(props) || props[j].Property != property {
		return nil, false
	}
	return &props[j], true
}

// -- MAC address dispatch --------------------------------------------------

func readMAC(expectedLen int) func(e *Engine, group string, s *model.Setting, prop string) error {
	return func(e *Engine, group string, s *model.Setting, prop string) error {
		raw, ok := e.Store.GetString(group, prop)
		if !ok {
			return nil
		}
		b, err := DecodeMAC(raw, expectedLen)
		if err != nil {
			return e.Ctx.Warn(SeverityWarn, "invalid MAC address for %s: %v", prop, err)
		}
		s.Set(prop, b)
		return nil
	}
}

func writeMAC(e *Engine, group string, s *model.Setting, prop string) error {
	e.Store.SetString(group, prop, EncodeMAC(s.MustGet(prop).([]byte)))
	return nil
}

func readClonedMAC(e *Engine, group string, s *model.Setting, prop string) error {
	raw, ok := e.Store.GetString(group, prop)
	if !ok {
		return nil
	}
	if IsClonedMACToken(raw) {
		s.Set(prop, raw)
		return nil
	}
	if _, err := DecodeMAC(raw, 0); err != nil {
		return e.Ctx.Warn(SeverityWarn, "invalid cloned MAC address %q", raw)
	}
	s.Set(prop, raw)
	return nil
}

func writeSSID(e *Engine, group string, s *model.Setting, prop string) error {
	e.Store.SetString(group, prop, EncodeSSID(s.MustGet(prop).([]byte)))
	return nil
}

// -- Address/route indexed arrays ------------------------------------------

func readAddressData(family model.Family) func(e *Engine, group string, s *model.Setting, prop string) error {
	return func(e *Engine, group string, s *model.Setting, prop string) error {
		keys := addressArrayKeys(e.Store, group)
		addrs := make([]model.IPAddress, 0, len(keys))
		for _, k := range keys {
			raw, _ := e.Store.GetString(group, k.Key)
			addr, ok, err := ParseAddressLine(e.Ctx, raw, family)
			if err != nil {
				return err
			}
			if ok {
				addrs = append(addrs, addr)
			}
		}
		s.Set(prop, addrs)
		if len(addrs) > 0 && addrs[0].Gateway != "" {
			if gw, _ := s.Get("gateway"); gw == "" {
				s.Set("gateway", addrs[0].Gateway)
			}
		}
		return nil
	}
}

func writeAddressData(e *Engine, group string, s *model.Setting, prop string) error {
	addrs := s.MustGet(prop).([]model.IPAddress)
	for i, a := range addrs {
		e.Store.SetString(group, indexedKeyName("address", i), EncodeAddressLine(a))
	}
	return nil
}

func readRouteData(family model.Family) func(e *Engine, group string, s *model.Setting, prop string) error {
	return func(e *Engine, group string, s *model.Setting, prop string) error {
		keys := routeArrayKeys(e.Store, group)
		routes := make([]model.IPRoute, 0, len(keys))
		for _, k := range keys {
			raw, _ := e.Store.GetString(group, k.Key)
			route, ok, err := ParseRouteLine(e.Ctx, raw, family)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if opts, has := e.Store.GetString(group, k.Key+"_options"); has {
				route.Attributes = ParseRouteAttrs(opts)
			}
			routes = append(routes, route)
		}
		s.Set(prop, routes)
		return nil
	}
}

func writeRouteData(e *Engine, group string, s *model.Setting, prop string) error {
	routes := s.MustGet(prop).([]model.IPRoute)
	for i, r := range routes {
		key := indexedKeyName("route", i)
		e.Store.SetString(group, key, EncodeRouteLine(r))
		if len(r.Attributes) > 0 {
			e.Store.SetString(group, key+"_options", EncodeRouteAttrs(r.Attributes))
		}
	}
	return nil
}

func indexedKeyName(singular string, i int) string {
	if i == 0 {
		return singular
	}
	return singular + strconv.Itoa(i)
}

// -- addr-gen-mode ----------------------------------------------------------

func readAddrGenMode(e *Engine, group string, s *model.Setting, prop string) error {
	raw, _ := e.Store.GetString(group, prop)
	v, err := DecodeAddrGenMode(e.Ctx, raw)
	if err != nil {
		return err
	}
	s.Set(prop, v)
	return nil
}

func writeAddrGenMode(e *Engine, group string, s *model.Setting, prop string) error {
	e.Store.SetString(group, prop, EncodeAddrGenMode(s.MustGet(prop).(int32)))
	return nil
}

// -- DNS ---------------------------------------------------------------------

func readDNS(family model.Family) func(e *Engine, group string, s *model.Setting, prop string) error {
	return func(e *Engine, group string, s *model.Setting, prop string) error {
		raw, ok := e.Store.GetStringList(group, prop)
		if !ok {
			return nil
		}
		valid, err := DecodeDNSList(e.Ctx, raw, family)
		if err != nil {
			return err
		}
		s.Set(prop, valid)
		return nil
	}
}

// -- Certificates -------------------------------------------------------------

func readCert(e *Engine, group string, s *model.Setting, prop string) error {
	raw, ok := e.Store.GetString(group, prop)
	if !ok {
		return nil
	}
	cert, err := DecodeCert(e.Ctx, []byte(raw), e.BaseDir)
	if err != nil {
		return err
	}
	s.Set(prop, EncodeCert(cert))
	return nil
}

func writeCert(e *Engine, group string, s *model.Setting, prop string) error {
	raw := s.MustGet(prop).([]byte)
	cert, err := DecodeCert(e.Ctx, raw, e.BaseDir)
	if err != nil {
		return err
	}
	e.Store.SetString(group, prop, string(EncodeCert(cert)))
	return nil
}

// -- Serial parity -------------------------------------------------------------

func readParity(e *Engine, group string, s *model.Setting, prop string) error {
	raw, ok := e.Store.GetString(group, prop)
	if !ok {
		return nil
	}
	code := raw
	if len(raw) > 1 {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n <= 127 {
			code = string(rune(n))
		}
	}
	v, err := DecodeParity(code)
	if err != nil {
		return e.Ctx.Warn(SeverityWarn, "invalid serial parity %q", raw)
	}
	s.Set(prop, v)
	return nil
}

func writeParity(e *Engine, group string, s *model.Setting, prop string) error {
	code, err := EncodeParity(s.MustGet(prop).(int32))
	if err != nil {
		return nil
	}
	e.Store.SetInt32(group, prop, code)
	return nil
}

// -- SR-IOV / traffic control --------------------------------------------------

func readVFs(e *Engine, group string, s *model.Setting, prop string) error {
	s.Set(prop, CollectVFs(e.Store, group))
	return nil
}

func writeVFs(e *Engine, group string, s *model.Setting, prop string) error {
	WriteVFs(e.Store, group, s.MustGet(prop).([]model.VF))
	return nil
}

func readQdiscs(e *Engine, group string, s *model.Setting, prop string) error {
	s.Set(prop, CollectQdiscs(e.Store, group))
	return nil
}

func writeQdiscs(e *Engine, group string, s *model.Setting, prop string) error {
	WriteQdiscs(e.Store, group, s.MustGet(prop).([]model.QdiscEntry))
	return nil
}

func readTfilters(e *Engine, group string, s *model.Setting, prop string) error {
	s.Set(prop, CollectTfilters(e.Store, group))
	return nil
}

func writeTfilters(e *Engine, group string, s *model.Setting, prop string) error {
	WriteTfilters(e.Store, group, s.MustGet(prop).([]model.TfilterEntry))
	return nil
}

// -- Base64 secret bytes (wireguard private keys) ------------------------------

func readBase64Bytes(e *Engine, group string, s *model.Setting, prop string) error {
	raw, ok := e.Store.GetString(group, prop)
	if !ok {
		return nil
	}
	b, err := DecodeBase64Strict(raw)
	if err != nil {
		return e.Ctx.Warn(SeverityWarn, "invalid base64 for %s: %v", prop, err)
	}
	s.Set(prop, b)
	return nil
}

func writeBase64Bytes(e *Engine, group string, s *model.Setting, prop string) error {
	e.Store.SetString(group, prop, EncodeBase64(s.MustGet(prop).([]byte)))
	return nil
}
