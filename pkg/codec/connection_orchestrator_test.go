package codec

import (
	"testing"

	"github.com/nmkeyfile/keyfile/pkg/catalog"
	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

func mustLoad(t *testing.T, data string) *inistore.Store {
	t.Helper()
	store, err := inistore.Load([]byte(data))
	if err != nil {
		t.Fatalf("inistore.Load() error: %v", err)
	}
	return store
}

func TestReadConnection_EthernetWithAddressData(t *testing.T) {
	data := "[connection]\nid=x\ntype=802-3-ethernet\n[ipv4]\nmethod=auto\naddress1=10.0.0.1/24,10.0.0.254\n"
	store := mustLoad(t, data)
	cat := catalog.Default()

	conn, err := ReadConnection(cat, store, "/etc/keyfiles/x", "", nil)
	if err != nil {
		t.Fatalf("ReadConnection() error: %v", err)
	}

	connSetting, ok := conn.Setting("connection")
	if !ok {
		t.Fatal("missing connection setting")
	}
	if id, _ := connSetting.Get("id"); id != "x" {
		t.Errorf("connection.id = %v, want x", id)
	}
	if uuid, _ := connSetting.Get("uuid"); uuid == "" {
		t.Error("connection.uuid should be synthesized from the keyfile name")
	}

	ipv4, ok := conn.Setting("ipv4")
	if !ok {
		t.Fatal("missing ipv4 setting")
	}
	raw, _ := ipv4.Get("address-data")
	addrs := raw.([]model.IPAddress)
	if len(addrs) != 1 || addrs[0].Address != "10.0.0.1" || addrs[0].PrefixLen != 24 || addrs[0].Gateway != "10.0.0.254" {
		t.Errorf("ipv4.address-data = %+v", addrs)
	}
}

func TestReadConnection_IndexedAddressesPlural(t *testing.T) {
	data := "[connection]\nid=x\ntype=802-3-ethernet\n[ipv4]\naddresses=192.168.1.5/24;\n"
	store := mustLoad(t, data)
	cat := catalog.Default()

	conn, err := ReadConnection(cat, store, "", "", nil)
	if err != nil {
		t.Fatalf("ReadConnection() error: %v", err)
	}
	ipv4, _ := conn.Setting("ipv4")
	raw, _ := ipv4.Get("address-data")
	addrs := raw.([]model.IPAddress)
	if len(addrs) != 1 || addrs[0].Address != "192.168.1.5" || addrs[0].PrefixLen != 24 {
		t.Errorf("ipv4.address-data = %+v", addrs)
	}
}

func TestReadConnection_CertBarePath(t *testing.T) {
	data := "[connection]\nid=x\ntype=802-1x\n[802-1x]\nca-cert=/etc/pki/ca.pem\n"
	store := mustLoad(t, data)
	cat := catalog.Default()

	conn, err := ReadConnection(cat, store, "", "", nil)
	if err != nil {
		t.Fatalf("ReadConnection() error: %v", err)
	}
	eap, ok := conn.Setting("802-1x")
	if !ok {
		t.Fatal("missing 802-1x setting")
	}
	raw, _ := eap.Get("ca-cert")
	got := string(raw.([]byte))
	want := "file:///etc/pki/ca.pem"
	if got != want {
		t.Errorf("802-1x.ca-cert = %q, want %q", got, want)
	}
}

func TestReadConnection_SSIDEscaping(t *testing.T) {
	data := `[connection]
id=x
type=802-11-wireless
[802-11-wireless]
ssid=my\;net
`
	store := mustLoad(t, data)
	cat := catalog.Default()

	conn, err := ReadConnection(cat, store, "", "", nil)
	if err != nil {
		t.Fatalf("ReadConnection() error: %v", err)
	}
	wifi, ok := conn.Setting("802-11-wireless")
	if !ok {
		t.Fatal("missing 802-11-wireless setting")
	}
	// ssid has no Dispatch reader (only a writer), so it goes through the
	// generic engine's TypeBytes fallback, which unescapes "\;" to ";".
	raw, _ := wifi.Get("ssid")
	got := string(raw.([]byte))
	want := "my;net"
	if got != want {
		t.Errorf("802-11-wireless.ssid = %q, want %q", got, want)
	}
}

func TestReadConnection_VPNSecrets(t *testing.T) {
	data := "[connection]\nid=x\ntype=vpn\n[vpn]\nservice-type=org.foo\nfoo=bar\n[vpn-secrets]\npassword=s\n"
	store := mustLoad(t, data)
	cat := catalog.Default()

	conn, err := ReadConnection(cat, store, "", "", nil)
	if err != nil {
		t.Fatalf("ReadConnection() error: %v", err)
	}
	vpn, ok := conn.Setting("vpn")
	if !ok {
		t.Fatal("missing vpn setting")
	}
	if st, _ := vpn.Get("service-type"); st != "org.foo" {
		t.Errorf("vpn.service-type = %v, want org.foo", st)
	}
	rawData, _ := vpn.Get("data")
	data2, ok := rawData.(map[string]string)
	if !ok || data2["foo"] != "bar" {
		t.Errorf("vpn.data = %+v, want map with foo=bar", rawData)
	}
	rawSecrets, _ := vpn.Get("secrets")
	secrets, ok := rawSecrets.(map[string]string)
	if !ok || secrets["password"] != "s" {
		t.Errorf("vpn.secrets = %+v, want map with password=s", rawSecrets)
	}
}

func TestWriteConnection_RoundTripEthernet(t *testing.T) {
	cat := catalog.Default()
	conn := model.NewConnection()

	connDef, _ := cat.Lookup("connection")
	connSetting := model.New(connDef)
	connSetting.Set("id", "eth0-static")
	connSetting.Set("uuid", "11111111-1111-1111-1111-111111111111")
	connSetting.Set("type", "802-3-ethernet")
	conn.AddSetting(connSetting)

	ipv4Def, _ := cat.Lookup("ipv4")
	ipv4 := model.New(ipv4Def)
	ipv4.Set("method", catalog.MethodManual)
	ipv4.Set("address-data", []model.IPAddress{{Address: "10.0.0.1", PrefixLen: 24, Gateway: "10.0.0.254"}})
	conn.AddSetting(ipv4)

	store, err := WriteConnection(cat, conn, nil, "/tmp", nil, nil)
	if err != nil {
		t.Fatalf("WriteConnection() error: %v", err)
	}

	back, err := ReadConnection(cat, store, "", "/tmp", nil)
	if err != nil {
		t.Fatalf("ReadConnection() round trip error: %v", err)
	}
	backIPv4, ok := back.Setting("ipv4")
	if !ok {
		t.Fatal("round trip missing ipv4 setting")
	}
	raw, _ := backIPv4.Get("address-data")
	addrs := raw.([]model.IPAddress)
	if len(addrs) != 1 || addrs[0].Address != "10.0.0.1" || addrs[0].Gateway != "10.0.0.254" {
		t.Errorf("round trip address-data = %+v", addrs)
	}
}

func TestWriteConnection_SecretsSuppressedByDefaultPolicy(t *testing.T) {
	cat := catalog.Default()
	conn := model.NewConnection()

	connDef, _ := cat.Lookup("connection")
	connSetting := model.New(connDef)
	connSetting.Set("id", "wifi-secured")
	connSetting.Set("uuid", "22222222-2222-2222-2222-222222222222")
	connSetting.Set("type", "802-11-wireless-security")
	conn.AddSetting(connSetting)

	secDef, _ := cat.Lookup("802-11-wireless-security")
	sec := model.New(secDef)
	if _, ok := secDef.PropertyByName("psk"); ok {
		sec.Set("psk", "supersecret")
	}
	conn.AddSetting(sec)

	store, err := WriteConnection(cat, conn, nil, "/tmp", nil, nil)
	if err != nil {
		t.Fatalf("WriteConnection() error: %v", err)
	}
	if store.HasKey("802-11-wireless-security", "psk") {
		t.Error("psk should be suppressed by the default secret policy")
	}
}
