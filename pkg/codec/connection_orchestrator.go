package codec

import (
	"os"
	"path/filepath"

	"github.com/nmkeyfile/keyfile/pkg/catalog"
	"github.com/nmkeyfile/keyfile/pkg/inistore"
	"github.com/nmkeyfile/keyfile/pkg/model"
	"github.com/nmkeyfile/keyfile/pkg/util"
)

// Verifier is the caller-supplied connection validation function the write
// entry point runs before touching the store: verify the connection
// first, fail fast.
type Verifier func(*model.Connection) error

// ReadConnection is the top-level read entry point. keyfileName and
// baseDir are both optional; an empty baseDir is derived from keyfileName
// (its directory, if absolute) or the working directory.
func ReadConnection(cat *catalog.Catalog, store *inistore.Store, keyfileName, baseDir string, handler Handler) (*model.Connection, error) {
	if baseDir == "" {
		baseDir = deriveBaseDir(keyfileName)
	}
	ctx := NewContext(handler)
	e := NewEngine(store, ctx, baseDir, nil)
	conn := model.NewConnection()

	var vpnSecretsGroup string
	for _, group := range store.Groups() {
		if group == inistore.ReservedVPNSecretsGroup {
			vpnSecretsGroup = group
			continue
		}
		s, err := ReadGroup(cat, e, group)
		if err != nil {
			return nil, err
		}
		if s != nil {
			conn.AddSetting(s)
		}
	}

	if !conn.HasSetting("connection") {
		s, err := cat.New("connection")
		if err != nil {
			return nil, err
		}
		conn.AddSetting(s)
	}
	connSetting, _ := conn.Setting("connection")

	if id, _ := connSetting.Get("id"); id == "" && keyfileName != "" {
		connSetting.Set("id", filepath.Base(keyfileName))
	}
	if id, _ := connSetting.Get("uuid"); id == "" && keyfileName != "" {
		connSetting.Set("uuid", util.UUIDFromKeyfileName(keyfileName))
	}
	if ifname, _ := connSetting.Get("interface-name"); ifname == "" {
		if typ, _ := connSetting.Get("type"); typ != "" {
			typeGroup := typ.(string)
			if legacy, ok := store.GetString(typeGroup, "interface-name"); ok {
				connSetting.Set("interface-name", legacy)
			}
		}
	}

	if vpnSecretsGroup != "" {
		if vpn, ok := conn.Setting("vpn"); ok {
			secrets := make(map[string]string)
			for _, k := range store.Keys(vpnSecretsGroup) {
				v, _ := store.GetString(vpnSecretsGroup, k)
				secrets[k] = v
			}
			if len(secrets) > 0 {
				vpn.Set("secrets", secrets)
			}
		}
	}

	return conn, nil
}

func deriveBaseDir(keyfileName string) string {
	if keyfileName != "" && filepath.IsAbs(keyfileName) {
		return filepath.Dir(keyfileName)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// WriteConnection is the top-level write entry point: verify first, then
// build a fresh store from scratch.
func WriteConnection(cat *catalog.Catalog, conn *model.Connection, verify Verifier, baseDir string, handler Handler, secretPolicy SecretPolicy) (*inistore.Store, error) {
	if verify != nil {
		if err := verify(conn); err != nil {
			return nil, err
		}
	}
	if baseDir == "" {
		baseDir = deriveBaseDir("")
	}
	store := inistore.New()
	ctx := NewContext(handler)
	e := NewEngine(store, ctx, baseDir, secretPolicy)

	for _, s := range conn.Settings() {
		if err := WriteGroup(e, s); err != nil {
			return nil, err
		}
		if s.Name() == "vpn" {
			if raw, ok := s.Get("secrets"); ok {
				if secrets, ok := raw.(map[string]string); ok && len(secrets) > 0 {
					for k, v := range secrets {
						store.SetString(inistore.ReservedVPNSecretsGroup, k, v)
					}
				}
			}
		}
	}
	return store, nil
}
