package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

func eight021xDef() *model.SettingDef {
	return def("802-1x",
		strList("eap"),
		str("identity", ""),
		str("anonymous-identity", ""),
		certProp("ca-cert"),
		certProp("client-cert"),
		certProp("private-key"),
		secretStr("private-key-password"),
		certProp("phase2-ca-cert"),
		str("phase2-auth", ""),
	)
}

// certProp declares a certificate-valued property. Its wire form is one of
// four tagged shapes (file://, pkcs11:, data:;base64,, bare path); in
// memory it is stored as the raw opaque keyfile-form string and only
// unpacked by pkg/codec/cert.go on demand.
func certProp(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeBytes, Default: []byte(nil), Writable: true}
}
