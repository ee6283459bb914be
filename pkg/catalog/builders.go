package catalog

import "github.com/nmkeyfile/keyfile/pkg/model"

// Small helpers for declaring property tables tersely and uniformly; every
// setting-definition file in this package builds its property list with
// these.

func str(name string, def string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeString, Default: def, Writable: true}
}

func secretStr(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeString, Default: "", Writable: true, Secret: true}
}

func i32(name string, def int32) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeInt32, Default: def, Writable: true}
}

func u32(name string, def uint32) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeUint32, Default: def, Writable: true}
}

func i64(name string, def int64) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeInt64, Default: def, Writable: true}
}

func u64(name string, def uint64) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeUint64, Default: def, Writable: true}
}

func boolean(name string, def bool) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeBool, Default: def, Writable: true}
}

func sbyte(name string, def int8) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeByte, Default: def, Writable: true}
}

func bytesProp(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeBytes, Default: []byte(nil), Writable: true}
}

func secretBytes(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeBytes, Default: []byte(nil), Writable: true, Secret: true}
}

func strList(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeStringList, Default: []string(nil), Writable: true}
}

func strMap(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeStringMap, Default: map[string]string(nil), Writable: true}
}

func secretMap(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeStringMap, Default: map[string]string(nil), Writable: true, Secret: true}
}

func u32Array(name string) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeUint32Array, Default: []uint32(nil), Writable: true}
}

func enum(name string, def int32) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeEnum, Default: def, Writable: true}
}

func flags(name string, def uint32) model.PropertyDef {
	return model.PropertyDef{Name: name, Type: model.TypeFlags, Default: def, Writable: true}
}

func def(name string, props ...model.PropertyDef) *model.SettingDef {
	return &model.SettingDef{Name: name, Properties: props}
}
