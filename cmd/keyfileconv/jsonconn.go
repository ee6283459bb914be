package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/nmkeyfile/keyfile/pkg/catalog"
	"github.com/nmkeyfile/keyfile/pkg/model"
)

// jsonConnection is the CLI's on-disk snapshot format for a Connection —
// not part of the codec itself, just a convenience so `write` has
// something to read besides a keyfile.
type jsonConnection struct {
	Settings []jsonSetting `json:"settings"`
}

type jsonSetting struct {
	Kind       string         `json:"kind"`
	Properties map[string]any `json:"properties"`
}

func connectionToJSON(conn *model.Connection) jsonConnection {
	var out jsonConnection
	for _, s := range conn.Settings() {
		props := make(map[string]any)
		for _, p := range s.Properties() {
			v, _ := s.Get(p.Name)
			props[p.Name] = v
		}
		out.Settings = append(out.Settings, jsonSetting{Kind: s.Name(), Properties: props})
	}
	return out
}

func connectionFromJSON(cat *catalog.Catalog, in jsonConnection) (*model.Connection, error) {
	conn := model.NewConnection()
	for _, js := range in.Settings {
		def, ok := cat.Lookup(cat.Canonicalize(js.Kind))
		if !ok {
			return nil, fmt.Errorf("unknown setting kind %q", js.Kind)
		}
		s := model.New(def)
		for _, p := range def.Properties {
			raw, present := js.Properties[p.Name]
			if !present {
				continue
			}
			v, err := convertJSONValue(p.Type, raw)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", js.Kind, p.Name, err)
			}
			s.Set(p.Name, v)
		}
		conn.AddSetting(s)
	}
	return conn, nil
}

// convertJSONValue re-marshals raw (already unmarshaled into generic
// any-shaped Go values) and decodes it into the concrete Go type that
// declared Type t uses in a model.Setting, leaning on encoding/json's
// reflection instead of a hand-rolled type switch per case.
func convertJSONValue(t model.Type, raw any) (any, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	switch t {
	case model.TypeString:
		var v string
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeInt32, model.TypeEnum:
		var v int32
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeUint32:
		var v uint32
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeFlags:
		var v uint32
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeInt64:
		var v int64
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeUint64:
		var v uint64
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeBool:
		var v bool
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeByte:
		var v int8
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeBytes:
		var v []byte
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeStringList:
		var v []string
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeStringMap:
		var v map[string]string
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeUint32Array:
		var v []uint32
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeAddressList:
		var v []model.IPAddress
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeRouteList:
		var v []model.IPRoute
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeVFList:
		var v []model.VF
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeQdiscList:
		var v []model.QdiscEntry
		err = json.Unmarshal(data, &v)
		return v, err
	case model.TypeTfilterList:
		var v []model.TfilterEntry
		err = json.Unmarshal(data, &v)
		return v, err
	default:
		return nil, fmt.Errorf("unhandled property type %s", t)
	}
}

// settingKinds returns the catalog's registered kinds, sorted. No command
// calls it at present.
func settingKinds(cat *catalog.Catalog) []string {
	names := cat.Names()
	sort.Strings(names)
	return names
}
