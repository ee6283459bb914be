package codec

import (
	"strconv"
	"strings"

	"github.com/nmkeyfile/keyfile/pkg/model"
)

// routeAttrSchema is the small, closed universe of route attribute types,
// validated as a tagged union against a per-attribute schema, grounded in
// the common Linux route-option set.
var routeAttrSchema = map[string]model.RouteAttrKind{
	"table":    model.RouteAttrUint32,
	"onlink":   model.RouteAttrBool,
	"window":   model.RouteAttrUint32,
	"mtu":      model.RouteAttrUint32,
	"initcwnd": model.RouteAttrUint32,
	"initrwnd": model.RouteAttrUint32,
	"tos":      model.RouteAttrUint32,
	"src":      model.RouteAttrIPAddress,
	"from":     model.RouteAttrIPAddress,
	"type":     model.RouteAttrString,
	"scope":    model.RouteAttrString,
}

// ParseRouteAttrs decodes a "<key>_options" sibling value as a
// comma-separated name=value list. Unknown or invalid attributes are
// silently dropped — no warning is raised here.
func ParseRouteAttrs(raw string) []model.RouteAttr {
	if raw == "" {
		return nil
	}
	var out []model.RouteAttr
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		kind, known := routeAttrSchema[name]
		if !known {
			continue
		}
		attr, ok := decodeRouteAttrValue(name, kind, value)
		if !ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func decodeRouteAttrValue(name string, kind model.RouteAttrKind, value string) (model.RouteAttr, bool) {
	switch kind {
	case model.RouteAttrUint32:
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return model.RouteAttr{}, false
		}
		return model.RouteAttr{Name: name, Kind: kind, U32: uint32(v)}, true
	case model.RouteAttrBool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return model.RouteAttr{}, false
		}
		return model.RouteAttr{Name: name, Kind: kind, Bool: v}, true
	case model.RouteAttrIPAddress:
		if !isIPAddressSyntax(value) {
			return model.RouteAttr{}, false
		}
		return model.RouteAttr{Name: name, Kind: kind, Str: value}, true
	case model.RouteAttrString:
		return model.RouteAttr{Name: name, Kind: kind, Str: value}, true
	default:
		return model.RouteAttr{}, false
	}
}

// EncodeRouteAttrs reverses ParseRouteAttrs for the write path, in the
// attributes' stored order.
func EncodeRouteAttrs(attrs []model.RouteAttr) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		switch a.Kind {
		case model.RouteAttrUint32:
			parts = append(parts, a.Name+"="+strconv.FormatUint(uint64(a.U32), 10))
		case model.RouteAttrBool:
			parts = append(parts, a.Name+"="+strconv.FormatBool(a.Bool))
		default:
			parts = append(parts, a.Name+"="+a.Str)
		}
	}
	return strings.Join(parts, ",")
}
