package codec

import (
	"strconv"
	"strings"

	"github.com/nmkeyfile/keyfile/pkg/model"
)

func itoa(v uint32) string        { return strconv.FormatUint(uint64(v), 10) }
func itoaInt64(v int64) string    { return strconv.FormatInt(v, 10) }

// splitCompoundFields splits raw on any of the interchangeable separators
// '/', ';', ',', reporting whether the line ended in one with no further
// field (the deprecated trailing-separator form).
func splitCompoundFields(raw string) (fields []string, trailingSep bool) {
	if raw == "" {
		return nil, false
	}
	var cur strings.Builder
	for _, r := range raw {
		if r == '/' || r == ';' || r == ',' {
			fields = append(fields, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	fields = append(fields, cur.String())
	if fields[len(fields)-1] == "" {
		trailingSep = true
		fields = fields[:len(fields)-1]
	}
	return fields, trailingSep
}

func defaultPrefixLen(family model.Family, isRoute bool) uint32 {
	switch {
	case family == model.FamilyIPv4 && !isRoute:
		return 24
	case family == model.FamilyIPv6 && !isRoute:
		return 64
	case family == model.FamilyIPv4 && isRoute:
		return 24
	default: // IPv6 route
		return 128
	}
}

func isIPAddressSyntax(s string) bool {
	if s == "" {
		return false
	}
	var hasSeparator bool
	for _, r := range s {
		switch {
		case r == ':' || r == '.':
			hasSeparator = true
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F', r == '%':
		default:
			return false
		}
	}
	// A bare numeral (no ':' or '.') has the same character set as a hex
	// fragment but isn't an address — it's what the IPv6 gateway-recovery
	// quirk's metric field looks like.
	return hasSeparator
}

// ParseAddressLine decodes one address/addresses line. ok is false when
// the line was discarded (a WARN was issued but not vetoed); err is
// non-nil only when the embedder vetoed a warning.
func ParseAddressLine(ctx *Context, raw string, family model.Family) (model.IPAddress, bool, error) {
	fields, trailingSep := splitCompoundFields(raw)
	if trailingSep {
		if err := ctx.Warn(SeverityInfo, "deprecated trailing separator in address line"); err != nil {
			return model.IPAddress{}, false, err
		}
	}
	if len(fields) == 0 || fields[0] == "" {
		if err := ctx.Warn(SeverityWarn, "empty address line"); err != nil {
			return model.IPAddress{}, false, err
		}
		return model.IPAddress{}, false, nil
	}
	if len(fields) > 3 {
		if err := ctx.Warn(SeverityWarn, "garbage after expected fields in address line"); err != nil {
			return model.IPAddress{}, false, err
		}
		return model.IPAddress{}, false, nil
	}

	addr := model.IPAddress{Family: family, Address: fields[0]}
	rest := fields[1:]

	addr.PrefixLen = defaultPrefixLen(family, false)
	if len(rest) >= 1 {
		v, err := BoundedInt(rest[0], 0, 1<<32-1)
		if err != nil {
			if werr := ctx.Warn(SeverityWarn, "invalid prefix length %q", rest[0]); werr != nil {
				return model.IPAddress{}, false, werr
			}
			return model.IPAddress{}, false, nil
		}
		addr.PrefixLen = uint32(v)
		rest = rest[1:]
	} else if err := ctx.Warn(SeverityWarn, "missing prefix length, defaulting to %d", addr.PrefixLen); err != nil {
		return model.IPAddress{}, false, err
	}

	if len(rest) >= 1 {
		addr.Gateway = rest[0]
	}
	return addr, true, nil
}

// ParseRouteLine decodes one route/routes line, including the IPv6
// gateway-recovery quirk.
func ParseRouteLine(ctx *Context, raw string, family model.Family) (model.IPRoute, bool, error) {
	fields, trailingSep := splitCompoundFields(raw)
	if trailingSep {
		if err := ctx.Warn(SeverityInfo, "deprecated trailing separator in route line"); err != nil {
			return model.IPRoute{}, false, err
		}
	}
	if len(fields) == 0 || fields[0] == "" {
		if err := ctx.Warn(SeverityWarn, "empty route line"); err != nil {
			return model.IPRoute{}, false, err
		}
		return model.IPRoute{}, false, nil
	}
	if len(fields) > 4 {
		if err := ctx.Warn(SeverityWarn, "garbage after expected fields in route line"); err != nil {
			return model.IPRoute{}, false, err
		}
		return model.IPRoute{}, false, nil
	}

	route := model.IPRoute{Family: family, Destination: fields[0], Metric: -1}
	rest := fields[1:]

	route.PrefixLen = defaultPrefixLen(family, true)
	if len(rest) >= 1 {
		v, err := BoundedInt(rest[0], 0, 1<<32-1)
		if err != nil {
			if werr := ctx.Warn(SeverityWarn, "invalid route prefix length %q", rest[0]); werr != nil {
				return model.IPRoute{}, false, werr
			}
			return model.IPRoute{}, false, nil
		}
		if v != 0 {
			route.PrefixLen = uint32(v)
		} else if err := ctx.Warn(SeverityWarn, "route prefix length 0 treated as missing, defaulting to %d", route.PrefixLen); err != nil {
			return model.IPRoute{}, false, err
		}
		rest = rest[1:]
	} else if err := ctx.Warn(SeverityWarn, "missing route prefix length, defaulting to %d", route.PrefixLen); err != nil {
		return model.IPRoute{}, false, err
	}

	if len(rest) >= 1 {
		gw := rest[0]
		if gw == "" && len(rest) == 2 {
			// An empty gateway field followed by a metric is the form
			// EncodeRouteLine writes for a route without a gateway.
			rest = rest[1:]
		} else if isIPAddressSyntax(gw) {
			route.Gateway = gw
			route.HasGateway = true
			rest = rest[1:]
		} else if family == model.FamilyIPv6 && len(rest) == 1 {
			// Gateway-recovery quirk: a non-address gateway field with
			// nothing after it is really the metric of a file written by
			// the historically broken writer.
			v, err := BoundedInt(gw, 0, 1<<32-1)
			if err != nil {
				if werr := ctx.Warn(SeverityWarn, "invalid route gateway %q", gw); werr != nil {
					return model.IPRoute{}, false, werr
				}
				return model.IPRoute{}, false, nil
			}
			route.Metric = v
			rest = nil
		} else {
			if werr := ctx.Warn(SeverityWarn, "invalid route gateway %q", gw); werr != nil {
				return model.IPRoute{}, false, werr
			}
			return model.IPRoute{}, false, nil
		}
	}

	if len(rest) >= 1 {
		v, err := BoundedInt(rest[0], 0, 1<<32-1)
		if err != nil {
			if werr := ctx.Warn(SeverityWarn, "invalid route metric %q", rest[0]); werr != nil {
				return model.IPRoute{}, false, werr
			}
			return model.IPRoute{}, false, nil
		}
		route.Metric = v
	}
	return route, true, nil
}

// EncodeAddressLine always emits the canonical address[/prefix[,gateway]]
// form, never the legacy separators or trailing-separator form.
func EncodeAddressLine(a model.IPAddress) string {
	s := a.Address + "/" + itoa(a.PrefixLen)
	if a.Gateway != "" {
		s += "," + a.Gateway
	}
	return s
}

// EncodeRouteLine always emits destination/prefix[,gateway[,metric]],
// never the gateway-recovery quirk form.
func EncodeRouteLine(r model.IPRoute) string {
	s := r.Destination + "/" + itoa(r.PrefixLen)
	if r.HasGateway {
		s += "," + r.Gateway
	} else if r.Metric >= 0 {
		s += ","
	}
	if r.Metric >= 0 {
		s += "," + itoaInt64(r.Metric)
	}
	return s
}
