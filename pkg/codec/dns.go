package codec

import "github.com/nmkeyfile/keyfile/pkg/model"

// DecodeDNSList validates each element of a string-list DNS property as an
// IP address of the given family, dropping invalid elements with a WARN.
// Returns an error only if the embedder vetoes.
func DecodeDNSList(ctx *Context, raw []string, family model.Family) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, addr := range raw {
		if !isIPAddressSyntax(addr) || !addressMatchesFamily(addr, family) {
			if err := ctx.Warn(SeverityWarn, "invalid DNS address %q dropped", addr); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, addr)
	}
	return out, nil
}

func addressMatchesFamily(addr string, family model.Family) bool {
	isV6 := false
	for _, r := range addr {
		if r == ':' {
			isV6 = true
			break
		}
	}
	if family == model.FamilyIPv6 {
		return isV6
	}
	return !isV6
}
