package codec

import "github.com/nmkeyfile/keyfile/pkg/catalog"

// DecodeAddrGenMode reads the ipv6.addr-gen-mode enum from its string
// form. Invalid values issue a WARN and leave the property at its default
// (EUI64); empty input also defaults without a warning.
func DecodeAddrGenMode(ctx *Context, raw string) (int32, error) {
	switch raw {
	case "", "eui64":
		return catalog.AddrGenEUI64, nil
	case "stable-privacy":
		return catalog.AddrGenStablePrivacy, nil
	default:
		if err := ctx.Warn(SeverityWarn, "unrecognized addr-gen-mode %q, using default", raw); err != nil {
			return 0, err
		}
		return catalog.AddrGenEUI64, nil
	}
}

// EncodeAddrGenMode writes the enum as its string form.
func EncodeAddrGenMode(v int32) string {
	if v == catalog.AddrGenStablePrivacy {
		return "stable-privacy"
	}
	return "eui64"
}
