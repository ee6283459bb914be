package codec

import (
	"testing"

	"github.com/nmkeyfile/keyfile/pkg/model"
)

func TestParseAddressLine_Basic(t *testing.T) {
	ctx := NewContext(nil)
	addr, ok, err := ParseAddressLine(ctx, "10.0.0.1/24,10.0.0.254", model.FamilyIPv4)
	if err != nil || !ok {
		t.Fatalf("ParseAddressLine() = %v, %v, %v", addr, ok, err)
	}
	if addr.Address != "10.0.0.1" || addr.PrefixLen != 24 || addr.Gateway != "10.0.0.254" {
		t.Errorf("ParseAddressLine() = %+v, want address 10.0.0.1/24 gw 10.0.0.254", addr)
	}
}

func TestParseAddressLine_InterchangeableSeparators(t *testing.T) {
	ctx := NewContext(nil)
	addr, ok, err := ParseAddressLine(ctx, "10.0.0.1;24;10.0.0.254", model.FamilyIPv4)
	if err != nil || !ok {
		t.Fatalf("ParseAddressLine() = %v, %v, %v", addr, ok, err)
	}
	if addr.Address != "10.0.0.1" || addr.PrefixLen != 24 {
		t.Errorf("ParseAddressLine() with ';' separators = %+v", addr)
	}
}

func TestParseAddressLine_MissingPrefixDefaults(t *testing.T) {
	var gotWarn bool
	ctx := NewContext(func(w Warning) error { gotWarn = true; return nil })
	addr, ok, err := ParseAddressLine(ctx, "10.0.0.1", model.FamilyIPv4)
	if err != nil || !ok {
		t.Fatalf("ParseAddressLine() = %v, %v, %v", addr, ok, err)
	}
	if addr.PrefixLen != 24 {
		t.Errorf("ParseAddressLine() default prefix = %d, want 24", addr.PrefixLen)
	}
	if !gotWarn {
		t.Error("ParseAddressLine() with missing prefix should warn")
	}
}

func TestParseRouteLine_IPv6GatewayRecoveryQuirk(t *testing.T) {
	// A historically broken writer emitted "<dest>/<prefix>,<metric>" for
	// IPv6 routes with no gateway; the metric field lands where a gateway
	// is normally expected.
	ctx := NewContext(nil)
	route, ok, err := ParseRouteLine(ctx, "2001:db8::/32,100", model.FamilyIPv6)
	if err != nil || !ok {
		t.Fatalf("ParseRouteLine() = %v, %v, %v", route, ok, err)
	}
	if route.HasGateway {
		t.Errorf("ParseRouteLine() gateway-recovery quirk should leave HasGateway false, got %+v", route)
	}
	if route.Metric != 100 {
		t.Errorf("ParseRouteLine() metric = %d, want 100", route.Metric)
	}
	if route.Destination != "2001:db8::" || route.PrefixLen != 32 {
		t.Errorf("ParseRouteLine() destination/prefix = %s/%d", route.Destination, route.PrefixLen)
	}
}

func TestParseRouteLine_WithRealGateway(t *testing.T) {
	ctx := NewContext(nil)
	route, ok, err := ParseRouteLine(ctx, "192.168.1.0/24,192.168.1.1,10", model.FamilyIPv4)
	if err != nil || !ok {
		t.Fatalf("ParseRouteLine() = %v, %v, %v", route, ok, err)
	}
	if !route.HasGateway || route.Gateway != "192.168.1.1" {
		t.Errorf("ParseRouteLine() gateway = %q, want 192.168.1.1", route.Gateway)
	}
	if route.Metric != 10 {
		t.Errorf("ParseRouteLine() metric = %d, want 10", route.Metric)
	}
}

func TestEncodeAddressLine_NeverEmitsLegacyForm(t *testing.T) {
	got := EncodeAddressLine(model.IPAddress{Address: "10.0.0.1", PrefixLen: 24, Gateway: "10.0.0.254"})
	want := "10.0.0.1/24,10.0.0.254"
	if got != want {
		t.Errorf("EncodeAddressLine() = %q, want %q", got, want)
	}
}

func TestEncodeRouteLine_MetricWithoutGateway(t *testing.T) {
	got := EncodeRouteLine(model.IPRoute{Destination: "2001:db8::", PrefixLen: 32, Metric: 100})
	want := "2001:db8::/32,,100"
	if got != want {
		t.Errorf("EncodeRouteLine() = %q, want %q", got, want)
	}
}
