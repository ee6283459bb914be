package codec

import "testing"

func TestLookupDispatch_Found(t *testing.T) {
	disp, ok := lookupDispatch("ipv4", "address-data")
	if !ok {
		t.Fatal("lookupDispatch(ipv4, address-data) not found")
	}
	if disp.Reader == nil || disp.Writer == nil || !disp.NoCheckKey {
		t.Errorf("lookupDispatch(ipv4, address-data) = %+v, want reader+writer+NoCheckKey", disp)
	}
}

func TestLookupDispatch_UnknownSettingOrProperty(t *testing.T) {
	if _, ok := lookupDispatch("no-such-setting", "x"); ok {
		t.Error("lookupDispatch() on unknown setting should not be found")
	}
	if _, ok := lookupDispatch("ipv4", "no-such-property"); ok {
		t.Error("lookupDispatch() on unknown property should not be found")
	}
}

func TestDispatchTable_SortedAtPackageInit(t *testing.T) {
	// init() already ran (and would have panicked) by the time this test
	// runs; this just re-asserts the invariant explicitly for settings and,
	// within each setting, for properties.
	for i := 1; i < len(dispatchTable); i++ {
		if dispatchTable[i-1].Setting >= dispatchTable[i].Setting {
			t.Fatalf("dispatchTable not sorted: %q >= %q", dispatchTable[i-1].Setting, dispatchTable[i].Setting)
		}
	}
	for _, sd := range dispatchTable {
		for i := 1; i < len(sd.Properties); i++ {
			if sd.Properties[i-1].Property >= sd.Properties[i].Property {
				t.Fatalf("dispatchTable[%q] not sorted: %q >= %q", sd.Setting, sd.Properties[i-1].Property, sd.Properties[i].Property)
			}
		}
	}
}
