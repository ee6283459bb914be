package codec

import (
	"errors"
	"testing"

	"github.com/nmkeyfile/keyfile/pkg/util"
)

func TestContext_WarnNoHandlerIsNoop(t *testing.T) {
	ctx := NewContext(nil)
	if err := ctx.Warn(SeverityWarn, "test"); err != nil {
		t.Errorf("Warn() with nil handler = %v, want nil", err)
	}
	if ctx.Err() != nil {
		t.Errorf("Err() = %v, want nil", ctx.Err())
	}
}

func TestContext_WarnHandlerAccepts(t *testing.T) {
	var seen Warning
	ctx := NewContext(func(w Warning) error {
		seen = w
		return nil
	})
	ctx.Group, ctx.Setting, ctx.Property = "ipv4", "ipv4", "address-data"
	if err := ctx.Warn(SeverityWarn, "bad value %d", 42); err != nil {
		t.Fatalf("Warn() = %v, want nil", err)
	}
	if seen.Message != "bad value 42" || seen.Severity != SeverityWarn || seen.Property != "address-data" {
		t.Errorf("Warn() delivered = %+v", seen)
	}
}

func TestContext_WarnVetoLatches(t *testing.T) {
	calls := 0
	ctx := NewContext(func(w Warning) error {
		calls++
		return errors.New("no")
	})
	err1 := ctx.Warn(SeverityWarn, "first")
	if err1 == nil {
		t.Fatal("first Warn() should veto")
	}
	var vetoErr *util.VetoError
	if !errors.As(err1, &vetoErr) {
		t.Fatalf("Warn() error = %v, want *util.VetoError", err1)
	}

	err2 := ctx.Warn(SeverityWarn, "second")
	if err2 != err1 {
		t.Errorf("second Warn() = %v, want the same latched error %v", err2, err1)
	}
	if calls != 1 {
		t.Errorf("handler invoked %d times, want 1 (latched after first veto)", calls)
	}
	if ctx.Err() != err1 {
		t.Errorf("Err() = %v, want %v", ctx.Err(), err1)
	}
}
