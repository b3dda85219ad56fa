package vesting

import (
	"testing"
)

const (
	friendlyAddr    = "EQB3ncyBUTjZUA5EnFKR5_EnOMI9V1tTEAAPaiU71gc4TiUt"
	friendlyAddrStd = "EQB3ncyBUTjZUA5EnFKR5/EnOMI9V1tTEAAPaiU71gc4TiUt"
	rawAddr         = "0:779DCC815138D9500E449C5291E7F12738C23D575B531000F6A253BD6073884E"
)

func TestParseAccountAddress(t *testing.T) {
	for _, value := range []string{
		friendlyAddr,
		friendlyAddrStd,
		rawAddr,
		"0:779dcc815138d9500e449c5291e7f12738c23d575b531000f6a253bd6073884e",
	} {
		addr, err := ParseAccountAddress(value)
		if err != nil {
			t.Errorf("failed to parse '%s': %v", value, err)
			continue
		}
		if addr != AccountAddress(rawAddr) {
			t.Errorf("expected '%s' to normalize to '%s', got '%s'", value, rawAddr, addr)
		}
	}
}

func TestParseAccountAddressInvalid(t *testing.T) {
	for _, value := range []string{
		"",
		"not an address",
		"0:779dcc",
		"EQB3ncyBUTjZUA5EnFKR5_EnOMI9V1tTEAAPaiU71gc4Ti00",
	} {
		if _, err := ParseAccountAddress(value); err == nil {
			t.Errorf("expected error for '%s'", value)
		}
	}
}

func TestAccountAddressConverter(t *testing.T) {
	v := AccountAddressConverter(friendlyAddr)
	if !v.IsValid() {
		t.Fatalf("expected valid value")
	}
	if addr, ok := v.Interface().(AccountAddress); !ok || addr != AccountAddress(rawAddr) {
		t.Errorf("unexpected converted value: %v", v)
	}

	if v := AccountAddressConverter("garbage"); v.IsValid() {
		t.Errorf("expected invalid value for garbage input")
	}
}

func TestScheduleStatusConverter(t *testing.T) {
	for _, value := range []string{"pending", "active", "completed", "revoked"} {
		v := ScheduleStatusConverter(value)
		if !v.IsValid() {
			t.Errorf("expected valid value for '%s'", value)
		}
	}
	if v := ScheduleStatusConverter("expired"); v.IsValid() {
		t.Errorf("expected invalid value for unknown status")
	}
}

func TestUtimeTypeConverter(t *testing.T) {
	v := UtimeTypeConverter("1740000000")
	if !v.IsValid() || v.Interface().(UtimeType) != UtimeType(1740000000) {
		t.Errorf("unexpected value: %v", v)
	}

	v = UtimeTypeConverter("1740000000.5")
	if !v.IsValid() || v.Interface().(UtimeType) != UtimeType(1740000000) {
		t.Errorf("unexpected value for float input: %v", v)
	}

	if v := UtimeTypeConverter("soon"); v.IsValid() {
		t.Errorf("expected invalid value for non-numeric input")
	}
}
