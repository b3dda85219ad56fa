package vesting

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xssnick/tonutils-go/address"
)

// json marshaling
func (v *AccountAddress) String() string {
	return strings.Trim(string(*v), " ")
}

func (v *AccountAddress) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", v.String())), nil
}

func (v *ScheduleStatus) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", string(*v))), nil
}

// ParseAccountAddress accepts user-friendly (base64 and base64url) and raw
// forms and normalizes to the raw `workchain:HEX` representation used as the
// ledger key.
func ParseAccountAddress(value string) (AccountAddress, error) {
	addr, err := address.ParseAddr(value)
	if err != nil {
		value_url := strings.Replace(value, "+", "-", -1)
		value_url = strings.Replace(value_url, "/", "_", -1)
		addr, err = address.ParseAddr(value_url)
	}
	if err != nil {
		addr, err = address.ParseRawAddr(value)
	}
	if err != nil {
		return "", err
	}
	addr_str := fmt.Sprintf("%d:%s", addr.Workchain(), strings.ToUpper(hex.EncodeToString(addr.Data())))
	return AccountAddress(addr_str), nil
}

// converters
func AccountAddressConverter(value string) reflect.Value {
	addr, err := ParseAccountAddress(value)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(addr)
}

func UtimeTypeConverter(value string) reflect.Value {
	if utime, err := strconv.ParseUint(value, 10, 64); err == nil {
		return reflect.ValueOf(UtimeType(utime))
	}
	if utime, err := strconv.ParseFloat(value, 64); err == nil {
		return reflect.ValueOf(UtimeType(uint64(utime)))
	}
	return reflect.Value{}
}

func ScheduleStatusConverter(value string) reflect.Value {
	switch ScheduleStatus(value) {
	case StatusPending, StatusActive, StatusCompleted, StatusRevoked:
		return reflect.ValueOf(ScheduleStatus(value))
	}
	return reflect.Value{}
}
