// Package wire holds the scalar codec for the Overseer REST API's JSON dialect.
//
// The API transmits most numeric and boolean fields as strings ("totalrows": "25",
// "enabled": "1"). These types keep the in-memory model strictly typed while
// accepting either the string form or the bare JSON scalar on input, and always
// emitting the string form the API expects on output.
package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Bool is a boolean transmitted as "0" or "1".
type Bool bool

// Uint is an unsigned integer transmitted as a decimal string.
type Uint uint64

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"1"`), nil
	}
	return []byte(`"0"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts "0"/"1", bare 0/1,
// and bare true/false.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*b = Bool(v)
		return nil
	case string:
		switch v {
		case "0":
			*b = false
			return nil
		case "1":
			*b = true
			return nil
		}
		return fmt.Errorf("wire: cannot parse %q as bool", v)
	case float64:
		switch v {
		case 0:
			*b = false
			return nil
		case 1:
			*b = true
			return nil
		}
		return fmt.Errorf("wire: cannot parse %v as bool", v)
	default:
		return fmt.Errorf("wire: cannot parse %T as bool", raw)
	}
}

// Bool returns the plain boolean value.
func (b Bool) Bool() bool { return bool(b) }

// MarshalJSON implements json.Marshaler.
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(u), 10))), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts both "25" and 25.
func (u *Uint) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("wire: cannot parse %q as uint: %w", v, err)
		}
		*u = Uint(n)
		return nil
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return fmt.Errorf("wire: cannot parse %v as uint", v)
		}
		*u = Uint(v)
		return nil
	default:
		return fmt.Errorf("wire: cannot parse %T as uint", raw)
	}
}

// Uint64 returns the plain integer value.
func (u Uint) Uint64() uint64 { return uint64(u) }
