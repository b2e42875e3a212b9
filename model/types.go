package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Decimal decodes a JSON number or a numeric string. A non-numeric string is
// a decode error, so malformed input fails validation instead of silently
// becoming zero.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*d = Decimal(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", v)
		}
		*d = Decimal(f)
	default:
		return fmt.Errorf("invalid numeric value of type %T", raw)
	}
	return nil
}

// LenientDecimal decodes like Decimal but never fails: absent or unparseable
// input is zero. Booking prices are contractually defaulted this way.
type LenientDecimal float64

func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	var strict Decimal
	if err := strict.UnmarshalJSON(data); err != nil {
		*d = 0
		return nil
	}
	*d = LenientDecimal(strict)
	return nil
}

// FlexInt decodes a JSON number or numeric string into an int.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var d Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(d)
	return nil
}

// StringList is an ordered list of strings stored as a JSON TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}
