package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type ValueKind uint8

const (
	KindNumber ValueKind = iota
	KindNotApplicable
	KindInvalidInput
)

// Sentinel spellings shared with the ECETOC TRA worker tool output.
const (
	NotApplicableText = "n/a"
	InvalidInputText  = "change input"
)

// Value is a computed quantity: either a finite number or one of the two
// sentinel states. The zero Value is the number 0.
type Value struct {
	kind ValueKind
	num  float64
}

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// NotApplicable marks a computation that is undefined for the scenario or
// has no reference data.
func NotApplicable() Value { return Value{kind: KindNotApplicable} }

// InvalidInput marks an input combination outside the method's domain.
func InvalidInput() Value { return Value{kind: KindInvalidInput} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNumber() bool { return v.kind == KindNumber }

func (v Value) IsNotApplicable() bool { return v.kind == KindNotApplicable }

func (v Value) IsInvalidInput() bool { return v.kind == KindInvalidInput }

// Float returns the number and true, or 0 and false for a sentinel.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Map applies fn to a number and passes sentinels through unchanged.
func (v Value) Map(fn func(float64) float64) Value {
	if v.kind != KindNumber {
		return v
	}
	return Number(fn(v.num))
}

// Round rounds a number to the given decimal places.
func (v Value) Round(places int) Value {
	return v.Map(func(f float64) float64 { return RoundTo(f, places) })
}

func (v Value) String() string {
	switch v.kind {
	case KindNotApplicable:
		return NotApplicableText
	case KindInvalidInput:
		return InvalidInputText
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind != KindNumber {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseValue(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("value must be a number, %q or %q", NotApplicableText, InvalidInputText)
	}
	*v = Number(f)
	return nil
}

// ParseValue reads a number or one of the sentinel spellings.
func ParseValue(s string) (Value, error) {
	switch normalize(s) {
	case NotApplicableText:
		return NotApplicable(), nil
	case InvalidInputText:
		return InvalidInput(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("invalid value %q", s)
	}
	return Number(f), nil
}

// RoundTo rounds half away from zero to the given decimal places.
func RoundTo(f float64, places int) float64 {
	if places < 0 {
		return f
	}
	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}
