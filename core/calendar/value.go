package calendar

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// Param is a single content-line parameter. Values keep their original order.
type Param struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Value is one occurrence of a scalar field, e.g. a single DESCRIPTION line.
type Value struct {
	// Name is the field name this value belongs to.
	Name string
	// Payload is the raw value text.
	Payload string
	// Params holds the content-line parameters in order.
	Params []Param
}

// NewValue creates a value without parameters.
func NewValue(name, payload string) Value {
	return Value{Name: name, Payload: payload}
}

// WithParam returns a copy of v with the parameter appended.
func (v Value) WithParam(name string, values ...string) Value {
	out := v.Clone()
	out.Params = append(out.Params, Param{Name: name, Values: append([]string(nil), values...)})
	return out
}

// Param returns the first value of the named parameter.
func (v Value) Param(name string) (string, bool) {
	for _, p := range v.Params {
		if strings.EqualFold(p.Name, name) {
			if len(p.Values) == 0 {
				return "", true
			}
			return p.Values[0], true
		}
	}
	return "", false
}

// HasParam reports whether the named parameter is present.
func (v Value) HasParam(name string) bool {
	_, ok := v.Param(name)
	return ok
}

// WithoutParams returns a copy of v with every parameter in names removed.
func (v Value) WithoutParams(names ...string) Value {
	out := Value{Name: v.Name, Payload: v.Payload}
	for _, p := range v.Params {
		drop := false
		for _, n := range names {
			if strings.EqualFold(p.Name, n) {
				drop = true
				break
			}
		}
		if !drop {
			out.Params = append(out.Params, Param{Name: p.Name, Values: append([]string(nil), p.Values...)})
		}
	}
	return out
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := Value{Name: v.Name, Payload: v.Payload}
	if v.Params != nil {
		out.Params = make([]Param, len(v.Params))
		for i, p := range v.Params {
			out.Params[i] = Param{Name: p.Name, Values: append([]string(nil), p.Values...)}
		}
	}
	return out
}

// Equal reports exact structural equality: name, payload and every parameter
// in order. No normalisation is applied.
func (v Value) Equal(o Value) bool {
	if v.Name != o.Name || v.Payload != o.Payload || len(v.Params) != len(o.Params) {
		return false
	}
	for i := range v.Params {
		a, b := v.Params[i], o.Params[i]
		if a.Name != b.Name || len(a.Values) != len(b.Values) {
			return false
		}
		for j := range a.Values {
			if a.Values[j] != b.Values[j] {
				return false
			}
		}
	}
	return true
}

// EqualValues compares two value lists position by position.
func EqualValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Time parses the payload as an iCalendar DATE or DATE-TIME. dateOnly is true
// for DATE values. Floating times are read as UTC; TZID parameters are honoured.
func (v Value) Time() (t time.Time, dateOnly bool, err error) {
	prop := v.prop()
	valueType, _ := v.Param(ical.ParamValue)
	dateOnly = strings.EqualFold(valueType, string(ical.ValueDate)) || len(v.Payload) == len("20060102")
	if dateOnly && valueType == "" {
		prop.Params.Set(ical.ParamValue, string(ical.ValueDate))
	}
	t, err = prop.DateTime(time.UTC)
	return t, dateOnly, err
}

func (v Value) prop() *ical.Prop {
	prop := ical.NewProp(v.Name)
	prop.Value = v.Payload
	for _, p := range v.Params {
		prop.Params[strings.ToUpper(p.Name)] = append([]string(nil), p.Values...)
	}
	return prop
}
