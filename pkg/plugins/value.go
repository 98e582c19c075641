package plugins

import (
	"fmt"
	"strconv"
)

// Kind tags the coerced type of an option value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
)

// Value is a command line option value after coercion. It is produced once
// per raw --key=value token and consumed by the dispatcher when binding a
// command's parameters.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
}

func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }
func IntValue(v int) Value       { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return strconv.Quote(v.s)
	}
}

// ParseValue coerces a raw option literal into a tagged Value. The checks
// run in a fixed order: the exact literals True and False become booleans,
// an all-ASCII-digits token becomes an integer, anything that parses as a
// float becomes a float, and everything else stays a string.
//
// A leading minus sign fails the all-digits test, so negative whole numbers
// coerce to float rather than int. That asymmetry is part of the observable
// contract and is preserved here on purpose.
func ParseValue(raw string) Value {
	switch raw {
	case "True":
		return BoolValue(true)
	case "False":
		return BoolValue(false)
	}
	if isDigits(raw) {
		if n, err := strconv.Atoi(raw); err == nil {
			return IntValue(n)
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(raw)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Args is the merged view of declared defaults and user-supplied options
// that a command reads its parameters from. The typed accessors enforce the
// parameter preconditions so a command line typo surfaces as a descriptive
// error instead of a silent misbehavior.
type Args map[string]Value

// Bool returns the named parameter as a boolean.
func (a Args) Bool(name string) (bool, error) {
	v, ok := a[name]
	if !ok {
		return false, fmt.Errorf("missing option %q", name)
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("option --%s: expected True or False, got %s", name, v)
	}
	return v.b, nil
}

// Int returns the named parameter as an integer. Floats are rejected, so
// --radius=2.5 (or a negative literal, which always coerces to float) is an
// error for integer parameters.
func (a Args) Int(name string) (int, error) {
	v, ok := a[name]
	if !ok {
		return 0, fmt.Errorf("missing option %q", name)
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("option --%s: expected an integer, got %s", name, v)
	}
	return v.i, nil
}

// Float returns the named parameter as a float. Integer values are accepted
// and widened, matching how a whole-number literal may be supplied for a
// fractional parameter.
func (a Args) Float(name string) (float64, error) {
	v, ok := a[name]
	if !ok {
		return 0, fmt.Errorf("missing option %q", name)
	}
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, fmt.Errorf("option --%s: expected a number, got %s", name, v)
	}
}
