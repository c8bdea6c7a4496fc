package config

import "strconv"

type valueKind uint8

const (
	kindUnset valueKind = iota
	kindString
	kindInt
)

// Value is a single setting value. It holds either a string or an integer.
// The zero Value is unset.
type Value struct {
	kind valueKind
	str  string
	num  int
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// IntValue returns a Value holding n.
func IntValue(n int) Value {
	return Value{kind: kindInt, num: n}
}

// String renders the value as it is shown to the user.
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.Itoa(v.num)
	default:
		return ""
	}
}

// Int returns the integer held by v and whether v holds an integer.
func (v Value) Int() (int, bool) {
	return v.num, v.kind == kindInt
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool {
	return v.kind == kindInt
}

// Empty reports whether v is unset or an empty string. Integer values are
// never empty.
func (v Value) Empty() bool {
	return v.kind == kindUnset || (v.kind == kindString && v.str == "")
}
