package script

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a dynamic T# value. The concrete types in play are float64
// (numbers), string (text), bool, []Value (lists), and scene handles for
// objects created by the 3D verbs.
type Value any

// Format renders a value the way the output verbs print it. Whole numbers
// drop their decimal point.
func Format(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatFloat(t, 'f', 0, 64)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []Value:
		out := "["
		for i, item := range t {
			if i > 0 {
				out += ", "
			}
			out += Format(item)
		}
		return out + "]"
	default:
		// Scene handles and other named types print their underlying value.
		return fmt.Sprint(v)
	}
}

// asNumber reports the numeric form of v. Numeric strings convert, anything
// else does not.
func asNumber(v Value) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	}
	return 0, false
}

func asList(v Value) ([]Value, bool) {
	l, ok := v.([]Value)
	return l, ok
}

func truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []Value:
		return len(t) > 0
	}
	return true
}

// valueEqual compares two values, treating numbers numerically and
// everything else by formatted text.
func valueEqual(a, b Value) bool {
	na, aok := a.(float64)
	nb, bok := b.(float64)
	if aok && bok {
		return na == nb
	}
	return Format(a) == Format(b)
}

func valueLess(a, b Value) bool {
	na, aok := asNumber(a)
	nb, bok := asNumber(b)
	if aok && bok {
		return na < nb
	}
	return Format(a) < Format(b)
}
