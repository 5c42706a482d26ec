package jsonlogic

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Truthy reports whether v is truthy under JsonLogic rules. These diverge
// from ECMAScript in one place: an empty array is falsy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return true
	default:
		if n, ok := numericValue(v); ok {
			return n != 0 && !math.IsNaN(n)
		}
		return true
	}
}

// numericValue unwraps values that are already numbers. Decoded JSON yields
// float64, but rules and data built in Go code carry ints and json.Number.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toNumber applies JsonLogic numeric coercion. The boolean result is false
// when the value has no numeric interpretation; the calling operator decides
// whether that is an error or a falsy comparison.
func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		return parseNumber(t)
	case []any:
		switch len(t) {
		case 0:
			return 0, true
		case 1:
			return toNumber(t[0])
		default:
			return 0, false
		}
	case map[string]any:
		return 0, false
	default:
		return numericValue(v)
	}
}

// parseNumber parses a string the way the reference coerces strings to
// numbers: surrounding whitespace is ignored and the empty string is zero.
// Go-only float syntax (hex, Inf, NaN, digit separators) is rejected.
func parseNumber(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, true
	}
	if strings.ContainsAny(t, "xXpPnNiI_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toString applies JsonLogic string coercion. Arrays join their coerced
// elements with commas; objects stringify the way the reference does.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = toString(e)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		if n, ok := numericValue(v); ok {
			return formatNumber(n)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// formatNumber prints the shortest decimal that round-trips, with no
// exponent notation and no trailing fraction on integral values.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// looseEquals implements the == operator. Same-type operands compare
// structurally; mixed types follow the coercion table: bools become numbers,
// strings compared against numbers are parsed, arrays compared against
// strings are stringified. Everything else is unequal.
func looseEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	an, aNum := numericValue(a)
	bn, bNum := numericValue(b)
	if aNum && bNum {
		return an == bn
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ab == bb
		}
		return looseEquals(boolToNumber(ab), b)
	}
	if bb, ok := b.(bool); ok {
		return looseEquals(a, boolToNumber(bb))
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	switch {
	case aStr && bStr:
		return as == bs
	case aNum && bStr:
		n, ok := parseNumber(bs)
		return ok && an == n
	case bNum && aStr:
		n, ok := parseNumber(as)
		return ok && bn == n
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	switch {
	case aIsArr && bStr:
		return toString(aArr) == bs
	case bIsArr && aStr:
		return toString(bArr) == as
	case aIsArr && bIsArr:
		return strictEquals(a, b)
	}

	if _, ok := a.(map[string]any); ok {
		if _, ok := b.(map[string]any); ok {
			return strictEquals(a, b)
		}
	}
	return false
}

// strictEquals implements the === operator: same type and structural
// equality, no coercion. Numeric representations are still unified, since
// the value model does not distinguish 1 from 1.0.
func strictEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if an, ok := numericValue(a); ok {
		bn, ok := numericValue(b)
		return ok && an == bn
	}

	switch at := a.(type) {
	case bool:
		bt, ok := b.(bool)
		return ok && at == bt
	case string:
		bt, ok := b.(string)
		return ok && at == bt
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !strictEquals(at[i], bt[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bt, ok := b.(map[string]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !strictEquals(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// looseLess implements the < ordering: two strings compare lexicographically,
// anything else is compared numerically. Operands that will not coerce make
// the comparison false rather than an error, matching the reference corpus.
func looseLess(a, b any) bool {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}
	an, aOK := toNumber(a)
	bn, bOK := toNumber(b)
	return aOK && bOK && an < bn
}

func looseLessEqual(a, b any) bool {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as <= bs
		}
	}
	an, aOK := toNumber(a)
	bn, bOK := toNumber(b)
	return aOK && bOK && an <= bn
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
