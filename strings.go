package jsonlogic

import "strings"

func opCat(l *Logic, args []expr, data any) (any, error) {
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, v := range vals {
		b.WriteString(toString(v))
	}
	return b.String(), nil
}

// opSubstr follows the reference's substr semantics: a negative start counts
// back from the end, a negative length trims from the end, and out-of-range
// indices clamp. Offsets address runes, not bytes.
func opSubstr(l *Logic, args []expr, data any) (any, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, newError(InvalidArgumentCount, "substr", "expected 2 or 3 arguments, got %d", len(args))
	}
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	runes := []rune(toString(vals[0]))
	n := len(runes)

	startF, ok := toNumber(vals[1])
	if !ok {
		return nil, coercionError("substr", vals[1])
	}
	start := clampIndex(int(startF), n)

	end := n
	if len(vals) == 3 {
		lengthF, ok := toNumber(vals[2])
		if !ok {
			return nil, coercionError("substr", vals[2])
		}
		length := int(lengthF)
		if length < 0 {
			end = n + length
		} else {
			end = start + length
		}
		if end > n {
			end = n
		}
		if end < start {
			end = start
		}
	}
	return string(runes[start:end]), nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// opIn tests substring containment when the haystack is a string and strict
// membership when it is an array. A null haystack is simply false; an object
// cannot be searched.
func opIn(l *Logic, args []expr, data any) (any, error) {
	needle, haystack, err := binaryArgs(l, "in", args, data)
	if err != nil {
		return nil, err
	}
	switch h := haystack.(type) {
	case nil:
		return false, nil
	case string:
		return strings.Contains(h, toString(needle)), nil
	case []any:
		for _, e := range h {
			if strictEquals(e, needle) {
				return true, nil
			}
		}
		return false, nil
	case map[string]any:
		return nil, newError(WrongArgumentType, "in", "haystack must be a string or array, got object")
	default:
		return false, nil
	}
}
