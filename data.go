package jsonlogic

import (
	"strconv"
	"strings"
)

// opVar resolves a path against the current data context. A null, missing,
// or empty path names the whole context. Numeric paths are stringified
// first, so {"var":1} indexes an array and {"var":"a.0.name"} walks through
// objects and arrays alike. A failed resolution yields the evaluated
// default, or null when none was given.
func opVar(l *Logic, args []expr, data any) (any, error) {
	if len(args) == 0 {
		return data, nil
	}
	path, err := l.eval(args[0], data)
	if err != nil {
		return nil, err
	}
	var fallback any
	if len(args) > 1 {
		fallback, err = l.eval(args[1], data)
		if err != nil {
			return nil, err
		}
	}

	var key string
	switch p := path.(type) {
	case nil:
		return data, nil
	case string:
		if p == "" {
			return data, nil
		}
		key = p
	default:
		n, ok := numericValue(path)
		if !ok {
			return nil, newError(InvalidVariableName, "var", "path must be null, a number, or a string, got %T", path)
		}
		key = formatNumber(n)
	}

	v, ok := lookup(data, key)
	if !ok {
		return fallback, nil
	}
	return v, nil
}

// lookup walks a dotted path. Each segment is an object key, or an index
// when the current subject is an array. Any missing key, out-of-range
// index, or scalar subject ends the walk unresolved.
func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		switch subject := current.(type) {
		case map[string]any:
			v, ok := subject[segment]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(subject) {
				return nil, false
			}
			current = subject[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// opMissing returns the subset of its keys that resolve to null or nothing
// in the current context. When the first evaluated argument is itself an
// array the keys come from it, which is how {"missing":{"merge":…}} composes.
func opMissing(l *Logic, args []expr, data any) (any, error) {
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	keys := vals
	if len(vals) > 0 {
		if arr, ok := vals[0].([]any); ok {
			keys = arr
		}
	}
	return missingKeys(data, keys)
}

// opMissingSome returns an empty array when at least min of the keys are
// present, otherwise the keys that are missing.
func opMissingSome(l *Logic, args []expr, data any) (any, error) {
	if len(args) != 2 {
		return nil, newError(InvalidArgumentCount, "missing_some", "expected 2 arguments, got %d", len(args))
	}
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	minF, ok := toNumber(vals[0])
	if !ok {
		return nil, coercionError("missing_some", vals[0])
	}
	keys, ok := vals[1].([]any)
	if !ok {
		return nil, newError(WrongArgumentType, "missing_some", "keys must be an array, got %T", vals[1])
	}

	missing, err := missingKeys(data, keys)
	if err != nil {
		return nil, err
	}
	present := len(keys) - len(missing.([]any))
	if float64(present) >= minF {
		return []any{}, nil
	}
	return missing, nil
}

func missingKeys(data any, keys []any) (any, error) {
	out := []any{}
	for _, key := range keys {
		path, err := keyPath(key)
		if err != nil {
			return nil, err
		}
		v, ok := lookup(data, path)
		if !ok || v == nil {
			out = append(out, key)
		}
	}
	return out, nil
}

func keyPath(key any) (string, error) {
	if s, ok := key.(string); ok {
		return s, nil
	}
	if n, ok := numericValue(key); ok {
		return formatNumber(n), nil
	}
	return "", newError(InvalidVariableName, "missing", "key must be a number or a string, got %T", key)
}
