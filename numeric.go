package jsonlogic

import "math"

// Arithmetic operators are eager and coerce every operand through toNumber.
// An operand with no numeric interpretation is InvalidData naming the
// operator; this is where arithmetic departs from the comparisons, which
// treat the same failure as an unequal/unordered result.

func opAdd(l *Logic, args []expr, data any) (any, error) {
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	sum := float64(0)
	for _, v := range vals {
		n, ok := toNumber(v)
		if !ok {
			return nil, coercionError("+", v)
		}
		sum += n
	}
	return sum, nil
}

func opSubtract(l *Logic, args []expr, data any) (any, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, newError(InvalidArgumentCount, "-", "expected 1 or 2 arguments, got %d", len(args))
	}
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	a, ok := toNumber(vals[0])
	if !ok {
		return nil, coercionError("-", vals[0])
	}
	if len(vals) == 1 {
		return -a, nil
	}
	b, ok := toNumber(vals[1])
	if !ok {
		return nil, coercionError("-", vals[1])
	}
	return a - b, nil
}

// opMultiply requires at least one operand; the reference rejects the
// zero-argument form rather than defaulting to the multiplicative identity.
func opMultiply(l *Logic, args []expr, data any) (any, error) {
	if len(args) == 0 {
		return nil, newError(InvalidArgumentCount, "*", "expected at least 1 argument")
	}
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	product := float64(1)
	for _, v := range vals {
		n, ok := toNumber(v)
		if !ok {
			return nil, coercionError("*", v)
		}
		product *= n
	}
	return product, nil
}

func opDivide(l *Logic, args []expr, data any) (any, error) {
	a, b, err := numericPair(l, "/", args, data)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, newError(InvalidOperation, "/", "division by zero")
	}
	return a / b, nil
}

// opModulo yields the remainder with the sign of the dividend, which is what
// math.Mod computes.
func opModulo(l *Logic, args []expr, data any) (any, error) {
	a, b, err := numericPair(l, "%", args, data)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, newError(InvalidOperation, "%", "modulo by zero")
	}
	return math.Mod(a, b), nil
}

func opMin(l *Logic, args []expr, data any) (any, error) {
	return foldNumeric(l, "min", args, data, math.Min)
}

func opMax(l *Logic, args []expr, data any) (any, error) {
	return foldNumeric(l, "max", args, data, math.Max)
}

func foldNumeric(l *Logic, op string, args []expr, data any, pick func(a, b float64) float64) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	best, ok := toNumber(vals[0])
	if !ok {
		return nil, coercionError(op, vals[0])
	}
	for _, v := range vals[1:] {
		n, ok := toNumber(v)
		if !ok {
			return nil, coercionError(op, v)
		}
		best = pick(best, n)
	}
	return best, nil
}

func numericPair(l *Logic, op string, args []expr, data any) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, newError(InvalidArgumentCount, op, "expected 2 arguments, got %d", len(args))
	}
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return 0, 0, err
	}
	a, ok := toNumber(vals[0])
	if !ok {
		return 0, 0, coercionError(op, vals[0])
	}
	b, ok := toNumber(vals[1])
	if !ok {
		return 0, 0, coercionError(op, vals[1])
	}
	return a, b, nil
}

func coercionError(op string, v any) *Error {
	return newError(InvalidData, op, "value %v (%T) has no numeric interpretation", v, v)
}
