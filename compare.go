package jsonlogic

// The equality operators take exactly two operands. The orderings < and <=
// also accept the three-operand between form, which tests a<b && b<c and
// never evaluates c when the first comparison already failed.

func opLooseEquals(l *Logic, args []expr, data any) (any, error) {
	a, b, err := binaryArgs(l, "==", args, data)
	if err != nil {
		return nil, err
	}
	return looseEquals(a, b), nil
}

func opLooseNotEquals(l *Logic, args []expr, data any) (any, error) {
	a, b, err := binaryArgs(l, "!=", args, data)
	if err != nil {
		return nil, err
	}
	return !looseEquals(a, b), nil
}

func opStrictEquals(l *Logic, args []expr, data any) (any, error) {
	a, b, err := binaryArgs(l, "===", args, data)
	if err != nil {
		return nil, err
	}
	return strictEquals(a, b), nil
}

func opStrictNotEquals(l *Logic, args []expr, data any) (any, error) {
	a, b, err := binaryArgs(l, "!==", args, data)
	if err != nil {
		return nil, err
	}
	return !strictEquals(a, b), nil
}

func opLess(l *Logic, args []expr, data any) (any, error) {
	return orderingOp(l, "<", args, data, looseLess)
}

func opLessEqual(l *Logic, args []expr, data any) (any, error) {
	return orderingOp(l, "<=", args, data, looseLessEqual)
}

func opGreater(l *Logic, args []expr, data any) (any, error) {
	a, b, err := binaryArgs(l, ">", args, data)
	if err != nil {
		return nil, err
	}
	return looseLess(b, a), nil
}

func opGreaterEqual(l *Logic, args []expr, data any) (any, error) {
	a, b, err := binaryArgs(l, ">=", args, data)
	if err != nil {
		return nil, err
	}
	return looseLessEqual(b, a), nil
}

func orderingOp(l *Logic, op string, args []expr, data any, cmp func(a, b any) bool) (any, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, newError(InvalidArgumentCount, op, "expected 2 or 3 arguments, got %d", len(args))
	}
	a, err := l.eval(args[0], data)
	if err != nil {
		return nil, err
	}
	b, err := l.eval(args[1], data)
	if err != nil {
		return nil, err
	}
	if !cmp(a, b) {
		return false, nil
	}
	if len(args) == 2 {
		return true, nil
	}
	c, err := l.eval(args[2], data)
	if err != nil {
		return nil, err
	}
	return cmp(b, c), nil
}

func binaryArgs(l *Logic, op string, args []expr, data any) (any, any, error) {
	if len(args) != 2 {
		return nil, nil, newError(InvalidArgumentCount, op, "expected 2 arguments, got %d", len(args))
	}
	a, err := l.eval(args[0], data)
	if err != nil {
		return nil, nil, err
	}
	b, err := l.eval(args[1], data)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
