package jsonlogic

// The iteration operators evaluate their first argument in the outer context
// to obtain the subject array; anything that is not an array is treated as
// empty. The per-element rule then runs with the data context replaced by
// the element itself, so {"var":""} names the element. reduce is the one
// exception: its scoped context is {"current": element, "accumulator": acc}.

func opMap(l *Logic, args []expr, data any) (any, error) {
	subject, rule, err := iterationArgs(l, "map", args, data)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(subject))
	for i, elem := range subject {
		v, err := l.eval(rule, elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func opFilter(l *Logic, args []expr, data any) (any, error) {
	subject, rule, err := iterationArgs(l, "filter", args, data)
	if err != nil {
		return nil, err
	}
	out := []any{}
	for _, elem := range subject {
		v, err := l.eval(rule, elem)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			out = append(out, elem)
		}
	}
	return out, nil
}

// opAll is false for an empty subject and stops at the first falsy element.
func opAll(l *Logic, args []expr, data any) (any, error) {
	subject, rule, err := iterationArgs(l, "all", args, data)
	if err != nil {
		return nil, err
	}
	if len(subject) == 0 {
		return false, nil
	}
	for _, elem := range subject {
		v, err := l.eval(rule, elem)
		if err != nil {
			return nil, err
		}
		if !Truthy(v) {
			return false, nil
		}
	}
	return true, nil
}

// opSome stops at the first truthy element.
func opSome(l *Logic, args []expr, data any) (any, error) {
	subject, rule, err := iterationArgs(l, "some", args, data)
	if err != nil {
		return nil, err
	}
	for _, elem := range subject {
		v, err := l.eval(rule, elem)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			return true, nil
		}
	}
	return false, nil
}

// opNone stops at the first truthy element.
func opNone(l *Logic, args []expr, data any) (any, error) {
	subject, rule, err := iterationArgs(l, "none", args, data)
	if err != nil {
		return nil, err
	}
	for _, elem := range subject {
		v, err := l.eval(rule, elem)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			return false, nil
		}
	}
	return true, nil
}

// opReduce left-folds the subject. The initial accumulator evaluates in the
// outer context and is the result when the subject is empty or not an array.
func opReduce(l *Logic, args []expr, data any) (any, error) {
	if len(args) != 3 {
		return nil, newError(InvalidArgumentCount, "reduce", "expected 3 arguments, got %d", len(args))
	}
	subjectVal, err := l.eval(args[0], data)
	if err != nil {
		return nil, err
	}
	acc, err := l.eval(args[2], data)
	if err != nil {
		return nil, err
	}
	subject, ok := subjectVal.([]any)
	if !ok {
		return acc, nil
	}
	for _, elem := range subject {
		scoped := map[string]any{"current": elem, "accumulator": acc}
		acc, err = l.eval(args[1], scoped)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// opMerge flattens one level: array operands contribute their elements,
// anything else contributes itself. The result is always an array.
func opMerge(l *Logic, args []expr, data any) (any, error) {
	vals, err := l.evalArgs(args, data)
	if err != nil {
		return nil, err
	}
	out := []any{}
	for _, v := range vals {
		if arr, ok := v.([]any); ok {
			out = append(out, arr...)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func iterationArgs(l *Logic, op string, args []expr, data any) ([]any, expr, error) {
	if len(args) != 2 {
		return nil, nil, newError(InvalidArgumentCount, op, "expected 2 arguments, got %d", len(args))
	}
	subjectVal, err := l.eval(args[0], data)
	if err != nil {
		return nil, nil, err
	}
	subject, _ := subjectVal.([]any)
	return subject, args[1], nil
}
