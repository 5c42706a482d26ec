package jsonlogic

// A rule value parses into a tree of these nodes. Recognition is purely
// structural: an object is an operator invocation if and only if it has
// exactly one key and that key names a registered operator. Everything else,
// including empty and multi-key objects, is a literal. Arrays are parsed
// element-wise so operators nested inside them evaluate.
type expr interface {
	isExpr()
}

type literalExpr struct {
	value any
}

type arrayExpr struct {
	elems []expr
}

type opExpr struct {
	name string
	args []expr
}

func (literalExpr) isExpr() {}
func (arrayExpr) isExpr()   {}
func (opExpr) isExpr()      {}

// parse turns a decoded JSON value into an expression tree. It is total over
// JSON values unless strict parsing is enabled, in which case a single-key
// object whose key is not a registered operator is an UnknownOperator error
// instead of a literal.
func (l *Logic) parse(v any) (expr, error) {
	switch t := v.(type) {
	case []any:
		elems := make([]expr, len(t))
		for i, e := range t {
			parsed, err := l.parse(e)
			if err != nil {
				return nil, err
			}
			elems[i] = parsed
		}
		return arrayExpr{elems: elems}, nil

	case map[string]any:
		if len(t) != 1 {
			return literalExpr{value: v}, nil
		}
		var name string
		var raw any
		for k, arg := range t {
			name, raw = k, arg
		}
		if _, ok := operators[name]; !ok {
			if l.strict {
				return nil, newError(UnknownOperator, name, "unrecognized operator")
			}
			return literalExpr{value: v}, nil
		}
		args, err := l.parseArgs(raw)
		if err != nil {
			return nil, err
		}
		return opExpr{name: name, args: args}, nil

	default:
		return literalExpr{value: v}, nil
	}
}

// parseArgs handles the two accepted argument shapes: an array of argument
// expressions, or a single bare expression ({"var":"x"} and {"var":["x"]}
// are equivalent).
func (l *Logic) parseArgs(raw any) ([]expr, error) {
	if arr, ok := raw.([]any); ok {
		args := make([]expr, len(arr))
		for i, a := range arr {
			parsed, err := l.parse(a)
			if err != nil {
				return nil, err
			}
			args[i] = parsed
		}
		return args, nil
	}
	single, err := l.parse(raw)
	if err != nil {
		return nil, err
	}
	return []expr{single}, nil
}
