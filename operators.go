package jsonlogic

// handler evaluates one operator. Arguments arrive unevaluated together with
// the current data context; eager operators evaluate them up front through
// evalArgs, lazy operators pick which sub-expressions run. An argument an
// operator never evaluates can never surface an error.
type handler func(l *Logic, args []expr, data any) (any, error)

// operators is the dispatch table for the official operator set. It is built
// once and never written afterwards, so it is shared safely across
// concurrent evaluations.
var operators = map[string]handler{
	"if":  opIf,
	"?:":  opIf,
	"and": opAnd,
	"or":  opOr,
	"!":   opNot,
	"!!":  opDoubleNot,

	"==":  opLooseEquals,
	"!=":  opLooseNotEquals,
	"===": opStrictEquals,
	"!==": opStrictNotEquals,
	"<":   opLess,
	"<=":  opLessEqual,
	">":   opGreater,
	">=":  opGreaterEqual,

	"+":   opAdd,
	"-":   opSubtract,
	"*":   opMultiply,
	"/":   opDivide,
	"%":   opModulo,
	"min": opMin,
	"max": opMax,

	"cat":    opCat,
	"substr": opSubstr,
	"in":     opIn,
	"merge":  opMerge,

	"map":    opMap,
	"filter": opFilter,
	"reduce": opReduce,
	"all":    opAll,
	"some":   opSome,
	"none":   opNone,

	"var":          opVar,
	"missing":      opMissing,
	"missing_some": opMissingSome,

	"log": opLog,
}

// opIf handles the variadic if/?: form: condition/consequent pairs followed
// by an optional trailing else. Conditions evaluate in order and only the
// chosen branch evaluates at all.
func opIf(l *Logic, args []expr, data any) (any, error) {
	i := 0
	for ; i+1 < len(args); i += 2 {
		cond, err := l.eval(args[i], data)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return l.eval(args[i+1], data)
		}
	}
	if i < len(args) {
		return l.eval(args[i], data)
	}
	return nil, nil
}

// opAnd returns the first falsy operand's value, else the last operand's
// value. Evaluation stops at the first falsy operand.
func opAnd(l *Logic, args []expr, data any) (any, error) {
	if len(args) == 0 {
		return nil, newError(InvalidArgumentCount, "and", "expected at least 1 argument")
	}
	var v any
	var err error
	for _, a := range args {
		v, err = l.eval(a, data)
		if err != nil {
			return nil, err
		}
		if !Truthy(v) {
			return v, nil
		}
	}
	return v, nil
}

// opOr returns the first truthy operand's value, else the last operand's
// value. Evaluation stops at the first truthy operand.
func opOr(l *Logic, args []expr, data any) (any, error) {
	if len(args) == 0 {
		return nil, newError(InvalidArgumentCount, "or", "expected at least 1 argument")
	}
	var v any
	var err error
	for _, a := range args {
		v, err = l.eval(a, data)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			return v, nil
		}
	}
	return v, nil
}

func opNot(l *Logic, args []expr, data any) (any, error) {
	v, err := firstArg(l, args, data)
	if err != nil {
		return nil, err
	}
	return !Truthy(v), nil
}

func opDoubleNot(l *Logic, args []expr, data any) (any, error) {
	v, err := firstArg(l, args, data)
	if err != nil {
		return nil, err
	}
	return Truthy(v), nil
}

// opLog evaluates its argument, emits it to the configured sink, and returns
// it unchanged. The only impure operator in the set.
func opLog(l *Logic, args []expr, data any) (any, error) {
	v, err := firstArg(l, args, data)
	if err != nil {
		return nil, err
	}
	l.emitLog(v)
	return v, nil
}

// firstArg evaluates the sole argument of a unary operator, tolerating the
// zero-argument form by yielding null.
func firstArg(l *Logic, args []expr, data any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return l.eval(args[0], data)
}
