package jsonlogic

import (
	"github.com/barkimedes/go-deepcopy"
)

// eval walks one node against the current data context. The context is
// threaded as a parameter, never stored, which keeps evaluation reentrant
// and lets the iteration operators rebind it for their sub-walks without a
// side-channel stack.
func (l *Logic) eval(e expr, data any) (any, error) {
	switch n := e.(type) {
	case literalExpr:
		return detach(n.value)
	case arrayExpr:
		out := make([]any, len(n.elems))
		for i, elem := range n.elems {
			v, err := l.eval(elem, data)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case opExpr:
		h, ok := operators[n.name]
		if !ok {
			return nil, newError(UnknownOperator, n.name, "unrecognized operator")
		}
		return h(l, n.args, data)
	default:
		return nil, newError(InvalidOperation, "", "unrecognized expression node %T", e)
	}
}

// evalArgs evaluates arguments left-to-right for eager operators. Lazy
// operators call eval on the argument expressions they actually need, so
// short-circuit logic lives in one place per operator rather than in two
// evaluator call paths.
func (l *Logic) evalArgs(args []expr, data any) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		v, err := l.eval(a, data)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// detach copies container literals out of the rule tree so a caller mutating
// the result cannot corrupt the rule for later evaluations. Scalars are
// immutable and pass through.
func detach(v any) (any, error) {
	switch v.(type) {
	case map[string]any, []any:
		c, err := deepcopy.Anything(v)
		if err != nil {
			return nil, newError(InvalidData, "", "uncopyable literal: %v", err)
		}
		return c, nil
	default:
		return v, nil
	}
}
