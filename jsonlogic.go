// Package jsonlogic evaluates JsonLogic rules: JSON documents whose
// structure encodes an expression tree, applied against an arbitrary JSON
// data context. Rules and data are the Go-native decoded forms (nil, bool,
// float64, string, []any, map[string]any); evaluation never mutates either.
// Object and array literals from the rule are copied into results; values
// read from the data (by var, filter and the like) are returned without
// copying.
//
// Evaluation is synchronous and runs on the calling goroutine. A Logic
// instance is immutable after construction and safe for concurrent use;
// recursion depth is bounded by the goroutine stack, so pathologically
// nested rules can exhaust it.
package jsonlogic

import (
	"encoding/json"
	"fmt"
	"os"
)

// LogSink receives the evaluated argument of every log operator. Sinks are
// invoked synchronously; a panicking sink is swallowed.
type LogSink func(v any)

// Option configures a Logic instance.
type Option func(*Logic)

// WithStrictParsing makes single-key objects with an unregistered operator
// name a parse error instead of a literal.
func WithStrictParsing() Option {
	return func(l *Logic) { l.strict = true }
}

// WithLogSink replaces the default log operator sink, which writes the JSON
// encoding of the argument to stderr, one document per line.
func WithLogSink(sink LogSink) Option {
	return func(l *Logic) { l.sink = sink }
}

// Logic is a rule evaluator. The zero-value configuration (permissive
// parsing, stderr log sink) is what Apply and ApplyString use.
type Logic struct {
	strict bool
	sink   LogSink
}

// New returns a Logic configured by opts.
func New(opts ...Option) *Logic {
	l := &Logic{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLogic = New()

// Apply evaluates rule against data with the default evaluator.
func Apply(rule, data any) (any, error) {
	return defaultLogic.Apply(rule, data)
}

// ApplyString evaluates a serialized rule against serialized data and
// returns the serialized result. Inputs that are not valid JSON yield a
// ParseError.
func ApplyString(rule, data string) (string, error) {
	return defaultLogic.ApplyString(rule, data)
}

// Apply parses rule and evaluates it against data.
func (l *Logic) Apply(rule, data any) (any, error) {
	compiled, err := l.Compile(rule)
	if err != nil {
		return nil, err
	}
	return compiled.Apply(data)
}

// ApplyString is the serialized variant of Apply.
func (l *Logic) ApplyString(rule, data string) (string, error) {
	var ruleVal any
	if err := json.Unmarshal([]byte(rule), &ruleVal); err != nil {
		return "", wrapError(ParseError, "", fmt.Errorf("rule: %w", err))
	}
	var dataVal any
	if err := json.Unmarshal([]byte(data), &dataVal); err != nil {
		return "", wrapError(ParseError, "", fmt.Errorf("data: %w", err))
	}
	result, err := l.Apply(ruleVal, dataVal)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "", wrapError(InvalidData, "", fmt.Errorf("result: %w", err))
	}
	return string(out), nil
}

// Compile parses a rule once so it can be applied to many data contexts.
func (l *Logic) Compile(rule any) (*Rule, error) {
	root, err := l.parse(rule)
	if err != nil {
		return nil, err
	}
	return &Rule{logic: l, root: root}, nil
}

// Rule is a parsed rule bound to the Logic that compiled it. It is
// immutable and safe for concurrent Apply calls.
type Rule struct {
	logic *Logic
	root  expr
}

// Apply evaluates the compiled rule against data.
func (r *Rule) Apply(data any) (any, error) {
	return r.logic.eval(r.root, data)
}

func (l *Logic) emitLog(v any) {
	defer func() {
		_ = recover()
	}()
	sink := l.sink
	if sink == nil {
		sink = defaultLogSink
	}
	sink(v)
}

func defaultLogSink(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, string(b))
}
