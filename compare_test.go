package jsonlogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityOperators(t *testing.T) {
	tests := []struct {
		name string
		rule any
		want any
	}{
		{name: "loose equal coerces", rule: map[string]any{"==": []any{float64(1), "1"}}, want: true},
		{name: "loose not equal", rule: map[string]any{"!=": []any{float64(1), "2"}}, want: true},
		{name: "strict equal same type", rule: map[string]any{"===": []any{float64(1), float64(1)}}, want: true},
		{name: "strict equal rejects coercion", rule: map[string]any{"===": []any{float64(1), "1"}}, want: false},
		{name: "strict not equal", rule: map[string]any{"!==": []any{float64(1), "1"}}, want: true},
		{name: "null equality", rule: map[string]any{"==": []any{nil, nil}}, want: true},
		{name: "null never coerces", rule: map[string]any{"==": []any{nil, float64(0)}}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, tt.rule, nil))
		})
	}
}

func TestEqualityArity(t *testing.T) {
	for _, op := range []string{"==", "!=", "===", "!=="} {
		_, err := Apply(map[string]any{op: []any{float64(1)}}, nil)
		assert.Equal(t, InvalidArgumentCount, KindOf(err), "operator %s", op)
	}
}

func TestOrderingOperators(t *testing.T) {
	tests := []struct {
		name string
		rule any
		want any
	}{
		{name: "less", rule: map[string]any{"<": []any{float64(1), float64(2)}}, want: true},
		{name: "less equal boundary", rule: map[string]any{"<=": []any{float64(2), float64(2)}}, want: true},
		{name: "greater", rule: map[string]any{">": []any{float64(3), float64(2)}}, want: true},
		{name: "greater equal", rule: map[string]any{">=": []any{float64(2), float64(3)}}, want: false},
		{name: "string coerced against number", rule: map[string]any{"<": []any{"1", float64(2)}}, want: true},
		{name: "both strings lexicographic", rule: map[string]any{"<": []any{"10", "9"}}, want: true},
		{name: "uncoercible yields false", rule: map[string]any{"<": []any{"abc", float64(2)}}, want: false},
		{name: "between true", rule: map[string]any{"<": []any{float64(1), float64(2), float64(3)}}, want: true},
		{name: "between false low", rule: map[string]any{"<": []any{float64(2), float64(1), float64(3)}}, want: false},
		{name: "between false high", rule: map[string]any{"<": []any{float64(1), float64(4), float64(3)}}, want: false},
		{name: "between inclusive", rule: map[string]any{"<=": []any{float64(1), float64(1), float64(3)}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, tt.rule, nil))
		})
	}
}

func TestBetweenShortCircuit(t *testing.T) {
	// When a<b already fails, the third operand must never evaluate.
	boom := map[string]any{"/": []any{float64(1), float64(0)}}
	got, err := Apply(map[string]any{"<": []any{float64(2), float64(1), boom}}, nil)
	require.NoError(t, err)
	assert.Equal(t, false, got)

	_, err = Apply(map[string]any{"<": []any{float64(1), float64(2), boom}}, nil)
	require.Error(t, err)
}

func TestOrderingArity(t *testing.T) {
	_, err := Apply(map[string]any{">": []any{float64(1), float64(2), float64(3)}}, nil)
	assert.Equal(t, InvalidArgumentCount, KindOf(err))
	_, err = Apply(map[string]any{"<": []any{float64(1)}}, nil)
	assert.Equal(t, InvalidArgumentCount, KindOf(err))
}
