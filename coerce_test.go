package jsonlogic

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "null", v: nil, want: false},
		{name: "false", v: false, want: false},
		{name: "true", v: true, want: true},
		{name: "zero", v: float64(0), want: false},
		{name: "negative zero", v: math.Copysign(0, -1), want: false},
		{name: "nonzero", v: float64(-3), want: true},
		{name: "nan", v: math.NaN(), want: false},
		{name: "int nonzero", v: 7, want: true},
		{name: "json.Number zero", v: json.Number("0"), want: false},
		{name: "empty string", v: "", want: false},
		{name: "zero string", v: "0", want: true},
		{name: "empty array", v: []any{}, want: false},
		{name: "array", v: []any{float64(0)}, want: true},
		{name: "empty object", v: map[string]any{}, want: true},
		{name: "object", v: map[string]any{"a": nil}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
		ok   bool
	}{
		{name: "null", v: nil, want: 0, ok: true},
		{name: "true", v: true, want: 1, ok: true},
		{name: "false", v: false, want: 0, ok: true},
		{name: "float", v: 2.5, want: 2.5, ok: true},
		{name: "int", v: 12, want: 12, ok: true},
		{name: "numeric string", v: "3.25", want: 3.25, ok: true},
		{name: "padded string", v: "  42  ", want: 42, ok: true},
		{name: "empty string", v: "", want: 0, ok: true},
		{name: "exponent string", v: "1e3", want: 1000, ok: true},
		{name: "garbage string", v: "abc", ok: false},
		{name: "hex string", v: "0x10", ok: false},
		{name: "infinity string", v: "Infinity", ok: false},
		{name: "separator string", v: "1_000", ok: false},
		{name: "empty array", v: []any{}, want: 0, ok: true},
		{name: "singleton array", v: []any{"5"}, want: 5, ok: true},
		{name: "nested singleton", v: []any{[]any{float64(5)}}, want: 5, ok: true},
		{name: "pair array", v: []any{float64(1), float64(2)}, ok: false},
		{name: "object", v: map[string]any{}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toNumber(tt.v)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{name: "null", v: nil, want: ""},
		{name: "true", v: true, want: "true"},
		{name: "false", v: false, want: "false"},
		{name: "string", v: "x", want: "x"},
		{name: "integral float", v: float64(2), want: "2"},
		{name: "fraction", v: 2.5, want: "2.5"},
		{name: "negative", v: -0.25, want: "-0.25"},
		{name: "array joins", v: []any{float64(1), "a", nil, true}, want: "1,a,,true"},
		{name: "nested array", v: []any{[]any{float64(1), float64(2)}, float64(3)}, want: "1,2,3"},
		{name: "object", v: map[string]any{"a": float64(1)}, want: "[object Object]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toString(tt.v))
		})
	}
}

func TestLooseEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "null null", a: nil, b: nil, want: true},
		{name: "null zero", a: nil, b: float64(0), want: false},
		{name: "null false", a: nil, b: false, want: false},
		{name: "num num", a: float64(1), b: float64(1), want: true},
		{name: "int float", a: 1, b: 1.0, want: true},
		{name: "num string", a: float64(1), b: "1", want: true},
		{name: "num padded string", a: float64(1), b: " 1 ", want: true},
		{name: "num bad string", a: float64(1), b: "one", want: false},
		{name: "zero empty string", a: float64(0), b: "", want: true},
		{name: "bool num", a: true, b: float64(1), want: true},
		{name: "bool string", a: false, b: "0", want: true},
		{name: "bool bool", a: true, b: false, want: false},
		{name: "string string", a: "a", b: "a", want: true},
		{name: "array string", a: []any{float64(1), float64(2)}, b: "1,2", want: true},
		{name: "empty array empty string", a: []any{}, b: "", want: true},
		{name: "array array", a: []any{float64(1)}, b: []any{float64(1)}, want: true},
		{name: "array array unequal", a: []any{float64(1)}, b: []any{float64(2)}, want: false},
		{name: "object object", a: map[string]any{"a": float64(1)}, b: map[string]any{"a": float64(1)}, want: true},
		{name: "object string", a: map[string]any{}, b: "[object Object]", want: false},
		{name: "nan", a: math.NaN(), b: math.NaN(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looseEquals(tt.a, tt.b))
			// == is symmetric
			assert.Equal(t, tt.want, looseEquals(tt.b, tt.a))
		})
	}
}

func TestStrictEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "null null", a: nil, b: nil, want: true},
		{name: "num num", a: float64(7), b: float64(7), want: true},
		{name: "int float unified", a: 1, b: 1.0, want: true},
		{name: "num string", a: float64(1), b: "1", want: false},
		{name: "bool num", a: true, b: float64(1), want: false},
		{name: "arrays deep", a: []any{float64(1), []any{"x"}}, b: []any{float64(1), []any{"x"}}, want: true},
		{name: "arrays length", a: []any{float64(1)}, b: []any{float64(1), float64(2)}, want: false},
		{name: "objects deep", a: map[string]any{"a": []any{nil}}, b: map[string]any{"a": []any{nil}}, want: true},
		{name: "objects keys", a: map[string]any{"a": float64(1)}, b: map[string]any{"b": float64(1)}, want: false},
		{name: "nan", a: math.NaN(), b: math.NaN(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strictEquals(tt.a, tt.b))
			// === is symmetric
			assert.Equal(t, tt.want, strictEquals(tt.b, tt.a))
		})
	}
}

func TestStrictEqualsReflexive(t *testing.T) {
	values := []any{nil, true, false, float64(0), float64(-1.5), "", "x",
		[]any{float64(1), "a"}, map[string]any{"k": []any{nil, true}}}
	for _, v := range values {
		assert.True(t, strictEquals(v, v), "value %v", v)
	}
}

func TestLooseOrdering(t *testing.T) {
	tests := []struct {
		name       string
		a, b       any
		less, lessEq bool
	}{
		{name: "numbers", a: float64(1), b: float64(2), less: true, lessEq: true},
		{name: "equal numbers", a: float64(2), b: float64(2), less: false, lessEq: true},
		{name: "strings lexicographic", a: "abc", b: "abd", less: true, lessEq: true},
		{name: "digit strings lexicographic", a: "10", b: "9", less: true, lessEq: true},
		{name: "string vs number coerces", a: "10", b: float64(9), less: false, lessEq: false},
		{name: "bool vs number", a: false, b: float64(1), less: true, lessEq: true},
		{name: "null is zero", a: nil, b: float64(1), less: true, lessEq: true},
		{name: "uncoercible is unordered", a: "abc", b: float64(1), less: false, lessEq: false},
		{name: "object is unordered", a: map[string]any{}, b: float64(1), less: false, lessEq: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.less, looseLess(tt.a, tt.b))
			assert.Equal(t, tt.lessEq, looseLessEqual(tt.a, tt.b))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{f: 1, want: "1"},
		{f: -1, want: "-1"},
		{f: 0, want: "0"},
		{f: 2.5, want: "2.5"},
		{f: 0.1, want: "0.1"},
		{f: 1234567, want: "1234567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.f))
	}
}
