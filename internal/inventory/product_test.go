package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"Tablet", true},
		{json.Number("0"), false},
		{json.Number("0.0"), false},
		{json.Number("-0"), false},
		{json.Number("1e3"), true},
		{json.Number("0.01"), true},
		{float64(0), false},
		{float64(12.5), true},
		{0, false},
		{7, true},
		{map[string]any{}, true},
		{[]any{}, true},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, truthy(tc.in), "truthy(%#v)", tc.in)
	}
}

func TestProduct_HasID(t *testing.T) {
	assert.True(t, Product{"id": json.Number("1")}.HasID(1))
	assert.True(t, Product{"id": json.Number("1.0")}.HasID(1))
	assert.True(t, Product{"id": 3}.HasID(3))
	assert.True(t, Product{"id": json.Number("9007199254740993")}.HasID(9007199254740993))

	assert.False(t, Product{"id": json.Number("9007199254740992")}.HasID(9007199254740993))
	assert.False(t, Product{"id": json.Number("1.5")}.HasID(1))
	assert.False(t, Product{"id": "1"}.HasID(1))
	assert.False(t, Product{"name": "no id"}.HasID(0))

	assert.True(t, Product{"id": json.Number("1e3")}.HasID(1000))
	assert.False(t, Product{"id": json.Number("1e30000000")}.HasID(1))
	assert.False(t, Product{"id": json.Number("1e-30000000")}.HasID(0))
	assert.False(t, Product{"id": float64(1e300)}.HasID(1))
}

func TestProduct_Valid(t *testing.T) {
	assert.True(t, Product{"name": "Tablet", "price": json.Number("50000")}.Valid())
	assert.False(t, Product{"name": "Tablet"}.Valid())
	assert.False(t, Product{"price": json.Number("50000")}.Valid())
	assert.False(t, Product{"name": "Tablet", "price": json.Number("0")}.Valid())
	assert.False(t, Product{"name": "", "price": json.Number("10")}.Valid())
	assert.False(t, Product{"name": nil, "price": json.Number("10")}.Valid())
}

func TestProduct_ApplyPatch(t *testing.T) {
	p := Product{"id": json.Number("2"), "name": "Phone", "price": json.Number("80000"), "color": "black"}

	p.applyPatch(Product{"price": json.Number("75000"), "color": "red", "id": json.Number("9")})
	assert.Equal(t, Product{"id": json.Number("2"), "name": "Phone", "price": json.Number("75000"), "color": "black"}, p)

	p.applyPatch(Product{"name": "", "price": json.Number("0")})
	assert.Equal(t, "Phone", p["name"])
	assert.Equal(t, json.Number("75000"), p["price"])

	p.applyPatch(Product{"name": "Smartphone"})
	assert.Equal(t, "Smartphone", p["name"])
}

func TestParseID(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"42", 42},
		{"-3", -3},
		{"+7", 7},
		{"01", 1},
		{"1.5", 1},
		{"12abc", 12},
		{" 5", 5},
		{"0x1A", 26},
		{"-0x10", -16},
	}
	for _, tc := range cases {
		id, ok := parseID(tc.raw)
		assert.Truef(t, ok, "parseID(%q)", tc.raw)
		assert.Equalf(t, tc.want, id, "parseID(%q)", tc.raw)
	}

	for _, raw := range []string{"", "abc", "-", "x1", ".5", "0x", "99999999999999999999"} {
		_, ok := parseID(raw)
		assert.Falsef(t, ok, "parseID(%q)", raw)
	}
}
