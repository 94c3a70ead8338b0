package inventory

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxIDExponent bounds the decimal exponent HasID is willing to rescale.
// No int64 needs more than 19 digits.
const maxIDExponent = 20

const (
	fieldID    = "id"
	fieldName  = "name"
	fieldPrice = "price"
)

// Product is an open JSON object. Only id, name and price mean anything to
// the service; every other field is stored and echoed exactly as submitted.
type Product map[string]any

// SeedProducts is the collection a fresh process starts with.
func SeedProducts() []Product {
	return []Product{
		{fieldID: json.Number("1"), fieldName: "Laptop", fieldPrice: json.Number("150000")},
		{fieldID: json.Number("2"), fieldName: "Phone", fieldPrice: json.Number("80000")},
	}
}

// Clone copies the top-level fields. Nested values are shared; nothing in the
// package mutates them.
func (p Product) Clone() Product {
	out := make(Product, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// HasID reports whether the stored id is a number equal to id. String ids
// never match. Plain integers compare directly; other numbers go through
// decimal only when their exponent is small, so a stored 1e30000000 costs
// nothing to skip.
func (p Product) HasID(id int64) bool {
	v := p[fieldID]
	if n, ok := v.(json.Number); ok {
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return i == id
		}
	}

	d, ok := numberOf(v)
	if !ok {
		return false
	}
	if exp := d.Exponent(); exp > maxIDExponent || exp < -maxIDExponent {
		return false
	}
	return d.Equal(decimal.NewFromInt(id))
}

// Valid reports whether both required fields are truthy.
func (p Product) Valid() bool {
	return truthy(p[fieldName]) && truthy(p[fieldPrice])
}

// applyPatch overwrites name and price with the truthy values in patch.
func (p Product) applyPatch(patch Product) {
	if v := patch[fieldName]; truthy(v) {
		p[fieldName] = v
	}
	if v := patch[fieldPrice]; truthy(v) {
		p[fieldPrice] = v
	}
}

// truthy treats null, false, "", numeric zero and absent values as false.
// Objects and arrays are always true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number, float64, float32, int, int64:
		d, ok := numberOf(x)
		return ok && !d.IsZero()
	default:
		return true
	}
}

func numberOf(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(x), true
	case float32:
		return decimal.NewFromFloat32(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	default:
		return decimal.Decimal{}, false
	}
}

// parseID reads the integer a path segment starts with: optional leading
// whitespace and sign, then a decimal digit run, or a hex run after 0x.
// Trailing text is ignored ("1.5" and "1abc" are 1). ok is false when no
// digit leads the segment or the value overflows int64; callers treat that
// as "no such product".
func parseID(raw string) (id int64, ok bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	id, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func isDecimalDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
