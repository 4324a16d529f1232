package jsonschema

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// instanceType returns the JSON Schema primitive type name for an
// already-decoded instance value. Numeric values are reported as
// "number"; "integer" is a narrower predicate checked separately by
// isIntegerInstance, since every JSON Schema draft treats "integer" as a
// constraint on a numeric value's fractional part, not a distinct wire
// representation (spec §4.6 "type").
func instanceType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

func isNumber(v any) bool {
	return instanceType(v) == "number"
}

// isIntegerInstance reports whether a numeric instance's fractional part
// is zero, matching it against the "integer" type even when written with
// a decimal point (spec §4.6).
func isIntegerInstance(v any) bool {
	r, ok := toRat(v)
	if !ok {
		return false
	}
	return r.IsInt()
}

// toRat converts any decoded JSON numeric value to an exact big.Rat,
// choosing the largest lane that losslessly represents it (spec §9).
func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(string(n))
		return r, ok
	case *Rat:
		if n == nil {
			return nil, false
		}
		return n.Rat, true
	case float64:
		if n != n { // NaN
			return nil, false
		}
		// Shortest decimal that round-trips, so 0.29 becomes 29/100
		// rather than the nearest binary fraction.
		r, ok := new(big.Rat).SetString(strconv.FormatFloat(n, 'g', -1, 64))
		return r, ok
	case float32:
		r, ok := new(big.Rat).SetString(strconv.FormatFloat(float64(n), 'g', -1, 32))
		return r, ok
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int8, int16, int32, int64:
		return new(big.Rat).SetInt64(reflectInt64(n)), true
	case uint, uint8, uint16, uint32, uint64:
		return new(big.Rat).SetUint64(reflectUint64(n)), true
	default:
		return nil, false
	}
}

func reflectInt64(v any) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func reflectUint64(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	}
	return 0
}

// deepEqual implements the structural equality spec §4.6 requires for
// "const" and "enum": numbers compare by mathematical value across lanes
// (so instance 1 satisfies const: 1.0), objects compare key-set and
// per-key equality ignoring order, arrays compare element-wise in order.
func deepEqual(a, b any) bool {
	if isNumber(a) && isNumber(b) {
		ra, ok1 := toRat(a)
		rb, ok2 := toRat(b)
		if ok1 && ok2 {
			return ra.Cmp(rb) == 0
		}
		return false
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			ov, ok := bv[k]
			if !ok || !deepEqual(v, ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// fingerprint produces a canonical string encoding of v such that
// deepEqual(a, b) implies fingerprint(a) == fingerprint(b); used by
// uniqueItems (spec §4.6.2) to hash-bucket elements above the pairwise
// threshold. Numbers normalize to their big.Rat decimal form so that
// different lanes comparing equal hash identically.
func fingerprint(v any) string {
	switch val := v.(type) {
	case nil:
		return "n"
	case bool:
		if val {
			return "t"
		}
		return "f"
	case string:
		return "s:" + val
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if r, ok := toRat(val); ok {
			return "#:" + r.RatString()
		}
		return "#:?"
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = fingerprint(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = strconv.Quote(k) + ":" + fingerprint(val[k])
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return "?"
	}
}
