package jsonschema

import (
	"errors"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps math/big.Rat so numeric keyword values (minimum, maximum,
// multipleOf, ...) compare exactly, in the largest lane that losslessly
// holds both operands, per spec §9 "Number lanes": never convert u64->f64
// for equality or ordering.
type Rat struct {
	*big.Rat
}

func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp any
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	converted, err := numberToRat(tmp)
	if err != nil {
		return err
	}
	r.Rat = converted
	return nil
}

func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

// numberToRat converts any JSON numeric representation — float64 from a
// generic decode, json.Number, or a Go numeric literal from the builder
// API — to an exact big.Rat.
func numberToRat(v any) (*big.Rat, error) {
	switch n := v.(type) {
	case json.Number:
		r := new(big.Rat)
		if _, ok := r.SetString(string(n)); !ok {
			return nil, ErrRatConversion
		}
		return r, nil
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		r := new(big.Rat)
		if _, ok := r.SetString(formatGoNumber(n)); !ok {
			return nil, ErrRatConversion
		}
		return r, nil
	case string:
		r := new(big.Rat)
		if _, ok := r.SetString(n); !ok {
			return nil, ErrRatConversion
		}
		return r, nil
	default:
		return nil, ErrUnsupportedTypeForRat
	}
}

func formatGoNumber(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "0"
	}
	return string(b)
}

// NewRat builds a Rat from a Go numeric literal; it returns nil when the
// value is not numeric.
func NewRat(value any) *Rat {
	r, err := numberToRat(value)
	if err != nil {
		return nil
	}
	return &Rat{r}
}

// FormatRat renders a Rat as a plain decimal string, trimming trailing
// zeros, for embedding in error messages.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(12)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" {
		return "0"
	}
	return dec
}

// isIntegerValued reports whether a numeric instance has a zero fractional
// part, i.e. satisfies JSON Schema's "integer" type (spec §4.6: "integer"
// matches any numeric JSON value whose fractional part is zero, including
// those written with a decimal point from 2019-09 onward).
func isIntegerValued(r *big.Rat) bool {
	return r.IsInt()
}

var (
	ErrUnsupportedTypeForRat = errors.New("unsupported type for numeric comparison")
	ErrRatConversion         = errors.New("numeric conversion failed")
)
