package jsonschema

import (
	"fmt"
	"math/big"
)

// multipleOfKeyword implements "multipleOf": a numeric instance must
// divide evenly (spec §9: compared as exact big.Rat, never as float64).
type multipleOfKeyword struct {
	divisor *Rat
}

func (k *multipleOfKeyword) Name() string { return "multipleOf" }

func (k *multipleOfKeyword) Evaluate(ec *EvalContext) {
	r, ok := toRat(ec.Instance)
	if !ok {
		return
	}
	quotient := new(big.Rat).Quo(r, k.divisor.Rat)
	if quotient.IsInt() {
		return
	}
	loc := ec.NodeResult.SchemaLocation + "/multipleOf"
	ec.NodeResult.fail(newValidationError(KindMultipleOf, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must be a multiple of %s", FormatRat(k.divisor)),
		map[string]any{"multipleOf": FormatRat(k.divisor)}))
}

// minimumKeyword implements "minimum", and, when exclusive is set,
// draft 4's boolean-modified "exclusiveMinimum: true" form where the
// comparison becomes strict (spec §6 "Draft 4 exclusive bounds").
type minimumKeyword struct {
	limit     *Rat
	exclusive bool
}

func (k *minimumKeyword) Name() string { return "minimum" }

func (k *minimumKeyword) Evaluate(ec *EvalContext) {
	r, ok := toRat(ec.Instance)
	if !ok {
		return
	}
	cmp := r.Cmp(k.limit.Rat)
	if (k.exclusive && cmp > 0) || (!k.exclusive && cmp >= 0) {
		return
	}
	op := ">="
	if k.exclusive {
		op = ">"
	}
	loc := ec.NodeResult.SchemaLocation + "/minimum"
	ec.NodeResult.fail(newValidationError(KindMinimum, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must be %s %s", op, FormatRat(k.limit)),
		map[string]any{"minimum": FormatRat(k.limit), "exclusive": k.exclusive}))
}

// maximumKeyword implements "maximum" and draft 4's
// "exclusiveMaximum: true" modifier.
type maximumKeyword struct {
	limit     *Rat
	exclusive bool
}

func (k *maximumKeyword) Name() string { return "maximum" }

func (k *maximumKeyword) Evaluate(ec *EvalContext) {
	r, ok := toRat(ec.Instance)
	if !ok {
		return
	}
	cmp := r.Cmp(k.limit.Rat)
	if (k.exclusive && cmp < 0) || (!k.exclusive && cmp <= 0) {
		return
	}
	op := "<="
	if k.exclusive {
		op = "<"
	}
	loc := ec.NodeResult.SchemaLocation + "/maximum"
	ec.NodeResult.fail(newValidationError(KindMaximum, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must be %s %s", op, FormatRat(k.limit)),
		map[string]any{"maximum": FormatRat(k.limit), "exclusive": k.exclusive}))
}

// exclusiveMinimumKeyword implements draft 6+'s standalone numeric
// "exclusiveMinimum" (as opposed to draft 4's boolean modifier on
// "minimum", handled by minimumKeyword above).
type exclusiveMinimumKeyword struct {
	limit *Rat
}

func (k *exclusiveMinimumKeyword) Name() string { return "exclusiveMinimum" }

func (k *exclusiveMinimumKeyword) Evaluate(ec *EvalContext) {
	r, ok := toRat(ec.Instance)
	if !ok {
		return
	}
	if r.Cmp(k.limit.Rat) > 0 {
		return
	}
	loc := ec.NodeResult.SchemaLocation + "/exclusiveMinimum"
	ec.NodeResult.fail(newValidationError(KindExclusiveMinimum, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must be > %s", FormatRat(k.limit)),
		map[string]any{"exclusiveMinimum": FormatRat(k.limit)}))
}

// exclusiveMaximumKeyword implements draft 6+'s standalone numeric
// "exclusiveMaximum".
type exclusiveMaximumKeyword struct {
	limit *Rat
}

func (k *exclusiveMaximumKeyword) Name() string { return "exclusiveMaximum" }

func (k *exclusiveMaximumKeyword) Evaluate(ec *EvalContext) {
	r, ok := toRat(ec.Instance)
	if !ok {
		return
	}
	if r.Cmp(k.limit.Rat) < 0 {
		return
	}
	loc := ec.NodeResult.SchemaLocation + "/exclusiveMaximum"
	ec.NodeResult.fail(newValidationError(KindExclusiveMaximum, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must be < %s", FormatRat(k.limit)),
		map[string]any{"exclusiveMaximum": FormatRat(k.limit)}))
}
