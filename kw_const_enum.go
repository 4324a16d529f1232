package jsonschema

// constKeyword implements "const": the instance must be structurally
// equal (spec §4.6 numeric-lane-aware equality) to a single fixed value.
type constKeyword struct {
	value any
}

func (k *constKeyword) Name() string { return "const" }

func (k *constKeyword) Evaluate(ec *EvalContext) {
	if deepEqual(ec.Instance, k.value) {
		return
	}
	loc := ec.NodeResult.SchemaLocation + "/const"
	ec.NodeResult.fail(newValidationError(KindConst, loc, ec.Path.String(), ec.Instance,
		"does not match the const value", map[string]any{"allowed": k.value}))
}

// enumKeyword implements "enum": the instance must equal one of a fixed
// list of values.
type enumKeyword struct {
	values []any
}

func (k *enumKeyword) Name() string { return "enum" }

func (k *enumKeyword) Evaluate(ec *EvalContext) {
	for _, v := range k.values {
		if deepEqual(ec.Instance, v) {
			return
		}
	}
	loc := ec.NodeResult.SchemaLocation + "/enum"
	ec.NodeResult.fail(newValidationError(KindEnum, loc, ec.Path.String(), ec.Instance,
		"does not match any value in enum", map[string]any{"allowed": k.values}))
}
