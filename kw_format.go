package jsonschema

// formatKeyword implements "format": always recorded as an annotation;
// only checked as an assertion when the compiler was built with
// WithAssertFormat (spec §6 "format vocabulary"). An unrecognized format
// name is accepted leniently, matching the specification's own
// "format" vocabulary meta-schema, which never restricts the value to a
// known set.
type formatKeyword struct {
	name string
}

func (k *formatKeyword) Name() string { return "format" }

func (k *formatKeyword) Evaluate(ec *EvalContext) {
	ec.NodeResult.annotate("format", k.name)
	if !ec.Config.AssertFormat {
		return
	}
	check, ok := ec.Config.Formats[k.name]
	if !ok {
		return
	}
	s, ok := ec.Instance.(string)
	if !ok {
		return
	}
	if check(s) {
		return
	}
	loc := ec.NodeResult.SchemaLocation + "/format"
	ec.NodeResult.fail(newValidationError(KindFormat, loc, ec.Path.String(), ec.Instance,
		"does not match format "+k.name, map[string]any{"format": k.name}))
}
