package jsonschema

import "fmt"

// allOfKeyword implements "allOf": every schema must validate the
// instance; all of their annotations and errors are folded in as
// Details, since all of them necessarily applied.
type allOfKeyword struct {
	schemas []*Schema
}

func (k *allOfKeyword) Name() string { return "allOf" }

func (k *allOfKeyword) Evaluate(ec *EvalContext) {
	for _, schema := range k.schemas {
		evaluateChild(ec, schema, ec.Instance, ec.Path)
	}
}

// anyOfKeyword implements "anyOf": at least one schema must validate.
// When some branch passes, only the passing branches are attached as
// details and contribute annotations; when none passes, every branch is
// attached so its errors are reported.
type anyOfKeyword struct {
	schemas []*Schema
}

func (k *anyOfKeyword) Name() string { return "anyOf" }

func (k *anyOfKeyword) Evaluate(ec *EvalContext) {
	children := make([]*Result, len(k.schemas))
	validCount := 0
	for i, schema := range k.schemas {
		children[i] = evaluateNode(schema, ec.Resolver, ec.Instance, ec.Path, ec.Config)
		if children[i].Valid {
			validCount++
		}
	}
	if validCount == 0 {
		loc := ec.NodeResult.SchemaLocation + "/anyOf"
		ec.NodeResult.fail(newValidationError(KindAnyOf, loc, ec.Path.String(), ec.Instance,
			"must match at least one schema in anyOf", nil))
		ec.NodeResult.Details = append(ec.NodeResult.Details, children...)
		return
	}
	for _, c := range children {
		if c.Valid {
			ec.NodeResult.Details = append(ec.NodeResult.Details, c)
		}
	}
}

// oneOfKeyword implements "oneOf": exactly one schema must validate.
type oneOfKeyword struct {
	schemas []*Schema
}

func (k *oneOfKeyword) Name() string { return "oneOf" }

func (k *oneOfKeyword) Evaluate(ec *EvalContext) {
	children := make([]*Result, len(k.schemas))
	validCount, validIdx := 0, -1
	for i, schema := range k.schemas {
		children[i] = evaluateNode(schema, ec.Resolver, ec.Instance, ec.Path, ec.Config)
		if children[i].Valid {
			validCount++
			validIdx = i
		}
	}
	loc := ec.NodeResult.SchemaLocation + "/oneOf"
	switch {
	case validCount == 0:
		ec.NodeResult.fail(newValidationError(KindOneOfNone, loc, ec.Path.String(), ec.Instance,
			"must match exactly one schema in oneOf, matched none", nil))
		ec.NodeResult.Details = append(ec.NodeResult.Details, children...)
	case validCount > 1:
		ec.NodeResult.fail(newValidationError(KindOneOfMultiple, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must match exactly one schema in oneOf, matched %d", validCount), nil))
		ec.NodeResult.Details = append(ec.NodeResult.Details, children...)
	default:
		ec.NodeResult.Details = append(ec.NodeResult.Details, children[validIdx])
	}
}

// notKeyword implements "not": the instance must fail the given schema.
// The child is evaluated for its verdict only — neither its errors nor
// its annotations are attached, since a negated branch asserts nothing
// about the instance's shape (spec §4.6.3).
type notKeyword struct {
	schema *Schema
}

func (k *notKeyword) Name() string { return "not" }

func (k *notKeyword) Evaluate(ec *EvalContext) {
	child := evaluateNode(k.schema, ec.Resolver, ec.Instance, ec.Path, ec.Config)
	if child.Valid {
		loc := ec.NodeResult.SchemaLocation + "/not"
		ec.NodeResult.fail(newValidationError(KindNot, loc, ec.Path.String(), ec.Instance,
			"must not match the schema in not", nil))
	}
}

// ifThenElseKeyword implements "if"/"then"/"else": "if" is evaluated as
// a probe only (neither its errors nor its annotations are kept) to
// decide which of "then"/"else" — if present — is evaluated for real.
type ifThenElseKeyword struct {
	ifSchema   *Schema
	thenSchema *Schema
	elseSchema *Schema
}

func (k *ifThenElseKeyword) Name() string { return "if" }

func (k *ifThenElseKeyword) Evaluate(ec *EvalContext) {
	probe := evaluateNode(k.ifSchema, ec.Resolver, ec.Instance, ec.Path, ec.Config)
	if probe.Valid {
		if k.thenSchema != nil {
			evaluateChild(ec, k.thenSchema, ec.Instance, ec.Path)
		}
		return
	}
	if k.elseSchema != nil {
		evaluateChild(ec, k.elseSchema, ec.Instance, ec.Path)
	}
}
