package jsonschema

import (
	"fmt"
	"strings"
)

// typeKeyword implements "type": the instance's JSON type must be one of
// the named types. "integer" is treated as a constraint on "number"
// instances with a zero fractional part rather than a distinct wire
// type, matching every draft from 2019-09 onward (and, per spec §9,
// applied uniformly here for earlier drafts too).
type typeKeyword struct {
	types []string
}

func (k *typeKeyword) Name() string { return "type" }

func (k *typeKeyword) Evaluate(ec *EvalContext) {
	actual := instanceType(ec.Instance)
	for _, want := range k.types {
		if typeMatches(want, actual, ec.Instance) {
			return
		}
	}
	loc := ec.NodeResult.SchemaLocation + "/type"
	ec.NodeResult.fail(newValidationError(KindType, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must be %s, got %s", strings.Join(k.types, " or "), actual),
		map[string]any{"expected": k.types, "actual": actual}))
}

func typeMatches(want, actual string, instance any) bool {
	if want == "integer" {
		return actual == "number" && isIntegerInstance(instance)
	}
	return want == actual
}
