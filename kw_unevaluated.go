package jsonschema

import "fmt"

// evaluatedIndices walks res and every Detail attached under it,
// collecting the set of array indices some "items", "prefixItems",
// "contains" or "additionalItems" annotation claims as evaluated. Details
// are attached by every applicator that consumes a child schema's
// annotations (properties, allOf, anyOf's matching branches, $ref, if/then/else's
// taken branch); "not" and the "if" probe deliberately evaluate their
// child without attaching it (see kw_applicators.go), so their
// annotations never reach here — matching the rule that a negated or
// merely-tested branch contributes nothing to "unevaluated".
//
// allAny is set when some annotation in the tree claims "every index",
// short-circuiting the rest of the walk.
func evaluatedIndices(res *Result) (indices map[int]bool, allAny bool) {
	indices = make(map[int]bool)
	var walk func(*Result)
	walk = func(r *Result) {
		if allAny {
			return
		}
		for _, kw := range []string{"items", "prefixItems"} {
			switch v := r.Annotations[kw].(type) {
			case bool:
				if v {
					allAny = true
					return
				}
			case int:
				for i := 0; i < v; i++ {
					indices[i] = true
				}
			}
		}
		for _, kw := range []string{"contains", "additionalItems"} {
			if v, ok := r.Annotations[kw].([]int); ok {
				for _, i := range v {
					indices[i] = true
				}
			}
		}
		for _, d := range r.Details {
			walk(d)
		}
	}
	walk(res)
	return indices, allAny
}

// evaluatedProperties is evaluatedIndices' counterpart for object
// properties, reading the "properties", "patternProperties" and
// "additionalProperties" annotations.
func evaluatedProperties(res *Result) map[string]bool {
	names := make(map[string]bool)
	var walk func(*Result)
	walk = func(r *Result) {
		for _, kw := range []string{"properties", "patternProperties", "additionalProperties"} {
			if v, ok := r.Annotations[kw].([]string); ok {
				for _, n := range v {
					names[n] = true
				}
			}
		}
		for _, d := range r.Details {
			walk(d)
		}
	}
	walk(res)
	return names
}

// unevaluatedItemsKeyword implements 2019-09+'s "unevaluatedItems": a
// schema applied to every array element not already accounted for by
// items/prefixItems/contains anywhere in this node's evaluation,
// including through $ref and the applicators (spec §4.6.3). It must run
// after every other keyword at this node — guaranteed by Schema.Deferred
// in evaluate.go, never by ordering within Keywords.
type unevaluatedItemsKeyword struct {
	schema *Schema
}

func (k *unevaluatedItemsKeyword) Name() string { return "unevaluatedItems" }

func (k *unevaluatedItemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	indices, all := evaluatedIndices(ec.NodeResult)
	if all {
		return
	}
	var touched, rejected []int
	for i, elem := range arr {
		if indices[i] {
			continue
		}
		child := evaluateChild(ec, k.schema, elem, ec.Path.pushIndex(i))
		touched = append(touched, i)
		if !child.Valid {
			rejected = append(rejected, i)
		}
	}
	if len(touched) > 0 {
		ec.NodeResult.annotate("unevaluatedItems", true)
	}
	if len(rejected) > 0 {
		loc := ec.NodeResult.SchemaLocation + "/unevaluatedItems"
		ec.NodeResult.fail(newValidationError(KindUnevaluatedItems, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("item(s) at index %v are not evaluated by any other keyword and fail unevaluatedItems", rejected),
			map[string]any{"indices": rejected}))
	}
}

// unevaluatedPropertiesKeyword is unevaluatedItemsKeyword's object
// counterpart.
type unevaluatedPropertiesKeyword struct {
	schema *Schema
}

func (k *unevaluatedPropertiesKeyword) Name() string { return "unevaluatedProperties" }

func (k *unevaluatedPropertiesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	claimed := evaluatedProperties(ec.NodeResult)
	var touched, rejected []string
	for name, value := range obj {
		if claimed[name] {
			continue
		}
		child := evaluateChild(ec, k.schema, value, ec.Path.pushKey(name))
		touched = append(touched, name)
		if !child.Valid {
			rejected = append(rejected, name)
		}
	}
	if len(touched) > 0 {
		ec.NodeResult.annotate("unevaluatedProperties", touched)
	}
	if len(rejected) > 0 {
		loc := ec.NodeResult.SchemaLocation + "/unevaluatedProperties"
		ec.NodeResult.fail(newValidationError(KindUnevaluatedProperties, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("propert(ies) %v are not evaluated by any other keyword and fail unevaluatedProperties", rejected),
			map[string]any{"keys": rejected}))
	}
}
