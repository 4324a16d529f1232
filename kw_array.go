package jsonschema

import "fmt"

type minItemsKeyword struct{ limit int }

func (k *minItemsKeyword) Name() string { return "minItems" }

func (k *minItemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	if len(arr) < k.limit {
		loc := ec.NodeResult.SchemaLocation + "/minItems"
		ec.NodeResult.fail(newValidationError(KindMinItems, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must contain at least %d item(s)", k.limit),
			map[string]any{"minItems": k.limit, "actual": len(arr)}))
	}
}

type maxItemsKeyword struct{ limit int }

func (k *maxItemsKeyword) Name() string { return "maxItems" }

func (k *maxItemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	if len(arr) > k.limit {
		loc := ec.NodeResult.SchemaLocation + "/maxItems"
		ec.NodeResult.fail(newValidationError(KindMaxItems, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must contain at most %d item(s)", k.limit),
			map[string]any{"maxItems": k.limit, "actual": len(arr)}))
	}
}

// uniqueItemsFingerprintThreshold is the element count above which
// uniqueItemsKeyword switches from pairwise deepEqual comparison
// (O(n^2), exact) to fingerprint-bucketed comparison (O(n), collisions
// broken by a follow-up deepEqual) — small arrays are cheaper to just
// compare directly than to hash first.
const uniqueItemsFingerprintThreshold = 15

type uniqueItemsKeyword struct{}

func (k *uniqueItemsKeyword) Name() string { return "uniqueItems" }

func (k *uniqueItemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok || len(arr) < 2 {
		return
	}
	var i, j int
	var dup bool
	if len(arr) > uniqueItemsFingerprintThreshold {
		seen := make(map[string][]int, len(arr))
		for idx, v := range arr {
			fp := fingerprint(v)
			for _, first := range seen[fp] {
				if deepEqual(arr[first], v) {
					i, j, dup = first, idx, true
					break
				}
			}
			if dup {
				break
			}
			seen[fp] = append(seen[fp], idx)
		}
	} else {
		for a := 0; a < len(arr) && !dup; a++ {
			for b := a + 1; b < len(arr); b++ {
				if deepEqual(arr[a], arr[b]) {
					i, j, dup = a, b, true
					break
				}
			}
		}
	}
	if dup {
		loc := ec.NodeResult.SchemaLocation + "/uniqueItems"
		ec.NodeResult.fail(newValidationError(KindUniqueItems, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("items at index %d and %d are equal", i, j),
			map[string]any{"duplicateIndices": []int{i, j}}))
	}
}

// containsKeyword implements "contains" together with its sibling
// minContains/maxContains (default min 1, no max) — the three are
// always configured as a unit here rather than as three separate
// keywords, since minContains/maxContains have no independent meaning
// without a "contains" schema to count matches against (spec §6).
type containsKeyword struct {
	schema *Schema
	min    int
	hasMax bool
	max    int
}

func (k *containsKeyword) Name() string { return "contains" }

func (k *containsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	var matched []int
	for i, elem := range arr {
		child := evaluateNode(k.schema, ec.Resolver, elem, ec.Path.pushIndex(i), ec.Config)
		if child.Valid {
			matched = append(matched, i)
		}
	}
	count := len(matched)
	loc := ec.NodeResult.SchemaLocation + "/contains"
	if count < k.min {
		ec.NodeResult.fail(newValidationError(KindContains, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must contain at least %d matching item(s), found %d", k.min, count),
			map[string]any{"minContains": k.min, "actual": count}))
	}
	if k.hasMax && count > k.max {
		ec.NodeResult.fail(newValidationError(KindMaxContains, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must contain at most %d matching item(s), found %d", k.max, count),
			map[string]any{"maxContains": k.max, "actual": count}))
	}
	ec.NodeResult.annotate("contains", matched)
}
