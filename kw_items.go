package jsonschema

import "fmt"

// prefixItemsKeyword implements 2020-12's "prefixItems": a positional
// array of schemas checked against the instance's leading elements by
// index; its annotation is the count of leading elements it checked.
// itemsKeyword skips those elements using its own compile-time offset.
type prefixItemsKeyword struct {
	schemas []*Schema
}

func (k *prefixItemsKeyword) Name() string { return "prefixItems" }

func (k *prefixItemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	n := len(k.schemas)
	if n > len(arr) {
		n = len(arr)
	}
	for i := 0; i < n; i++ {
		evaluateChild(ec, k.schemas[i], arr[i], ec.Path.pushIndex(i))
	}
	ec.NodeResult.annotate("prefixItems", n)
}

// itemsKeyword implements "items" as a single schema applied either to
// every element (2020-12, and pre-2020-12 when "items" was not written
// as an array) or to every element past prefixItems'/the positional
// items array's reach (2020-12 with a sibling prefixItems, draft 2019
// and earlier with a sibling positional "items" handled instead by
// positionalItemsKeyword — the two never coexist on the same node).
type itemsKeyword struct {
	schema *Schema
	from   int // first index this schema applies to; 0 unless paired with prefixItems
}

func (k *itemsKeyword) Name() string { return "items" }

func (k *itemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	for i := k.from; i < len(arr); i++ {
		evaluateChild(ec, k.schema, arr[i], ec.Path.pushIndex(i))
	}
	if len(arr) > k.from {
		ec.NodeResult.annotate("items", true)
	}
}

// positionalItemsKeyword implements the pre-2020-12 array form of
// "items": a positional list of schemas, each checked against the
// instance element at the same index, plus an "additionalItems" schema
// (or boolean) for any elements beyond the list's length.
type positionalItemsKeyword struct {
	schemas         []*Schema
	additional      *Schema // nil means unconstrained (no "additionalItems" present)
	additionalFalse bool
}

func (k *positionalItemsKeyword) Name() string { return "items" }

func (k *positionalItemsKeyword) Evaluate(ec *EvalContext) {
	arr, ok := ec.Instance.([]any)
	if !ok {
		return
	}
	n := len(k.schemas)
	if n > len(arr) {
		n = len(arr)
	}
	for i := 0; i < n; i++ {
		evaluateChild(ec, k.schemas[i], arr[i], ec.Path.pushIndex(i))
	}
	ec.NodeResult.annotate("items", n)

	if n >= len(arr) {
		return
	}
	if k.additionalFalse {
		loc := ec.NodeResult.SchemaLocation + "/additionalItems"
		ec.NodeResult.fail(newValidationError(KindItems, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("array must not have more than %d item(s)", n),
			map[string]any{"limit": n}))
		return
	}
	if k.additional == nil {
		return
	}
	tail := make([]int, 0, len(arr)-n)
	for i := n; i < len(arr); i++ {
		evaluateChild(ec, k.additional, arr[i], ec.Path.pushIndex(i))
		tail = append(tail, i)
	}
	// recorded as the indices it actually covers, like "contains" does,
	// so evaluatedIndices (kw_unevaluated.go) can fold it in without
	// needing to know the array's length itself.
	ec.NodeResult.annotate("additionalItems", tail)
}
