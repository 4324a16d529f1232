package jsonschema

import "iter"

// Validator is a compiled schema ready to check instances against it —
// the handle Compiler.Compile returns. It bundles the compiled node
// graph's root with the registry that backs any $ref it still needs to
// resolve lazily (custom keywords, or $ref targets outside the
// compiled subtree) and the evaluation config fixed by CompilerOption
// (spec §6).
type Validator struct {
	root     *Schema
	registry *Registry
	config   *EvalConfig
}

// evaluateNode is the one walk every public entry point below is built
// on (spec §4.8): it evaluates node against instance at path, running
// every ordinary keyword, then every deferred (unevaluated*) keyword,
// and returns the node's Result — valid, with whatever errors and
// annotations were produced, and one Detail per child schema node this
// node's applicator keywords evaluated.
func evaluateNode(node *Schema, resolver *Resolver, instance any, path *pointerPath, config *EvalConfig) *Result {
	if node.BaseURI != "" && node.BaseURI != resolver.BaseURI() {
		resolver = resolver.WithBaseURI(node.BaseURI)
	}

	loc := path.String()
	if node.IsBool {
		res := newResult(node.Location, loc)
		if !node.Bool {
			res.fail(newValidationError(KindFalse, node.Location, loc, instance, "the schema \"false\" rejects every instance", nil))
		}
		return res
	}

	res := newResult(node.Location, loc)
	ec := &EvalContext{Resolver: resolver, Instance: instance, Path: path, NodeResult: res, Config: config}

	for _, kw := range node.Keywords {
		kw.Evaluate(ec)
	}
	for _, kw := range node.Deferred {
		kw.Evaluate(ec)
	}

	return res
}

// evaluateChild is the helper applicator keywords (allOf, properties,
// $ref, ...) use to evaluate a child schema node and fold its Result
// into the parent's, at either the same instance location (allOf,
// $ref, if/then/else) or a descended one (properties, items).
func evaluateChild(parent *EvalContext, node *Schema, instance any, path *pointerPath) *Result {
	child := evaluateNode(node, parent.Resolver, instance, path, parent.Config)
	parent.NodeResult.addDetail(child)
	return child
}

// evaluateChildWithResolver is evaluateChild's variant for crossing a
// resource boundary (a $ref/$dynamicRef/$recursiveRef target, typically
// in a different resource with its own base URI), where the child must
// be evaluated under a different Resolver than the parent's.
func evaluateChildWithResolver(parent *EvalContext, node *Schema, resolver *Resolver, instance any, path *pointerPath) *Result {
	child := evaluateNode(node, resolver, instance, path, parent.Config)
	parent.NodeResult.addDetail(child)
	return child
}

// IsValid reports whether instance satisfies v, short-circuiting none of
// the work evaluateNode does but discarding everything except the final
// verdict (spec §4.8 "bool fold").
func (v *Validator) IsValid(instance any) bool {
	return v.Validate(instance).Valid
}

// Validate evaluates instance and returns the full Result tree with
// every violation found, in schema-document order (spec §4.8
// "collect-all").
func (v *Validator) Validate(instance any) *Result {
	resolver := NewResolver(v.registry, v.root.BaseURI)
	return evaluateNode(v.root, resolver, instance, nil, v.config)
}

// Apply evaluates instance and returns the full Result tree including
// annotations from every branch, valid or not — the form $ref and the
// applicator keywords themselves consume internally, and the form
// needed to check unevaluatedProperties/unevaluatedItems across a
// $ref boundary (spec §4.8 "merge-annotations"). For this implementation
// Validate already retains every annotation produced, so Apply is
// Validate under another name; kept distinct because callers that only
// want annotations, not errors, read more clearly through this name.
func (v *Validator) Apply(instance any) *Result {
	return v.Validate(instance)
}

// IterErrors yields every violation in schema-document order, stopping
// early if the consumer's range breaks (spec §4.8 "take-first" is the
// single-result special case of ranging once and breaking). The walk
// itself is eager — evaluateNode always finishes before the first error
// is yielded — trading the possibility of early-exit mid-walk for a
// dramatically simpler implementation; instances large enough for that
// tradeoff to matter are expected to use IsValid instead.
func (v *Validator) IterErrors(instance any) iter.Seq[*ValidationError] {
	result := v.Validate(instance)
	return func(yield func(*ValidationError) bool) {
		for _, e := range result.AllErrors() {
			if !yield(e) {
				return
			}
		}
	}
}
