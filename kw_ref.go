package jsonschema

// refKeyword implements "$ref" (and, for drafts before 2019-09, its
// sibling-suppressing legacy form — the compiler only ever attaches
// other keywords alongside it when the draft allows that). Resolution
// happens at evaluation time, not compile time: ec.Config.CompileRef
// resolves and lazily compiles the target, memoized by location, which
// is what lets a $ref cycle settle on one shared *Schema node instead of
// recursing forever (spec §4.2 "Seen set", §9 "Shared nodes").
type refKeyword struct {
	ref string
}

func (k *refKeyword) Name() string { return "$ref" }

func (k *refKeyword) Evaluate(ec *EvalContext) {
	target, err := ec.Resolver.Lookup(k.ref)
	if err != nil {
		k.fail(ec, err)
		return
	}
	node, err := ec.Config.CompileRef(target)
	if err != nil {
		k.fail(ec, err)
		return
	}
	resolver := ec.Resolver.Push(target.BaseURI)
	evaluateChildWithResolver(ec, node, resolver, ec.Instance, ec.Path)
}

func (k *refKeyword) fail(ec *EvalContext, err error) {
	loc := ec.NodeResult.SchemaLocation + "/$ref"
	ec.NodeResult.fail(newValidationError(KindRef, loc, ec.Path.String(), ec.Instance, err.Error(), map[string]any{"ref": k.ref}))
}

// dynamicRefKeyword implements both 2020-12's "$dynamicRef" and
// 2019-09's "$recursiveRef" — recursive selects which dynamic-scope
// algorithm Resolver applies (spec §4.5).
type dynamicRefKeyword struct {
	ref       string
	recursive bool
}

func (k *dynamicRefKeyword) Name() string {
	if k.recursive {
		return "$recursiveRef"
	}
	return "$dynamicRef"
}

func (k *dynamicRefKeyword) Evaluate(ec *EvalContext) {
	var target *Target
	var err error
	if k.recursive {
		target, err = ec.Resolver.LookupRecursiveRef()
	} else {
		target, err = ec.Resolver.LookupDynamicRef(k.ref)
	}
	if err != nil {
		k.fail(ec, err)
		return
	}
	node, err := ec.Config.CompileRef(target)
	if err != nil {
		k.fail(ec, err)
		return
	}
	resolver := ec.Resolver.Push(target.BaseURI)
	evaluateChildWithResolver(ec, node, resolver, ec.Instance, ec.Path)
}

func (k *dynamicRefKeyword) fail(ec *EvalContext, err error) {
	loc := ec.NodeResult.SchemaLocation + "/" + k.Name()
	ec.NodeResult.fail(newValidationError(KindDynamicRef, loc, ec.Path.String(), ec.Instance, err.Error(), map[string]any{"ref": k.ref}))
}
