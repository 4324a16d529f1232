package jsonschema

// scopeFrame is one link of the dynamic scope's immutable cons-list
// (spec §4.5 "Dynamic scope"): the base URI of a resource that evaluation
// has entered on the path from the root schema to the current node. It
// is pushed when evaluation crosses into a new resource — following a
// $ref, a $dynamicRef, or entering the root itself — and never mutated;
// sibling branches of the same compiled tree each get their own Resolver
// with their own chain, so evaluating one branch can never leak frames
// into another.
type scopeFrame struct {
	uri    string
	parent *scopeFrame
}

// Resolver is spec §4.5's resolver: a registry plus a current base URI
// plus the dynamic scope accumulated to reach this point in evaluation.
// Resolvers are cheap and immutable — Push returns a new one sharing the
// same registry and the same parent scope chain.
type Resolver struct {
	registry *Registry
	baseURI  string
	scope    *scopeFrame
}

// NewResolver creates a resolver rooted at baseURI with a dynamic scope
// containing only that one frame.
func NewResolver(reg *Registry, baseURI string) *Resolver {
	return &Resolver{registry: reg, baseURI: baseURI, scope: &scopeFrame{uri: baseURI}}
}

// Push returns a resolver positioned at newBaseURI with newBaseURI
// appended to the dynamic scope, for use while evaluation descends into
// the resource at newBaseURI (spec §4.5: "entering a resource pushes its
// base URI onto the dynamic scope; returning from it pops"). Since the
// scope is a cons-list, the original Resolver (and therefore any sibling
// still using it) is unaffected.
func (r *Resolver) Push(newBaseURI string) *Resolver {
	return &Resolver{registry: r.registry, baseURI: newBaseURI, scope: &scopeFrame{uri: newBaseURI, parent: r.scope}}
}

// WithBaseURI returns a resolver at a new lexical base URI (e.g. after
// crossing a sub-schema's own "$id") without pushing a dynamic scope
// frame — used for plain lexical descent, as opposed to Push which is
// reserved for resource boundaries that participate in $dynamicRef /
// $recursiveRef resolution.
func (r *Resolver) WithBaseURI(baseURI string) *Resolver {
	return &Resolver{registry: r.registry, baseURI: baseURI, scope: r.scope}
}

func (r *Resolver) BaseURI() string { return r.baseURI }

// Target is the outcome of resolving a $ref/$dynamicRef/$recursiveRef: a
// subschema value located within some resource, along with enough
// context (the resource's own base URI and draft) to keep resolving
// further references found inside it.
type Target struct {
	Resource *Resource
	Value    any
	Pointer  string
	BaseURI  string
	Draft    Draft
}

// Lookup resolves a plain $ref (spec §4.5 "lookup"): resolve ref against
// the current base URI, split off any fragment, retrieve the resource at
// the resulting absolute URI, then interpret the fragment as a JSON
// Pointer if it is empty or begins with '/', or as an anchor name
// otherwise.
func (r *Resolver) Lookup(ref string) (*Target, error) {
	absolute, err := r.registry.ResolveAgainst(r.baseURI, ref)
	if err != nil {
		return nil, err
	}
	base, fragment, _ := splitFragment(absolute)
	res, err := r.registry.Resource(base)
	if err != nil {
		return nil, err
	}
	if fragment == "" || fragment[0] == '/' {
		value, err := evalPointer(res.Value, fragment)
		if err != nil {
			return nil, err
		}
		return &Target{Resource: res, Value: value, Pointer: fragment, BaseURI: base, Draft: res.Draft}, nil
	}
	anchor, err := r.registry.Anchor(base, fragment, false)
	if err != nil {
		return nil, err
	}
	return r.targetFromAnchor(anchor)
}

func (r *Resolver) targetFromAnchor(anchor *Anchor) (*Target, error) {
	res, err := r.registry.Resource(anchor.URI)
	if err != nil {
		return nil, err
	}
	value, err := evalPointer(res.Value, anchor.Target)
	if err != nil {
		return nil, err
	}
	return &Target{Resource: res, Value: value, Pointer: anchor.Target, BaseURI: anchor.URI, Draft: res.Draft}, nil
}

func (r *Resolver) rootTarget(uri string) (*Target, error) {
	res, err := r.registry.Resource(uri)
	if err != nil {
		return nil, err
	}
	return &Target{Resource: res, Value: res.Value, Pointer: "", BaseURI: uri, Draft: res.Draft}, nil
}

// scopeOutermostFirst materializes the cons-list, outermost (root) frame
// first — the order both dynamic-ref algorithms below need to walk in.
func (r *Resolver) scopeOutermostFirst() []string {
	var uris []string
	for f := r.scope; f != nil; f = f.parent {
		uris = append(uris, f.uri)
	}
	for i, j := 0, len(uris)-1; i < j; i, j = i+1, j-1 {
		uris[i], uris[j] = uris[j], uris[i]
	}
	return uris
}

// LookupRecursiveRef resolves a 2019-09 $recursiveRef: "#", per spec
// §4.5. A $recursiveRef found in a resource that does not itself declare
// $recursiveAnchor: true behaves exactly like a plain $ref to "#" — no
// dynamic-scope walk happens at all. Otherwise, the target is the root
// of the OUTERMOST resource in the current dynamic scope that declares
// $recursiveAnchor: true — the walk stops at the very first match found
// scanning from outermost to innermost, it does not keep looking for a
// closer one, since that outermost match is what lets a schema further
// out in the scope (e.g. one that $refs this resource and extends it)
// override this resource's own recursive structure at every level of
// nesting, not just its own.
func (r *Resolver) LookupRecursiveRef() (*Target, error) {
	initial, err := r.rootTarget(r.baseURI)
	if err != nil {
		return nil, err
	}
	currentRes, err := r.registry.Resource(r.baseURI)
	if err != nil || !recursiveAnchorSet(currentRes) {
		return initial, nil
	}
	for _, uri := range r.scopeOutermostFirst() {
		res, err := r.registry.Resource(uri)
		if err != nil {
			continue
		}
		if recursiveAnchorSet(res) {
			return r.rootTarget(uri)
		}
	}
	return initial, nil
}

// LookupDynamicRef resolves a 2020-12 $dynamicRef, per spec §4.5's
// "outermost wins" rule: resolve ref exactly like a plain $ref first. If
// its fragment is a plain anchor name, and the initial target's own
// resource also defines a $dynamicAnchor with that same name (the
// precondition for dynamic resolution to apply at all), search the
// dynamic scope from outermost to innermost for the first resource
// declaring a $dynamicAnchor with that name and use it — the very first
// match found wins, regardless of any later, more deeply nested match.
func (r *Resolver) LookupDynamicRef(ref string) (*Target, error) {
	initial, err := r.Lookup(ref)
	if err != nil {
		return nil, err
	}
	absolute, err := r.registry.ResolveAgainst(r.baseURI, ref)
	if err != nil {
		return nil, err
	}
	_, fragment, hasFragment := splitFragment(absolute)
	if !hasFragment || fragment == "" || fragment[0] == '/' {
		return initial, nil
	}
	if _, err := r.registry.Anchor(initial.BaseURI, fragment, true); err != nil {
		return initial, nil
	}
	for _, uri := range r.scopeOutermostFirst() {
		if anchor, err := r.registry.Anchor(uri, fragment, true); err == nil {
			return r.targetFromAnchor(anchor)
		}
	}
	return initial, nil
}

func recursiveAnchorSet(res *Resource) bool {
	obj, ok := res.Value.(map[string]any)
	if !ok {
		return false
	}
	v, ok := obj["$recursiveAnchor"].(bool)
	return ok && v
}
