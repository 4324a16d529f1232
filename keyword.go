package jsonschema

// Keyword is the single capability every keyword validator implements
// (spec §4.8 "Keyword capability set"): rather than the four separate
// capabilities (is_valid/iter_errors/validate/apply) the specification
// enumerates, every keyword here implements one Evaluate method and the
// four entry points in evaluate.go (IsValid, Validate, IterErrors, Apply)
// all run the same full walk and differ only in how they aggregate what
// Evaluate reports — the keywords themselves never know which entry
// point invoked them.
type Keyword interface {
	// Name is the schema keyword this validator implements, e.g.
	// "minimum" or "additionalProperties"; used for SchemaLocation
	// suffixes and for registering custom keywords.
	Name() string

	// Evaluate checks ec.Instance (at ec.Path) against this keyword's
	// configured value and reports its outcome into ec.NodeResult —
	// calling NodeResult.fail for each violation and NodeResult.annotate
	// when the keyword produces an annotation (spec §4.6.3). Applicator
	// keywords (allOf, properties, $ref, ...) additionally evaluate one
	// or more child schemas via evaluateNode and attach the child
	// *Result with NodeResult.addDetail.
	Evaluate(ec *EvalContext)
}

// EvalConfig holds the evaluation-time options fixed at compile time by
// CompilerOption (spec §6): whether "format" is asserted as a validation
// constraint or left as annotation-only, the registered format and
// content checkers, and the compiled pattern cache. One EvalConfig is
// shared by every node of a single compiled Schema tree.
type EvalConfig struct {
	AssertFormat     bool
	Formats          map[string]FormatFunc
	ContentEncodings map[string]ContentDecoder
	ContentMediaTypes map[string]ContentMediaChecker
	Patterns         *patternCache

	// CompileRef lazily compiles (or returns from cache) the compiled
	// node for a $ref/$dynamicRef/$recursiveRef target resolved at
	// evaluation time; bound by compiler.go to a Compiler instance's
	// memoized "seen" map so a reference cycle converges on one shared
	// *Schema node (spec §4.2, §9 "Shared nodes").
	CompileRef func(target *Target) (*Schema, error)
}

// EvalContext threads the state a keyword's Evaluate needs: the current
// instance value and its location, the resolver for following $ref, the
// shared evaluation config, and the in-progress Result for the schema
// node currently being evaluated.
type EvalContext struct {
	Resolver   *Resolver
	Instance   any
	Path       *pointerPath
	NodeResult *Result
	Config     *EvalConfig
}

// child returns a new EvalContext for descending into a sub-value of the
// current instance (a property value or array element), with a fresh
// Result for the child schema node to write into.
func (ec *EvalContext) child(instance any, path *pointerPath, schemaLoc, instanceLoc string) (*EvalContext, *Result) {
	res := newResult(schemaLoc, instanceLoc)
	return &EvalContext{
		Resolver:   ec.Resolver,
		Instance:   instance,
		Path:       path,
		NodeResult: res,
		Config:     ec.Config,
	}, res
}

// FormatFunc validates an instance's "format" annotation value (already
// known to be a string) and reports whether it conforms.
type FormatFunc func(value string) bool

// ContentDecoder validates and decodes a "contentEncoding" value.
type ContentDecoder func(value string) ([]byte, error)

// ContentMediaChecker validates a decoded byte slice against a
// "contentMediaType" value, returning the parsed value for
// "contentSchema" to validate against when present.
type ContentMediaChecker func(data []byte) (any, error)
