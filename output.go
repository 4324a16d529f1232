package jsonschema

import "fmt"

// ValidationError is the per-keyword failure record spec §7 "Validation
// errors" describes: one variant per keyword, each carrying the schema
// and instance JSON Pointers plus kind-specific payload (the failing
// limit, the expected type set, the regex pattern, ...).
//
// Errors are cheap to clone into a fully owned form (Clone) for
// cross-thread or post-evaluation inspection, per spec §3 "Lifecycles".
type ValidationError struct {
	Kind             string         // e.g. "minimum", "type", "required" — matches the offending keyword name
	Message          string         // human-readable, already parameter-substituted
	SchemaLocation   string         // JSON Pointer into the schema, from its compilation root
	InstanceLocation string         // JSON Pointer into the validated instance
	Instance         any            // the offending instance value (or sub-value) at InstanceLocation
	Params           map[string]any // kind-specific payload (limit, pattern, missing key, ...)
}

func (e *ValidationError) Error() string {
	if e.InstanceLocation == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.InstanceLocation, e.Message)
}

// Clone returns a deep-enough copy safe to retain after the evaluation
// call that produced it returns.
func (e *ValidationError) Clone() *ValidationError {
	cp := *e
	if e.Params != nil {
		cp.Params = make(map[string]any, len(e.Params))
		for k, v := range e.Params {
			cp.Params[k] = v
		}
	}
	return &cp
}

func newValidationError(kind, schemaLoc, instanceLoc string, instance any, message string, params map[string]any) *ValidationError {
	return &ValidationError{
		Kind:             kind,
		Message:          message,
		SchemaLocation:   schemaLoc,
		InstanceLocation: instanceLoc,
		Instance:         instance,
		Params:           params,
	}
}

// Known validation error kinds (spec §7). Keyword validators set Kind to
// one of these constants; the set is intentionally open-ended (custom
// keywords may introduce their own).
const (
	KindType                  = "type"
	KindConst                 = "const"
	KindEnum                  = "enum"
	KindMultipleOf            = "multipleOf"
	KindMinimum               = "minimum"
	KindMaximum               = "maximum"
	KindExclusiveMinimum      = "exclusiveMinimum"
	KindExclusiveMaximum      = "exclusiveMaximum"
	KindMinLength             = "minLength"
	KindMaxLength             = "maxLength"
	KindPattern               = "pattern"
	KindMinItems              = "minItems"
	KindMaxItems              = "maxItems"
	KindUniqueItems           = "uniqueItems"
	KindContains              = "contains"
	KindMinContains           = "minContains"
	KindMaxContains           = "maxContains"
	KindItems                 = "items"
	KindUnevaluatedItems      = "unevaluatedItems"
	KindMinProperties         = "minProperties"
	KindMaxProperties         = "maxProperties"
	KindRequired              = "required"
	KindProperties            = "properties"
	KindPatternProperties     = "patternProperties"
	KindAdditionalProperties  = "additionalProperties"
	KindPropertyNames         = "propertyNames"
	KindDependentRequired     = "dependentRequired"
	KindDependentSchemas      = "dependentSchemas"
	KindUnevaluatedProperties = "unevaluatedProperties"
	KindAllOf                 = "allOf"
	KindAnyOf                 = "anyOf"
	KindOneOfNone             = "oneOfNone"
	KindOneOfMultiple         = "oneOfMultiple"
	KindNot                   = "not"
	KindIfThenElse            = "then/else"
	KindRef                   = "$ref"
	KindDynamicRef            = "$dynamicRef"
	KindFalse                 = "false"
	KindFormat                = "format"
	KindContentEncoding       = "contentEncoding"
	KindContentMediaType      = "contentMediaType"
	KindContentSchema         = "contentSchema"
	KindBacktrackLimit        = "backtrackLimit"
)

// Result is the shared outcome of evaluating one schema node against one
// instance value: a validity verdict, any errors raised directly by this
// node (not its children — those live in Details), the node's own
// annotations, and the sub-results of every child node it evaluated.
//
// The four entry points (IsValid, Validate, Apply, IterErrors) all walk
// the same tree in full; only the aggregation differs (spec §4.8).
type Result struct {
	Valid            bool
	SchemaLocation   string
	InstanceLocation string
	Errors           []*ValidationError
	Annotations      map[string]any
	Details          []*Result
}

func newResult(schemaLoc, instanceLoc string) *Result {
	return &Result{Valid: true, SchemaLocation: schemaLoc, InstanceLocation: instanceLoc}
}

func (r *Result) fail(err *ValidationError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

func (r *Result) annotate(keyword string, value any) {
	if r.Annotations == nil {
		r.Annotations = make(map[string]any)
	}
	r.Annotations[keyword] = value
}

func (r *Result) addDetail(d *Result) {
	if d == nil {
		return
	}
	r.Details = append(r.Details, d)
	if !d.Valid {
		r.Valid = false
	}
}

// AllErrors flattens this result and its details into a single slice,
// depth-first, matching source evaluation order (spec §5 "Ordering").
func (r *Result) AllErrors() []*ValidationError {
	var out []*ValidationError
	var walk func(*Result)
	walk = func(res *Result) {
		out = append(out, res.Errors...)
		for _, d := range res.Details {
			walk(d)
		}
	}
	walk(r)
	return out
}

// FirstError returns the first error in evaluation order, or nil if valid.
func (r *Result) FirstError() *ValidationError {
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	for _, d := range r.Details {
		if e := d.FirstError(); e != nil {
			return e
		}
	}
	return nil
}

// OutputUnit is the structured output document spec §4.8/§6 describes,
// matching the JSON Schema "basic" and "verbose" output formats: each
// unit carries schema-location and instance-location JSON Pointers.
type OutputUnit struct {
	Valid             bool                   `json:"valid"`
	KeywordLocation   string                 `json:"keywordLocation,omitempty"`
	InstanceLocation  string                 `json:"instanceLocation"`
	Error             string                 `json:"error,omitempty"`
	Annotations       map[string]any         `json:"annotations,omitempty"`
	Errors            []OutputUnit           `json:"errors,omitempty"`
}

// Basic flattens the result tree into the "basic" output structure: a
// single list of outcome units, one per error (valid results carry none).
func (r *Result) Basic() OutputUnit {
	out := OutputUnit{Valid: r.Valid, InstanceLocation: r.InstanceLocation}
	if r.Valid {
		return out
	}
	var units []OutputUnit
	for _, e := range r.AllErrors() {
		units = append(units, OutputUnit{
			Valid:            false,
			KeywordLocation:  e.SchemaLocation,
			InstanceLocation: e.InstanceLocation,
			Error:            e.Error(),
		})
	}
	out.Errors = units
	return out
}

// Verbose preserves the full hierarchy, including annotations from valid
// branches, matching the JSON Schema "verbose" output structure.
func (r *Result) Verbose() OutputUnit {
	unit := OutputUnit{
		Valid:            r.Valid,
		KeywordLocation:  r.SchemaLocation,
		InstanceLocation: r.InstanceLocation,
		Annotations:      r.Annotations,
	}
	if len(r.Errors) > 0 {
		unit.Error = r.Errors[0].Error()
	}
	for _, d := range r.Details {
		unit.Errors = append(unit.Errors, d.Verbose())
	}
	return unit
}
