package jsonschema

// SchemaOption sets one keyword on a schema document under construction
// (adapted from the teacher's Keyword func(*Schema) builder in
// keywords.go). Since this module's *Schema is a compiled validator node
// rather than a declarative struct, SchemaOption mutates the raw
// map[string]any JSON Schema document instead — the same document
// Compiler.Compile would otherwise decode from bytes — so programs can
// assemble a schema in Go and still go through the exact same
// compilation path as a schema parsed from JSON.
type SchemaOption func(map[string]any)

// Build assembles a raw schema document from the given options, applied
// in order. The map can be passed to WithResource directly; Compile and
// CompileBatch take JSON bytes, so marshal it first for those.
func Build(opts ...SchemaOption) map[string]any {
	doc := make(map[string]any, len(opts))
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}

func set(key string, value any) SchemaOption {
	return func(doc map[string]any) { doc[key] = value }
}

// ===============================
// Core / identity keywords
// ===============================

func ID(uri string) SchemaOption       { return set("$id", uri) }
func Dialect(uri string) SchemaOption  { return set("$schema", uri) }
func Ref(uri string) SchemaOption      { return set("$ref", uri) }
func DynamicRef(uri string) SchemaOption { return set("$dynamicRef", uri) }
func DynamicAnchor(name string) SchemaOption { return set("$dynamicAnchor", name) }
func AnchorName(name string) SchemaOption { return set("$anchor", name) }
func Defs(defs map[string]any) SchemaOption { return set("$defs", defs) }
func Title(title string) SchemaOption  { return set("title", title) }
func Description(desc string) SchemaOption { return set("description", desc) }
func Default(value any) SchemaOption    { return set("default", value) }

// ===============================
// Type / value keywords
// ===============================

// Type sets the "type" keyword to a single JSON Schema type name.
func Type(name string) SchemaOption { return set("type", name) }

// Types sets "type" to an array of allowed type names.
func Types(names ...string) SchemaOption { return set("type", names) }

func Const(value any) SchemaOption     { return set("const", value) }
func Enum(values ...any) SchemaOption   { return set("enum", values) }

// ===============================
// Numeric keywords
// ===============================

func MultipleOf(n float64) SchemaOption    { return set("multipleOf", n) }
func Minimum(n float64) SchemaOption       { return set("minimum", n) }
func Maximum(n float64) SchemaOption       { return set("maximum", n) }
func ExclusiveMinimum(n float64) SchemaOption { return set("exclusiveMinimum", n) }
func ExclusiveMaximum(n float64) SchemaOption { return set("exclusiveMaximum", n) }

// ===============================
// String keywords
// ===============================

func MinLength(n int) SchemaOption  { return set("minLength", n) }
func MaxLength(n int) SchemaOption  { return set("maxLength", n) }
func Pattern(expr string) SchemaOption { return set("pattern", expr) }
func Format(name string) SchemaOption  { return set("format", name) }
func ContentEncoding(name string) SchemaOption  { return set("contentEncoding", name) }
func ContentMediaType(name string) SchemaOption { return set("contentMediaType", name) }
func ContentSchema(schema map[string]any) SchemaOption { return set("contentSchema", schema) }

// ===============================
// Array keywords
// ===============================

func Items(schema map[string]any) SchemaOption        { return set("items", schema) }
func PrefixItems(schemas ...map[string]any) SchemaOption {
	return func(doc map[string]any) {
		list := make([]any, len(schemas))
		for i, s := range schemas {
			list[i] = s
		}
		doc["prefixItems"] = list
	}
}
func MinItems(n int) SchemaOption    { return set("minItems", n) }
func MaxItems(n int) SchemaOption    { return set("maxItems", n) }
func UniqueItems(unique bool) SchemaOption { return set("uniqueItems", unique) }
func Contains(schema map[string]any) SchemaOption { return set("contains", schema) }
func MinContains(n int) SchemaOption { return set("minContains", n) }
func MaxContains(n int) SchemaOption { return set("maxContains", n) }
func UnevaluatedItems(schema map[string]any) SchemaOption { return set("unevaluatedItems", schema) }

// ===============================
// Object keywords
// ===============================

func Properties(props map[string]any) SchemaOption        { return set("properties", props) }
func PatternProperties(props map[string]any) SchemaOption { return set("patternProperties", props) }
func AdditionalProperties(schema any) SchemaOption         { return set("additionalProperties", schema) }
func UnevaluatedProperties(schema any) SchemaOption        { return set("unevaluatedProperties", schema) }
func PropertyNames(schema map[string]any) SchemaOption     { return set("propertyNames", schema) }
func Required(names ...string) SchemaOption                { return set("required", names) }
func MinProperties(n int) SchemaOption                     { return set("minProperties", n) }
func MaxProperties(n int) SchemaOption                     { return set("maxProperties", n) }
func DependentRequired(deps map[string]any) SchemaOption   { return set("dependentRequired", deps) }
func DependentSchemas(deps map[string]any) SchemaOption    { return set("dependentSchemas", deps) }

// ===============================
// Applicators
// ===============================

func AllOf(schemas ...map[string]any) SchemaOption { return setList("allOf", schemas) }
func AnyOf(schemas ...map[string]any) SchemaOption { return setList("anyOf", schemas) }
func OneOf(schemas ...map[string]any) SchemaOption { return setList("oneOf", schemas) }
func Not(schema map[string]any) SchemaOption       { return set("not", schema) }
func If(schema map[string]any) SchemaOption        { return set("if", schema) }
func Then(schema map[string]any) SchemaOption      { return set("then", schema) }
func Else(schema map[string]any) SchemaOption      { return set("else", schema) }

func setList(key string, schemas []map[string]any) SchemaOption {
	return func(doc map[string]any) {
		list := make([]any, len(schemas))
		for i, s := range schemas {
			list[i] = s
		}
		doc[key] = list
	}
}
