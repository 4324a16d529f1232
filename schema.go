package jsonschema

// Schema is a compiled validator node (spec §4.2's "compiled validator
// tree"): one node per schema value encountered during compilation,
// holding its resolved location, its draft, and the keyword validators
// built for it. Nodes referenced by more than one $ref are shared — not
// cloned — so cycles through $ref simply become cycles in this graph;
// Go's garbage collector reclaims them like any other unreachable graph,
// which is why there is no manual reference count anywhere in this type
// (spec §9 "Shared nodes").
type Schema struct {
	// Location is the schema's canonical URI plus JSON Pointer fragment,
	// e.g. "https://example.com/schema#/properties/foo", used in error
	// SchemaLocation fields.
	Location string

	Draft Draft

	// BaseURI is the absolute URI of the resource this node lexically
	// belongs to — the value new $ref/$dynamicRef resolution inside this
	// node's subtree resolves against.
	BaseURI string

	// Bool is set when the schema value was a JSON boolean rather than an
	// object: true accepts everything, false rejects everything, and
	// Keywords is empty in both cases.
	Bool    bool
	IsBool  bool

	// Keywords holds every keyword validator except unevaluatedItems and
	// unevaluatedProperties, which are held separately in Deferred and
	// always evaluated last — they read the annotations every other
	// keyword at this node (and every subschema it pulled in) left
	// behind, so they must run after all of them (spec §4.6.3).
	Keywords []Keyword
	Deferred []Keyword
}

func newBoolSchema(location string, value bool) *Schema {
	return &Schema{Location: location, IsBool: true, Bool: value}
}

// seenKey identifies a (base URI, pointer) pair during compilation so a
// schema already being compiled — reached again through a $ref cycle —
// resolves to the same *Schema node under construction instead of
// recursing forever (spec §4.2 "Seen set").
type seenKey struct {
	uri     string
	pointer string
}
