package jsonschema

// Draft identifies a published version of the JSON Schema specification.
// The ordering is significant: it is used to gate features that only exist
// from a given draft onward (e.g. $dynamicRef requires Draft2020).
type Draft int

const (
	Draft4 Draft = iota
	Draft6
	Draft7
	Draft2019
	Draft2020
)

// DefaultDraft is used when a schema declares no $schema and the caller
// supplied no WithDraft override.
const DefaultDraft = Draft2020

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft4"
	case Draft6:
		return "draft6"
	case Draft7:
		return "draft7"
	case Draft2019:
		return "2019-09"
	case Draft2020:
		return "2020-12"
	default:
		return "unknown draft"
	}
}

// metaschemaURIs maps each recognized $schema value (trailing '#' stripped)
// to the draft it selects.
var metaschemaURIs = map[string]Draft{
	"http://json-schema.org/draft-04/schema":       Draft4,
	"https://json-schema.org/draft-04/schema":      Draft4,
	"http://json-schema.org/draft-06/schema":       Draft6,
	"https://json-schema.org/draft-06/schema":      Draft6,
	"http://json-schema.org/draft-07/schema":       Draft7,
	"https://json-schema.org/draft-07/schema":      Draft7,
	"https://json-schema.org/draft/2019-09/schema": Draft2019,
	"https://json-schema.org/draft/2020-12/schema": Draft2020,
}

// detectDraft inspects a schema value's $schema keyword (if any) and
// returns the draft it selects. ok is false when $schema is absent or
// unrecognized; the caller distinguishes "absent" (use default) from
// "unrecognized" (UnknownSpecification) by checking for the keyword itself.
func detectDraft(schemaURI string) (Draft, bool) {
	schemaURI = trimTrailingHash(schemaURI)
	d, ok := metaschemaURIs[schemaURI]
	return d, ok
}

func trimTrailingHash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '#' {
		return s[:len(s)-1]
	}
	return s
}

// draftTable records, as plain data, how one draft differs from the
// others: its id keyword, $ref and definitions spelling, dynamic-reference
// flavor and the set of keywords it knows (queried through knownKeyword).
// Encoding the differences as a table (rather than a five-way type switch
// scattered through the compiler) keeps the compiler and the resource
// indexer draft-agnostic.
type draftTable struct {
	draft Draft

	// idKeyword is the keyword that carries a sub-schema's declared
	// identifier: "id" pre-draft-6, "$id" from draft 6 onward.
	idKeyword string

	// idIsAnchorOnlyWhenFragment is true for drafts where a bare "#name"
	// value of the id keyword names an anchor rather than establishing a
	// new base URI (draft 4 "id", draft 6/7 "$id").
	idIsAnchorOnlyWhenFragment bool

	// legacyRef is true when the presence of $ref suppresses sibling
	// keywords (all drafts before 2019-09).
	legacyRef bool

	// definitionsKeyword is the keyword this draft uses for a bag of
	// reusable sub-schemas: "definitions" pre-2019-09, "$defs" from
	// 2019-09 onward. From 2019-09 on, "definitions" is also indexed as a
	// sub-resource keyword; drafts 4-7 do not index "$defs".
	definitionsKeyword string

	// recursiveRef is true for 2019-09, which spells dynamic references
	// $recursiveRef/$recursiveAnchor instead of $dynamicRef/$dynamicAnchor.
	recursiveRef bool

	// arrayFormItems is true for drafts where "items" may be a schema
	// array (paired with "additionalItems"); false from 2020-12 onward,
	// where "prefixItems" replaces the array form of "items".
	arrayFormItems bool

	// dependenciesKeyword is true for drafts that accept the combined
	// "dependencies" keyword (schema-or-string-array), dropped at 2019-09
	// in favor of separate dependentRequired/dependentSchemas.
	dependenciesKeyword bool

	// keywords is the set of keywords this draft recognizes as carrying
	// validation or applicator semantics (spec §4.2 "known-keyword").
	// Keys present here with a true value are dispatched to a factory by
	// the compiler; unrecognized keys are traversed for sub-resources
	// (if structurally schema-shaped) but otherwise ignored.
	keywords map[string]bool
}

func (t *draftTable) knownKeyword(name string) bool {
	return t.keywords[name]
}

// draftTables is indexed by Draft.
var draftTables = buildDraftTables()
