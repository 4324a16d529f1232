package jsonschema

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// CustomKeywordFactory builds a Keyword for a non-standard schema keyword.
// compile lets the factory compile a schema-shaped sub-value of its own
// keyword's value (e.g. a custom applicator keyword whose value is itself
// a schema), sharing this Compiler's registry, draft and "seen" cache.
type CustomKeywordFactory func(value any, compile func(value any) (*Schema, error)) (Keyword, error)

// Compiler is spec §4.2's compiler: it turns a raw schema document into a
// compiled validator tree, dispatching on draft via draftTable rather than
// a five-way type switch, and resolves $ref/$dynamicRef/$recursiveRef
// lazily at evaluation time through EvalConfig.CompileRef.
type Compiler struct {
	mu            sync.Mutex
	registry      *Registry
	config        *EvalConfig
	draft         Draft
	assertContent bool
	customKeywords map[string]CustomKeywordFactory

	// compiled memoizes compiled nodes by (base URI, pointer), both for
	// roots this Compiler has already produced and for $ref targets
	// resolved lazily during evaluation — the same map serves both, so a
	// $ref that happens to target an already-compiled root reuses it
	// instead of recompiling it (spec §4.2 "Seen set", §9 "Shared nodes").
	compiled map[seenKey]*Schema
}

// NewCompiler builds a Compiler with the builtin format, content and
// pattern-cache defaults (spec §6), customized by opts.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		registry: NewRegistry(nil),
		config: &EvalConfig{
			Formats:           cloneFormats(builtinFormats),
			ContentEncodings:  cloneDecoders(builtinContentEncodings),
			ContentMediaTypes: cloneMediaTypes(builtinContentMediaTypes),
			Patterns:          newPatternCache(),
		},
		draft:    DefaultDraft,
		compiled: make(map[seenKey]*Schema),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.config.CompileRef = c.compileRef
	return c
}

func cloneFormats(src map[string]FormatFunc) map[string]FormatFunc {
	dst := make(map[string]FormatFunc, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneDecoders(src map[string]ContentDecoder) map[string]ContentDecoder {
	dst := make(map[string]ContentDecoder, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneMediaTypes(src map[string]ContentMediaChecker) map[string]ContentMediaChecker {
	dst := make(map[string]ContentMediaChecker, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Compile decodes schemaBytes as JSON and compiles it into a Validator. An
// explicit uri, if given, becomes the schema's base URI (and is what
// other documents compiled against the same Compiler's registry use to
// $ref it); otherwise the schema's own "$id"/"id" is used, falling back to
// a synthetic "schema:///<n>" URI for an anonymous root (spec §4.2
// "Anonymous roots").
func (c *Compiler) Compile(schemaBytes []byte, uri ...string) (*Validator, error) {
	var value any
	if err := json.Unmarshal(schemaBytes, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONUnmarshal, err)
	}
	var explicit string
	if len(uri) > 0 {
		explicit = uri[0]
	}
	return c.compileDocument(explicit, value)
}

// CompileBatch registers every document first, then compiles each one, so
// forward and mutual $ref between them resolve regardless of map
// iteration order (spec §4.4 "Retrieval" presumes a registry can already
// see every resource a compile might need).
func (c *Compiler) CompileBatch(docs map[string][]byte) (map[string]*Validator, error) {
	decoded := make(map[string]any, len(docs))
	uris := make([]string, 0, len(docs))
	for uri, raw := range docs {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrJSONUnmarshal, err)
		}
		decoded[uri] = value
		uris = append(uris, uri)
	}
	sort.Strings(uris) // deterministic registration order
	for _, uri := range uris {
		if _, err := c.registerDocument(uri, decoded[uri]); err != nil {
			return nil, err
		}
	}
	out := make(map[string]*Validator, len(docs))
	for _, uri := range uris {
		v, err := c.compileRoot(uri)
		if err != nil {
			return nil, err
		}
		out[uri] = v
	}
	return out, nil
}

// registerResource pre-registers doc at uri without compiling it — for
// $ref targets other compiled schemas may need (spec §6 "registered
// resources" / WithResource).
func (c *Compiler) registerResource(uri string, doc any) error {
	_, err := c.registerDocument(uri, doc)
	return err
}

func (c *Compiler) registerDocument(uri string, value any) (string, error) {
	draft := c.documentDraft(value)
	if uri == "" {
		if idURI, ok := c.declaredID(value, ""); ok {
			uri = idURI
		} else {
			uri = c.registry.nextSyntheticURI()
		}
	}
	if err := c.registry.RegisterResource(uri, value, draft); err != nil {
		return "", err
	}
	return uri, nil
}

func (c *Compiler) compileDocument(explicitURI string, value any) (*Validator, error) {
	uri, err := c.registerDocument(explicitURI, value)
	if err != nil {
		return nil, err
	}
	return c.compileRoot(uri)
}

func (c *Compiler) compileRoot(uri string) (*Validator, error) {
	res, err := c.registry.Resource(uri)
	if err != nil {
		return nil, err
	}
	node, err := c.compileValue(uri, "", res.Value, res.Draft)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.compiled[seenKey{uri: uri, pointer: ""}] = node
	c.mu.Unlock()
	return &Validator{root: node, registry: c.registry, config: c.config}, nil
}

// documentDraft picks the draft a newly registered document compiles
// under: its own "$schema" if recognized, else whatever WithDraft fixed,
// else DefaultDraft.
func (c *Compiler) documentDraft(value any) Draft {
	if obj, ok := value.(map[string]any); ok {
		if s, ok := obj["$schema"].(string); ok {
			if d, recognized := detectDraft(s); recognized {
				return d
			}
		}
	}
	return c.draft
}

// declaredID reports the absolute URI a document's own id keyword
// declares, resolved against base (itself possibly empty for a root with
// no enclosing context).
func (c *Compiler) declaredID(value any, base string) (string, bool) {
	obj, ok := value.(map[string]any)
	if !ok {
		return "", false
	}
	table := tableFor(c.documentDraft(value))
	idVal, ok := obj[table.idKeyword].(string)
	if !ok || idVal == "" {
		return "", false
	}
	if table.idIsAnchorOnlyWhenFragment && idVal[0] == '#' {
		return "", false
	}
	resolved, err := c.registry.ResolveAgainst(base, idVal)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// compileRef is EvalConfig.CompileRef's implementation: lazily compile (or
// return from cache) the node for a $ref/$dynamicRef/$recursiveRef target.
// A placeholder is installed before compiling so that a reference cycle —
// target's own subtree containing another $ref back to the same location —
// converges on the same *Schema pointer rather than recursing; compileValue
// itself never recurses through $ref (only through structural sub-schemas,
// which a JSON document cannot cycle through), so the placeholder only
// needs to guard concurrent/reentrant lookups of the exact same location,
// not genuine compile-time recursion.
func (c *Compiler) compileRef(target *Target) (*Schema, error) {
	key := seenKey{uri: target.BaseURI, pointer: target.Pointer}

	c.mu.Lock()
	if n, ok := c.compiled[key]; ok {
		c.mu.Unlock()
		return n, nil
	}
	placeholder := &Schema{Location: key.uri + "#" + key.pointer, Draft: target.Draft, BaseURI: key.uri}
	c.compiled[key] = placeholder
	c.mu.Unlock()

	node, err := c.compileValue(target.BaseURI, target.Pointer, target.Value, target.Draft)
	if err != nil {
		c.mu.Lock()
		delete(c.compiled, key)
		c.mu.Unlock()
		return nil, err
	}
	*placeholder = *node
	return placeholder, nil
}

// compileChild compiles a sub-value known to be schema-shaped (bool or
// object) at the given pointer, sharing this Compiler's "seen" cache.
func (c *Compiler) compileChild(baseURI, pointer string, value any, draft Draft) (*Schema, error) {
	return c.compileValue(baseURI, pointer, value, draft)
}

func (c *Compiler) compileSchemaList(baseURI, pointer string, items []any, draft Draft) ([]*Schema, error) {
	out := make([]*Schema, len(items))
	for i, item := range items {
		node, err := c.compileChild(baseURI, childPointer(pointer, fmt.Sprintf("%d", i)), item, draft)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}

func (c *Compiler) compileSchemaMap(baseURI, pointer string, m map[string]any, draft Draft) (map[string]*Schema, error) {
	out := make(map[string]*Schema, len(m))
	for k, v := range m {
		node, err := c.compileChild(baseURI, childPointer(pointer, k), v, draft)
		if err != nil {
			return nil, err
		}
		out[k] = node
	}
	return out, nil
}

func childPointer(pointer, segment string) string {
	return pointer + "/" + escapePointerSegment(segment)
}

// compileValue compiles one schema value — bool or object — into a Schema
// node, dispatching keyword construction through the draft's table (spec
// §4.2). It never follows $ref/$dynamicRef/$recursiveRef into their
// targets; those are left as lazy refKeyword/dynamicRefKeyword leaves
// resolved at evaluation time.
func (c *Compiler) compileValue(baseURI, pointer string, value any, draft Draft) (*Schema, error) {
	if b, ok := value.(bool); ok {
		return newBoolSchema(baseURI+"#"+pointer, b), nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &SchemaError{Kind: ErrKindInvalidSchema, Location: baseURI + "#" + pointer,
			Reason: "schema must be a JSON object or boolean"}
	}

	effectiveDraft := draft
	if s, ok := obj["$schema"].(string); ok {
		if d, recognized := detectDraft(s); recognized {
			effectiveDraft = d
		} else {
			return nil, &SchemaError{Kind: ErrKindUnknownSpecification, Location: baseURI + "#" + pointer, Reason: s}
		}
	}
	table := tableFor(effectiveDraft)

	ownBaseURI := baseURI
	if idVal, ok := obj[table.idKeyword].(string); ok && idVal != "" &&
		!(table.idIsAnchorOnlyWhenFragment && idVal[0] == '#') {
		resolved, err := c.registry.ResolveAgainst(baseURI, idVal)
		if err != nil {
			return nil, err
		}
		ownBaseURI = resolved
	}
	location := ownBaseURI + "#" + pointer

	// Pre-2019-09: a $ref present on a schema object suppresses every
	// sibling keyword (spec §6 "Draft 4-7 sibling suppression").
	if table.legacyRef {
		if ref, ok := obj["$ref"].(string); ok {
			return &Schema{Location: location, Draft: effectiveDraft, BaseURI: ownBaseURI,
				Keywords: []Keyword{&refKeyword{ref: ref}}}, nil
		}
	}

	node := &Schema{Location: location, Draft: effectiveDraft, BaseURI: ownBaseURI}

	if err := c.compileKeywords(node, table, ownBaseURI, pointer, obj, effectiveDraft); err != nil {
		return nil, err
	}
	return node, nil
}

func (c *Compiler) compileKeywords(node *Schema, table *draftTable, baseURI, pointer string, obj map[string]any, draft Draft) error {
	known := table.knownKeyword
	add := func(k Keyword) { node.Keywords = append(node.Keywords, k) }
	compileAt := func(seg string, value any) (*Schema, error) {
		return c.compileChild(baseURI, childPointer(pointer, seg), value, draft)
	}

	if v, ok := obj["type"]; ok && known("type") {
		add(&typeKeyword{types: normalizeTypeValue(v)})
	}
	if arr, ok := obj["enum"].([]any); ok && known("enum") {
		add(&enumKeyword{values: arr})
	}
	if v, present := obj["const"]; present && known("const") {
		add(&constKeyword{value: v})
	}

	if r, ok := getRat(obj, "multipleOf"); ok && known("multipleOf") {
		add(&multipleOfKeyword{divisor: r})
	}
	if r, ok := getRat(obj, "minimum"); ok && known("minimum") {
		exclusive := false
		if draft == Draft4 {
			if b, ok := obj["exclusiveMinimum"].(bool); ok {
				exclusive = b
			}
		}
		add(&minimumKeyword{limit: r, exclusive: exclusive})
	}
	if r, ok := getRat(obj, "maximum"); ok && known("maximum") {
		exclusive := false
		if draft == Draft4 {
			if b, ok := obj["exclusiveMaximum"].(bool); ok {
				exclusive = b
			}
		}
		add(&maximumKeyword{limit: r, exclusive: exclusive})
	}
	if draft != Draft4 {
		if r, ok := getRat(obj, "exclusiveMinimum"); ok && known("exclusiveMinimum") {
			add(&exclusiveMinimumKeyword{limit: r})
		}
		if r, ok := getRat(obj, "exclusiveMaximum"); ok && known("exclusiveMaximum") {
			add(&exclusiveMaximumKeyword{limit: r})
		}
	}

	if n, ok := getInt(obj, "minLength"); ok && known("minLength") {
		add(&minLengthKeyword{limit: n})
	}
	if n, ok := getInt(obj, "maxLength"); ok && known("maxLength") {
		add(&maxLengthKeyword{limit: n})
	}
	if s, ok := obj["pattern"].(string); ok && known("pattern") {
		re, err := c.config.Patterns.compile(s)
		if err != nil {
			return err
		}
		add(&patternKeyword{re: re, source: s})
	}

	if n, ok := getInt(obj, "minItems"); ok && known("minItems") {
		add(&minItemsKeyword{limit: n})
	}
	if n, ok := getInt(obj, "maxItems"); ok && known("maxItems") {
		add(&maxItemsKeyword{limit: n})
	}
	if b, ok := obj["uniqueItems"].(bool); ok && b && known("uniqueItems") {
		add(&uniqueItemsKeyword{})
	}
	if v, present := obj["contains"]; present && known("contains") {
		schema, err := compileAt("contains", v)
		if err != nil {
			return err
		}
		ck := &containsKeyword{schema: schema, min: 1}
		if n, ok := getInt(obj, "minContains"); ok && known("minContains") {
			ck.min = n
		}
		if n, ok := getInt(obj, "maxContains"); ok && known("maxContains") {
			ck.hasMax, ck.max = true, n
		}
		add(ck)
	}

	if err := c.compileItems(table, baseURI, pointer, obj, draft, compileAt, add); err != nil {
		return err
	}

	if n, ok := getInt(obj, "minProperties"); ok && known("minProperties") {
		add(&minPropertiesKeyword{limit: n})
	}
	if n, ok := getInt(obj, "maxProperties"); ok && known("maxProperties") {
		add(&maxPropertiesKeyword{limit: n})
	}
	if names, ok := getStringSlice(obj, "required"); ok && known("required") {
		add(&requiredKeyword{names: names})
	}

	var declaredNames []string
	var declaredPatterns []*regexp.Regexp
	if m, ok := obj["properties"].(map[string]any); ok && known("properties") {
		schemas, err := c.compileSchemaMap(baseURI, childPointer(pointer, "properties"), m, draft)
		if err != nil {
			return err
		}
		add(&propertiesKeyword{schemas: schemas})
		for k := range m {
			declaredNames = append(declaredNames, k)
		}
	}
	if m, ok := obj["patternProperties"].(map[string]any); ok && known("patternProperties") {
		var patterns []patternSchema
		for pat, v := range m {
			re, err := c.config.Patterns.compile(pat)
			if err != nil {
				return err
			}
			schema, err := compileAt("patternProperties/"+escapePointerSegment(pat), v)
			if err != nil {
				return err
			}
			patterns = append(patterns, patternSchema{re: re, source: pat, schema: schema})
			declaredPatterns = append(declaredPatterns, re)
		}
		add(&patternPropertiesKeyword{patterns: patterns})
	}
	if v, present := obj["additionalProperties"]; present && known("additionalProperties") {
		patterns := declaredPatterns
		if b, isBool := v.(bool); isBool {
			if !b {
				add(&additionalPropertiesKeyword{declaredNames: declaredNames, patterns: patterns, boolFalse: true})
			} else {
				add(&additionalPropertiesKeyword{declaredNames: declaredNames, patterns: patterns,
					schema: newBoolSchema(node.Location+"/additionalProperties", true)})
			}
		} else {
			schema, err := compileAt("additionalProperties", v)
			if err != nil {
				return err
			}
			add(&additionalPropertiesKeyword{declaredNames: declaredNames, patterns: patterns, schema: schema})
		}
	}
	if v, present := obj["propertyNames"]; present && known("propertyNames") {
		schema, err := compileAt("propertyNames", v)
		if err != nil {
			return err
		}
		add(&propertyNamesKeyword{schema: schema})
	}
	if m, ok := obj["dependentRequired"].(map[string]any); ok && known("dependentRequired") {
		deps := make(map[string][]string, len(m))
		for k, v := range m {
			if names, ok := toStringSlice(v); ok {
				deps[k] = names
			}
		}
		add(&dependentRequiredKeyword{deps: deps})
	}
	if m, ok := obj["dependentSchemas"].(map[string]any); ok && known("dependentSchemas") {
		deps := make(map[string]*Schema, len(m))
		for k, v := range m {
			schema, err := compileAt("dependentSchemas/"+escapePointerSegment(k), v)
			if err != nil {
				return err
			}
			deps[k] = schema
		}
		add(&dependentSchemasKeyword{deps: deps})
	}
	if m, ok := obj["dependencies"].(map[string]any); ok && known("dependencies") {
		propertyDeps := make(map[string][]string)
		schemaDeps := make(map[string]*Schema)
		for k, v := range m {
			switch vv := v.(type) {
			case []any:
				if names, ok := toStringSlice(vv); ok {
					propertyDeps[k] = names
				}
			case map[string]any, bool:
				schema, err := compileAt("dependencies/"+escapePointerSegment(k), vv)
				if err != nil {
					return err
				}
				schemaDeps[k] = schema
			}
		}
		add(&dependenciesKeyword{propertyDeps: propertyDeps, schemaDeps: schemaDeps})
	}

	if arr, ok := obj["allOf"].([]any); ok && known("allOf") {
		schemas, err := c.compileSchemaList(baseURI, childPointer(pointer, "allOf"), arr, draft)
		if err != nil {
			return err
		}
		add(&allOfKeyword{schemas: schemas})
	}
	if arr, ok := obj["anyOf"].([]any); ok && known("anyOf") {
		schemas, err := c.compileSchemaList(baseURI, childPointer(pointer, "anyOf"), arr, draft)
		if err != nil {
			return err
		}
		add(&anyOfKeyword{schemas: schemas})
	}
	if arr, ok := obj["oneOf"].([]any); ok && known("oneOf") {
		schemas, err := c.compileSchemaList(baseURI, childPointer(pointer, "oneOf"), arr, draft)
		if err != nil {
			return err
		}
		add(&oneOfKeyword{schemas: schemas})
	}
	if v, present := obj["not"]; present && known("not") {
		schema, err := compileAt("not", v)
		if err != nil {
			return err
		}
		add(&notKeyword{schema: schema})
	}
	if v, present := obj["if"]; present && known("if") {
		ifSchema, err := compileAt("if", v)
		if err != nil {
			return err
		}
		branch := &ifThenElseKeyword{ifSchema: ifSchema}
		if tv, ok := obj["then"]; ok && known("then") {
			branch.thenSchema, err = compileAt("then", tv)
			if err != nil {
				return err
			}
		}
		if ev, ok := obj["else"]; ok && known("else") {
			branch.elseSchema, err = compileAt("else", ev)
			if err != nil {
				return err
			}
		}
		add(branch)
	}

	if !table.legacyRef {
		if ref, ok := obj["$ref"].(string); ok && known("$ref") {
			add(&refKeyword{ref: ref})
		}
	}
	if table.recursiveRef {
		if ref, ok := obj["$recursiveRef"].(string); ok && known("$recursiveRef") {
			add(&dynamicRefKeyword{ref: ref, recursive: true})
		}
	} else if ref, ok := obj["$dynamicRef"].(string); ok && known("$dynamicRef") {
		add(&dynamicRefKeyword{ref: ref, recursive: false})
	}

	if known("contentEncoding") || known("contentMediaType") || known("contentSchema") {
		encodingName, hasEnc := obj["contentEncoding"].(string)
		mediaTypeName, hasMedia := obj["contentMediaType"].(string)
		schemaVal, hasSchema := obj["contentSchema"]
		if hasEnc || hasMedia || hasSchema {
			ck := &contentKeyword{encodingName: encodingName, mediaTypeName: mediaTypeName, assert: c.assertContent}
			if hasEnc {
				ck.decode = c.config.ContentEncodings[encodingName]
			}
			if hasMedia {
				ck.check = c.config.ContentMediaTypes[mediaTypeName]
			}
			if hasSchema {
				schema, err := compileAt("contentSchema", schemaVal)
				if err != nil {
					return err
				}
				ck.schema = schema
			}
			add(ck)
		}
	}

	if name, ok := obj["format"].(string); ok && known("format") {
		add(&formatKeyword{name: name})
	}

	if v, present := obj["unevaluatedItems"]; present && known("unevaluatedItems") {
		schema, err := compileAt("unevaluatedItems", v)
		if err != nil {
			return err
		}
		node.Deferred = append(node.Deferred, &unevaluatedItemsKeyword{schema: schema})
	}
	if v, present := obj["unevaluatedProperties"]; present && known("unevaluatedProperties") {
		schema, err := compileAt("unevaluatedProperties", v)
		if err != nil {
			return err
		}
		node.Deferred = append(node.Deferred, &unevaluatedPropertiesKeyword{schema: schema})
	}

	for name, factory := range c.customKeywords {
		v, present := obj[name]
		if !present {
			continue
		}
		kw, err := factory(v, func(value any) (*Schema, error) { return compileAt(name, value) })
		if err != nil {
			return err
		}
		add(kw)
	}

	return nil
}

// compileItems handles "items"/"prefixItems"/"additionalItems" across the
// pre-2020-12 positional form and the 2020-12 prefixItems/items split
// (spec §6 "Array items"), since the two forms are mutually exclusive per
// draft and share no code otherwise.
func (c *Compiler) compileItems(table *draftTable, baseURI, pointer string, obj map[string]any, draft Draft,
	compileAt func(string, any) (*Schema, error), add func(Keyword)) error {
	known := table.knownKeyword

	if table.arrayFormItems {
		if arr, isArr := obj["items"].([]any); isArr && known("items") {
			schemas, err := c.compileSchemaList(baseURI, childPointer(pointer, "items"), arr, draft)
			if err != nil {
				return err
			}
			k := &positionalItemsKeyword{schemas: schemas}
			if av, present := obj["additionalItems"]; present && known("additionalItems") {
				if b, isBool := av.(bool); isBool {
					if !b {
						k.additionalFalse = true
					}
				} else {
					schema, err := compileAt("additionalItems", av)
					if err != nil {
						return err
					}
					k.additional = schema
				}
			}
			add(k)
			return nil
		}
		if v, present := obj["items"]; present && known("items") {
			schema, err := compileAt("items", v)
			if err != nil {
				return err
			}
			add(&itemsKeyword{schema: schema})
		}
		return nil
	}

	prefixCount := 0
	if arr, ok := obj["prefixItems"].([]any); ok && known("prefixItems") {
		schemas, err := c.compileSchemaList(baseURI, childPointer(pointer, "prefixItems"), arr, draft)
		if err != nil {
			return err
		}
		add(&prefixItemsKeyword{schemas: schemas})
		prefixCount = len(schemas)
	}
	if v, present := obj["items"]; present && known("items") {
		schema, err := compileAt("items", v)
		if err != nil {
			return err
		}
		add(&itemsKeyword{schema: schema, from: prefixCount})
	}
	return nil
}

func normalizeTypeValue(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func toStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func getStringSlice(obj map[string]any, key string) ([]string, bool) {
	v, present := obj[key]
	if !present {
		return nil, false
	}
	return toStringSlice(v)
}

func getRat(obj map[string]any, key string) (*Rat, bool) {
	v, present := obj[key]
	if !present {
		return nil, false
	}
	r, err := numberToRat(v)
	if err != nil {
		return nil, false
	}
	return &Rat{r}, true
}

func getInt(obj map[string]any, key string) (int, bool) {
	r, ok := getRat(obj, key)
	if !ok || !r.IsInt() {
		return 0, false
	}
	return int(r.Num().Int64()), true
}
