package jsonschema

// coreKeywords4 lists the keywords known from draft 4 onward, excluding
// those added by later drafts (added incrementally below per spec §6).
var coreKeywords4 = []string{
	"$ref", "$schema", "id",
	"allOf", "anyOf", "oneOf", "not",
	"items", "additionalItems",
	"properties", "patternProperties", "additionalProperties",
	"definitions", "dependencies",
	"type", "enum",
	"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
	"maxLength", "minLength", "pattern",
	"maxItems", "minItems", "uniqueItems",
	"maxProperties", "minProperties", "required",
	"format",
	"title", "description", "default",
}

func buildDraftTables() [5]*draftTable {
	var tables [5]*draftTable

	set := func(names ...string) map[string]bool {
		m := make(map[string]bool, len(names))
		for _, n := range names {
			m[n] = true
		}
		return m
	}

	kw4 := set(coreKeywords4...)

	tables[Draft4] = &draftTable{
		draft:                      Draft4,
		idKeyword:                  "id",
		idIsAnchorOnlyWhenFragment: true,
		legacyRef:                  true,
		definitionsKeyword:         "definitions",
		arrayFormItems:             true,
		dependenciesKeyword:        true,
		keywords:                   kw4,
	}

	kw6 := set(coreKeywords4...)
	for _, k := range []string{"$id", "$anchor", "contains", "propertyNames", "const"} {
		kw6[k] = true
	}
	delete(kw6, "id")
	tables[Draft6] = &draftTable{
		draft:                      Draft6,
		idKeyword:                  "$id",
		idIsAnchorOnlyWhenFragment: true,
		legacyRef:                  true,
		definitionsKeyword:         "definitions",
		arrayFormItems:             true,
		dependenciesKeyword:        true,
		keywords:                   kw6,
	}

	kw7 := set()
	for k := range kw6 {
		kw7[k] = true
	}
	for _, k := range []string{"if", "then", "else", "$comment", "contentEncoding", "contentMediaType"} {
		kw7[k] = true
	}
	tables[Draft7] = &draftTable{
		draft:                      Draft7,
		idKeyword:                  "$id",
		idIsAnchorOnlyWhenFragment: true,
		legacyRef:                  true,
		definitionsKeyword:         "definitions",
		arrayFormItems:             true,
		dependenciesKeyword:        true,
		keywords:                   kw7,
	}

	kw2019 := set()
	for k := range kw7 {
		kw2019[k] = true
	}
	delete(kw2019, "dependencies")
	for _, k := range []string{
		"$defs", "$anchor", "$recursiveRef", "$recursiveAnchor",
		"dependentRequired", "dependentSchemas", "contentSchema",
		"unevaluatedItems", "unevaluatedProperties",
		"minContains", "maxContains",
	} {
		kw2019[k] = true
	}
	tables[Draft2019] = &draftTable{
		draft:               Draft2019,
		idKeyword:            "$id",
		legacyRef:            false,
		definitionsKeyword:   "$defs",
		recursiveRef:         true,
		arrayFormItems:       true,
		dependenciesKeyword:  false,
		keywords:             kw2019,
	}

	kw2020 := set()
	for k := range kw2019 {
		kw2020[k] = true
	}
	delete(kw2020, "$recursiveRef")
	delete(kw2020, "$recursiveAnchor")
	for _, k := range []string{"$dynamicRef", "$dynamicAnchor", "prefixItems"} {
		kw2020[k] = true
	}
	tables[Draft2020] = &draftTable{
		draft:               Draft2020,
		idKeyword:            "$id",
		legacyRef:            false,
		definitionsKeyword:   "$defs",
		recursiveRef:         false,
		arrayFormItems:       false,
		dependenciesKeyword:  false,
		keywords:             kw2020,
	}

	return tables
}

func tableFor(d Draft) *draftTable {
	if d < Draft4 || d > Draft2020 {
		return draftTables[DefaultDraft]
	}
	return draftTables[d]
}

// subResourceKeywords names keywords whose object-or-array-of-schema value
// is a sub-resource per spec §6, grouped exactly as spec §6 describes them:
// in-value (the keyword's own value is a schema), in-sub-array (the value
// is an array of schemas) and in-sub-values (the value is an object whose
// own values are schemas).
type subResourceShape int

const (
	shapeValue subResourceShape = iota
	shapeArray
	shapeMapOfValues
)

func subResourceKeywords(t *draftTable) map[string]subResourceShape {
	m := map[string]subResourceShape{
		"not":                   shapeValue,
		"additionalItems":       shapeValue,
		"additionalProperties":  shapeValue,
		"allOf":                 shapeArray,
		"anyOf":                 shapeArray,
		"oneOf":                 shapeArray,
		"properties":            shapeMapOfValues,
		"patternProperties":     shapeMapOfValues,
	}
	m[t.definitionsKeyword] = shapeMapOfValues
	if t.definitionsKeyword != "definitions" {
		m["definitions"] = shapeMapOfValues // always accepted for compatibility
	}
	if t.dependenciesKeyword {
		m["dependencies"] = shapeMapOfValues // schema-valued entries only; string-array entries are filtered
	}
	if t.draft >= Draft6 {
		m["contains"] = shapeValue
		m["propertyNames"] = shapeValue
	}
	if t.draft >= Draft7 {
		m["if"] = shapeValue
		m["then"] = shapeValue
		m["else"] = shapeValue
	}
	if t.draft >= Draft2019 {
		m["dependentSchemas"] = shapeMapOfValues
		m["contentSchema"] = shapeValue
		m["unevaluatedItems"] = shapeValue
		m["unevaluatedProperties"] = shapeValue
	}
	if t.arrayFormItems {
		m["items"] = shapeValue // special-cased: may also be shapeArray, handled by caller
	} else {
		m["items"] = shapeValue
		m["prefixItems"] = shapeArray
	}
	return m
}
