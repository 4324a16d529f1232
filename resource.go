package jsonschema

import "fmt"

// Resource is spec §3's (schema value, draft) pair: the draft is fixed at
// construction and inherited by sub-resources unless their own contents
// declare a $schema that overrides it (handled during indexing below).
type Resource struct {
	URI   string
	Value any // a bool, or a map[string]any schema object
	Draft Draft
}

// Anchor is spec §3's (containing-URI, name, target pointer) triple.
// Plain anchors come from $anchor (2019-09+) or a legacy id/$id "#name"
// fragment (pre-2019-09); dynamic anchors come from $dynamicAnchor
// (2020-12) or $recursiveAnchor: true (2019-09, where Name is always "").
type Anchor struct {
	URI     string
	Name    string
	Target  string // JSON Pointer from the containing resource's root
	Dynamic bool
}

type anchorKey struct {
	uri     string
	name    string
	dynamic bool
}

// indexResource walks value (already registered at baseURI) with the
// draft's sub-resource and anchor rules, per spec §4.3: push a base URI
// whenever an id is found, pop on return; record every id'd sub-schema
// into the resources map and every anchor into the anchor map. $ref
// targets are never followed here — only structural sub-resources are —
// which is what guarantees termination on schemas with reference cycles
// (spec §8 invariant 6); JSON documents are finite trees regardless, so
// termination is immediate, but the rule still matters because it keeps
// indexing from requiring any resolution at all.
func (reg *Registry) indexResource(baseURI string, draft Draft, value any, path string) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil // booleans (and malformed non-object schemas) have no sub-resources or anchors
	}

	if schemaKW, ok := obj["$schema"].(string); ok {
		if d, recognized := detectDraft(schemaKW); recognized {
			draft = d
		}
	}
	table := tableFor(draft)

	// resourcePath is the pointer from the root of the resource obj
	// currently belongs to — not from the document root. It starts equal
	// to the incoming path (itself already relative to the nearest
	// ancestor resource's root) and resets to "" the moment obj's own
	// $id plants a new resource root here, since every anchor or
	// sub-resource found from this point on must be addressed relative
	// to THIS object, not whatever resource contained it (spec §3:
	// anchor targets are pointers "from the containing resource's
	// root").
	currentBase := baseURI
	resourcePath := path
	if idVal, ok := obj[table.idKeyword].(string); ok && idVal != "" {
		if table.idIsAnchorOnlyWhenFragment && len(idVal) > 0 && idVal[0] == '#' {
			if err := reg.addAnchor(anchorKey{uri: currentBase, name: idVal[1:], dynamic: false}, resourcePath); err != nil {
				return err
			}
		} else {
			resolved, err := resolveURI(currentBase, idVal)
			if err != nil {
				return err
			}
			currentBase = resolved
			resourcePath = ""
			reg.mu.Lock()
			reg.resources[currentBase] = &Resource{URI: currentBase, Value: obj, Draft: draft}
			reg.mu.Unlock()
		}
	}

	if anchorName, ok := obj["$anchor"].(string); ok && anchorName != "" {
		if err := reg.addAnchor(anchorKey{uri: currentBase, name: anchorName, dynamic: false}, resourcePath); err != nil {
			return err
		}
	}
	if anchorName, ok := obj["$dynamicAnchor"].(string); ok && anchorName != "" {
		// $dynamicAnchor doubles as a plain $anchor (spec §4.5): the
		// initial, non-dynamic step of $dynamicRef resolution — and any
		// ordinary $ref landing on the same fragment name — must still
		// find this schema even though it declares no separate $anchor.
		if err := reg.addAnchor(anchorKey{uri: currentBase, name: anchorName, dynamic: false}, resourcePath); err != nil {
			return err
		}
		if err := reg.addAnchor(anchorKey{uri: currentBase, name: anchorName, dynamic: true}, resourcePath); err != nil {
			return err
		}
	}
	if recursive, ok := obj["$recursiveAnchor"].(bool); ok && recursive {
		if err := reg.addAnchor(anchorKey{uri: currentBase, name: "", dynamic: true}, resourcePath); err != nil {
			return err
		}
	}

	shapes := subResourceKeywords(table)
	for keyword, shape := range shapes {
		child, present := obj[keyword]
		if !present {
			continue
		}
		childPath := resourcePath + "/" + escapePointerSegment(keyword)
		switch shape {
		case shapeValue:
			if keyword == "items" && table.arrayFormItems {
				if arr, isArr := child.([]any); isArr {
					for i, elem := range arr {
						if err := reg.indexSchemaChild(currentBase, draft, elem, fmt.Sprintf("%s/%d", childPath, i)); err != nil {
							return err
						}
					}
					continue
				}
			}
			if err := reg.indexSchemaChild(currentBase, draft, child, childPath); err != nil {
				return err
			}
		case shapeArray:
			arr, isArr := child.([]any)
			if !isArr {
				continue
			}
			for i, elem := range arr {
				if err := reg.indexSchemaChild(currentBase, draft, elem, fmt.Sprintf("%s/%d", childPath, i)); err != nil {
					return err
				}
			}
		case shapeMapOfValues:
			m, isMap := child.(map[string]any)
			if !isMap {
				continue
			}
			for k, v := range m {
				if keyword == "dependencies" {
					if _, isSchema := v.(map[string]any); !isSchema {
						if _, isBool := v.(bool); !isBool {
							continue // a string-array dependency, not a sub-resource
						}
					}
				}
				if err := reg.indexSchemaChild(currentBase, draft, v, childPath+"/"+escapePointerSegment(k)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// indexSchemaChild recurses into a child value that is known to be
// schema-shaped (bool or object); unrecognized value types under a
// sub-resource keyword are filtered out, per spec §4.2.
func (reg *Registry) indexSchemaChild(baseURI string, draft Draft, value any, path string) error {
	switch value.(type) {
	case bool, map[string]any:
		return reg.indexResource(baseURI, draft, value, path)
	default:
		return nil
	}
}

func (reg *Registry) addAnchor(key anchorKey, target string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if existing, ok := reg.anchors[key]; ok {
		if existing.Target != target {
			return &SchemaError{Kind: ErrKindDuplicateAnchor, URI: key.uri, Name: key.name}
		}
		return nil
	}
	reg.anchors[key] = &Anchor{URI: key.uri, Name: key.name, Target: target, Dynamic: key.dynamic}
	return nil
}
