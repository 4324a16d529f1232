// Package jsonschema compiles JSON Schema documents — drafts 4, 6, 7,
// 2019-09 and 2020-12 — into a tree of keyword validators and evaluates
// JSON instances against them.
//
// Compilation resolves $ref and $dynamicRef through a draft-aware registry
// of schema resources, keyed by absolute URI, with anchor and sub-resource
// indexing done once per resource. Evaluation walks the compiled tree to
// produce a boolean verdict, a first-error result, a lazy error sequence,
// or an annotation-bearing structured output.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format
// validators.
package jsonschema
