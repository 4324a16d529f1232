package jsonschema

import "github.com/goccy/go-json"

// CompilerOption configures a Compiler at construction time (spec §6
// "Compiler configuration"); each option is applied in NewCompiler, in
// the order given.
type CompilerOption func(*Compiler)

// WithDraft fixes the draft used for any document that declares no
// "$schema" of its own (or an unrecognized one), overriding DefaultDraft.
// A document's own "$schema", where present and recognized, always wins.
func WithDraft(d Draft) CompilerOption {
	return func(c *Compiler) { c.draft = d }
}

// WithRetriever installs fn as the Registry's out-of-band fetcher for
// URIs no prior Compile/CompileBatch/WithResource call has registered
// (spec §4.4 "Retrieval").
func WithRetriever(fn Retriever) CompilerOption {
	return func(c *Compiler) {
		c.registry = NewRegistry(fn)
	}
}

// WithResource pre-registers a decoded schema document (bool or
// map[string]any) at uri, so later Compile calls can $ref it without it
// ever being the root of its own Compile call — the same registry
// populated by CompileBatch, exposed one resource at a time.
func WithResource(uri string, doc any) CompilerOption {
	return func(c *Compiler) {
		_ = c.registerResource(uri, doc)
	}
}

// WithResourceJSON is WithResource for an already-encoded JSON document.
func WithResourceJSON(uri string, raw []byte) CompilerOption {
	return func(c *Compiler) {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return
		}
		_ = c.registerResource(uri, value)
	}
}

// WithAssertFormat turns "format" from an annotation-only keyword into a
// validation assertion (spec §6 "format vocabulary"): off by default, per
// every draft's own meta-schema, which ships "format" as an annotation
// vocabulary and leaves assertion behavior to the implementation.
func WithAssertFormat(assert bool) CompilerOption {
	return func(c *Compiler) { c.config.AssertFormat = assert }
}

// WithAssertContent is WithAssertFormat's counterpart for
// contentEncoding/contentMediaType/contentSchema (spec §6), off by
// default for the same reason.
func WithAssertContent(assert bool) CompilerOption {
	return func(c *Compiler) { c.assertContent = assert }
}

// WithCustomFormat registers or overrides a single named format checker.
func WithCustomFormat(name string, fn FormatFunc) CompilerOption {
	return func(c *Compiler) { c.config.Formats[name] = fn }
}

// WithCustomContentEncoding registers or overrides a "contentEncoding"
// decoder.
func WithCustomContentEncoding(name string, fn ContentDecoder) CompilerOption {
	return func(c *Compiler) { c.config.ContentEncodings[name] = fn }
}

// WithCustomContentMediaType registers or overrides a "contentMediaType"
// checker.
func WithCustomContentMediaType(name string, fn ContentMediaChecker) CompilerOption {
	return func(c *Compiler) { c.config.ContentMediaTypes[name] = fn }
}

// WithCustomKeyword registers a non-standard schema keyword, dispatched
// by name alongside the built-in keywords during compilation. A custom
// keyword's factory may itself compile a sub-value as a schema via the
// compile callback it is given, sharing this Compiler's registry, "seen"
// cache and draft handling.
func WithCustomKeyword(name string, factory CustomKeywordFactory) CompilerOption {
	return func(c *Compiler) {
		if c.customKeywords == nil {
			c.customKeywords = make(map[string]CustomKeywordFactory)
		}
		c.customKeywords[name] = factory
	}
}
