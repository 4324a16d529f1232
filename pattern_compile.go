package jsonschema

import (
	"regexp"
	"strings"
	"sync"
)

// patternCache memoizes compiled patterns across schema nodes — the
// same pattern string (e.g. a common format like an email or UUID
// regex) frequently recurs across unrelated subschemas in a large
// document, and compiling it once per Compile call rather than once per
// occurrence is a meaningful saving (spec §13 "Pattern cache").
// Bounded to patternCacheLimit entries, evicted oldest-first, so a
// pathological schema with thousands of distinct patterns can't pin
// unbounded memory.
type patternCache struct {
	mu      sync.Mutex
	entries map[string]*regexp.Regexp
	order   []string
	limit   int
}

const patternCacheLimit = 512

func newPatternCache() *patternCache {
	return &patternCache{entries: make(map[string]*regexp.Regexp), limit: patternCacheLimit}
}

func (c *patternCache) compile(source string) (*regexp.Regexp, error) {
	c.mu.Lock()
	if re, ok := c.entries[source]; ok {
		c.mu.Unlock()
		return re, nil
	}
	c.mu.Unlock()

	translated, err := translateECMA262(source)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, &SchemaError{Kind: ErrKindInvalidSchema, Reason: err.Error()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[source]; !ok {
		if len(c.order) >= c.limit {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.entries[source] = re
		c.order = append(c.order, source)
	}
	return c.entries[source], nil
}

// translateECMA262 returns the pattern unchanged for RE2 (Go's regexp
// engine); ECMA-262-only escapes such as \cX are not rewritten, and \d,
// \w and \s keep RE2's ASCII meaning. It rejects constructs RE2 cannot
// execute at all — lookaround and backreferences — with
// ErrRegexUnsupported rather than silently mismatching them. No
// backtracking engine is wired in to fall back to, so a pattern needing
// one legitimately fails compilation here (spec §4.6.1 "Pattern
// fallback").
func translateECMA262(source string) (string, error) {
	if strings.Contains(source, "(?=") || strings.Contains(source, "(?!") ||
		strings.Contains(source, "(?<=") || strings.Contains(source, "(?<!") {
		return "", ErrRegexUnsupported
	}
	for i := 0; i+1 < len(source); i++ {
		if source[i] == '\\' && source[i+1] >= '1' && source[i+1] <= '9' {
			return "", ErrRegexUnsupported
		}
	}
	return source, nil
}
