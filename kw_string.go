package jsonschema

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// minLengthKeyword and maxLengthKeyword count Unicode code points, not
// bytes — a UTF-8 multi-byte character is one "character" for JSON
// Schema's purposes regardless of its encoded length (spec §4.6).
type minLengthKeyword struct{ limit int }

func (k *minLengthKeyword) Name() string { return "minLength" }

func (k *minLengthKeyword) Evaluate(ec *EvalContext) {
	s, ok := ec.Instance.(string)
	if !ok {
		return
	}
	if n := utf8.RuneCountInString(s); n < k.limit {
		loc := ec.NodeResult.SchemaLocation + "/minLength"
		ec.NodeResult.fail(newValidationError(KindMinLength, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must be at least %d characters", k.limit),
			map[string]any{"minLength": k.limit, "actual": n}))
	}
}

type maxLengthKeyword struct{ limit int }

func (k *maxLengthKeyword) Name() string { return "maxLength" }

func (k *maxLengthKeyword) Evaluate(ec *EvalContext) {
	s, ok := ec.Instance.(string)
	if !ok {
		return
	}
	if n := utf8.RuneCountInString(s); n > k.limit {
		loc := ec.NodeResult.SchemaLocation + "/maxLength"
		ec.NodeResult.fail(newValidationError(KindMaxLength, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must be at most %d characters", k.limit),
			map[string]any{"maxLength": k.limit, "actual": n}))
	}
}

// patternKeyword implements "pattern" against a pre-compiled regexp; the
// pattern was translated and cached at compile time by pattern_compile.go
// — ErrRegexUnsupported there is what stops an unsupported ECMA-262
// feature (lookaround, backreferences) from ever reaching this keyword.
type patternKeyword struct {
	re     *regexp.Regexp
	source string
}

func (k *patternKeyword) Name() string { return "pattern" }

func (k *patternKeyword) Evaluate(ec *EvalContext) {
	s, ok := ec.Instance.(string)
	if !ok {
		return
	}
	if k.re.MatchString(s) {
		return
	}
	loc := ec.NodeResult.SchemaLocation + "/pattern"
	ec.NodeResult.fail(newValidationError(KindPattern, loc, ec.Path.String(), ec.Instance,
		fmt.Sprintf("must match pattern %q", k.source),
		map[string]any{"pattern": k.source}))
}
