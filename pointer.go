package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// escapePointerSegment/pointerUnescaper implement the '~1' -> '/' , '~0' -> '~'
// JSON Pointer escaping rules (RFC 6901 §3), applied in that order as
// spec §4.1 requires (percent-decode first, then unescape '~' sequences).
var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func escapePointerSegment(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}

// splitPointer splits a fragment string already stripped of its leading
// '#' into its percent-decoded, then '~'-unescaped segments. It relies on
// github.com/kaptinlin/jsonpointer for the raw split, matching the
// teacher's ref.go usage of that library, then applies URL percent-decoding
// per segment (JSON Pointers used as URI fragments are also
// percent-encoded; plain JSON Pointers are not, so percent-decoding is a
// no-op when a segment contains no '%' escapes).
func splitPointer(fragment string) ([]string, error) {
	raw := jsonpointer.Parse(fragment)
	segments := make([]string, len(raw))
	for i, seg := range raw {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return nil, &PointerError{Kind: ErrKindInvalidPercentEncoding, Pointer: fragment}
		}
		segments[i] = decoded
	}
	return segments, nil
}

// evalPointer walks a JSON value (the generic any-tree produced by decoding
// a schema or instance document) along a JSON Pointer's segments, per spec
// §4.1: object steps look up the decoded key verbatim; array steps require
// a non-negative decimal integer with no leading zeros (except "0" itself)
// and within bounds.
func evalPointer(root any, fragment string) (any, error) {
	if fragment == "" {
		return root, nil
	}
	segments, err := splitPointer(fragment)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, seg := range segments {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, &PointerError{Kind: ErrKindPointerToNowhere, Pointer: fragment}
			}
			cur = next
		case []any:
			idx, ok := decimalArrayIndex(seg)
			if !ok {
				return nil, &PointerError{Kind: ErrKindInvalidArrayIndex, Pointer: fragment, Segment: seg}
			}
			if idx < 0 || idx >= len(v) {
				return nil, &PointerError{Kind: ErrKindPointerToNowhere, Pointer: fragment}
			}
			cur = v[idx]
		default:
			return nil, &PointerError{Kind: ErrKindPointerToNowhere, Pointer: fragment}
		}
	}
	return cur, nil
}

// decimalArrayIndex parses a JSON Pointer array segment: a non-negative
// decimal integer with no leading zeros, except the single digit "0".
func decimalArrayIndex(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	if segment == "0" {
		return 0, true
	}
	if segment[0] == '0' || segment[0] < '1' || segment[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return n, true
}

// pointerPath is a persistent cons-list of instance-location chunks (spec
// §3 "Location"): a string property key or an int array index. It is only
// materialized into a '/'-delimited string when an error is emitted;
// interior evaluation never allocates a pointer string, matching spec's
// "interior evaluation never allocates a pointer string" requirement.
type pointerPath struct {
	parent *pointerPath
	key    string
	index  int
	isKey  bool
}

func (p *pointerPath) pushKey(key string) *pointerPath {
	return &pointerPath{parent: p, key: key, isKey: true}
}

func (p *pointerPath) pushIndex(i int) *pointerPath {
	return &pointerPath{parent: p, index: i, isKey: false}
}

// String materializes the path into a JSON Pointer string.
func (p *pointerPath) String() string {
	if p == nil {
		return ""
	}
	var chunks []string
	for cur := p; cur != nil; cur = cur.parent {
		if cur.isKey {
			chunks = append(chunks, escapePointerSegment(cur.key))
		} else {
			chunks = append(chunks, strconv.Itoa(cur.index))
		}
	}
	var b strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(chunks[i])
	}
	return b.String()
}
