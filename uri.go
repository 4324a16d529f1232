package jsonschema

import (
	"net/url"
	"path"
	"strings"
)

// resolveURI implements spec §4.1 resolve(base, reference): parse both as
// URI references per RFC 3986 and return a normalized absolute URI.
//
// Normalization here collapses "."/".." segments and lower-cases the
// scheme and host (net/url.ResolveReference already does the former; the
// latter is applied explicitly below). It does not strip default ports
// (":80", ":443") — a documented divergence from some conformance suites,
// per spec §9 Open Questions.
func resolveURI(base, reference string) (string, error) {
	if reference == "" {
		return normalizeURI(base)
	}
	refURL, err := url.Parse(reference)
	if err != nil {
		return "", &URIError{Text: reference, Cause: err}
	}
	if refURL.IsAbs() {
		return normalizeURL(refURL), nil
	}
	if base == "" {
		return normalizeURL(refURL), nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", &URIError{Text: base, Cause: err}
	}
	resolved := baseURL.ResolveReference(refURL)
	return normalizeURL(resolved), nil
}

func normalizeURI(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", &URIError{Text: s, Cause: err}
	}
	return normalizeURL(u), nil
}

func normalizeURL(u *url.URL) string {
	v := *u
	v.Scheme = strings.ToLower(v.Scheme)
	v.Host = strings.ToLower(v.Host)
	if v.Path != "" {
		v.Path = path.Clean(v.Path)
		if v.Path == "." {
			v.Path = ""
		}
	}
	return v.String()
}

// isAbsoluteURI reports whether s is an absolute URI (has both a scheme
// and, if it's a hierarchical scheme, is otherwise well formed). Relative
// references and bare fragments are not absolute.
func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// splitFragment separates a URI (or URI reference) into its non-fragment
// part and fragment (without the leading '#'); hasFragment is false if there is no
// '#' at all.
func splitFragment(s string) (base string, fragment string, hasFragment bool) {
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// withoutFragment strips any '#...' suffix.
func withoutFragment(s string) string {
	base, _, _ := splitFragment(s)
	return base
}

// syntheticBaseURI generates the "schema:///..." base spec §3 requires for
// resources registered without a declared $id. n should be unique per
// compiler/registry instance (a counter), giving deterministic,
// collision-free synthetic URIs.
func syntheticBaseURI(n uint64) string {
	return "schema:///" + uitoa(n)
}

func uitoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
