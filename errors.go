package jsonschema

import (
	"errors"
	"fmt"
)

// === Infrastructure errors (teacher-style sentinels, grouped by concern) ===

var (
	// ErrNoLoaderRegistered is returned when no loader is registered for a URI's scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from a retrieved schema's body.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching a remote schema.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when a loader receives a non-200 HTTP status.
	ErrInvalidStatusCode = errors.New("invalid http status code")

	// ErrJSONUnmarshal is returned when a schema or instance document fails to decode.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrXMLUnmarshal is returned when contentMediaType: application/xml content fails to decode.
	ErrXMLUnmarshal = errors.New("xml unmarshal failed")

	// ErrYAMLUnmarshal is returned when contentMediaType: application/yaml content fails to decode.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")

	// ErrRegexUnsupported is returned when a pattern needs a backtracking feature
	// (look-around or back-references) that no registered regex engine supports.
	ErrRegexUnsupported = errors.New("pattern requires an unsupported regex feature")
)

// === Reference & URI errors (spec §7) ===

type refErrorKind int

const (
	ErrKindNoSuchResource refErrorKind = iota
	ErrKindUnretrievable
	ErrKindNoSuchAnchor
	ErrKindInvalidAnchor
	ErrKindPointerToNowhere
	ErrKindInvalidPercentEncoding
	ErrKindInvalidArrayIndex
)

func (k refErrorKind) String() string {
	switch k {
	case ErrKindNoSuchResource:
		return "NoSuchResource"
	case ErrKindUnretrievable:
		return "Unretrievable"
	case ErrKindNoSuchAnchor:
		return "NoSuchAnchor"
	case ErrKindInvalidAnchor:
		return "InvalidAnchor"
	case ErrKindPointerToNowhere:
		return "PointerToNowhere"
	case ErrKindInvalidPercentEncoding:
		return "InvalidPercentEncoding"
	case ErrKindInvalidArrayIndex:
		return "InvalidArrayIndex"
	default:
		return "ReferenceError"
	}
}

// ReferenceError covers NoSuchResource, Unretrievable, NoSuchAnchor and InvalidAnchor.
type ReferenceError struct {
	Kind  refErrorKind
	URI   string
	Name  string
	Cause error
}

func (e *ReferenceError) Error() string {
	switch e.Kind {
	case ErrKindUnretrievable:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URI, e.Cause)
	case ErrKindNoSuchAnchor, ErrKindInvalidAnchor:
		return fmt.Sprintf("%s: %s in %s", e.Kind, e.Name, e.URI)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.URI)
	}
}

func (e *ReferenceError) Unwrap() error { return e.Cause }

// PointerError covers PointerToNowhere, InvalidPercentEncoding and InvalidArrayIndex.
type PointerError struct {
	Kind    refErrorKind
	Pointer string
	Segment string
}

func (e *PointerError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("%s: %q in pointer %q", e.Kind, e.Segment, e.Pointer)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Pointer)
}

// URIError covers InvalidUri and UriResolveFailed.
type URIError struct {
	Text      string
	Base      string
	Reference string
	Cause     error
	resolve   bool
}

func (e *URIError) Error() string {
	if e.resolve {
		return fmt.Sprintf("UriResolveFailed: resolving %q against %q: %v", e.Reference, e.Base, e.Cause)
	}
	return fmt.Sprintf("InvalidUri: %q: %v", e.Text, e.Cause)
}

func (e *URIError) Unwrap() error { return e.Cause }

// === Schema (compile-time) errors (spec §7) ===

type schemaErrorKind int

const (
	ErrKindUnknownSpecification schemaErrorKind = iota
	ErrKindInvalidSchema
	ErrKindNullSchema
	ErrKindDuplicateAnchor
)

func (k schemaErrorKind) String() string {
	switch k {
	case ErrKindUnknownSpecification:
		return "UnknownSpecification"
	case ErrKindInvalidSchema:
		return "InvalidSchema"
	case ErrKindNullSchema:
		return "NullSchema"
	case ErrKindDuplicateAnchor:
		return "DuplicateAnchor"
	default:
		return "SchemaError"
	}
}

// SchemaError is raised at compile time; compilation fails as a whole when
// this is returned (spec §7 "Propagation").
type SchemaError struct {
	Kind     schemaErrorKind
	Location string
	URI      string
	Name     string
	Reason   string
	Cause    error
}

func (e *SchemaError) Error() string {
	switch e.Kind {
	case ErrKindInvalidSchema:
		return fmt.Sprintf("InvalidSchema at %s: %s", e.Location, e.Reason)
	case ErrKindDuplicateAnchor:
		return fmt.Sprintf("DuplicateAnchor: %q in %s", e.Name, e.URI)
	case ErrKindUnknownSpecification:
		return fmt.Sprintf("UnknownSpecification: %s", e.Reason)
	default:
		return e.Kind.String()
	}
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// NewCompilationError builds a SchemaError from a kind, location and
// reason, so callers can use errors.As(err, &target) against the typed
// kinds above.
func NewCompilationError(kind schemaErrorKind, location, reason string) *SchemaError {
	return &SchemaError{Kind: kind, Location: location, Reason: reason}
}
