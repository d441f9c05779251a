// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Kind classifies the failure modes of a documentation run. Every kind is
// fatal: the run either fully succeeds or stops at the first error without
// touching the target document.
type Kind int

const (
	// KindUnknown is the zero value, returned by KindOf for errors outside
	// the taxonomy.
	KindUnknown Kind = iota

	// KindConfigNotFound: the input YAML path does not resolve to a file.
	KindConfigNotFound

	// KindAccessDenied: a file exists but cannot be read or written.
	KindAccessDenied

	// KindMalformedConfig: the input is not valid YAML.
	KindMalformedConfig

	// KindEmptyConfig: the input parses to a null or empty document.
	KindEmptyConfig

	// KindNoParameters: the document has no parameters list, or it is empty.
	KindNoParameters

	// KindMissingRequiredField: a parameter lacks name or type.
	KindMissingRequiredField

	// KindDanglingStartMarker: the target has a start marker but no end
	// marker after it.
	KindDanglingStartMarker

	// KindDanglingEndMarker: the target has an end marker but no start
	// marker before it.
	KindDanglingEndMarker
)

var kindNames = map[Kind]string{
	KindUnknown:              "Unknown",
	KindConfigNotFound:       "ConfigNotFound",
	KindAccessDenied:         "AccessDenied",
	KindMalformedConfig:      "MalformedConfig",
	KindEmptyConfig:          "EmptyConfig",
	KindNoParameters:         "NoParameters",
	KindMissingRequiredField: "MissingRequiredField",
	KindDanglingStartMarker:  "DanglingStartMarker",
	KindDanglingEndMarker:    "DanglingEndMarker",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is a run failure tagged with its Kind. Msg is the user-facing text;
// Err, when set, is the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError builds a tagged error without an underlying cause.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError builds a tagged error around an underlying cause.
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the taxonomy kind from err, looking through wrapping.
// It returns KindUnknown for nil or untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
