package err

import (
	"errors"
	"strings"
)

// Error is the base error type for the entire project.
//
// It combines a package name (where the error originated), a
// machine-readable code (what kind of failure), the operation being
// performed, an optional human-readable message, and an optional
// wrapped error. errors.Is matches on the code, so callers can test
// for a failure kind without caring which package raised it.
type Error struct {
	// Package identifies the originating package (e.g. "store", "gitrepo")
	Package string

	// Code is a machine-readable error code. Use the constants below.
	Code string

	// Op is the operation being performed, e.g. "read", "init", "resolve".
	Op string

	// Message provides brief human-readable context.
	Message string

	// Err is the underlying/wrapped error. Can be nil for leaf errors.
	Err error
}

// Error implements the error interface.
// Format: [package][code] operation: message: wrapped_error
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")

	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}

	return result
}

// Unwrap returns the underlying error for errors.Is() and errors.As() support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables error matching by code for errors.Is() checks.
// Two errors match if they have the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a new base error with the specified fields.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with package and operation context.
// Returns nil if err is nil.
func Wrap(err error, pkg, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Op:      op,
		Err:     err,
	}
}

// WrapWithCode wraps an error with package, operation, and code.
// Returns nil if err is nil.
func WrapWithCode(err error, pkg, code, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Err:     err,
	}
}

// Error codes shared across packages. Plain I/O failures (permissions,
// disk full) are wrapped without a code and pass through unchanged.
const (
	// CodeNotARepository indicates no control directory was found while
	// walking up from the starting path.
	CodeNotARepository = "NOT_A_REPOSITORY"

	// CodeAlreadyInitialized indicates the control directory exists and
	// is non-empty at init time.
	CodeAlreadyInitialized = "ALREADY_INITIALIZED"

	// CodeNotADirectory indicates a path collided with an expected directory.
	CodeNotADirectory = "NOT_A_DIRECTORY"

	// CodeConfigMissing indicates a repository without a config file.
	CodeConfigMissing = "CONFIG_MISSING"

	// CodeUnsupportedVersion indicates a repositoryformatversion other than 0.
	CodeUnsupportedVersion = "UNSUPPORTED_FORMAT_VERSION"

	// CodeMalformedObject indicates a header/payload size mismatch or a
	// structural decode failure.
	CodeMalformedObject = "MALFORMED_OBJECT"

	// CodeUnknownObjectType indicates an unrecognized object type keyword.
	CodeUnknownObjectType = "UNKNOWN_OBJECT_TYPE"

	// CodeAmbiguousReference indicates a short hash matching more than
	// one stored object.
	CodeAmbiguousReference = "AMBIGUOUS_REFERENCE"

	// CodeInvalidInput indicates invalid or malformed input parameters.
	CodeInvalidInput = "INVALID_INPUT"

	// CodeInvalidFormat indicates data in an invalid format (e.g. config).
	CodeInvalidFormat = "INVALID_FORMAT"
)

// IsCode checks if an error has a specific error code.
// Works with wrapped errors.
func IsCode(e error, code string) bool {
	var base *Error
	if errors.As(e, &base) {
		return base.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
// Returns empty string if the error is not a base Error.
func GetCode(e error) string {
	var base *Error
	if errors.As(e, &base) {
		return base.Code
	}
	return ""
}
