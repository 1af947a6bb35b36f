// Package errors provides the error types shared by every semsubject
// package. Errors are classified by Kind so callers can branch on what
// went wrong without string matching, and every failure is plain data
// returned to the immediate caller; nothing in this module retries or
// uses errors for control flow.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies subject errors for handling purposes.
type Kind int

const (
	// KindInvalidFormat indicates a subject string that does not conform
	// to the context.aggregate.event_type.version grammar.
	KindInvalidFormat Kind = iota
	// KindInvalidPattern indicates a malformed wildcard pattern.
	KindInvalidPattern
	// KindParse indicates a custom parse rule failure.
	KindParse
	// KindTranslation indicates a translation rule failure or a result
	// that does not match the rule's target pattern.
	KindTranslation
	// KindComposition indicates a composer function failure.
	KindComposition
	// KindValidation indicates a missing builder field or a validator
	// rejection.
	KindValidation
	// KindNotFound indicates a rule or transformation referenced by a
	// name that was never registered.
	KindNotFound
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidFormat:
		return "invalid format"
	case KindInvalidPattern:
		return "invalid pattern"
	case KindParse:
		return "parse error"
	case KindTranslation:
		return "translation error"
	case KindComposition:
		return "composition error"
	case KindValidation:
		return "validation error"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions. These are the anchors
// for errors.Is checks; constructed errors wrap the matching sentinel.
var (
	ErrInvalidFormat  = errors.New("invalid subject format")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrParse          = errors.New("parse error")
	ErrTranslation    = errors.New("translation error")
	ErrComposition    = errors.New("composition error")
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
)

// sentinel returns the sentinel error for a kind.
func sentinel(k Kind) error {
	switch k {
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindInvalidPattern:
		return ErrInvalidPattern
	case KindParse:
		return ErrParse
	case KindTranslation:
		return ErrTranslation
	case KindComposition:
		return ErrComposition
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrValidation
	}
}

// Error is a classified subject error. It carries the Kind, a message
// describing the specific failure, and optionally the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause when present, otherwise the
// sentinel for the error's kind so errors.Is works against the
// standard variables.
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return sentinel(e.Kind)
}

// New creates a classified error with the given kind and message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an underlying error with a kind and message. Returns nil
// when err is nil.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// InvalidFormatf creates an invalid subject format error.
func InvalidFormatf(format string, args ...any) error {
	return Newf(KindInvalidFormat, format, args...)
}

// InvalidPatternf creates an invalid pattern error.
func InvalidPatternf(format string, args ...any) error {
	return Newf(KindInvalidPattern, format, args...)
}

// Parsef creates a parse error.
func Parsef(format string, args ...any) error {
	return Newf(KindParse, format, args...)
}

// Translationf creates a translation error.
func Translationf(format string, args ...any) error {
	return Newf(KindTranslation, format, args...)
}

// Compositionf creates a composition error.
func Compositionf(format string, args ...any) error {
	return Newf(KindComposition, format, args...)
}

// Validationf creates a validation error.
func Validationf(format string, args ...any) error {
	return Newf(KindValidation, format, args...)
}

// NotFoundf creates a not found error.
func NotFoundf(format string, args ...any) error {
	return Newf(KindNotFound, format, args...)
}

// KindOf returns the kind of a classified error and true, or false when
// the error is not classified.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// isKind reports whether err is classified with the given kind or wraps
// the kind's sentinel.
func isKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	if kind, ok := KindOf(err); ok {
		return kind == k
	}
	return errors.Is(err, sentinel(k))
}

// IsInvalidFormat checks if an error is a subject format error.
func IsInvalidFormat(err error) bool { return isKind(err, KindInvalidFormat) }

// IsInvalidPattern checks if an error is a pattern error.
func IsInvalidPattern(err error) bool { return isKind(err, KindInvalidPattern) }

// IsParse checks if an error is a parse rule error.
func IsParse(err error) bool { return isKind(err, KindParse) }

// IsTranslation checks if an error is a translation error.
func IsTranslation(err error) bool { return isKind(err, KindTranslation) }

// IsComposition checks if an error is a composition error.
func IsComposition(err error) bool { return isKind(err, KindComposition) }

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }
