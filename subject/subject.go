package subject

import (
	"fmt"
	"strings"

	"github.com/c360/semsubject/errors"
)

// Parts holds the four components of a parsed subject.
//
// Examples:
//   - Parts{Context: "orders", Aggregate: "order", EventType: "created", Version: "v1"} -> "orders.order.created.v1"
//   - Parts{Context: "people", Aggregate: "person", EventType: "updated", Version: "v2"} -> "people.person.updated.v2"
type Parts struct {
	// Context is the bounded context name (e.g., "people", "orders").
	Context string
	// Aggregate is the aggregate root type (e.g., "person", "order").
	Aggregate string
	// EventType is the event type (e.g., "created", "updated").
	EventType string
	// Version is the schema version (e.g., "v1", "v2").
	Version string
}

// NewParts creates Parts from the four components. No validation is
// performed; use ParseParts or Builder when the components come from
// untrusted input.
func NewParts(context, aggregate, eventType, version string) Parts {
	return Parts{
		Context:   context,
		Aggregate: aggregate,
		EventType: eventType,
		Version:   version,
	}
}

// ParseParts parses a subject string into Parts. Expects exactly four
// dot-separated non-empty tokens restricted to [A-Za-z0-9_-].
func ParseParts(s string) (Parts, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Parts{}, errors.InvalidFormatf(
			"subject must have exactly 4 parts separated by dots, got %d: %q", len(parts), s)
	}

	for i, part := range parts {
		if part == "" {
			return Parts{}, errors.InvalidFormatf("subject part %d cannot be empty in %q", i+1, s)
		}
		if !ValidToken(part) {
			return Parts{}, errors.InvalidFormatf("subject part %q contains invalid characters in %q", part, s)
		}
	}

	return Parts{
		Context:   parts[0],
		Aggregate: parts[1],
		EventType: parts[2],
		Version:   parts[3],
	}, nil
}

// Subject returns the dotted subject string for these parts.
func (p Parts) Subject() string {
	return fmt.Sprintf("%s.%s.%s.%s", p.Context, p.Aggregate, p.EventType, p.Version)
}

// String returns the same as Subject().
func (p Parts) String() string {
	return p.Subject()
}

// IsValid checks that all four components are populated.
func (p Parts) IsValid() bool {
	return p.Context != "" && p.Aggregate != "" && p.EventType != "" && p.Version != ""
}

// ValidToken reports whether a token contains only the characters
// allowed in subject components: letters, digits, '_' and '-'.
func ValidToken(token string) bool {
	if token == "" {
		return false
	}
	for _, c := range token {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Subject is an immutable hierarchical message address of the form
// context.aggregate.event_type.version. Subjects are plain value types:
// equality is structural and a Subject can be used as a map key.
//
// "Modification" methods (WithEventType, WithVersion) return new
// Subjects; an existing Subject never changes after construction.
type Subject struct {
	raw   string
	parts Parts
}

// New parses a subject string into a Subject.
//
// Returns an invalid format error if the string does not have exactly
// four non-empty dot-separated tokens, or a token contains characters
// outside [A-Za-z0-9_-].
func New(s string) (Subject, error) {
	parts, err := ParseParts(s)
	if err != nil {
		return Subject{}, err
	}
	return Subject{raw: s, parts: parts}, nil
}

// FromParts creates a Subject from pre-parsed parts. The raw string is
// rebuilt from the parts, so FromParts(p).String() == p.Subject().
func FromParts(parts Parts) Subject {
	return Subject{raw: parts.Subject(), parts: parts}
}

// String returns the raw subject string.
func (s Subject) String() string {
	return s.raw
}

// Parts returns the parsed components.
func (s Subject) Parts() Parts {
	return s.parts
}

// Context returns the bounded context component.
func (s Subject) Context() string {
	return s.parts.Context
}

// Aggregate returns the aggregate component.
func (s Subject) Aggregate() string {
	return s.parts.Aggregate
}

// EventType returns the event type component.
func (s Subject) EventType() string {
	return s.parts.EventType
}

// Version returns the version component.
func (s Subject) Version() string {
	return s.parts.Version
}

// IsZero reports whether the subject is the zero value, as returned by
// failed constructors.
func (s Subject) IsZero() bool {
	return s.raw == ""
}

// Equal compares two subjects structurally.
func (s Subject) Equal(other Subject) bool {
	return s.parts == other.parts
}

// WithEventType returns a new Subject with the event type replaced.
func (s Subject) WithEventType(eventType string) Subject {
	parts := s.parts
	parts.EventType = eventType
	return FromParts(parts)
}

// WithVersion returns a new Subject with the version replaced.
func (s Subject) WithVersion(version string) Subject {
	parts := s.parts
	parts.Version = version
	return FromParts(parts)
}
