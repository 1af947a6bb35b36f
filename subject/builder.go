package subject

import "github.com/c360/semsubject/errors"

// Builder constructs a Subject from individually supplied components.
// All four components are required; validation is deferred to Build so
// setters can be chained in any order without partial checks.
type Builder struct {
	context   string
	aggregate string
	eventType string
	version   string
}

// NewBuilder creates an empty subject builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Context sets the bounded context component.
func (b *Builder) Context(context string) *Builder {
	b.context = context
	return b
}

// Aggregate sets the aggregate component.
func (b *Builder) Aggregate(aggregate string) *Builder {
	b.aggregate = aggregate
	return b
}

// EventType sets the event type component.
func (b *Builder) EventType(eventType string) *Builder {
	b.eventType = eventType
	return b
}

// Version sets the version component.
func (b *Builder) Version(version string) *Builder {
	b.version = version
	return b
}

// Build validates the collected components and returns the Subject.
// Returns a validation error naming the first missing component, or an
// invalid format error when a component fails the charset rules.
func (b *Builder) Build() (Subject, error) {
	switch {
	case b.context == "":
		return Subject{}, errors.Validationf("context is required")
	case b.aggregate == "":
		return Subject{}, errors.Validationf("aggregate is required")
	case b.eventType == "":
		return Subject{}, errors.Validationf("event type is required")
	case b.version == "":
		return Subject{}, errors.Validationf("version is required")
	}

	parts := NewParts(b.context, b.aggregate, b.eventType, b.version)
	// Route through the parser so builder-made subjects obey the same
	// charset rules as parsed ones.
	return New(parts.Subject())
}
