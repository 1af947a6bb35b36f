package algebra

import "strings"

// opKind discriminates the algebraic operations.
type opKind int

const (
	opSequence opKind = iota
	opParallel
	opChoice
	opTransform
	opProject
	opInject
)

// Operation is an algebraic operation tag passed to Algebra.Compose.
// The zero value is Sequence; use the constructors for the
// parameterized variants.
type Operation struct {
	kind opKind

	// condition is set for Choice.
	condition string
	// name is set for Transform.
	name string
	// fields is set for Project.
	fields []string
	// context is set for Inject.
	context string
}

// Sequence is sequential composition: left happens before right.
func Sequence() Operation {
	return Operation{kind: opSequence}
}

// Parallel is parallel composition: left and right happen
// concurrently.
func Parallel() Operation {
	return Operation{kind: opParallel}
}

// Choice selects between left and right based on a condition.
func Choice(condition string) Operation {
	return Operation{kind: opChoice, condition: condition}
}

// Transform rewrites the left subject using a named transformation;
// the right operand is ignored.
func Transform(name string) Operation {
	return Operation{kind: opTransform, name: name}
}

// Project derives a field projection of the left subject; the right
// operand is ignored.
func Project(fields ...string) Operation {
	return Operation{kind: opProject, fields: fields}
}

// Inject moves the left subject into a different context; the right
// operand is ignored.
func Inject(context string) Operation {
	return Operation{kind: opInject, context: context}
}

// String returns a readable tag for the operation.
func (o Operation) String() string {
	switch o.kind {
	case opSequence:
		return "sequence"
	case opParallel:
		return "parallel"
	case opChoice:
		return "choice:" + o.condition
	case opTransform:
		return "transform:" + o.name
	case opProject:
		return "project:" + strings.Join(o.fields, ",")
	case opInject:
		return "inject:" + o.context
	default:
		return "unknown"
	}
}
