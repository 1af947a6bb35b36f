package algebra

import (
	"fmt"
	"strings"
	"sync"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/pattern"
	"github.com/c360/semsubject/subject"
)

// ComposerFunc combines two subjects into a new one. Implementations
// are stored in the rule registry and invoked concurrently; they must
// not mutate shared state.
type ComposerFunc func(left, right subject.Subject) (subject.Subject, error)

// TransformFunc rewrites a single subject. The same concurrency rules
// as ComposerFunc apply.
type TransformFunc func(subject.Subject) (subject.Subject, error)

// CompositionRule defines how a specific pair of subjects composes.
// Rules are selected by registry key, not by pattern scan; the
// patterns document the operand shapes the composer expects.
type CompositionRule struct {
	// Name identifies the rule.
	Name string
	// LeftPattern describes the expected left operand.
	LeftPattern pattern.Pattern
	// RightPattern describes the expected right operand.
	RightPattern pattern.Pattern
	// Composer produces the composed subject.
	Composer ComposerFunc
}

// Transformation is a named, pattern-guarded subject rewrite.
type Transformation struct {
	// Name identifies the transformation.
	Name string
	// InputPattern guards the input: subjects that do not match are
	// rejected before the function runs.
	InputPattern pattern.Pattern
	// Transform produces the rewritten subject.
	Transform TransformFunc
}

// Apply runs the transformation, enforcing the input-pattern guard.
func (t Transformation) Apply(s subject.Subject) (subject.Subject, error) {
	if !t.InputPattern.Matches(s) {
		return subject.Subject{}, errors.Validationf(
			"subject %q does not match transformation pattern %q", s, t.InputPattern)
	}
	return t.Transform(s)
}

// Algebra performs compositional operations on subjects. Composition
// rules and transformations are registered by name into registries
// shared by every caller holding the Algebra; registration is safe
// concurrently with lookups.
type Algebra struct {
	mu              sync.RWMutex
	rules           map[string]CompositionRule
	transformations map[string]Transformation
}

// New creates an empty algebra.
func New() *Algebra {
	return &Algebra{
		rules:           make(map[string]CompositionRule),
		transformations: make(map[string]Transformation),
	}
}

// RegisterRule registers (or replaces) a composition rule under a key.
// Keys follow the dispatch scheme used by Compose, e.g.
// "sequence:created:reserved".
func (a *Algebra) RegisterRule(key string, rule CompositionRule) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rules[key] = rule
}

// RegisterTransformation registers (or replaces) a transformation by
// name.
func (a *Algebra) RegisterTransformation(name string, t Transformation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transformations[name] = t
}

func (a *Algebra) lookupRule(key string) (CompositionRule, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rule, ok := a.rules[key]
	return rule, ok
}

func (a *Algebra) lookupTransformation(name string) (Transformation, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	t, ok := a.transformations[name]
	return t, ok
}

// Compose combines two subjects under the given operation. For the
// unary operations (Transform, Project, Inject) the right operand is
// ignored; pass the left subject twice by convention.
//
// Each operation first looks for a registered rule under its dispatch
// key and falls back to a deterministic default when none exists;
// Transform alone has no default and fails with a not found error for
// unregistered names.
func (a *Algebra) Compose(left, right subject.Subject, op Operation) (subject.Subject, error) {
	switch op.kind {
	case opSequence:
		return a.sequence(left, right)
	case opParallel:
		return a.parallel(left, right)
	case opChoice:
		return a.choice(left, right, op.condition)
	case opTransform:
		return a.transform(left, op.name)
	case opProject:
		return a.project(left, op.fields)
	case opInject:
		return a.inject(left, op.context)
	default:
		return subject.Subject{}, errors.Compositionf("unknown operation %q", op)
	}
}

// sequence composes left-then-right. Default: joined contexts and
// aggregates with "-", event type "sequenced".
func (a *Algebra) sequence(left, right subject.Subject) (subject.Subject, error) {
	key := fmt.Sprintf("sequence:%s:%s", left.EventType(), right.EventType())
	if rule, ok := a.lookupRule(key); ok {
		return rule.Composer(left, right)
	}

	return subject.FromParts(subject.NewParts(
		left.Context()+"-"+right.Context(),
		left.Aggregate()+"-"+right.Aggregate(),
		"sequenced",
		"v1",
	)), nil
}

// parallel composes concurrent subjects. Default: joined with "+",
// event type "parallel".
func (a *Algebra) parallel(left, right subject.Subject) (subject.Subject, error) {
	key := fmt.Sprintf("parallel:%s:%s", left.EventType(), right.EventType())
	if rule, ok := a.lookupRule(key); ok {
		return rule.Composer(left, right)
	}

	return subject.FromParts(subject.NewParts(
		left.Context()+"+"+right.Context(),
		left.Aggregate()+"+"+right.Aggregate(),
		"parallel",
		"v1",
	)), nil
}

// choice selects between subjects. Default: left context is primary,
// aggregates joined with "|", event type "choice_<condition>".
func (a *Algebra) choice(left, right subject.Subject, condition string) (subject.Subject, error) {
	key := fmt.Sprintf("choice:%s:%s:%s", left.EventType(), right.EventType(), condition)
	if rule, ok := a.lookupRule(key); ok {
		return rule.Composer(left, right)
	}

	return subject.FromParts(subject.NewParts(
		left.Context(),
		left.Aggregate()+"|"+right.Aggregate(),
		"choice_"+condition,
		"v1",
	)), nil
}

// transform applies a named transformation; there is no default.
func (a *Algebra) transform(s subject.Subject, name string) (subject.Subject, error) {
	t, ok := a.lookupTransformation(name)
	if !ok {
		return subject.Subject{}, errors.NotFoundf("transformation %q", name)
	}
	return t.Apply(s)
}

// project derives a field projection. Default: event type
// "projected_<fields joined by underscore>", other components kept.
func (a *Algebra) project(s subject.Subject, fields []string) (subject.Subject, error) {
	key := fmt.Sprintf("project:%s:%s", s.EventType(), strings.Join(fields, ","))
	if rule, ok := a.lookupRule(key); ok {
		return rule.Composer(s, s)
	}

	return subject.FromParts(subject.NewParts(
		s.Context(),
		s.Aggregate(),
		"projected_"+strings.Join(fields, "_"),
		s.Version(),
	)), nil
}

// inject moves the subject into a new context. Default: context
// replaced, everything else kept.
func (a *Algebra) inject(s subject.Subject, newContext string) (subject.Subject, error) {
	key := fmt.Sprintf("inject:%s:%s", s.Context(), newContext)
	if rule, ok := a.lookupRule(key); ok {
		return rule.Composer(s, s)
	}

	return subject.FromParts(subject.NewParts(
		newContext,
		s.Aggregate(),
		s.EventType(),
		s.Version(),
	)), nil
}

// FindMatching returns all subjects from the list that match the
// pattern.
func (a *Algebra) FindMatching(p pattern.Pattern, subjects []subject.Subject) []subject.Subject {
	var matched []subject.Subject
	for _, s := range subjects {
		if p.Matches(s) {
			matched = append(matched, s)
		}
	}
	return matched
}

// CreateLattice builds a lattice over a snapshot of subjects using the
// default generalization strategy.
func (a *Algebra) CreateLattice(subjects []subject.Subject) *Lattice {
	return NewLattice(subjects, DefaultGeneralize)
}
