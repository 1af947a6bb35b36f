package translator

import (
	"strings"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/pattern"
	"github.com/c360/semsubject/subject"
)

// Builder assembles a translator from declarative mappings and custom
// rules. Pattern errors are recorded as they occur and surfaced at
// Build.
type Builder struct {
	rules []Rule
	err   error
}

// NewBuilder creates an empty translator builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Map adds a rule translating subjects that match sourcePattern into
// the target template. The template may reference the source subject's
// components via the placeholders {context}, {aggregate}, {event} and
// {version}:
//
//	builder.Map("internal.*.*.v1", "public.{aggregate}.{event}.v1")
func (b *Builder) Map(sourcePattern, targetTemplate string) *Builder {
	return b.MapNamed("map_"+sourcePattern, sourcePattern, targetTemplate)
}

// MapNamed is Map with an explicit rule name.
func (b *Builder) MapNamed(name, sourcePattern, targetTemplate string) *Builder {
	if b.err != nil {
		return b
	}
	p, err := pattern.New(sourcePattern)
	if err != nil {
		b.err = err
		return b
	}

	b.rules = append(b.rules, NewRule(name, p, Template(targetTemplate)))
	return b
}

// Template builds a TranslateFunc from a target template with
// {context}, {aggregate}, {event} and {version} placeholders.
func Template(targetTemplate string) TranslateFunc {
	return func(s subject.Subject) (subject.Subject, error) {
		return subject.New(expandTemplate(targetTemplate, s))
	}
}

// TranslateContext adds an invertible rule rewriting every subject in
// fromContext into toContext, leaving the other components untouched.
func (b *Builder) TranslateContext(fromContext, toContext string) *Builder {
	if b.err != nil {
		return b
	}
	source, err := pattern.New(fromContext + ".>")
	if err != nil {
		b.err = err
		return b
	}
	target, err := pattern.New(toContext + ".>")
	if err != nil {
		b.err = err
		return b
	}

	rule := NewRule("context_"+fromContext+"_"+toContext, source, replaceContext(toContext)).
		WithTargetPattern(target).
		WithReverse(replaceContext(fromContext))
	b.rules = append(b.rules, rule)
	return b
}

// Rule adds a custom rule.
func (b *Builder) Rule(rule Rule) *Builder {
	b.rules = append(b.rules, rule)
	return b
}

// Build returns the translator, or the first pattern error recorded by
// a setter.
func (b *Builder) Build() (*Translator, error) {
	if b.err != nil {
		return nil, errors.Wrap(b.err, errors.KindValidation, "translator builder")
	}
	t := New()
	for _, rule := range b.rules {
		t.Register(rule)
	}
	return t, nil
}

// expandTemplate substitutes subject components into a target
// template.
func expandTemplate(template string, s subject.Subject) string {
	r := strings.NewReplacer(
		"{context}", s.Context(),
		"{aggregate}", s.Aggregate(),
		"{event}", s.EventType(),
		"{version}", s.Version(),
	)
	return r.Replace(template)
}

func replaceContext(newContext string) TranslateFunc {
	return func(s subject.Subject) (subject.Subject, error) {
		parts := s.Parts()
		parts.Context = newContext
		return subject.FromParts(parts), nil
	}
}
