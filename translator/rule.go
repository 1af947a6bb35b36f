package translator

import (
	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/pattern"
	"github.com/c360/semsubject/subject"
)

// TranslateFunc rewrites a subject into another schema. Functions
// stored in a translator are shared across concurrent callers and must
// not mutate shared state.
type TranslateFunc func(subject.Subject) (subject.Subject, error)

// Rule is a pattern-guarded subject rewrite, optionally invertible.
type Rule struct {
	// Name identifies the rule.
	Name string
	// SourcePattern selects the subjects this rule translates.
	SourcePattern pattern.Pattern
	// TargetPattern optionally validates translation results and
	// selects candidates for reverse translation.
	TargetPattern *pattern.Pattern
	// Translate rewrites a matching subject.
	Translate TranslateFunc
	// Reverse optionally inverts the translation.
	Reverse TranslateFunc
}

// NewRule creates a forward-only translation rule.
func NewRule(name string, source pattern.Pattern, translate TranslateFunc) Rule {
	return Rule{Name: name, SourcePattern: source, Translate: translate}
}

// WithTargetPattern returns a copy of the rule that validates
// translation output against the pattern.
func (r Rule) WithTargetPattern(target pattern.Pattern) Rule {
	r.TargetPattern = &target
	return r
}

// WithReverse returns a copy of the rule with a reverse function.
func (r Rule) WithReverse(reverse TranslateFunc) Rule {
	r.Reverse = reverse
	return r
}

// MatchesSource reports whether the rule's source pattern matches the
// subject.
func (r Rule) MatchesSource(s subject.Subject) bool {
	return r.SourcePattern.Matches(s)
}

// MatchesTarget reports whether the rule's target pattern matches the
// subject. Rules without a target pattern match no targets.
func (r Rule) MatchesTarget(s subject.Subject) bool {
	return r.TargetPattern != nil && r.TargetPattern.Matches(s)
}

// Apply translates a subject and validates the result against the
// target pattern when one is set.
func (r Rule) Apply(s subject.Subject) (subject.Subject, error) {
	result, err := r.Translate(s)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, errors.KindTranslation, "rule "+r.Name)
	}

	if r.TargetPattern != nil && !r.TargetPattern.Matches(result) {
		return subject.Subject{}, errors.Translationf(
			"translation result %q does not match target pattern %q", result, r.TargetPattern)
	}

	return result, nil
}

// ApplyReverse inverts a translated subject. Fails with a translation
// error when the rule has no reverse function.
func (r Rule) ApplyReverse(s subject.Subject) (subject.Subject, error) {
	if r.Reverse == nil {
		return subject.Subject{}, errors.Translationf("rule %q has no reverse translation", r.Name)
	}
	result, err := r.Reverse(s)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, errors.KindTranslation, "rule "+r.Name+" reverse")
	}
	return result, nil
}
