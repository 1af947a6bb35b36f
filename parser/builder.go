package parser

import (
	"strings"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/subject"
)

// Builder assembles a Parser declaratively.
type Builder struct {
	standard   bool
	rules      map[string]ParseRule
	validators []ValidationRule
}

// NewBuilder creates an empty parser builder.
func NewBuilder() *Builder {
	return &Builder{rules: make(map[string]ParseRule)}
}

// WithStandardRules preloads the baseline validators.
func (b *Builder) WithStandardRules() *Builder {
	b.standard = true
	return b
}

// WithRule registers a custom parsing rule for a context.
func (b *Builder) WithRule(context string, rule ParseRule) *Builder {
	b.rules[context] = rule
	return b
}

// WithValidator appends a validation rule.
func (b *Builder) WithValidator(rule ValidationRule) *Builder {
	b.validators = append(b.validators, rule)
	return b
}

// WithFlexibleContext registers a rule for the context that joins
// every token between the context and the trailing event/version pair
// into the aggregate, so "graph.a.b.c.updated.v2" parses with
// aggregate "a.b.c". At least one middle token is required; an empty
// aggregate is rejected.
func (b *Builder) WithFlexibleContext(context string) *Builder {
	return b.WithRule(context, ParseRule{
		Name:        context + "_flexible",
		Description: "accepts nested aggregates under " + context,
		Parse:       flexibleParse(context),
	})
}

// Build creates the parser.
func (b *Builder) Build() *Parser {
	var p *Parser
	if b.standard {
		p = WithStandardRules()
	} else {
		p = New()
	}
	for context, rule := range b.rules {
		p.RegisterRule(context, rule)
	}
	for _, v := range b.validators {
		p.RegisterValidator(v)
	}
	return p
}

func flexibleParse(context string) ParseFunc {
	return func(raw string) (subject.Parts, error) {
		tokens := strings.Split(raw, ".")
		if len(tokens) < 3 {
			return subject.Parts{}, errors.Parsef("subject %q needs at least 3 parts", raw)
		}
		if tokens[0] != context {
			return subject.Parts{}, errors.Parsef("subject %q does not belong to context %q", raw, context)
		}

		version := tokens[len(tokens)-1]
		eventType := tokens[len(tokens)-2]
		aggregate := strings.Join(tokens[1:len(tokens)-2], ".")
		if aggregate == "" {
			return subject.Parts{}, errors.Parsef("subject %q is missing an aggregate", raw)
		}

		for i, tok := range tokens {
			if tok == "" {
				return subject.Parts{}, errors.Parsef("subject part %d cannot be empty", i+1)
			}
		}
		if !subject.ValidToken(eventType) {
			return subject.Parts{}, errors.Parsef("event type %q contains invalid characters", eventType)
		}
		if !subject.ValidToken(version) {
			return subject.Parts{}, errors.Parsef("version %q contains invalid characters", version)
		}

		return subject.Parts{
			Context:   context,
			Aggregate: aggregate,
			EventType: eventType,
			Version:   version,
		}, nil
	}
}
