package parser

import (
	"strings"
	"sync"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/subject"
)

// ParseFunc parses a raw subject string into parts. Registered
// functions are shared by concurrent callers and must not mutate
// shared state.
type ParseFunc func(string) (subject.Parts, error)

// ValidateFunc checks parsed parts, returning a validation error to
// reject them.
type ValidateFunc func(subject.Parts) error

// ParseRule is a custom parsing rule registered for a context.
type ParseRule struct {
	// Name identifies the rule.
	Name string
	// Description documents the format the rule accepts.
	Description string
	// Parse converts the raw string into parts.
	Parse ParseFunc
}

// ValidationRule is a named check run against parsed parts.
type ValidationRule struct {
	// Name identifies the validator.
	Name string
	// Validate rejects parts by returning an error.
	Validate ValidateFunc
}

// Parser parses subject strings with pluggable per-context rules and
// a validator chain. When the first token of a subject matches a
// registered context, that context's rule replaces standard four-part
// parsing; the validators then run in registration order against the
// result, first failure short-circuiting.
//
// Registration is safe concurrently with parsing.
type Parser struct {
	mu         sync.RWMutex
	rules      map[string]ParseRule
	validators []ValidationRule
}

// New creates a parser with no custom rules or validators; it behaves
// exactly like subject.New.
func New() *Parser {
	return &Parser{rules: make(map[string]ParseRule)}
}

// RegisterRule registers (or replaces) a custom parsing rule for a
// context.
func (p *Parser) RegisterRule(context string, rule ParseRule) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rules[context] = rule
}

// RegisterValidator appends a validation rule to the chain.
func (p *Parser) RegisterValidator(rule ValidationRule) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.validators = append(p.validators, rule)
}

// Parse parses a subject string, applying any custom context rule and
// the validator chain.
func (p *Parser) Parse(raw string) (subject.Subject, error) {
	if raw == "" {
		return subject.Subject{}, errors.InvalidFormatf("empty subject")
	}

	context, _, _ := strings.Cut(raw, ".")

	if rule, ok := p.lookupRule(context); ok {
		parts, err := rule.Parse(raw)
		if err != nil {
			return subject.Subject{}, errors.Wrap(err, errors.KindParse, "rule "+rule.Name)
		}
		if err := p.validate(parts); err != nil {
			return subject.Subject{}, err
		}
		return subject.FromParts(parts), nil
	}

	parts, err := subject.ParseParts(raw)
	if err != nil {
		return subject.Subject{}, err
	}
	if err := p.validate(parts); err != nil {
		return subject.Subject{}, err
	}
	return subject.FromParts(parts), nil
}

func (p *Parser) lookupRule(context string) (ParseRule, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rule, ok := p.rules[context]
	return rule, ok
}

// validate runs every validator in registration order; the first
// failure is surfaced.
func (p *Parser) validate(parts subject.Parts) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, v := range p.validators {
		if err := v.Validate(parts); err != nil {
			return errors.Wrap(err, errors.KindValidation, "validator "+v.Name)
		}
	}
	return nil
}

// WithStandardRules creates a parser preloaded with the baseline
// validators: versions must start with 'v' and context names are
// capped at 32 characters.
func WithStandardRules() *Parser {
	p := New()

	p.RegisterValidator(ValidationRule{
		Name: "version_format",
		Validate: func(parts subject.Parts) error {
			if !strings.HasPrefix(parts.Version, "v") {
				return errors.Validationf("version must start with 'v'")
			}
			return nil
		},
	})

	p.RegisterValidator(ValidationRule{
		Name: "context_length",
		Validate: func(parts subject.Parts) error {
			if len(parts.Context) > 32 {
				return errors.Validationf("context name too long (max 32 chars)")
			}
			return nil
		},
	})

	return p
}
