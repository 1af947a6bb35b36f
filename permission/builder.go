package permission

import (
	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/pattern"
)

// Builder collects rules incrementally and validates at Build. Pattern
// parse failures are recorded as they occur and surfaced by Build, so
// calls can be chained without per-setter error handling.
type Builder struct {
	rules         []Rule
	defaultPolicy Policy
	err           error
}

// NewBuilder creates a permissions builder with default policy Deny.
func NewBuilder() *Builder {
	return &Builder{defaultPolicy: Deny}
}

// DefaultPolicy sets the policy applied when no rule matches.
func (b *Builder) DefaultPolicy(policy Policy) *Builder {
	b.defaultPolicy = policy
	return b
}

// Allow adds an allow rule for the pattern and operations.
func (b *Builder) Allow(patternStr string, ops ...Operation) *Builder {
	return b.addRule(patternStr, ops, Allow)
}

// Deny adds a deny rule for the pattern and operations.
func (b *Builder) Deny(patternStr string, ops ...Operation) *Builder {
	return b.addRule(patternStr, ops, Deny)
}

// AllowAll adds an allow rule covering every operation.
func (b *Builder) AllowAll(patternStr string) *Builder {
	return b.addRule(patternStr, AllOperations(), Allow)
}

// DenyAll adds a deny rule covering every operation.
func (b *Builder) DenyAll(patternStr string) *Builder {
	return b.addRule(patternStr, AllOperations(), Deny)
}

// Rule adds a pre-built rule.
func (b *Builder) Rule(rule Rule) *Builder {
	b.rules = append(b.rules, rule)
	return b
}

func (b *Builder) addRule(patternStr string, ops []Operation, policy Policy) *Builder {
	if b.err != nil {
		return b
	}
	p, err := pattern.New(patternStr)
	if err != nil {
		b.err = errors.Wrap(err, errors.KindValidation, "permission rule pattern "+patternStr)
		return b
	}
	b.rules = append(b.rules, NewRule(p, ops, policy))
	return b
}

// Build returns the permission set, or the first pattern error
// recorded by a setter.
func (b *Builder) Build() (Permissions, error) {
	if b.err != nil {
		return Permissions{}, b.err
	}
	perms := New(b.defaultPolicy)
	perms.rules = append(perms.rules, b.rules...)
	return perms, nil
}
