package permission

import (
	"sort"

	"github.com/c360/semsubject/pattern"
	"github.com/c360/semsubject/subject"
)

// Operation enumerates the messaging operations a rule can govern. The
// set is closed: resolution logic switches exhaustively over these
// values.
type Operation int

const (
	// Publish sends messages to a subject.
	Publish Operation = iota
	// Subscribe receives messages from a subject.
	Subscribe
	// Request makes request-reply calls on a subject.
	Request
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	switch o {
	case Publish:
		return "publish"
	case Subscribe:
		return "subscribe"
	case Request:
		return "request"
	default:
		return "unknown"
	}
}

// AllOperations returns the full operation set.
func AllOperations() []Operation {
	return []Operation{Publish, Subscribe, Request}
}

// Policy is the outcome attached to a rule or to a permission set's
// default.
type Policy int

const (
	// Deny rejects the operation.
	Deny Policy = iota
	// Allow permits the operation.
	Allow
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	switch p {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Rule binds a subject pattern and a set of operations to a policy.
type Rule struct {
	// Pattern selects the subjects this rule applies to.
	Pattern pattern.Pattern
	// Operations is the set of operations this rule governs.
	Operations map[Operation]bool
	// Policy is the outcome when the rule wins resolution.
	Policy Policy
	// Description optionally documents the rule's intent.
	Description string
}

// NewRule creates a rule from a pattern, operations and policy.
func NewRule(p pattern.Pattern, ops []Operation, policy Policy) Rule {
	return Rule{Pattern: p, Operations: operationSet(ops), Policy: policy}
}

// AllowRule creates an allow rule.
func AllowRule(p pattern.Pattern, ops ...Operation) Rule {
	return NewRule(p, ops, Allow)
}

// DenyRule creates a deny rule.
func DenyRule(p pattern.Pattern, ops ...Operation) Rule {
	return NewRule(p, ops, Deny)
}

// WithDescription returns a copy of the rule with a description set.
func (r Rule) WithDescription(description string) Rule {
	r.Description = description
	return r
}

// Matches reports whether this rule applies to the subject and
// operation.
func (r Rule) Matches(s subject.Subject, op Operation) bool {
	return r.Operations[op] && r.Pattern.Matches(s)
}

func operationSet(ops []Operation) map[Operation]bool {
	set := make(map[Operation]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return set
}

// Permissions is an ordered set of rules plus a default policy. A
// Permissions value is built once and then shared read-only across any
// number of concurrent queries; use Store to swap in an updated set
// atomically.
type Permissions struct {
	rules         []Rule
	defaultPolicy Policy
}

// New creates an empty permission set with the given default policy.
func New(defaultPolicy Policy) Permissions {
	return Permissions{defaultPolicy: defaultPolicy}
}

// Rules returns a copy of the rule list in registration order.
func (p Permissions) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}

// DefaultPolicy returns the policy applied when no rule matches.
func (p Permissions) DefaultPolicy() Policy {
	return p.defaultPolicy
}

// Allowed reports whether the operation is permitted on the subject.
//
// All rules whose pattern matches the subject and whose operation set
// contains the operation are collected and sorted most-specific-first;
// the winning rule's policy decides. Specificity, not registration
// order, is authoritative: a narrow deny overrides a broad allow and
// vice versa. Among equally specific matches the sort is stable, so
// the first-registered rule wins. When nothing matches the default
// policy applies.
//
// Denial is a decision, not an error.
func (p Permissions) Allowed(s subject.Subject, op Operation) bool {
	var matching []Rule
	for _, rule := range p.rules {
		if rule.Matches(s, op) {
			matching = append(matching, rule)
		}
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Pattern.MoreSpecificThan(matching[j].Pattern)
	})

	if len(matching) > 0 {
		return matching[0].Policy == Allow
	}
	return p.defaultPolicy == Allow
}

// CanPublish reports whether publishing to the subject is allowed.
func (p Permissions) CanPublish(s subject.Subject) bool {
	return p.Allowed(s, Publish)
}

// CanSubscribe reports whether subscribing to the subject is allowed.
func (p Permissions) CanSubscribe(s subject.Subject) bool {
	return p.Allowed(s, Subscribe)
}

// CanRequest reports whether request-reply on the subject is allowed.
func (p Permissions) CanRequest(s subject.Subject) bool {
	return p.Allowed(s, Request)
}

// FilterAllowed returns the subjects from the list on which the
// operation is permitted.
func (p Permissions) FilterAllowed(subjects []subject.Subject, op Operation) []subject.Subject {
	var allowed []subject.Subject
	for _, s := range subjects {
		if p.Allowed(s, op) {
			allowed = append(allowed, s)
		}
	}
	return allowed
}

// Merge returns a new permission set containing this set's rules
// followed by the other's. No specificity de-duplication is performed;
// resolution handles overlap at query time. The receiver's default
// policy is kept.
func (p Permissions) Merge(other Permissions) Permissions {
	merged := Permissions{
		rules:         make([]Rule, 0, len(p.rules)+len(other.rules)),
		defaultPolicy: p.defaultPolicy,
	}
	merged.rules = append(merged.rules, p.rules...)
	merged.rules = append(merged.rules, other.rules...)
	return merged
}

// Intersect computes an allow-only approximation of the set
// intersection of two permission sets, with default deny. For every
// pair of allow rules (one from each side) whose operation sets
// intersect, the more specific of the two patterns is kept with the
// intersected operations.
func (p Permissions) Intersect(other Permissions) Permissions {
	result := New(Deny)

	for _, selfRule := range p.rules {
		if selfRule.Policy != Allow {
			continue
		}
		for _, otherRule := range other.rules {
			if otherRule.Policy != Allow {
				continue
			}

			ops := intersectOperations(selfRule.Operations, otherRule.Operations)
			if len(ops) == 0 {
				continue
			}

			winner := otherRule.Pattern
			if selfRule.Pattern.MoreSpecificThan(otherRule.Pattern) {
				winner = selfRule.Pattern
			}
			result.rules = append(result.rules, Rule{
				Pattern:    winner,
				Operations: ops,
				Policy:     Allow,
			})
		}
	}

	return result
}

func intersectOperations(a, b map[Operation]bool) map[Operation]bool {
	out := make(map[Operation]bool)
	for op := range a {
		if b[op] {
			out[op] = true
		}
	}
	return out
}
