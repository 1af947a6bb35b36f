package pattern

import (
	"strings"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/subject"
)

// tokenKind discriminates the three kinds of pattern tokens.
type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenSingleWildcard
	tokenMultiWildcard
)

// token is one position in a parsed pattern.
type token struct {
	kind    tokenKind
	literal string // set only for tokenLiteral
}

// Pattern matches subjects using NATS wildcard syntax:
//   - a literal token must match the subject token exactly
//   - `*` matches exactly one token
//   - `>` matches one or more tokens and may only appear last
//
// Patterns are immutable after construction and cheap to share across
// concurrent match calls.
type Pattern struct {
	raw    string
	tokens []token
}

// New tokenizes and validates a pattern string.
//
// Returns an invalid pattern error when the pattern is empty, contains
// an empty token, places `>` anywhere but the final position, or uses
// characters outside [A-Za-z0-9_-] in a literal token.
func New(pattern string) (Pattern, error) {
	if pattern == "" {
		return Pattern{}, errors.InvalidPatternf("pattern cannot be empty")
	}

	parts := strings.Split(pattern, ".")
	tokens := make([]token, 0, len(parts))

	for i, part := range parts {
		switch part {
		case "":
			return Pattern{}, errors.InvalidPatternf("empty token at position %d in pattern %q", i+1, pattern)
		case "*":
			tokens = append(tokens, token{kind: tokenSingleWildcard})
		case ">":
			if i != len(parts)-1 {
				return Pattern{}, errors.InvalidPatternf(
					"multi-wildcard '>' can only appear at the end of a pattern")
			}
			tokens = append(tokens, token{kind: tokenMultiWildcard})
		default:
			if !subject.ValidToken(part) {
				return Pattern{}, errors.InvalidPatternf("token %q contains invalid characters", part)
			}
			tokens = append(tokens, token{kind: tokenLiteral, literal: part})
		}
	}

	return Pattern{raw: pattern, tokens: tokens}, nil
}

// MustNew is like New but panics on error. Intended for patterns
// hard-coded at program start.
func MustNew(pattern string) Pattern {
	p, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the raw pattern string.
func (p Pattern) String() string {
	return p.raw
}

// Matches reports whether a subject matches this pattern.
func (p Pattern) Matches(s subject.Subject) bool {
	return p.MatchesString(s.String())
}

// MatchesString reports whether a raw subject string matches this
// pattern. It never errors: any string can be tested, and strings that
// are not valid subjects simply fail to match literal rules.
func (p Pattern) MatchesString(s string) bool {
	return p.matchesTokens(strings.Split(s, "."))
}

// matchesTokens walks pattern and subject tokens in lock-step. A
// multi-wildcard reached mid-walk matches immediately: the preceding
// tokens already matched and `>` consumes the one-or-more remaining
// subject tokens (position validation at construction guarantees it is
// last). Otherwise both sequences must be exhausted together.
func (p Pattern) matchesTokens(subjectTokens []string) bool {
	pi, si := 0, 0

	for pi < len(p.tokens) && si < len(subjectTokens) {
		switch p.tokens[pi].kind {
		case tokenMultiWildcard:
			return true
		case tokenSingleWildcard:
			pi++
			si++
		case tokenLiteral:
			if p.tokens[pi].literal != subjectTokens[si] {
				return false
			}
			pi++
			si++
		}
	}

	return pi == len(p.tokens) && si == len(subjectTokens)
}

// IsLiteral reports whether the pattern contains no wildcards and so
// matches exactly one subject.
func (p Pattern) IsLiteral() bool {
	for _, t := range p.tokens {
		if t.kind != tokenLiteral {
			return false
		}
	}
	return true
}

// HasMultiWildcard reports whether the pattern ends with `>`.
func (p Pattern) HasMultiWildcard() bool {
	return len(p.tokens) > 0 && p.tokens[len(p.tokens)-1].kind == tokenMultiWildcard
}

// Matcher is implemented by values that can be tested against a
// pattern.
type Matcher interface {
	// MatchesPattern reports whether this value matches the pattern.
	MatchesPattern(p Pattern) bool
}

// SubjectString adapts a raw string to the Matcher interface.
type SubjectString string

// MatchesPattern implements Matcher for raw subject strings.
func (s SubjectString) MatchesPattern(p Pattern) bool {
	return p.MatchesString(string(s))
}
