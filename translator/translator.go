package translator

import (
	"sync"

	"github.com/c360/semsubject/pkg/cache"
	"github.com/c360/semsubject/subject"
)

// Translator rewrites subjects between schemas using registered
// rules. Rules are kept in registration order so the first matching
// rule always wins and translation is deterministic; registration is
// safe concurrently with translation.
type Translator struct {
	mu    sync.RWMutex
	rules []Rule

	// reverse maps translated subject strings back to their originals
	// so round trips can skip the rule scan.
	reverse *cache.Cache[string]
}

// New creates a translator with no rules. A translator without rules
// passes every subject through unchanged.
func New() *Translator {
	return &Translator{reverse: cache.New[string]()}
}

// Register appends a rule to the translation chain.
func (t *Translator) Register(rule Rule) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rules = append(t.rules, rule)
}

// Rules returns the registered rules in order.
func (t *Translator) Rules() []Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Translate rewrites a subject using the first rule whose source
// pattern matches. When no rule matches, the subject is returned
// unchanged; pass-through is a decision, not an error.
//
// Successful translations are recorded in the reverse-lookup cache so
// ReverseTranslate can restore the original exactly.
func (t *Translator) Translate(s subject.Subject) (subject.Subject, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, rule := range t.rules {
		if !rule.MatchesSource(s) {
			continue
		}
		result, err := rule.Apply(s)
		if err != nil {
			return subject.Subject{}, err
		}
		t.reverse.Set(result.String(), s.String())
		return result, nil
	}

	return s, nil
}

// ReverseTranslate restores a translated subject to its original
// schema. The reverse-lookup cache is consulted first; on a miss the
// rules are scanned for one whose target pattern matches, and that
// rule's reverse function is invoked (failing when none is
// registered). When nothing applies the subject is returned unchanged,
// mirroring Translate's pass-through.
func (t *Translator) ReverseTranslate(s subject.Subject) (subject.Subject, error) {
	if original, ok := t.reverse.Get(s.String()); ok {
		return subject.New(original)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, rule := range t.rules {
		if rule.MatchesTarget(s) {
			return rule.ApplyReverse(s)
		}
	}

	return s, nil
}

// CacheStats returns hit/miss counters for the reverse-lookup cache.
func (t *Translator) CacheStats() cache.StatsSnapshot {
	return t.reverse.Stats()
}
