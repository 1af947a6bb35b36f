package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoreSpecificThan_Chain(t *testing.T) {
	// a.b.c.d ≻ a.*.c.d ≻ a.*.*.d ≻ a.> ≻ >
	chain := []Pattern{
		MustNew("a.b.c.d"),
		MustNew("a.*.c.d"),
		MustNew("a.*.*.d"),
		MustNew("a.>"),
		MustNew(">"),
	}

	// Each pattern is strictly more specific than every later one, and
	// never the reverse; this also verifies transitivity.
	for i := range chain {
		for j := range chain {
			got := chain[i].MoreSpecificThan(chain[j])
			if i < j {
				assert.True(t, got, "%s should be more specific than %s", chain[i], chain[j])
			} else {
				assert.False(t, got, "%s should not be more specific than %s", chain[i], chain[j])
			}
		}
	}
}

func TestMoreSpecificThan_MultiWildcardDominates(t *testing.T) {
	// Even a heavily wildcarded pattern without `>` beats one with `>`.
	withoutMulti := MustNew("*.*.*.*")
	withMulti := MustNew("a.b.c.>")

	assert.True(t, withoutMulti.MoreSpecificThan(withMulti))
	assert.False(t, withMulti.MoreSpecificThan(withoutMulti))
}

func TestMoreSpecificThan_SingleWildcardCount(t *testing.T) {
	fewer := MustNew("a.*.c.d")
	more := MustNew("a.*.*.d")

	assert.True(t, fewer.MoreSpecificThan(more))
	assert.False(t, more.MoreSpecificThan(fewer))
}

func TestMoreSpecificThan_FirstWildcardPosition(t *testing.T) {
	// Same wildcard counts; the longer literal prefix wins.
	late := MustNew("a.b.*.d")
	early := MustNew("a.*.c.d")

	assert.True(t, late.MoreSpecificThan(early))
	assert.False(t, early.MoreSpecificThan(late))

	lateMulti := MustNew("a.b.c.>")
	earlyMulti := MustNew("a.b.>")
	assert.True(t, lateMulti.MoreSpecificThan(earlyMulti))
	assert.False(t, earlyMulti.MoreSpecificThan(lateMulti))
}

func TestMoreSpecificThan_Ties(t *testing.T) {
	// Equally specific patterns: false in both directions.
	a := MustNew("a.*.c.d")
	b := MustNew("x.*.y.z")

	assert.False(t, a.MoreSpecificThan(b))
	assert.False(t, b.MoreSpecificThan(a))

	// A pattern is never more specific than itself.
	assert.False(t, a.MoreSpecificThan(a))
}

func TestMoreSpecificThan_AllLiteralBeatsWildcard(t *testing.T) {
	literal := MustNew("a.b.c.d")
	wildcard := MustNew("z.z.z.*")

	assert.True(t, literal.MoreSpecificThan(wildcard))
	assert.False(t, wildcard.MoreSpecificThan(literal))
}
