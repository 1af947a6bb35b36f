package pattern

// MoreSpecificThan reports whether this pattern is strictly more
// specific than another. The ordering is used to pick a winning rule
// when several patterns match the same subject, decided in priority:
//
//  1. A pattern without a multi-wildcard beats one with a
//     multi-wildcard.
//  2. Fewer single wildcards is more specific.
//  3. The pattern whose first wildcard appears later (longer literal
//     prefix) is more specific.
//  4. Otherwise the patterns are equally specific and this method
//     returns false in both directions; callers needing a total order
//     must apply their own deterministic tie-break.
func (p Pattern) MoreSpecificThan(other Pattern) bool {
	selfMulti := p.HasMultiWildcard()
	otherMulti := other.HasMultiWildcard()
	if selfMulti != otherMulti {
		return !selfMulti
	}

	selfSingles := p.countSingleWildcards()
	otherSingles := other.countSingleWildcards()
	if selfSingles != otherSingles {
		return selfSingles < otherSingles
	}

	selfFirst, selfHas := p.firstWildcard()
	otherFirst, otherHas := other.firstWildcard()
	switch {
	case !selfHas && otherHas:
		// All-literal pattern beats any pattern with a wildcard.
		return true
	case selfHas && otherHas:
		return selfFirst > otherFirst
	default:
		return false
	}
}

func (p Pattern) countSingleWildcards() int {
	n := 0
	for _, t := range p.tokens {
		if t.kind == tokenSingleWildcard {
			n++
		}
	}
	return n
}

// firstWildcard returns the index of the first wildcard token and
// whether one exists.
func (p Pattern) firstWildcard() (int, bool) {
	for i, t := range p.tokens {
		if t.kind != tokenLiteral {
			return i, true
		}
	}
	return 0, false
}
