package algebra

import "github.com/c360/semsubject/subject"

// GeneralizeFunc reports whether a is a generalization of b (a is
// less specific than b). It defines the partial order a Lattice is
// built from; the relation is a strategy so domains can supply their
// own event-type hierarchies.
type GeneralizeFunc func(a, b subject.Subject) bool

// DefaultGeneralize is the built-in heuristic ordering: subjects must
// share a context, the event type "*" generalizes any event type, and
// "changed" generalizes "created", "updated" and "deleted". It is a
// narrow special case, not a complete partial order over all subjects.
func DefaultGeneralize(a, b subject.Subject) bool {
	if a.Context() != b.Context() {
		return false
	}
	if a.EventType() == "*" {
		return true
	}
	if a.EventType() != "changed" {
		return false
	}
	switch b.EventType() {
	case "created", "updated", "deleted":
		return true
	default:
		return false
	}
}

// Lattice is a read-only, short-lived view over a snapshot of
// subjects with the generalization pairs computed once at
// construction. It does not track later changes to the source slice.
type Lattice struct {
	subjects []subject.Subject
	// ordering holds (less specific index, more specific index) pairs.
	ordering [][2]int
}

// NewLattice builds a lattice over the snapshot using the given
// generalization strategy (DefaultGeneralize when nil).
func NewLattice(subjects []subject.Subject, generalizes GeneralizeFunc) *Lattice {
	if generalizes == nil {
		generalizes = DefaultGeneralize
	}

	l := &Lattice{subjects: append([]subject.Subject(nil), subjects...)}
	for i := range l.subjects {
		for j := range l.subjects {
			if i != j && generalizes(l.subjects[i], l.subjects[j]) {
				l.ordering = append(l.ordering, [2]int{i, j})
			}
		}
	}
	return l
}

// Subjects returns the snapshot the lattice was built over.
func (l *Lattice) Subjects() []subject.Subject {
	out := make([]subject.Subject, len(l.subjects))
	copy(out, l.subjects)
	return out
}

// OrderedPairs returns the number of recorded generalization pairs.
func (l *Lattice) OrderedPairs() int {
	return len(l.ordering)
}

// Join returns the first subject in the snapshot that is a recorded
// generalization of both a and b. This is best-effort over the given
// set, not a mathematically complete join: ok is false when either
// subject is absent from the snapshot or no common generalization
// exists within it.
func (l *Lattice) Join(a, b subject.Subject) (subject.Subject, bool) {
	aIdx, ok := l.indexOf(a)
	if !ok {
		return subject.Subject{}, false
	}
	bIdx, ok := l.indexOf(b)
	if !ok {
		return subject.Subject{}, false
	}

	for i, s := range l.subjects {
		if l.generalizes(i, aIdx) && l.generalizes(i, bIdx) {
			return s, true
		}
	}
	return subject.Subject{}, false
}

func (l *Lattice) indexOf(s subject.Subject) (int, bool) {
	for i, candidate := range l.subjects {
		if candidate.Equal(s) {
			return i, true
		}
	}
	return 0, false
}

// generalizes reports whether index a was recorded as a
// generalization of index b.
func (l *Lattice) generalizes(a, b int) bool {
	for _, pair := range l.ordering {
		if pair[0] == a && pair[1] == b {
			return true
		}
	}
	return false
}
