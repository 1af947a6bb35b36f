package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semsubject/subject"
)

func TestDefaultGeneralize(t *testing.T) {
	changed := mustSubject(t, "events.base.changed.v1")
	created := mustSubject(t, "events.base.created.v1")
	updated := mustSubject(t, "events.base.updated.v1")
	deleted := mustSubject(t, "events.base.deleted.v1")
	otherContext := mustSubject(t, "audit.base.created.v1")
	renamed := mustSubject(t, "events.base.renamed.v1")

	assert.True(t, DefaultGeneralize(changed, created))
	assert.True(t, DefaultGeneralize(changed, updated))
	assert.True(t, DefaultGeneralize(changed, deleted))

	// Direction matters.
	assert.False(t, DefaultGeneralize(created, changed))
	// Different context never generalizes.
	assert.False(t, DefaultGeneralize(changed, otherContext))
	// Only the known event types are covered.
	assert.False(t, DefaultGeneralize(changed, renamed))
}

func TestDefaultGeneralize_WildcardEvent(t *testing.T) {
	// "*" is not a valid subject token, so wildcard-event subjects
	// only enter a lattice through FromParts.
	wildcard := subject.FromParts(subject.NewParts("events", "base", "*", "v1"))
	created := mustSubject(t, "events.base.created.v1")
	renamed := mustSubject(t, "events.base.renamed.v1")
	otherContext := mustSubject(t, "audit.base.created.v1")

	assert.True(t, DefaultGeneralize(wildcard, created))
	assert.True(t, DefaultGeneralize(wildcard, renamed))
	assert.False(t, DefaultGeneralize(created, wildcard))
	assert.False(t, DefaultGeneralize(wildcard, otherContext))

	lattice := NewLattice([]subject.Subject{wildcard, created, renamed}, nil)
	join, ok := lattice.Join(created, renamed)
	require.True(t, ok)
	assert.True(t, join.Equal(wildcard))
}

func TestLattice_Ordering(t *testing.T) {
	subjects := []subject.Subject{
		mustSubject(t, "events.base.changed.v1"),
		mustSubject(t, "events.base.created.v1"),
		mustSubject(t, "events.base.updated.v1"),
	}

	lattice := New().CreateLattice(subjects)
	// changed -> created and changed -> updated.
	assert.Equal(t, 2, lattice.OrderedPairs())
}

func TestLattice_Join(t *testing.T) {
	changed := mustSubject(t, "events.base.changed.v1")
	created := mustSubject(t, "events.base.created.v1")
	updated := mustSubject(t, "events.base.updated.v1")

	lattice := NewLattice([]subject.Subject{changed, created, updated}, nil)

	join, ok := lattice.Join(created, updated)
	require.True(t, ok)
	assert.True(t, join.Equal(changed))
}

func TestLattice_JoinMissing(t *testing.T) {
	created := mustSubject(t, "events.base.created.v1")
	updated := mustSubject(t, "events.base.updated.v1")
	outside := mustSubject(t, "events.base.deleted.v1")

	// No generalizing subject in the snapshot.
	lattice := NewLattice([]subject.Subject{created, updated}, nil)
	_, ok := lattice.Join(created, updated)
	assert.False(t, ok)

	// Subject absent from the snapshot.
	_, ok = lattice.Join(created, outside)
	assert.False(t, ok)
}

func TestLattice_CustomStrategy(t *testing.T) {
	root := mustSubject(t, "fleet.vehicle.telemetry.v1")
	gps := mustSubject(t, "fleet.vehicle.gps.v1")
	speed := mustSubject(t, "fleet.vehicle.speed.v1")

	// Domain-specific order: "telemetry" generalizes gps and speed.
	generalizes := func(a, b subject.Subject) bool {
		return a.Context() == b.Context() &&
			a.EventType() == "telemetry" &&
			(b.EventType() == "gps" || b.EventType() == "speed")
	}

	lattice := NewLattice([]subject.Subject{root, gps, speed}, generalizes)

	join, ok := lattice.Join(gps, speed)
	require.True(t, ok)
	assert.True(t, join.Equal(root))
}

func TestLattice_SnapshotIsolation(t *testing.T) {
	subjects := []subject.Subject{
		mustSubject(t, "events.base.changed.v1"),
		mustSubject(t, "events.base.created.v1"),
	}
	lattice := NewLattice(subjects, nil)

	// Mutating the source slice after construction does not affect
	// the lattice.
	subjects[0] = mustSubject(t, "other.base.created.v1")
	got := lattice.Subjects()
	assert.Equal(t, "events.base.changed.v1", got[0].String())
}
