package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360/semsubject/pattern"
	"github.com/c360/semsubject/subject"
)

// MustSubject parses a subject, failing the test on error.
func MustSubject(t *testing.T, raw string) subject.Subject {
	t.Helper()
	s, err := subject.New(raw)
	require.NoError(t, err, "subject %q must parse", raw)
	return s
}

// MustPattern parses a pattern, failing the test on error.
func MustPattern(t *testing.T, raw string) pattern.Pattern {
	t.Helper()
	p, err := pattern.New(raw)
	require.NoError(t, err, "pattern %q must parse", raw)
	return p
}

// Subjects parses a batch of subjects, failing the test on the first
// error.
func Subjects(t *testing.T, raws ...string) []subject.Subject {
	t.Helper()
	out := make([]subject.Subject, 0, len(raws))
	for _, raw := range raws {
		out = append(out, MustSubject(t, raw))
	}
	return out
}

// TestSubjects contains well-formed subjects spanning several
// contexts, for table tests that need realistic traffic.
var TestSubjects = []string{
	"orders.order.created.v1",
	"orders.order.updated.v1",
	"orders.order.cancelled.v1",
	"orders.payment.captured.v2",
	"inventory.stock.depleted.v1",
	"inventory.stock.replenished.v1",
	"users.profile.updated.v1",
	"users.account.deleted.v1",
	"graph.workflow.started.v2",
}

// TestPatterns contains well-formed patterns ordered roughly from most
// to least specific.
var TestPatterns = []string{
	"orders.order.created.v1",
	"orders.order.*.v1",
	"orders.*.*.v1",
	"orders.>",
	"*.*.updated.v1",
	">",
}
