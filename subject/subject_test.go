package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semsubject/errors"
)

func TestNew(t *testing.T) {
	s, err := New("people.person.created.v1")
	require.NoError(t, err)

	assert.Equal(t, "people", s.Context())
	assert.Equal(t, "person", s.Aggregate())
	assert.Equal(t, "created", s.EventType())
	assert.Equal(t, "v1", s.Version())
	assert.Equal(t, "people.person.created.v1", s.String())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{"empty", ""},
		{"too_few_parts", "people.person"},
		{"three_parts", "people.person.created"},
		{"too_many_parts", "people.person.created.v1.extra"},
		{"empty_part", "people..created.v1"},
		{"trailing_dot", "people.person.created."},
		{"leading_dot", ".person.created.v1"},
		{"invalid_characters", "people.per$on.created.v1"},
		{"space", "people.per son.created.v1"},
		{"wildcard_not_allowed", "people.*.created.v1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.subject)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidFormat(err))
		})
	}
}

func TestNew_ErrorNamesOffendingPart(t *testing.T) {
	_, err := New("people..created.v1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part 2")

	_, err = New("people.per$on.created.v1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"per$on"`)

	_, err = New("people.person")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")
}

func TestParts_RoundTrip(t *testing.T) {
	parts := NewParts("orders", "order", "placed", "v2")
	assert.Equal(t, "orders.order.placed.v2", parts.Subject())

	parsed, err := ParseParts("orders.order.placed.v2")
	require.NoError(t, err)
	assert.Equal(t, parts, parsed)
}

func TestSubject_RoundTrip(t *testing.T) {
	subjects := []string{
		"people.person.created.v1",
		"orders.order_item.price-changed.v12",
		"a.b.c.d",
	}

	for _, raw := range subjects {
		t.Run(raw, func(t *testing.T) {
			s, err := New(raw)
			require.NoError(t, err)

			reparsed, err := New(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, reparsed)
			assert.True(t, s.Equal(reparsed))
		})
	}
}

func TestFromParts(t *testing.T) {
	parts := NewParts("inventory", "product", "restocked", "v1")
	s := FromParts(parts)

	assert.Equal(t, "inventory.product.restocked.v1", s.String())
	assert.Equal(t, parts, s.Parts())
}

func TestSubject_Modifications(t *testing.T) {
	s, err := New("users.user.created.v1")
	require.NoError(t, err)

	updated := s.WithEventType("updated")
	assert.Equal(t, "users.user.updated.v1", updated.String())

	v2 := s.WithVersion("v2")
	assert.Equal(t, "users.user.created.v2", v2.String())

	// Original is untouched.
	assert.Equal(t, "users.user.created.v1", s.String())
}

func TestSubject_StructuralEquality(t *testing.T) {
	a, err := New("users.user.created.v1")
	require.NoError(t, err)
	b := FromParts(NewParts("users", "user", "created", "v1"))

	assert.True(t, a.Equal(b))

	// Subjects are usable as map keys.
	seen := map[Subject]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

func TestSubject_IsZero(t *testing.T) {
	var zero Subject
	assert.True(t, zero.IsZero())

	s, err := New("a.b.c.d")
	require.NoError(t, err)
	assert.False(t, s.IsZero())
}

func TestValidToken(t *testing.T) {
	assert.True(t, ValidToken("order_item-2"))
	assert.False(t, ValidToken(""))
	assert.False(t, ValidToken("a.b"))
	assert.False(t, ValidToken("a*b"))
	assert.False(t, ValidToken(">"))
}
