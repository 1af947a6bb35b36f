// Package subject defines the structured, hierarchical message address
// used to route commands, events and queries across service boundaries.
//
// A subject has exactly four dot-separated components:
//
//	context.aggregate.event_type.version
//
// for example "orders.order.created.v1". Each component is a non-empty
// token of letters, digits, underscores and hyphens. Subjects are
// immutable value types: parsing or building one yields a value that
// never changes, and the With* methods return new subjects.
//
// Creating subjects:
//
//	s, err := subject.New("orders.order.created.v1")
//
//	s, err := subject.NewBuilder().
//	    Context("orders").
//	    Aggregate("order").
//	    EventType("created").
//	    Version("v1").
//	    Build()
//
// The subject string grammar is the one wire-level artifact this module
// defines; the transport layer consumes finished subject strings and is
// otherwise uninvolved.
package subject
