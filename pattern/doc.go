// Package pattern implements wildcard matching over subject addresses
// together with the specificity ordering used for rule resolution.
//
// Patterns use NATS wildcard syntax over dot-separated tokens:
//
//	orders.order.created.v1   exact match
//	orders.*.created.v1       `*` matches exactly one token
//	orders.>                  `>` matches one or more trailing tokens
//
// Matching is a pure, allocation-light computation: a Pattern is
// tokenized once at construction and can then be shared freely across
// goroutines for any number of match calls.
//
// The specificity order (Pattern.MoreSpecificThan) ranks patterns so
// that conflicting rules can be resolved deterministically, e.g.
//
//	a.b.c.d ≻ a.*.c.d ≻ a.*.*.d ≻ a.> ≻ >
//
// Permission resolution, the subject algebra and the translator all
// dispatch through this package.
package pattern
