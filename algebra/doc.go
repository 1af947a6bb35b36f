// Package algebra implements compositional operations on subjects:
// sequencing, parallel combination, conditional choice, named
// transformations, field projection and context injection.
//
// An Algebra owns two concurrent registries: composition rules keyed
// by dispatch string (e.g. "sequence:created:reserved") and
// transformations keyed by name. Compose consults the registry first
// and falls back to deterministic defaults, so an empty algebra is
// immediately usable:
//
//	a := algebra.New()
//	composed, err := a.Compose(left, right, algebra.Sequence())
//	// orders.order.created.v1 ⊕ inventory.stock.reserved.v1
//	//   -> orders-inventory.order-stock.sequenced.v1
//
// Registered composers and transformations are invoked concurrently by
// every caller sharing the Algebra and must be pure functions of their
// inputs.
//
// The package also provides Lattice, an ephemeral partial-order view
// over a snapshot of subjects with a pluggable generalization
// strategy, supporting best-effort join queries.
package algebra
