// Package permission implements subject-based access decisions on top
// of pattern matching and the specificity order.
//
// A Permissions value is an ordered list of rules plus a default
// policy. Resolution collects every rule whose pattern matches the
// subject and whose operation set contains the requested operation,
// then lets the most specific match decide:
//
//	perms, _ := permission.NewBuilder().
//	    DefaultPolicy(permission.Deny).
//	    Allow("orders.>", permission.Publish).
//	    Deny("orders.admin.>", permission.Publish).
//	    Build()
//
//	perms.Allowed(sub, permission.Publish)
//
// A narrower deny always overrides a broader allow (and vice versa).
// Ties in specificity fall to the first-registered rule; resolution is
// deterministic either way.
//
// Permission sets are immutable snapshots shared read-only across
// concurrent queries. Store wraps a snapshot with an atomic swap so an
// updated set can be installed without readers ever seeing a partial
// rule list. Denial is always a boolean decision, never an error;
// callers decide how to react. Authentication is out of scope: the
// package decides what an already-identified caller may do, not who
// the caller is.
package permission
