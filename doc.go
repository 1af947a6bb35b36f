// Package semsubject provides a subject-addressing and routing
// algebra for message-based systems.
//
// # Architecture
//
// The module is organized as independent packages that compose:
//
//   - subject: the four-part dotted address (context.aggregate.event.version)
//     every other package routes on
//   - pattern: wildcard matching (* for one token, > for the rest) with
//     a specificity ordering over patterns
//   - permission: allow/deny rule sets resolved by pattern specificity,
//     plus a swappable store for live reconfiguration
//   - algebra: composition of subjects (sequence, parallel, choice,
//     transform, project, inject) with registered rule overrides and a
//     generalization lattice
//   - translator: pattern-guarded bidirectional subject rewriting with
//     pass-through for unmatched subjects
//   - parser: customizable parsing with per-context rules and a
//     validator chain
//
// Supporting packages supply the ambient infrastructure: errors for
// classified error values, config for declarative routing documents,
// metric for Prometheus instrumentation, natsrouter for the NATS
// adapter, pkg/cache for the translator's reverse-lookup cache, and
// testutil for test fixtures.
//
// # Usage
//
// A minimal routing setup parses a subject, checks a permission set,
// and translates before publishing:
//
//	s, _ := subject.New("orders.order.created.v1")
//	perms, _ := permission.NewBuilder().
//		DefaultPolicy(permission.Deny).
//		Allow("orders.>", permission.Publish).
//		Build()
//	if perms.CanPublish(s) {
//		target, _ := trans.Translate(s)
//		// publish on target.String()
//	}
//
// All engine types are safe for concurrent use; registration may race
// with evaluation and readers always observe a consistent snapshot.
package semsubject
