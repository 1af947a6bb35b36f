// Package translator rewrites subjects between schemas through
// pattern-guarded, optionally bidirectional rules.
//
// A rule pairs a source pattern with a rewrite function; the first
// registered rule whose source pattern matches performs the
// translation. A rule may also carry a target pattern (translation
// results are validated against it, and it selects candidates for
// reverse translation) and a reverse function for round trips.
//
// Subjects that no rule matches pass through unchanged rather than
// erroring. Translators sit on paths where most traffic needs no
// rewriting.
//
// The builder offers declarative mappings with component placeholders:
//
//	tr, err := translator.NewBuilder().
//	    Map("internal.*.*.v1", "public.{aggregate}.{event}.v1").
//	    TranslateContext("staging", "prod").
//	    Build()
//
// Forward translations are recorded in a reverse-lookup cache so
// ReverseTranslate restores originals exactly even for rules without a
// reverse function.
package translator
