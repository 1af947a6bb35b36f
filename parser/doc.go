// Package parser provides customizable subject parsing.
//
// The zero-configuration parser behaves exactly like subject.New.
// Contexts with nonstandard layouts register a ParseRule keyed by
// their first token; validators run against every successfully parsed
// subject in registration order. WithFlexibleContext handles contexts
// whose aggregates nest, joining the middle tokens into a single
// dotted aggregate.
package parser
