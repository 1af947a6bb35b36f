// Package testutil provides shared test helpers and fixture data.
//
// MustSubject and MustPattern wrap the constructors with require so
// table tests stay terse; TestSubjects and TestPatterns supply
// realistic traffic for matching and permission tests.
package testutil
