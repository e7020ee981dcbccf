// Package aggregates contains the infrastructure implementations of the records
// aggregate contracts.
//
// Implementations compose table-level repos from internal/data/repos, run the
// guards (guards.go) fail-fast in a fixed order, and own the transaction
// boundary of every operation. grades.go computes averages and rankings for
// the read side (queries.go).
package aggregates
