// Package aggregates defines domain-facing aggregate contracts for academic records.
//
// Each contract is a semantic write boundary: the implementation checks every
// referential and business rule and applies the mutation inside one transaction.
package aggregates
