// Package boolmin parses a textual boolean expression over single-letter
// variables, enumerates its minterms, and minimizes it into a sum-of-products
// form via the Quine–McCluskey tabular method followed by a greedy cover
// selection.
//
// The pipeline is:
//
//	Parse(expr) -> Expression -> Variables -> Minterms -> PrimeImplicants -> SelectCover -> Expression
package boolmin
