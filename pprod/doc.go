// Package pprod provides interned power products: the variable-and-
// exponent part of a monomial (x²y, for example), canonicalized so that
// pointer identity is structural equality.
//
// The pprod package provides:
//
//   - Table, an interning table: Empty, Var, VarPow, Mul always return
//     the unique canonical *PowProd for a given exponent vector.
//   - Compare, the deg-lex total order: total degree first, ties broken
//     lexicographically on the exponent vectors. The order is
//     compatible with multiplication, so multiplying an ascending
//     sequence of products by a common product keeps it ascending.
//   - End, a distinguished maximal product that compares greater than
//     every product Mul or Var can ever produce. Sorted-list code can
//     use it as a sentinel terminator instead of testing for nil.
//
// Because products are interned, p == q (pointer comparison) is the
// equality test; Compare is only needed for ordering.
//
// A Table has a single logical owner and performs no internal locking;
// use one table per goroutine or synchronize externally.
package pprod
