// Package poly implements the polynomial buffer: a mutable multivariate
// polynomial over the rationals, stored as a term list sorted ascending
// by the deg-lex order of package pprod.
//
// The poly package provides:
//
//   - Buffer, the polynomial under construction: a singly linked list
//     of (coefficient, power product) monomials terminated by a
//     sentinel node carrying the table's End marker, plus a term count.
//   - The full in-place arithmetic surface: Negate, MulConst, DivConst,
//     power-product and monomial multiplication, constant/monomial/
//     buffer addition and subtraction, buffer multiplication, Square,
//     and the fused multiply-add family (AddBufferTimesBuffer and
//     friends).
//   - Normalize, which removes zero-coefficient monomials and restores
//     canonical form, and the canonicity-dependent queries: Degree,
//     VarDegree, sign predicates, MainTerm, MainMono, Equal.
//   - Store, a free-list pool of monomial nodes shared across many
//     buffers, growing in fixed banks.
//
// Arithmetic operations mutate the receiver and deliberately do NOT
// normalize: intermediate zero coefficients are allowed, and callers
// invoke Normalize before trusting IsZero, Degree, sign predicates,
// MainTerm, MainMono, or Equal.
//
// Invariants maintained by every operation:
//
//   - Monomials are strictly ascending by deg-lex; no product repeats.
//   - The sentinel node is always last, never counted, never removed.
//   - Buffers combined by any two-buffer operation must share one
//     pprod.Table and one Store; this is a caller-enforced
//     precondition, not checked at runtime.
//
// Aliasing: AddBuffer and SubBuffer accept the receiver itself as the
// source. MulBuffer, AddBufferTimesBuffer, and SubBufferTimesBuffer
// must not receive the destination as a factor (the destination's
// pre-image is read while it is rewritten); they panic on a detected
// violation. The factor buffers of AddBufferTimesBuffer may alias each
// other. The ...TimesBuffer variants taking a constant, power product,
// or monomial require their source buffer to differ from the receiver
// as well; this one is documented, not checked.
//
// Polynomial multiplication is the classic quadratic algorithm: every
// cross product is inserted by an ordered scan that merges equal
// products on the way. No hashing shortcut is used; the total order
// does the merging for free.
package poly
