// Package polybuf is an exact polynomial normal-form engine: it builds,
// combines, and canonicalizes multivariate polynomials over the
// rationals, incrementally and in place.
//
// What polybuf gives you:
//
//   - Interned power products: canonical exponent vectors where pointer
//     identity is structural equality, totally ordered by deg-lex
//   - Polynomial buffers: sorted-term representations carrying the full
//     arithmetic surface (negate, scale, monomial and polynomial
//     add/sub/mul, squaring, fused multiply-add variants)
//   - Canonical form on demand: Normalize drops zero coefficients, and
//     every degree/sign/equality query then runs against a unique
//     normal form
//   - Pooled term allocation: one Store feeds many buffers, so heavy
//     rewriting loops never touch the general-purpose allocator
//
// Everything is exact. Coefficients are arbitrary-precision rationals
// (math/big.Rat); there is no floating-point path anywhere.
//
// The engine is organized into three subpackages:
//
//	pprod/    — interned power products, the deg-lex order, and the
//	            end-marker sentinel
//	poly/     — the polynomial buffer: term lists, arithmetic,
//	            normalization, queries
//	renaming/ — variable renaming contexts for substitution, with
//	            structural hashing (independent of poly)
//
// Quick sketch, building (x+1)(x-1) and reading back x²−1:
//
//	tbl := pprod.NewTable()
//	st := poly.NewStore()
//	b1 := poly.NewBuffer(tbl, st) // x + 1
//	b1.AddVar(1)
//	b1.AddConst(big.NewRat(1, 1))
//	b2 := poly.NewBuffer(tbl, st) // x - 1
//	b2.AddVar(1)
//	b2.SubConst(big.NewRat(1, 1))
//	b1.MulBuffer(b2)
//	b1.Normalize() // x² − 1: two terms, degree 2
//
// The engine is single-threaded by design: tables, stores, and buffers
// each have one logical owner, and sharing across goroutines needs
// external synchronization (or one table/store per worker).
package polybuf
