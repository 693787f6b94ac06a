package poly

import "github.com/symkit/polybuf/pprod"

// Queries in this file assume the ordering invariant; the ones marked
// "b must be normalized" additionally assume no zero coefficients.

// Size returns the number of monomials in b, sentinel excluded.
// Complexity: O(1).
func (b *Buffer) Size() int { return b.nterms }

// IsZero reports whether b is the zero polynomial.
// b must be normalized. Complexity: O(1).
func (b *Buffer) IsZero() bool { return b.nterms == 0 }

// IsConstant reports whether b is a constant, zero included.
// b must be normalized. Complexity: O(1).
func (b *Buffer) IsConstant() bool {
	return b.nterms == 0 || (b.nterms == 1 && b.list.prod.IsEmpty())
}

// IsNonzero reports whether b is a non-zero constant.
// b must be normalized. Complexity: O(1).
func (b *Buffer) IsNonzero() bool {
	return b.nterms == 1 && b.list.prod.IsEmpty()
}

// IsPos reports whether b is a positive constant. Any non-constant
// polynomial answers false: sign is defined only for constants.
// b must be normalized.
func (b *Buffer) IsPos() bool {
	return b.IsNonzero() && b.list.coeff.Sign() > 0
}

// IsNeg reports whether b is a negative constant.
// b must be normalized.
func (b *Buffer) IsNeg() bool {
	return b.IsNonzero() && b.list.coeff.Sign() < 0
}

// IsNonneg reports whether b is a constant >= 0 (zero qualifies).
// b must be normalized.
func (b *Buffer) IsNonneg() bool {
	return b.IsZero() || b.IsPos()
}

// IsNonpos reports whether b is a constant <= 0 (zero qualifies).
// b must be normalized.
func (b *Buffer) IsNonpos() bool {
	return b.IsZero() || b.IsNeg()
}

// Degree returns the total degree of b, or 0 for the zero polynomial.
// The order's primary key is total degree, so the last monomial always
// carries the maximum. b must be normalized. Complexity: O(n).
func (b *Buffer) Degree() uint32 {
	if b.nterms == 0 {
		return 0
	}

	return b.lastMono().prod.Degree()
}

// VarDegree returns the largest d such that x^d occurs in b, or 0 if x
// does not occur. b must be normalized. Complexity: O(n).
func (b *Buffer) VarDegree(x pprod.Var) uint32 {
	var d uint32
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		if e := m.prod.ExpOf(x); e > d {
			d = e
		}
	}

	return d
}

// MainTerm returns the maximal power product of b in the deg-lex
// order. b must be normalized and non-zero; calling it on a zero
// buffer panics. Complexity: O(n).
func (b *Buffer) MainTerm() *pprod.PowProd {
	return b.MainMono().prod
}

// MainMono returns the monomial carrying the main term: the last
// non-sentinel node. b must be normalized and non-zero; calling it on
// a zero buffer panics. Complexity: O(n).
func (b *Buffer) MainMono() *Mono {
	if b.nterms == 0 {
		panic("poly: MainMono on zero polynomial")
	}

	return b.lastMono()
}

// Equal reports whether b and b1 hold the same polynomial. Both must
// be normalized and share one table; canonical form then makes
// element-wise list equality equivalent to polynomial equality.
// Complexity: O(min(|b|, |b1|)) with early exit.
func (b *Buffer) Equal(b1 *Buffer) bool {
	if b.nterms != b1.nterms {
		return false
	}
	m, m1 := b.list, b1.list
	for !m.prod.IsEnd() {
		if m.prod != m1.prod || m.coeff.Cmp(&m1.coeff) != 0 {
			return false
		}
		m = m.next
		m1 = m1.next
	}

	return true
}

// First returns the smallest monomial of b in the deg-lex order, or
// nil for an empty buffer. Together with Mono.Next it walks the term
// list ascending. Complexity: O(1).
func (b *Buffer) First() *Mono {
	if b.list.prod.IsEnd() {
		return nil
	}

	return b.list
}

// lastMono walks to the last non-sentinel node. The buffer keeps no
// tail pointer; callers guarantee nterms > 0.
func (b *Buffer) lastMono() *Mono {
	m := b.list
	for !m.next.prod.IsEnd() {
		m = m.next
	}

	return m
}
