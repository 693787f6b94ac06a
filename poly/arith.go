package poly

import (
	"math/big"

	"github.com/symkit/polybuf/pprod"
)

// Operations in this file mutate the receiver in place and do not
// normalize: zero coefficients may remain until Normalize runs.
// Rational arguments are copied before storage; the buffer never
// retains a caller's *big.Rat.

// Negate multiplies b by -1. Complexity: O(n).
func (b *Buffer) Negate() {
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		m.coeff.Neg(&m.coeff)
	}
}

// MulConst multiplies b by the constant a. Complexity: O(n).
func (b *Buffer) MulConst(a *big.Rat) {
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		m.coeff.Mul(&m.coeff, a)
	}
}

// DivConst divides b by the constant a.
// A zero divisor is a contract violation and panics. Complexity: O(n).
func (b *Buffer) DivConst(a *big.Rat) {
	if a.Sign() == 0 {
		panic("poly: DivConst by zero")
	}
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		m.coeff.Quo(&m.coeff, a)
	}
}

// MulPP multiplies b by the power product r. Because deg-lex is
// compatible with multiplication, shifting every product by r keeps
// the list ascending with no re-sort. Complexity: O(n) table lookups.
func (b *Buffer) MulPP(r *pprod.PowProd) {
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		m.prod = b.tbl.Mul(m.prod, r)
	}
}

// MulNegPP multiplies b by -r. Complexity: O(n).
func (b *Buffer) MulNegPP(r *pprod.PowProd) {
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		m.prod = b.tbl.Mul(m.prod, r)
		m.coeff.Neg(&m.coeff)
	}
}

// MulMono multiplies b by the monomial a·r in one pass.
// Complexity: O(n).
func (b *Buffer) MulMono(a *big.Rat, r *pprod.PowProd) {
	for m := b.list; !m.prod.IsEnd(); m = m.next {
		m.prod = b.tbl.Mul(m.prod, r)
		m.coeff.Mul(&m.coeff, a)
	}
}

// AddConst adds the constant a to b.
func (b *Buffer) AddConst(a *big.Rat) {
	b.addTermAt(&b.list, a, b.tbl.Empty())
}

// SubConst subtracts the constant a from b.
func (b *Buffer) SubConst(a *big.Rat) {
	b.subTermAt(&b.list, a, b.tbl.Empty())
}

// AddPP adds the power product r (coefficient 1) to b.
func (b *Buffer) AddPP(r *pprod.PowProd) {
	b.addTermAt(&b.list, one, r)
}

// SubPP subtracts the power product r from b.
func (b *Buffer) SubPP(r *pprod.PowProd) {
	b.subTermAt(&b.list, one, r)
}

// AddMono adds the monomial a·r to b.
func (b *Buffer) AddMono(a *big.Rat, r *pprod.PowProd) {
	b.addTermAt(&b.list, a, r)
}

// SubMono subtracts the monomial a·r from b.
func (b *Buffer) SubMono(a *big.Rat, r *pprod.PowProd) {
	b.subTermAt(&b.list, a, r)
}

// AddBuffer adds b1 to b by sorted merge: equal products sum their
// coefficients, others are copied in at their ordered position. Safe
// when b1 is b itself (every coefficient doubles).
// Complexity: O(|b| + |b1|).
func (b *Buffer) AddBuffer(b1 *Buffer) {
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		link = locate(link, m1.prod)
		m := *link
		if m.prod == m1.prod {
			m.coeff.Add(&m.coeff, &m1.coeff)
		} else {
			n := b.store.alloc()
			n.coeff.Set(&m1.coeff)
			n.prod = m1.prod
			n.next = m
			*link = n
			b.nterms++
		}
		// The affected node never needs revisiting: b1's products
		// strictly ascend.
		link = &(*link).next
	}
}

// SubBuffer subtracts b1 from b. Safe when b1 is b itself (the result
// is all zero coefficients, removed by the next Normalize).
// Complexity: O(|b| + |b1|).
func (b *Buffer) SubBuffer(b1 *Buffer) {
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		link = locate(link, m1.prod)
		m := *link
		if m.prod == m1.prod {
			m.coeff.Sub(&m.coeff, &m1.coeff)
		} else {
			n := b.store.alloc()
			n.coeff.Neg(&m1.coeff)
			n.prod = m1.prod
			n.next = m
			*link = n
			b.nterms++
		}
		link = &(*link).next
	}
}

// AddConstTimesBuffer adds a·b1 to b. b1 must differ from b.
// Complexity: O(|b| + |b1|).
func (b *Buffer) AddConstTimesBuffer(b1 *Buffer, a *big.Rat) {
	var aux big.Rat
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		aux.Mul(a, &m1.coeff)
		link = b.addTermAt(link, &aux, m1.prod)
	}
}

// SubConstTimesBuffer subtracts a·b1 from b. b1 must differ from b.
// Complexity: O(|b| + |b1|).
func (b *Buffer) SubConstTimesBuffer(b1 *Buffer, a *big.Rat) {
	var aux big.Rat
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		aux.Mul(a, &m1.coeff)
		link = b.subTermAt(link, &aux, m1.prod)
	}
}

// AddPPTimesBuffer adds r·b1 to b. b1 must differ from b. The shifted
// products r·p ascend with p, so the insertion cursor only moves
// forward. Complexity: O(|b| + |b1|) plus |b1| table lookups.
func (b *Buffer) AddPPTimesBuffer(b1 *Buffer, r *pprod.PowProd) {
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		link = b.addTermAt(link, &m1.coeff, b.tbl.Mul(m1.prod, r))
	}
}

// SubPPTimesBuffer subtracts r·b1 from b. b1 must differ from b.
func (b *Buffer) SubPPTimesBuffer(b1 *Buffer, r *pprod.PowProd) {
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		link = b.subTermAt(link, &m1.coeff, b.tbl.Mul(m1.prod, r))
	}
}

// AddMonoTimesBuffer adds a·r·b1 to b. b1 must differ from b.
func (b *Buffer) AddMonoTimesBuffer(b1 *Buffer, a *big.Rat, r *pprod.PowProd) {
	var aux big.Rat
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		aux.Mul(a, &m1.coeff)
		link = b.addTermAt(link, &aux, b.tbl.Mul(m1.prod, r))
	}
}

// SubMonoTimesBuffer subtracts a·r·b1 from b. b1 must differ from b.
func (b *Buffer) SubMonoTimesBuffer(b1 *Buffer, a *big.Rat, r *pprod.PowProd) {
	var aux big.Rat
	link := &b.list
	for m1 := b1.list; !m1.prod.IsEnd(); m1 = m1.next {
		aux.Mul(a, &m1.coeff)
		link = b.subTermAt(link, &aux, b.tbl.Mul(m1.prod, r))
	}
}

// MulBuffer multiplies b by b1. b's current list is set aside, b is
// reset, and every cross product of the saved list with b1 is inserted
// back. b1 must not alias b (the pre-image of b is read while b is
// rewritten); a violation panics.
// Complexity: O(|b|·|b1|) insertions, each an ordered scan.
func (b *Buffer) MulBuffer(b1 *Buffer) {
	if b1 == b {
		panic("poly: MulBuffer source aliases destination")
	}
	saved := b.detach()
	b.addChainTimesBuffer(saved, b1, false)
	b.releaseChain(saved)
}

// Square replaces b by b². Both factors are the saved pre-image of b,
// so only one buffer is read and only one is written.
// Complexity: O(n²) insertions.
func (b *Buffer) Square() {
	saved := b.detach()
	for m1 := saved; !m1.prod.IsEnd(); m1 = m1.next {
		var aux big.Rat
		link := &b.list
		for m2 := saved; !m2.prod.IsEnd(); m2 = m2.next {
			aux.Mul(&m1.coeff, &m2.coeff)
			link = b.addTermAt(link, &aux, b.tbl.Mul(m1.prod, m2.prod))
		}
	}
	b.releaseChain(saved)
}

// AddBufferTimesBuffer adds b1·b2 to b. b1 and b2 must both differ
// from b (a violation panics); b1 may equal b2.
// Complexity: O(|b1|·|b2|) insertions.
func (b *Buffer) AddBufferTimesBuffer(b1, b2 *Buffer) {
	if b1 == b || b2 == b {
		panic("poly: AddBufferTimesBuffer factor aliases destination")
	}
	b.addChainTimesBuffer(b1.list, b2, false)
}

// SubBufferTimesBuffer subtracts b1·b2 from b. b1 and b2 must both
// differ from b (a violation panics); b1 may equal b2.
// Complexity: O(|b1|·|b2|) insertions.
func (b *Buffer) SubBufferTimesBuffer(b1, b2 *Buffer) {
	if b1 == b || b2 == b {
		panic("poly: SubBufferTimesBuffer factor aliases destination")
	}
	b.addChainTimesBuffer(b1.list, b2, true)
}

// addChainTimesBuffer merges the cross product of a term chain and b2
// into b, negated when sub is set. For each chain term the inner
// products ascend, so the insertion cursor restarts once per outer
// term and only moves forward within it.
func (b *Buffer) addChainTimesBuffer(chain *Mono, b2 *Buffer, sub bool) {
	var aux big.Rat
	for m1 := chain; !m1.prod.IsEnd(); m1 = m1.next {
		link := &b.list
		for m2 := b2.list; !m2.prod.IsEnd(); m2 = m2.next {
			aux.Mul(&m1.coeff, &m2.coeff)
			r := b.tbl.Mul(m1.prod, m2.prod)
			if sub {
				link = b.subTermAt(link, &aux, r)
			} else {
				link = b.addTermAt(link, &aux, r)
			}
		}
	}
}
