package poly

import (
	"math/big"

	"github.com/symkit/polybuf/pprod"
)

// one is the shared rational 1 used by the AddPP/SubPP family.
// Never mutated.
var one = big.NewRat(1, 1)

// Buffer is a mutable multivariate polynomial: monomials sorted in
// strictly ascending deg-lex order, terminated by a sentinel node that
// carries the table's End marker. The sentinel is never counted in
// nterms and never removed, so scans and insertions compare against it
// instead of testing for list end.
//
// Buffers bound to the same Table and Store may be freely combined;
// see the package documentation for the aliasing rules.
type Buffer struct {
	nterms int          // monomials in the list, sentinel excluded
	list   *Mono        // first node; the last node is the sentinel
	store  *Store       // node pool, shared, not owned
	tbl    *pprod.Table // power-product table, shared, not owned
}

// NewBuffer creates the zero polynomial bound to tbl and store.
func NewBuffer(tbl *pprod.Table, store *Store) *Buffer {
	end := store.alloc()
	end.prod = tbl.End()

	return &Buffer{list: end, store: store, tbl: tbl}
}

// Table returns the power-product table the buffer is bound to.
func (b *Buffer) Table() *pprod.Table { return b.tbl }

// Reset empties b back to the zero polynomial, returning every
// non-sentinel node to the store.
func (b *Buffer) Reset() {
	m := b.list
	for !m.prod.IsEnd() {
		next := m.next
		b.store.release(m)
		m = next
	}
	b.list = m
	b.nterms = 0
}

// Delete releases the buffer's remaining nodes, sentinel included, and
// detaches it from its table and store. The buffer must not be used
// afterwards.
func (b *Buffer) Delete() {
	b.Reset()
	b.store.release(b.list)
	b.list = nil
	b.store = nil
	b.tbl = nil
}

// Normalize removes every monomial whose coefficient is zero,
// restoring canonical form. Idempotent. Complexity: O(n).
func (b *Buffer) Normalize() {
	link := &b.list
	for m := *link; !m.prod.IsEnd(); m = *link {
		if m.coeff.Sign() == 0 {
			*link = m.next
			b.store.release(m)
			b.nterms--
		} else {
			link = &m.next
		}
	}
}

// locate advances link to the first node whose product is >= r in the
// deg-lex order. Termination is guaranteed by the sentinel, which
// compares greater than any real product.
func locate(link **Mono, r *pprod.PowProd) **Mono {
	for pprod.Precedes((*link).prod, r) {
		link = &(*link).next
	}

	return link
}

// addTermAt adds a·r into the list starting the scan at link: if a node
// with product r exists, a is added to its coefficient (which may
// become zero); otherwise a new node is spliced in. Returns the link of
// the affected node, so ascending runs of insertions can resume the
// scan where the previous one ended.
func (b *Buffer) addTermAt(link **Mono, a *big.Rat, r *pprod.PowProd) **Mono {
	link = locate(link, r)
	m := *link
	if m.prod == r {
		m.coeff.Add(&m.coeff, a)

		return link
	}
	n := b.store.alloc()
	n.coeff.Set(a)
	n.prod = r
	n.next = m
	*link = n
	b.nterms++

	return link
}

// subTermAt is addTermAt with the coefficient negated.
func (b *Buffer) subTermAt(link **Mono, a *big.Rat, r *pprod.PowProd) **Mono {
	link = locate(link, r)
	m := *link
	if m.prod == r {
		m.coeff.Sub(&m.coeff, a)

		return link
	}
	n := b.store.alloc()
	n.coeff.Neg(a)
	n.prod = r
	n.next = m
	*link = n
	b.nterms++

	return link
}

// detach takes b's whole term list aside, replacing it with a fresh
// sentinel so b reads as zero. The caller owns the returned chain
// (old sentinel included) and must hand it to releaseChain when done.
// Used by MulBuffer and Square to read the pre-image of a buffer that
// is being rewritten.
func (b *Buffer) detach() *Mono {
	saved := b.list
	end := b.store.alloc()
	end.prod = b.tbl.End()
	b.list = end
	b.nterms = 0

	return saved
}

// releaseChain returns a detached chain, sentinel included, to the
// store.
func (b *Buffer) releaseChain(m *Mono) {
	for m != nil {
		next := m.next
		b.store.release(m)
		m = next
	}
}
