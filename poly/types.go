package poly

import (
	"math/big"

	"github.com/symkit/polybuf/pprod"
)

// monoBankSize is the number of monomial nodes a Store allocates at
// once when its free list runs dry.
const monoBankSize = 64

// Mono is one monomial of a buffer: a rational coefficient attached to
// an interned power product, linked to its successor in the term list.
//
// Nodes are owned by the buffer that holds them and allocated from the
// buffer's Store. Callers that receive a *Mono (from MainMono) may read
// it but must not retain it across further buffer mutations.
type Mono struct {
	next  *Mono
	coeff big.Rat
	prod  *pprod.PowProd
}

// Coeff returns the monomial's coefficient. The pointer refers into the
// node; treat it as read-only.
func (m *Mono) Coeff() *big.Rat { return &m.coeff }

// Prod returns the monomial's power product.
func (m *Mono) Prod() *pprod.PowProd { return m.prod }

// Next returns the monomial's successor in ascending deg-lex order, or
// nil when m is the last real monomial of its buffer.
func (m *Mono) Next() *Mono {
	if m.next == nil || m.next.prod.IsEnd() {
		return nil
	}

	return m.next
}

// Store is a free-list pool of monomial nodes shared by any number of
// buffers. It grows in banks of monoBankSize nodes and hands nodes out
// and back in O(1).
//
// A Store has a single logical owner; it performs no locking. Close may
// only run once every buffer bound to the store has been deleted.
type Store struct {
	free   *Mono // recycled nodes, linked through next
	inUse  int   // nodes handed out and not yet returned
	closed bool
}

// NewStore creates an empty monomial pool.
func NewStore() *Store {
	return &Store{}
}

// InUse returns the number of nodes currently held by live buffers,
// sentinel nodes included.
func (s *Store) InUse() int { return s.inUse }

// Close tears the pool down. Every buffer bound to the store must have
// been deleted first; closing a store that still backs live nodes is a
// contract violation and panics.
func (s *Store) Close() {
	if s.inUse != 0 {
		panic("poly: Close on store with live buffers")
	}
	s.free = nil
	s.closed = true
}

// alloc returns a zeroed node, growing the pool by one bank if the
// free list is empty.
func (s *Store) alloc() *Mono {
	if s.closed {
		panic("poly: alloc on closed store")
	}
	if s.free == nil {
		bank := make([]Mono, monoBankSize)
		for i := range bank {
			bank[i].next = s.free
			s.free = &bank[i]
		}
	}
	m := s.free
	s.free = m.next
	m.next = nil
	m.prod = nil
	m.coeff.SetInt64(0)
	s.inUse++

	return m
}

// release returns a node to the free list. The node's coefficient is
// kept allocated so its big.Rat storage gets reused.
func (s *Store) release(m *Mono) {
	m.prod = nil
	m.next = s.free
	s.free = m
	s.inUse--
}
