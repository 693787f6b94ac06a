package pprod

import "encoding/binary"

// Table interns power products. All products combined by Mul or
// compared against each other must come from the same Table; the
// engine treats table identity as a caller-enforced precondition and
// does not check it at runtime.
//
// A Table performs no locking. Give each goroutine its own table or
// guard interning externally.
type Table struct {
	prods map[string]*PowProd
	empty *PowProd
	end   *PowProd
}

// NewTable creates an empty interning table with its empty product and
// end marker pre-built.
func NewTable() *Table {
	t := &Table{
		prods: make(map[string]*PowProd),
		empty: &PowProd{},
		end:   &PowProd{end: true},
	}
	t.prods[""] = t.empty

	return t
}

// Empty returns the degree-0 product (the variable part of a constant).
func (t *Table) Empty() *PowProd { return t.empty }

// End returns the table's end marker: a reserved product that compares
// greater than any product Var, VarPow, or Mul can return. It is meant
// as a sentinel terminator for sorted term lists and must never be
// passed to Mul.
func (t *Table) End() *PowProd { return t.end }

// Var returns the interned product x^1.
// Panics if x is negative.
func (t *Table) Var(x Var) *PowProd { return t.VarPow(x, 1) }

// VarPow returns the interned product x^d; d == 0 yields Empty.
// Panics if x is negative.
func (t *Table) VarPow(x Var, d uint32) *PowProd {
	if x < 0 {
		panic("pprod: negative variable id")
	}
	if d == 0 {
		return t.empty
	}

	return t.intern([]varExp{{v: x, exp: d}}, d)
}

// Mul returns the interned product p·q, summing exponents variable by
// variable. Passing an End marker is a contract violation.
// Complexity: O(k1 + k2) over the distinct-variable counts.
func (t *Table) Mul(p, q *PowProd) *PowProd {
	if p.end || q.end {
		panic("pprod: Mul on end marker")
	}
	if p.IsEmpty() {
		return q
	}
	if q.IsEmpty() {
		return p
	}
	// Every per-variable exponent is bounded by its product's total
	// degree, so guarding the degree sum also rules out entry wrap.
	degree := p.degree + q.degree
	if degree < p.degree {
		panic("pprod: degree overflow")
	}

	// Sorted merge of the two exponent vectors.
	elems := make([]varExp, 0, len(p.elems)+len(q.elems))
	i, j := 0, 0
	for i < len(p.elems) && j < len(q.elems) {
		pe, qe := p.elems[i], q.elems[j]
		switch {
		case pe.v < qe.v:
			elems = append(elems, pe)
			i++
		case pe.v > qe.v:
			elems = append(elems, qe)
			j++
		default:
			elems = append(elems, varExp{v: pe.v, exp: pe.exp + qe.exp})
			i++
			j++
		}
	}
	elems = append(elems, p.elems[i:]...)
	elems = append(elems, q.elems[j:]...)

	return t.intern(elems, degree)
}

// Len returns the number of distinct products interned so far,
// counting the empty product.
func (t *Table) Len() int { return len(t.prods) }

// intern returns the canonical product for the given exponent vector,
// creating and registering it on first sight. The elems slice is owned
// by the caller until registration, after which it must not be mutated.
func (t *Table) intern(elems []varExp, degree uint32) *PowProd {
	key := encodeKey(elems)
	if p, ok := t.prods[key]; ok {
		return p
	}
	p := &PowProd{elems: elems, degree: degree}
	t.prods[key] = p

	return p
}

// encodeKey serializes an exponent vector to the map key used for
// interning. The encoding is injective: (var, exp) pairs in order,
// little-endian fixed width.
func encodeKey(elems []varExp) string {
	buf := make([]byte, 0, 8*len(elems))
	var w [8]byte
	for _, e := range elems {
		binary.LittleEndian.PutUint32(w[0:4], uint32(e.v))
		binary.LittleEndian.PutUint32(w[4:8], e.exp)
		buf = append(buf, w[:]...)
	}

	return string(buf)
}
