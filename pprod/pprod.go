package pprod

// Var identifies a polynomial variable. Ids are assigned by the caller
// (typically by a term table layered above this package) and must be
// non-negative.
type Var int32

// varExp is one entry of an exponent vector: variable v raised to exp.
// Entries are kept sorted by ascending variable id, and exp is always
// positive; a zero exponent is represented by absence.
type varExp struct {
	v   Var
	exp uint32
}

// PowProd is an interned power product: the variable part of a
// monomial. Two products obtained from the same Table are structurally
// equal iff they are the same pointer.
//
// The zero-length exponent vector is the empty product (the constant
// monomial, degree 0). A table's End product is a reserved maximal
// value with no exponent vector of its own.
type PowProd struct {
	elems  []varExp
	degree uint32
	end    bool
}

// Degree returns the total degree (sum of all exponents).
// Panics if called on an End marker, which has no meaningful degree.
func (p *PowProd) Degree() uint32 {
	if p.end {
		panic("pprod: Degree on end marker")
	}

	return p.degree
}

// ExpOf returns the exponent of variable x in p, or 0 if x does not
// occur. Complexity: O(log k) for k distinct variables.
func (p *PowProd) ExpOf(x Var) uint32 {
	lo, hi := 0, len(p.elems)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case p.elems[mid].v < x:
			lo = mid + 1
		case p.elems[mid].v > x:
			hi = mid
		default:
			return p.elems[mid].exp
		}
	}

	return 0
}

// IsEmpty reports whether p is the empty product (degree 0).
func (p *PowProd) IsEmpty() bool { return !p.end && len(p.elems) == 0 }

// IsEnd reports whether p is a table's end marker.
func (p *PowProd) IsEnd() bool { return p.end }

// IsVar reports whether p is a single variable with exponent 1.
func (p *PowProd) IsVar() bool {
	return !p.end && len(p.elems) == 1 && p.elems[0].exp == 1
}

// Compare orders two power products by deg-lex: total degree first,
// ties broken lexicographically on the exponent vectors, where the
// smallest variable id is the most significant position and a larger
// exponent there sorts later. An End marker compares greater than any
// real product. Returns <0, 0, or >0.
//
// The order is compatible with multiplication: Compare(a, b) < 0
// implies Compare(t.Mul(r, a), t.Mul(r, b)) < 0 for every real r.
//
// Complexity: O(min(k1, k2)) over the distinct-variable counts.
func Compare(p, q *PowProd) int {
	if p == q {
		return 0
	}
	if p.end {
		return 1
	}
	if q.end {
		return -1
	}
	if p.degree != q.degree {
		if p.degree < q.degree {
			return -1
		}

		return 1
	}

	// Equal degree: lexicographic walk over both sorted exponent vectors.
	n := len(p.elems)
	if len(q.elems) < n {
		n = len(q.elems)
	}
	for i := 0; i < n; i++ {
		pe, qe := p.elems[i], q.elems[i]
		if pe.v != qe.v {
			// The product holding the smaller (more significant) variable
			// has a positive exponent where the other has zero.
			if pe.v < qe.v {
				return 1
			}

			return -1
		}
		if pe.exp != qe.exp {
			if pe.exp > qe.exp {
				return 1
			}

			return -1
		}
	}

	// Equal degree and one vector a prefix of the other can only happen
	// for identical vectors; interning then makes p == q above.
	return 0
}

// Precedes reports Compare(p, q) < 0.
func Precedes(p, q *PowProd) bool { return Compare(p, q) < 0 }
