package poly_test

import (
	"math/big"
	"testing"

	"github.com/symkit/polybuf/poly"
	"github.com/symkit/polybuf/pprod"
)

// Variables shared by the whole suite. Smaller id = more significant
// lex position, so at equal degree x-heavy products sort later.
const (
	x = pprod.Var(0)
	y = pprod.Var(1)
	z = pprod.Var(2)
)

// term is a readable snapshot of one monomial.
type term struct {
	coeff string
	prod  *pprod.PowProd
}

// collect snapshots b's term list in ascending order.
func collect(b *poly.Buffer) []term {
	var ts []term
	for m := b.First(); m != nil; m = m.Next() {
		ts = append(ts, term{coeff: m.Coeff().RatString(), prod: m.Prod()})
	}

	return ts
}

// newEnv builds a fresh table and store for one test.
func newEnv(t *testing.T) (*pprod.Table, *poly.Store) {
	t.Helper()

	return pprod.NewTable(), poly.NewStore()
}

// rat is shorthand for an integer coefficient.
func rat(n int64) *big.Rat { return big.NewRat(n, 1) }
