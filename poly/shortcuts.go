package poly

import (
	"math/big"

	"github.com/symkit/polybuf/pprod"
)

// Single-variable shortcuts: every operation taking a power product has
// a variant taking a variable, going through the buffer's table.

// MulVar multiplies b by x.
func (b *Buffer) MulVar(x pprod.Var) { b.MulPP(b.tbl.Var(x)) }

// MulNegVar multiplies b by -x.
func (b *Buffer) MulNegVar(x pprod.Var) { b.MulNegPP(b.tbl.Var(x)) }

// AddVar adds x to b.
func (b *Buffer) AddVar(x pprod.Var) { b.AddPP(b.tbl.Var(x)) }

// SubVar subtracts x from b.
func (b *Buffer) SubVar(x pprod.Var) { b.SubPP(b.tbl.Var(x)) }

// AddVarMono adds a·x to b.
func (b *Buffer) AddVarMono(a *big.Rat, x pprod.Var) { b.AddMono(a, b.tbl.Var(x)) }

// SubVarMono subtracts a·x from b.
func (b *Buffer) SubVarMono(a *big.Rat, x pprod.Var) { b.SubMono(a, b.tbl.Var(x)) }

// AddVarTimesBuffer adds x·b1 to b. b1 must differ from b.
func (b *Buffer) AddVarTimesBuffer(b1 *Buffer, x pprod.Var) {
	b.AddPPTimesBuffer(b1, b.tbl.Var(x))
}

// SubVarTimesBuffer subtracts x·b1 from b. b1 must differ from b.
func (b *Buffer) SubVarTimesBuffer(b1 *Buffer, x pprod.Var) {
	b.SubPPTimesBuffer(b1, b.tbl.Var(x))
}

// AddVarMonoTimesBuffer adds a·x·b1 to b. b1 must differ from b.
func (b *Buffer) AddVarMonoTimesBuffer(b1 *Buffer, a *big.Rat, x pprod.Var) {
	b.AddMonoTimesBuffer(b1, a, b.tbl.Var(x))
}

// SubVarMonoTimesBuffer subtracts a·x·b1 from b. b1 must differ from b.
func (b *Buffer) SubVarMonoTimesBuffer(b1 *Buffer, a *big.Rat, x pprod.Var) {
	b.SubMonoTimesBuffer(b1, a, b.tbl.Var(x))
}
