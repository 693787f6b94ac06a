package renaming

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"github.com/symkit/polybuf/pprod"
)

// defaultSizeHint is the initial capacity of a context's binding table
// when no hint is given.
const defaultSizeHint = 16

// binding is one stack entry: variable v was mapped to fresh, possibly
// shadowing a previous mapping.
type binding struct {
	v       pprod.Var
	fresh   pprod.Var
	prev    pprod.Var // shadowed target, valid when hadPrev
	hadPrev bool
}

// Context maps variables to fresh variables under a push/pop
// discipline.
type Context struct {
	subst  map[pprod.Var]pprod.Var
	stack  []binding
	next   pprod.Var // next fresh variable id
	hash   uint64    // cached structural hash, valid when hashOK
	hashOK bool
}

// Option configures a Context before first use.
type Option func(*Context)

// WithSizeHint pre-sizes the binding table for n live bindings.
func WithSizeHint(n int) Option {
	return func(c *Context) {
		if n > 0 {
			c.subst = make(map[pprod.Var]pprod.Var, n)
			c.stack = make([]binding, 0, n)
		}
	}
}

// WithFreshBase sets the id the fresh-variable generator starts from.
// Callers pick a base above every variable they intend to rename;
// bindings then never collide with source variables.
func WithFreshBase(base pprod.Var) Option {
	return func(c *Context) { c.next = base }
}

// NewContext creates an empty renaming context.
func NewContext(opts ...Option) *Context {
	c := &Context{
		subst: make(map[pprod.Var]pprod.Var, defaultSizeHint),
		stack: make([]binding, 0, defaultSizeHint),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PushVars binds each listed variable, in order, to a freshly generated
// variable. An earlier binding of the same variable is shadowed and
// restored by the matching PopVars. vs must not contain duplicates;
// that is a contract violation and panics.
func (c *Context) PushVars(vs ...pprod.Var) {
	seen := make(map[pprod.Var]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			panic("renaming: duplicate variable in PushVars")
		}
		seen[v] = struct{}{}

		bd := binding{v: v, fresh: c.next}
		if prev, ok := c.subst[v]; ok {
			bd.prev = prev
			bd.hadPrev = true
		}
		c.subst[v] = bd.fresh
		c.stack = append(c.stack, bd)
		c.next++
	}
	c.hashOK = false
}

// PopVars removes the last n bindings, restoring whatever they
// shadowed. n larger than the number of live bindings panics.
func (c *Context) PopVars(n int) {
	if n > len(c.stack) {
		panic("renaming: PopVars beyond stack depth")
	}
	for i := 0; i < n; i++ {
		bd := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if bd.hadPrev {
			c.subst[bd.v] = bd.prev
		} else {
			delete(c.subst, bd.v)
		}
	}
	c.hashOK = false
}

// Lookup returns the variable x is currently renamed to.
func (c *Context) Lookup(x pprod.Var) (pprod.Var, bool) {
	r, ok := c.subst[x]

	return r, ok
}

// Len returns the number of live stack bindings, shadowed ones
// included.
func (c *Context) Len() int { return len(c.stack) }

// IsEmpty reports whether no binding is live.
func (c *Context) IsEmpty() bool { return len(c.stack) == 0 }

// Reset empties the context. The fresh-variable generator keeps
// advancing, so variables produced before and after a Reset never
// collide.
func (c *Context) Reset() {
	c.subst = make(map[pprod.Var]pprod.Var, defaultSizeHint)
	c.stack = c.stack[:0]
	c.hashOK = false
}

// Hash returns a structural hash of the live substitution: equal for
// equivalent contexts regardless of push/pop history. Computed lazily
// and cached until the next mutation. Complexity: O(k log k) on a
// cache miss for k visible bindings, O(1) after.
func (c *Context) Hash() uint64 {
	if c.hashOK {
		return c.hash
	}

	pairs := make([]binding, 0, len(c.subst))
	for v, f := range c.subst {
		pairs = append(pairs, binding{v: v, fresh: f})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

	h := fnv.New64a()
	var w [8]byte
	for _, p := range pairs {
		binary.LittleEndian.PutUint32(w[0:4], uint32(p.v))
		binary.LittleEndian.PutUint32(w[4:8], uint32(p.fresh))
		_, _ = h.Write(w[:])
	}
	c.hash = h.Sum64()
	c.hashOK = true

	return c.hash
}
