// Package renaming implements variable renaming contexts for
// substitution: a scoped mapping from variables to freshly generated
// variables, with a structural hash for fast equivalence checks.
//
// A Context is a stack of bindings. PushVars binds each listed variable
// to a fresh variable, shadowing any earlier binding; PopVars undoes
// the most recent bindings and un-shadows what they covered. Hash
// returns a structural hash of the live substitution, computed lazily
// and cached until the next mutation: two contexts holding the same
// substitution hash identically, whatever push/pop history produced it.
//
// The package shares no state with poly or pprod; it only borrows the
// pprod.Var identifier type. Like the rest of the engine a Context has
// a single logical owner and performs no locking.
package renaming
