package combex

import "sync/atomic"

// Ref is a late-bound matcher handle for self-referential grammars. Static
// composition cannot express a grammar that contains itself (a JSON value
// holding JSON values), so recursive call sites hold a Ref and the concrete
// definition is bound once construction is complete:
//
//	value := combex.NewRef()
//	list := combex.Seq(combex.Str("["), combex.Separate(value, combex.Str(",")), combex.Str("]"))
//	value.Bind(combex.Or(combex.OneMore(combex.ASCIIDigit()), list))
//
// Multiple call sites may alias the same Ref. Bind before matching and from a
// single goroutine; for cross-goroutine construction use SyncRef.
type Ref struct {
	m Matcher
}

// NewRef creates an unbound handle.
func NewRef() *Ref {
	return &Ref{}
}

// Bind sets the matcher the handle forwards to. Rebinding is allowed; the
// last binding wins.
func (r *Ref) Bind(m Matcher) {
	r.m = m
}

// Match implements Matcher. Matching through an unbound handle is a
// programming error and panics.
func (r *Ref) Match(c *Cursor, caps *Captures) (Span, error) {
	if r.m == nil {
		panic("combex: Ref matched before Bind")
	}
	return r.m.Match(c, caps)
}

// SyncRef is a Ref variant whose binding is published atomically, so a
// grammar may be bound in one goroutine and matched from others. The wrapped
// matcher itself must be side-effect-free, which every combinator in this
// package is; no further locking is involved.
type SyncRef struct {
	m atomic.Pointer[Matcher]
}

// NewSyncRef creates an unbound synchronized handle.
func NewSyncRef() *SyncRef {
	return &SyncRef{}
}

// Bind atomically publishes the matcher the handle forwards to.
func (r *SyncRef) Bind(m Matcher) {
	r.m.Store(&m)
}

// Match implements Matcher, panicking when the handle is unbound.
func (r *SyncRef) Match(c *Cursor, caps *Captures) (Span, error) {
	mp := r.m.Load()
	if mp == nil {
		panic("combex: SyncRef matched before Bind")
	}
	return (*mp).Match(c, caps)
}
