// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Fixed-arity heterogeneous tuples and their algebraic conformances.
//
// A tuple is read as a result slot (Fst) paired with an ordered list of
// monoid-valued context slots — a generalized value-plus-log pairing:
//
//   - Map* applies a function to the result slot only.
//   - Pure* fills every context slot with its monoid identity.
//   - Ap* combines the result slots by function application and every
//     context slot by its own Append, left operand first.
//   - Identity*/Append* treat all positions uniformly, including the
//     result slot; this same-type position-wise monoid coexists with
//     the applicative view because it never changes the result type.
//
// Go has no variadic type parameters, so each arity is written out.
// Arity 1 is the bare value itself: its applicative is plain function
// application and its monoid is the element's own, so no Single type
// exists. A tuple never resizes; arity and per-position types are fixed
// by the type.

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}

// Quad is a 4-tuple.
type Quad[A, B, C, D any] struct {
	Fst A
	Snd B
	Trd C
	Fth D
}

// MakePair constructs a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// MakeTriple constructs a Triple.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{Fst: a, Snd: b, Trd: c}
}

// MakeQuad constructs a Quad.
func MakeQuad[A, B, C, D any](a A, b B, c C, d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{Fst: a, Snd: b, Trd: c, Fth: d}
}

// Unpack ejects the Pair's elements into multiple return values.
func (t Pair[A, B]) Unpack() (A, B) {
	return t.Fst, t.Snd
}

// Unpack ejects the Triple's elements into multiple return values.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.Fst, t.Snd, t.Trd
}

// Unpack ejects the Quad's elements into multiple return values.
func (t Quad[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.Fst, t.Snd, t.Trd, t.Fth
}

// MapPair applies f to the result slot; the context slot is copied
// unchanged.
//
//	MapPair(MakePair(a, m), f) == MakePair(f(a), m)
func MapPair[A, B, M any](t Pair[A, M], f func(A) B) Pair[B, M] {
	return Pair[B, M]{Fst: f(t.Fst), Snd: t.Snd}
}

// MapTriple applies f to the result slot; context slots are copied
// unchanged.
func MapTriple[A, B, M1, M2 any](t Triple[A, M1, M2], f func(A) B) Triple[B, M1, M2] {
	return Triple[B, M1, M2]{Fst: f(t.Fst), Snd: t.Snd, Trd: t.Trd}
}

// MapQuad applies f to the result slot; context slots are copied
// unchanged.
func MapQuad[A, B, M1, M2, M3 any](t Quad[A, M1, M2, M3], f func(A) B) Quad[B, M1, M2, M3] {
	return Quad[B, M1, M2, M3]{Fst: f(t.Fst), Snd: t.Snd, Trd: t.Trd, Fth: t.Fth}
}

// PurePair lifts a value into a Pair whose context slot is the monoid
// identity. The context type is given explicitly:
//
//	PurePair[Log](5) == MakePair(5, Log(""))
func PurePair[M Monoid[M], A any](a A) Pair[A, M] {
	return Pair[A, M]{Fst: a, Snd: Identity[M]()}
}

// PureTriple lifts a value into a Triple with identity context slots.
func PureTriple[M1 Monoid[M1], M2 Monoid[M2], A any](a A) Triple[A, M1, M2] {
	return Triple[A, M1, M2]{Fst: a, Snd: Identity[M1](), Trd: Identity[M2]()}
}

// PureQuad lifts a value into a Quad with identity context slots.
func PureQuad[M1 Monoid[M1], M2 Monoid[M2], M3 Monoid[M3], A any](a A) Quad[A, M1, M2, M3] {
	return Quad[A, M1, M2, M3]{Fst: a, Snd: Identity[M1](), Trd: Identity[M2](), Fth: Identity[M3]()}
}

// ApPair applies a Pair-wrapped function to a Pair-wrapped value: the
// result slot by application, the context slot by its monoid Append
// with tf's slot on the left.
//
//	ApPair(MakePair(f, m1), MakePair(a, m2)) == MakePair(f(a), m1.Append(m2))
func ApPair[A, B any, M Monoid[M]](tf Pair[func(A) B, M], ta Pair[A, M]) Pair[B, M] {
	return Pair[B, M]{
		Fst: tf.Fst(ta.Fst),
		Snd: tf.Snd.Append(ta.Snd),
	}
}

// ApTriple is ApPair at arity 3: each context slot combines by its own
// monoid, preserving order.
func ApTriple[A, B any, M1 Monoid[M1], M2 Monoid[M2]](tf Triple[func(A) B, M1, M2], ta Triple[A, M1, M2]) Triple[B, M1, M2] {
	return Triple[B, M1, M2]{
		Fst: tf.Fst(ta.Fst),
		Snd: tf.Snd.Append(ta.Snd),
		Trd: tf.Trd.Append(ta.Trd),
	}
}

// ApQuad is ApPair at arity 4.
func ApQuad[A, B any, M1 Monoid[M1], M2 Monoid[M2], M3 Monoid[M3]](tf Quad[func(A) B, M1, M2, M3], ta Quad[A, M1, M2, M3]) Quad[B, M1, M2, M3] {
	return Quad[B, M1, M2, M3]{
		Fst: tf.Fst(ta.Fst),
		Snd: tf.Snd.Append(ta.Snd),
		Trd: tf.Trd.Append(ta.Trd),
		Fth: tf.Fth.Append(ta.Fth),
	}
}

// IdentityPair returns the Pair of position-wise identities. Available
// only when every position, including the result slot, is a Monoid.
func IdentityPair[A Monoid[A], B Monoid[B]]() Pair[A, B] {
	return Pair[A, B]{Fst: Identity[A](), Snd: Identity[B]()}
}

// AppendPair combines two Pairs of the same type position-wise, the
// result slot included.
func AppendPair[A Monoid[A], B Monoid[B]](t1, t2 Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		Fst: t1.Fst.Append(t2.Fst),
		Snd: t1.Snd.Append(t2.Snd),
	}
}

// IdentityTriple returns the Triple of position-wise identities.
func IdentityTriple[A Monoid[A], B Monoid[B], C Monoid[C]]() Triple[A, B, C] {
	return Triple[A, B, C]{Fst: Identity[A](), Snd: Identity[B](), Trd: Identity[C]()}
}

// AppendTriple combines two Triples position-wise.
func AppendTriple[A Monoid[A], B Monoid[B], C Monoid[C]](t1, t2 Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		Fst: t1.Fst.Append(t2.Fst),
		Snd: t1.Snd.Append(t2.Snd),
		Trd: t1.Trd.Append(t2.Trd),
	}
}

// IdentityQuad returns the Quad of position-wise identities.
func IdentityQuad[A Monoid[A], B Monoid[B], C Monoid[C], D Monoid[D]]() Quad[A, B, C, D] {
	return Quad[A, B, C, D]{Fst: Identity[A](), Snd: Identity[B](), Trd: Identity[C](), Fth: Identity[D]()}
}

// AppendQuad combines two Quads position-wise.
func AppendQuad[A Monoid[A], B Monoid[B], C Monoid[C], D Monoid[D]](t1, t2 Quad[A, B, C, D]) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{
		Fst: t1.Fst.Append(t2.Fst),
		Snd: t1.Snd.Append(t2.Snd),
		Trd: t1.Trd.Append(t2.Trd),
		Fth: t1.Fth.Append(t2.Fth),
	}
}

// PairMonoid adapts a Pair of monoids into the Monoid constraint, so a
// pair can itself occupy a context slot or nest in MaybeMonoid.
//
// The zero value is the identity only when the zero values of A and B
// are their identities; Identity computes the true identity regardless.
type PairMonoid[A Monoid[A], B Monoid[B]] struct {
	Pair[A, B]
}

// MakePairMonoid returns a PairMonoid of the two values.
func MakePairMonoid[A Monoid[A], B Monoid[B]](a A, b B) PairMonoid[A, B] {
	return PairMonoid[A, B]{MakePair(a, b)}
}

// Identity implements Monoid with IdentityPair semantics.
func (PairMonoid[A, B]) Identity() PairMonoid[A, B] {
	return PairMonoid[A, B]{IdentityPair[A, B]()}
}

// Append implements Monoid with AppendPair semantics.
func (p PairMonoid[A, B]) Append(other PairMonoid[A, B]) PairMonoid[A, B] {
	return PairMonoid[A, B]{AppendPair(p.Pair, other.Pair)}
}

// SpreadPair invokes f with the Pair's elements as positional
// arguments, in order.
//
//	SpreadPair(f, MakePair(x, y)) == f(x, y)
func SpreadPair[A, B, R any](f func(A, B) R, t Pair[A, B]) R {
	return f(t.Fst, t.Snd)
}

// SpreadTriple invokes f with the Triple's elements as positional
// arguments, in order.
func SpreadTriple[A, B, C, R any](f func(A, B, C) R, t Triple[A, B, C]) R {
	return f(t.Fst, t.Snd, t.Trd)
}

// SpreadQuad invokes f with the Quad's elements as positional
// arguments, in order.
func SpreadQuad[A, B, C, D, R any](f func(A, B, C, D) R, t Quad[A, B, C, D]) R {
	return f(t.Fst, t.Snd, t.Trd, t.Fth)
}
