// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mona provides algebraic type classes and the value containers
// that conform to them in Go.
//
// The package fixes a small set of algebraic contracts — Monoid,
// Functor, Applicative, Monad — and supplies two containers that
// conform to them: [Maybe], a value-or-absence holder, and [Either], a
// success-or-failure sum. Fixed-arity tuples ([Pair], [Triple], [Quad])
// participate in the same contracts through element-wise combination.
//
// # Design Philosophy
//
// mona provides:
//   - Statically dispatched conformance: every class operation resolves
//     to a concrete implementation at compile time; no reflection, no
//     runtime dispatch layer
//   - Compile-time gating: conformance preconditions (an element type
//     must itself be a Monoid, comparable, or ordered) are generic
//     constraints, rejected before the program runs when unmet
//   - Plain value semantics: every operation reads its inputs and
//     produces a new value; nothing blocks or performs I/O
//
// # Type Class Encoding
//
// Go has no higher-kinded types, so the four classes take two forms.
//
// Monoid is a real constraint. A type M conforms by declaring
//
//	func (M) Identity() M
//	func (M) Append(M) M
//
// with value receivers (Identity must be callable on the zero value),
// and is used through the F-bounded bound M Monoid[M]:
//
//   - [Monoid]: the constraint interface
//   - [Identity], [Combine]: free-function forms of the two operations
//   - [MonoidInstance]: runtime-queryable conformance bit, checked by
//     structural interface assertion
//
// Ready-made monoids: [Sum], [Product], [Log], [All], [Any].
//
// Functor, Applicative and Monad are function families per container,
// named Map*, Pure*/Ap*, and Bind*. The laws they satisfy:
//
//	Map(m, Ident) == m                                 functor identity
//	Bind(Pure(a), f) == f(a)                           left identity
//	Bind(m, Pure) == m                                 right identity
//	Bind(Bind(m, f), g) == Bind(m, x => Bind(f(x), g)) associativity
//
// # Maybe
//
// [Maybe] holds either a value or nothing; the zero value is Nothing.
//
// Construction and lifecycle:
//
//   - [Just], [Nothing], [FromPtr]: constructors
//   - [Maybe.Set], [Maybe.Clear]: replace or release the content
//   - [Maybe.Take]: move the content out, leaving Nothing
//   - [Maybe.Emplace]: construct the held value in place via a builder
//
// Observation:
//
//   - [Maybe.IsNothing], [Maybe.IsJust]: state queries, exactly one true
//   - [Maybe.Value]: the held value; panics with [IllegalAccessError]
//     on Nothing
//   - [Maybe.Get]: comma-ok form
//   - [Maybe.ValueOr], [Maybe.Ptr], [MatchMaybe], [FilterMaybe]
//
// Comparison (gated on the element's capability):
//
//   - [EqualMaybe], [EqualMaybeFunc]: structural equality
//   - [LessMaybe], [GreaterMaybe], [CompareMaybe]: ordering, with
//     Nothing before any Just
//
// Conformance:
//
//   - Monoid, when the element is one: [AppendMaybe] with Nothing as
//     identity; [MaybeMonoid] adapts Maybe into the constraint itself
//   - Monad (Functor and Applicative derived): [PureMaybe], [MapMaybe],
//     [BindMaybe], [ApMaybe], [ThenMaybe], [JoinMaybe]
//
// # Either
//
// [Either] carries a Left (failure) or Right (success) value:
//
//   - [Left], [Right], [PureEither]: constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft],
//     [Either.GetRight], [MatchEither]: observation
//   - [MapEither], [MapLeftEither], [BindEither], [ApEither],
//     [ThenEither]: class operations
//   - [MaybeToEither], [EitherToMaybe]: conversions
//
// # Tuples
//
// [Pair], [Triple] and [Quad] are fixed-arity heterogeneous products
// read as a result slot plus ordered monoid-valued context slots (a
// generalized value-plus-log pairing). Per arity:
//
//   - Functor: [MapPair], [MapTriple], [MapQuad] — result slot only
//   - Applicative: [PurePair] (identity context), [ApPair] (application
//     on the result slot, Append on each context slot), and the 3/4
//     arity forms
//   - Monoid over all positions: [IdentityPair], [AppendPair], and the
//     3/4 arity forms; [PairMonoid] adapts a pair into the constraint
//   - Positional spread: [SpreadPair], [SpreadTriple], [SpreadQuad]
//     invoke a function with the elements as positional arguments
//
// The monoid and applicative views coexist: Append combines two tuples
// of the same type across all positions, while Map/Ap transform the
// result slot into a new type and never touch the context slots except
// by their own monoids.
//
// # Errors
//
// Reading the value of Nothing is a logic error and panics with
// [IllegalAccessError]; every other operation is total. Everything
// else that can go wrong is a constraint violation caught by the
// compiler.
//
// # Example
//
//	double := func(x int) int { return x * 2 }
//
//	m := mona.MapMaybe(mona.Just(5), double)
//	// m == mona.Just(10)
//
//	tf := mona.MakePair(double, mona.Log("a"))
//	ta := mona.MakePair(5, mona.Log("b"))
//	r := mona.ApPair(tf, ta)
//	// r == mona.MakePair(10, mona.Log("ab"))
package mona
