// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Monoid conformance for Maybe, available when the element type is
// itself a Monoid. The identity is Nothing and Append lifts the element
// monoid into the holding case:
//
//	AppendMaybe(Just(x), Just(y)) == Just(x.Append(y))
//	AppendMaybe(Just(x), Nothing) == Just(x)
//	AppendMaybe(Nothing, Just(y)) == Just(y)
//	AppendMaybe(Nothing, Nothing) == Nothing

// AppendMaybe combines two Maybes of a monoid element type.
func AppendMaybe[A Monoid[A]](m1, m2 Maybe[A]) Maybe[A] {
	switch {
	case m1.present && m2.present:
		return Just(m1.value.Append(m2.value))
	case m1.present:
		return m1
	case m2.present:
		return m2
	default:
		return Maybe[A]{}
	}
}

// MaybeMonoid adapts Maybe[A] into the Monoid constraint, so that a
// Maybe over a monoid element can itself occupy positions that require
// a Monoid: a tuple context slot, or the element of an enclosing Maybe.
//
// The zero value is the identity (Nothing).
type MaybeMonoid[A Monoid[A]] struct {
	Maybe[A]
}

// JustMonoid returns a MaybeMonoid holding v.
func JustMonoid[A Monoid[A]](v A) MaybeMonoid[A] {
	return MaybeMonoid[A]{Just(v)}
}

// Identity implements Monoid. It returns the Nothing value.
func (MaybeMonoid[A]) Identity() MaybeMonoid[A] {
	return MaybeMonoid[A]{}
}

// Append implements Monoid with AppendMaybe semantics.
func (m MaybeMonoid[A]) Append(other MaybeMonoid[A]) MaybeMonoid[A] {
	return MaybeMonoid[A]{AppendMaybe(m.Maybe, other.Maybe)}
}
