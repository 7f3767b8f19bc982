// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Monad operations for Maybe.
//
// Minimal definition: PureMaybe (unit) and BindMaybe are necessary and
// sufficient. MapMaybe, ApMaybe, ThenMaybe and JoinMaybe are derived
// operations kept as direct implementations to avoid intermediate
// closures. Together they also give Maybe its Functor and Applicative
// behavior.

// PureMaybe lifts a pure value into Maybe. Identical to Just; the name
// states the monadic role.
func PureMaybe[A any](a A) Maybe[A] {
	return Just(a)
}

// MapMaybe applies a pure function to the held value, if any.
//
//	MapMaybe(Just(x), f) == Just(f(x))
//	MapMaybe(Nothing, f) == Nothing
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.present {
		return Maybe[B]{}
	}
	return Just(f(m.value))
}

// BindMaybe sequences two Maybe computations (monadic bind). It runs f
// on the held value; Nothing short-circuits.
func BindMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.present {
		return Maybe[B]{}
	}
	return f(m.value)
}

// ApMaybe applies a wrapped function to a wrapped value. The result is
// Just only when both inputs are.
func ApMaybe[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	return BindMaybe(mf, func(f func(A) B) Maybe[B] {
		return MapMaybe(ma, f)
	})
}

// ThenMaybe sequences two Maybes, discarding the first result. Nothing
// in the first position still short-circuits.
func ThenMaybe[A, B any](m Maybe[A], n Maybe[B]) Maybe[B] {
	if !m.present {
		return Maybe[B]{}
	}
	return n
}

// JoinMaybe flattens a nested Maybe.
func JoinMaybe[A any](mm Maybe[Maybe[A]]) Maybe[A] {
	return BindMaybe(mm, Ident)
}
