// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Either represents a value that is either Left (conventionally an
// error or log of why there is no result) or Right (success).
//
// Unlike Maybe, the absent-result case carries a value. The two convert
// into each other with MaybeToEither and EitherToMaybe.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// PureEither lifts a pure value into Either as Right. Identical to
// Right; the name states the monadic role.
func PureEither[E, A any](a A) Either[E, A] {
	return Right[E](a)
}

// IsRight reports whether this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value; Left passes through.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return Right[E](f(e.right))
}

// MapLeftEither applies a function to the Left value; Right passes
// through.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// BindEither sequences two Either computations (monadic bind). Left
// short-circuits.
func BindEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return f(e.right)
}

// ApEither applies a wrapped function to a wrapped value. The leftmost
// Left wins when either input is Left.
func ApEither[E, A, B any](ef Either[E, func(A) B], ea Either[E, A]) Either[E, B] {
	return BindEither(ef, func(f func(A) B) Either[E, B] {
		return MapEither(ea, f)
	})
}

// ThenEither sequences two Eithers, discarding the first result. Left
// in the first position still short-circuits.
func ThenEither[E, A, B any](e Either[E, A], n Either[E, B]) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return n
}

// MaybeToEither converts a Maybe into an Either, substituting left for
// the Nothing case.
func MaybeToEither[E, A any](m Maybe[A], left E) Either[E, A] {
	if v, ok := m.Get(); ok {
		return Right[E](v)
	}
	return Left[E, A](left)
}

// EitherToMaybe converts an Either into a Maybe, discarding the Left
// value.
func EitherToMaybe[E, A any](e Either[E, A]) Maybe[A] {
	if !e.isRight {
		return Maybe[A]{}
	}
	return Just(e.right)
}
