// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Plain function utilities used throughout the package and by clients
// building arguments for Map/Bind/Ap.

// Ident returns its argument unchanged. It is the unit of Comp and the
// function witness of the functor identity law.
func Ident[A any](a A) A {
	return a
}

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}
