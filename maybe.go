// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "cmp"

// Maybe holds either a value of type A or nothing.
//
// The zero value is Nothing. Maybe is a plain value type: assignment
// copies, and two Nothing values are structurally equal. Exactly one of
// IsNothing and IsJust reports true at any time, and a held value is
// only ever observed fully constructed.
type Maybe[A any] struct {
	value   A
	present bool
}

// Just returns a Maybe holding v.
func Just[A any](v A) Maybe[A] {
	return Maybe[A]{value: v, present: true}
}

// Nothing returns an empty Maybe.
// It is exactly equivalent to the zero value; the constructor exists to
// be explicit at call sites.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr converts a possibly-nil pointer into a Maybe, copying the
// pointee when p is non-nil.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Maybe[A]{}
	}
	return Just(*p)
}

// IsNothing reports whether the Maybe holds no value.
func (m Maybe[A]) IsNothing() bool {
	return !m.present
}

// IsJust reports whether the Maybe holds a value.
func (m Maybe[A]) IsJust() bool {
	return m.present
}

// IllegalAccessError is the panic value raised when the value of a
// Nothing is read. Reading Nothing is a logic error, not a recoverable
// condition, so it surfaces as a panic rather than an error return; use
// Get for the non-panicking form.
type IllegalAccessError struct {
	msg string
}

func (e *IllegalAccessError) Error() string {
	return e.msg
}

// Value returns the held value.
// Panics with *IllegalAccessError if the Maybe is Nothing.
func (m Maybe[A]) Value() A {
	if !m.present {
		panic(&IllegalAccessError{msg: "mona: reading the value of Nothing"})
	}
	return m.value
}

// Get returns the held value and true, or the zero value and false.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.present
}

// ValueOr returns the held value, or def if the Maybe is Nothing.
func (m Maybe[A]) ValueOr(def A) A {
	if !m.present {
		return def
	}
	return m.value
}

// Ptr returns a pointer to a copy of the held value, or nil for Nothing.
// The pointee is a copy: mutating it does not affect the Maybe.
func (m Maybe[A]) Ptr() *A {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

// Set replaces the content with v, releasing any previously held value.
func (m *Maybe[A]) Set(v A) {
	*m = Just(v)
}

// Clear resets the Maybe to Nothing, releasing any held value.
func (m *Maybe[A]) Clear() {
	*m = Maybe[A]{}
}

// Take moves the content out: it returns the current Maybe and leaves
// the receiver Nothing. Taking from a Nothing returns Nothing. Take on
// an already-taken or aliased receiver is well defined: the receiver is
// read in full before it is reset.
func (m *Maybe[A]) Take() Maybe[A] {
	out := *m
	*m = Maybe[A]{}
	return out
}

// Emplace constructs the held value in place of any current content.
// The build function runs exactly once; its result becomes the held
// value. If build panics the previous content is retained.
func (m *Maybe[A]) Emplace(build func() A) {
	v := build()
	*m = Just(v)
}

// MatchMaybe pattern matches on the Maybe, calling onNothing or onJust.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.present {
		return onJust(m.value)
	}
	return onNothing()
}

// FilterMaybe keeps the held value only when pred accepts it.
func FilterMaybe[A any](m Maybe[A], pred func(A) bool) Maybe[A] {
	if m.present && pred(m.value) {
		return m
	}
	return Maybe[A]{}
}

// EqualMaybe reports structural equality: two Nothings are equal, two
// Justs are equal iff their values are, and Nothing never equals Just.
func EqualMaybe[A comparable](m1, m2 Maybe[A]) bool {
	if m1.present != m2.present {
		return false
	}
	return !m1.present || m1.value == m2.value
}

// EqualMaybeFunc is EqualMaybe with an explicit equality function, for
// element types that are not comparable.
func EqualMaybeFunc[A any](m1, m2 Maybe[A], eq func(A, A) bool) bool {
	if m1.present != m2.present {
		return false
	}
	return !m1.present || eq(m1.value, m2.value)
}

// CompareMaybe orders Maybes with Nothing before any Just, and Justs by
// their values. The result follows the cmp convention: -1, 0 or +1.
func CompareMaybe[A cmp.Ordered](m1, m2 Maybe[A]) int {
	switch {
	case m1.present && m2.present:
		return cmp.Compare(m1.value, m2.value)
	case m1.present:
		return 1
	case m2.present:
		return -1
	default:
		return 0
	}
}

// LessMaybe reports whether m1 orders strictly before m2.
// Nothing < Just(x) for every x; Just(a) < Just(b) iff a < b.
func LessMaybe[A cmp.Ordered](m1, m2 Maybe[A]) bool {
	return CompareMaybe(m1, m2) < 0
}

// GreaterMaybe reports whether m1 orders strictly after m2.
// Nothing is never greater than anything.
func GreaterMaybe[A cmp.Ordered](m1, m2 Maybe[A]) bool {
	return CompareMaybe(m1, m2) > 0
}
