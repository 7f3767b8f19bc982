// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Monoid is the constraint for types with an identity value and an
// associative combining operation.
//
// The constraint is F-bounded: a conforming type M declares
//
//	func (M) Identity() M
//	func (M) Append(M) M
//
// and is used as the bound M Monoid[M]. Identity must be callable on the
// zero value of M, so conforming types use value receivers.
//
// Laws:
//
//	Append(Identity(), x) == x == Append(x, Identity())   identity
//	Append(Append(x, y), z) == Append(x, Append(y, z))    associativity
type Monoid[M any] interface {
	// Identity returns the identity element of the monoid.
	Identity() M
	// Append combines the receiver with another value.
	Append(M) M
}

// Identity returns the identity element of a monoid type.
func Identity[M Monoid[M]]() M {
	var zero M
	return zero.Identity()
}

// Combine appends two monoid values. Free-function form of Append, for
// use as a function value.
func Combine[M Monoid[M]](a, b M) M {
	return a.Append(b)
}

// MonoidInstance reports whether T conforms to Monoid.
// Conformance is checked by structural interface assertion on T's zero
// value, so generic code can branch on availability instead of failing.
func MonoidInstance[T any]() bool {
	var zero T
	_, ok := any(zero).(Monoid[T])
	return ok
}

// Sum is the additive int monoid: Identity 0, Append +.
type Sum int

func (Sum) Identity() Sum { return 0 }

func (a Sum) Append(b Sum) Sum { return a + b }

// Product is the multiplicative int monoid: Identity 1, Append *.
type Product int

func (Product) Identity() Product { return 1 }

func (a Product) Append(b Product) Product { return a * b }

// Log is the string concatenation monoid: Identity "", Append +.
// The name reflects its most common use as an accumulated-log context
// slot in tuples.
type Log string

func (Log) Identity() Log { return "" }

func (a Log) Append(b Log) Log { return a + b }

// All is the conjunctive bool monoid: Identity true, Append &&.
type All bool

func (All) Identity() All { return true }

func (a All) Append(b All) All { return a && b }

// Any is the disjunctive bool monoid: Identity false, Append ||.
type Any bool

func (Any) Identity() Any { return false }

func (a Any) Append(b Any) Any { return a || b }
