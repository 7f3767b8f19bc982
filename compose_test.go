// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/mona"
)

func TestIdent(t *testing.T) {
	if got := mona.Ident(42); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := mona.Ident("s"); got != "s" {
		t.Fatalf("got %q, want s", got)
	}
}

func TestComp(t *testing.T) {
	double := func(x int) int { return x * 2 }
	show := strconv.Itoa

	f := mona.Comp(double, show)
	if got := f(21); got != "42" {
		t.Fatalf("got %q, want 42", got)
	}

	// Ident is left and right unit of Comp
	if got := mona.Comp(mona.Ident[int], double)(5); got != double(5) {
		t.Fatal("Ident is not a left unit")
	}
	if got := mona.Comp(double, mona.Ident[int])(5); got != double(5) {
		t.Fatal("Ident is not a right unit")
	}
}

func TestConst(t *testing.T) {
	f := mona.Const[string](7)
	if got := f("ignored"); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := f("other"); got != 7 {
		t.Fatal("Const must return the same value for every argument")
	}
}
