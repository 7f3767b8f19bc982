// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mona"
)

func TestMaybeStates(t *testing.T) {
	var zero mona.Maybe[int]
	require.True(t, zero.IsNothing())
	require.False(t, zero.IsJust())

	n := mona.Nothing[int]()
	require.True(t, n.IsNothing())
	require.Equal(t, zero, n)

	j := mona.Just(42)
	require.True(t, j.IsJust())
	require.False(t, j.IsNothing())

	// exactly one state holds at any time
	for _, m := range []mona.Maybe[int]{zero, n, j, mona.Just(0)} {
		require.NotEqual(t, m.IsNothing(), m.IsJust())
	}
}

func TestMaybeValue(t *testing.T) {
	j := mona.Just("held")
	require.Equal(t, "held", j.Value())

	n := mona.Nothing[string]()
	require.PanicsWithError(t, "mona: reading the value of Nothing", func() {
		_ = n.Value()
	})
}

func TestMaybeGet(t *testing.T) {
	v, ok := mona.Just(7).Get()
	require.True(t, ok)
	require.Equal(t, 7, v)

	v, ok = mona.Nothing[int]().Get()
	require.False(t, ok)
	require.Zero(t, v)
}

func TestMaybeValueOr(t *testing.T) {
	require.Equal(t, 7, mona.Just(7).ValueOr(3))
	require.Equal(t, 3, mona.Nothing[int]().ValueOr(3))
}

func TestMaybePtrRoundTrip(t *testing.T) {
	require.Nil(t, mona.Nothing[int]().Ptr())
	require.Equal(t, mona.Nothing[int](), mona.FromPtr[int](nil))

	j := mona.Just(5)
	p := j.Ptr()
	require.NotNil(t, p)
	require.Equal(t, 5, *p)

	// the pointee is a copy
	*p = 9
	require.Equal(t, 5, j.Value())

	require.Equal(t, mona.Just(9), mona.FromPtr(p))
}

func TestMaybeSetClear(t *testing.T) {
	var m mona.Maybe[int]
	m.Set(1)
	require.Equal(t, mona.Just(1), m)

	m.Set(2) // releases the previous content first
	require.Equal(t, mona.Just(2), m)

	m.Clear()
	require.True(t, m.IsNothing())

	m.Clear() // clearing Nothing stays Nothing
	require.True(t, m.IsNothing())
}

func TestMaybeTake(t *testing.T) {
	m := mona.Just(5)
	out := m.Take()
	require.Equal(t, mona.Just(5), out)
	require.True(t, m.IsNothing())

	// taking from Nothing yields Nothing
	out = m.Take()
	require.True(t, out.IsNothing())
	require.True(t, m.IsNothing())
}

func TestMaybeEmplace(t *testing.T) {
	var m mona.Maybe[[]int]
	calls := 0
	m.Emplace(func() []int {
		calls++
		return []int{1, 2, 3}
	})
	require.Equal(t, 1, calls)
	require.Equal(t, []int{1, 2, 3}, m.Value())

	m.Emplace(func() []int { return nil })
	require.True(t, m.IsJust())
	require.Nil(t, m.Value())
}

func TestMatchMaybe(t *testing.T) {
	desc := func(m mona.Maybe[int]) string {
		return mona.MatchMaybe(m,
			func() string { return "nothing" },
			func(x int) string {
				if x%2 == 0 {
					return "even"
				}
				return "odd"
			},
		)
	}
	require.Equal(t, "nothing", desc(mona.Nothing[int]()))
	require.Equal(t, "even", desc(mona.Just(4)))
	require.Equal(t, "odd", desc(mona.Just(3)))
}

func TestFilterMaybe(t *testing.T) {
	pos := func(x int) bool { return x > 0 }
	require.Equal(t, mona.Just(4), mona.FilterMaybe(mona.Just(4), pos))
	require.True(t, mona.FilterMaybe(mona.Just(-4), pos).IsNothing())
	require.True(t, mona.FilterMaybe(mona.Nothing[int](), pos).IsNothing())
}

func TestEqualMaybe(t *testing.T) {
	cases := []struct {
		name   string
		m1, m2 mona.Maybe[int]
		want   bool
	}{
		{"nothing/nothing", mona.Nothing[int](), mona.Nothing[int](), true},
		{"just/just equal", mona.Just(1), mona.Just(1), true},
		{"just/just unequal", mona.Just(1), mona.Just(2), false},
		{"nothing/just", mona.Nothing[int](), mona.Just(1), false},
		{"just/nothing", mona.Just(1), mona.Nothing[int](), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, mona.EqualMaybe(tc.m1, tc.m2))
			require.Equal(t, tc.want, mona.EqualMaybe(tc.m2, tc.m1))
		})
	}
}

func TestEqualMaybeFunc(t *testing.T) {
	eq := func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	require.True(t, mona.EqualMaybeFunc(mona.Just([]int{1, 2}), mona.Just([]int{1, 2}), eq))
	require.False(t, mona.EqualMaybeFunc(mona.Just([]int{1}), mona.Just([]int{2}), eq))
	require.True(t, mona.EqualMaybeFunc(mona.Nothing[[]int](), mona.Nothing[[]int](), eq))
	require.False(t, mona.EqualMaybeFunc(mona.Nothing[[]int](), mona.Just([]int{}), eq))
}

func TestCompareMaybe(t *testing.T) {
	cases := []struct {
		name   string
		m1, m2 mona.Maybe[int]
		want   int
	}{
		{"nothing/nothing", mona.Nothing[int](), mona.Nothing[int](), 0},
		{"nothing/just", mona.Nothing[int](), mona.Just(1), -1},
		{"just/nothing", mona.Just(1), mona.Nothing[int](), 1},
		{"just less", mona.Just(1), mona.Just(2), -1},
		{"just equal", mona.Just(2), mona.Just(2), 0},
		{"just greater", mona.Just(3), mona.Just(2), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, mona.CompareMaybe(tc.m1, tc.m2))
			require.Equal(t, tc.want < 0, mona.LessMaybe(tc.m1, tc.m2))
			require.Equal(t, tc.want > 0, mona.GreaterMaybe(tc.m1, tc.m2))
		})
	}
}
