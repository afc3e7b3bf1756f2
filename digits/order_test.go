package digits

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	l := newList(t, 10, 1, 2, 3, 4, 5)

	require.True(t, l.Swap(0, 4))
	require.Equal(t, []Digit{5, 2, 3, 4, 1}, l.Digits())

	require.True(t, l.Swap(3, 1))
	require.Equal(t, []Digit{5, 4, 3, 2, 1}, l.Digits())

	require.True(t, l.Swap(2, 2))
	require.Equal(t, []Digit{5, 4, 3, 2, 1}, l.Digits())

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {7, 7}} {
		require.False(t, l.Swap(ij[0], ij[1]), ij)
	}

	require.Equal(t, []Digit{5, 4, 3, 2, 1}, l.Digits())
	requireConsistent(t, l)

	require.False(t, newList(t, 10).Swap(0, 0))
}

func TestSort(t *testing.T) {
	type TC struct {
		Input      []Digit
		Ascending  []Digit
		Descending []Digit
		Mark       error
	}

	tcs := []TC{
		{
			Input:      []Digit{},
			Ascending:  []Digit{},
			Descending: []Digit{},
			Mark:       oops.New("unexpected"),
		},
		{
			Input:      []Digit{7},
			Ascending:  []Digit{7},
			Descending: []Digit{7},
			Mark:       oops.New("unexpected"),
		},
		{
			Input:      []Digit{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
			Ascending:  []Digit{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9},
			Descending: []Digit{9, 6, 5, 5, 5, 4, 3, 3, 2, 1, 1},
			Mark:       oops.New("unexpected"),
		},
		{
			Input:      []Digit{0, 0, 0},
			Ascending:  []Digit{0, 0, 0},
			Descending: []Digit{0, 0, 0},
			Mark:       oops.New("unexpected"),
		},
		{
			Input:      []Digit{9, 8},
			Ascending:  []Digit{8, 9},
			Descending: []Digit{9, 8},
			Mark:       oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			l := newList(t, 10, tc.Input...)

			l.SortAscending()
			require.Equal(t, tc.Ascending, l.Digits(), tc.Mark)
			requireConsistent(t, l)

			l.SortAscending()
			require.Equal(t, tc.Ascending, l.Digits(), tc.Mark)

			l.SortDescending()
			require.Equal(t, tc.Descending, l.Digits(), tc.Mark)
			requireConsistent(t, l)

			l.SortDescending()
			require.Equal(t, tc.Descending, l.Digits(), tc.Mark)

			// Descending is the reverse of ascending.
			asc := append([]Digit{}, tc.Ascending...)
			for a, b := 0, len(asc)-1; a < b; a, b = a+1, b-1 {
				asc[a], asc[b] = asc[b], asc[a]
			}
			require.Equal(t, asc, l.Digits(), tc.Mark)
		})
	}
}

func TestSortKeepsNodes(t *testing.T) {
	l := newList(t, 16, 15, 3, 9, 0)

	before := []handle{}
	for h := l.head; h != null; h = l.nodes.at(h).next {
		before = append(before, h)
	}

	l.SortAscending()

	after := []handle{}
	for h := l.head; h != null; h = l.nodes.at(h).next {
		after = append(after, h)
	}

	require.Equal(t, before, after)
	require.Equal(t, []Digit{0, 3, 9, 15}, l.Digits())
}

func TestShift(t *testing.T) {
	type TC struct {
		Input []Digit
		Left  []Digit
		Right []Digit
		Mark  error
	}

	tcs := []TC{
		{
			Input: []Digit{},
			Left:  []Digit{},
			Right: []Digit{},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []Digit{4},
			Left:  []Digit{4},
			Right: []Digit{4},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []Digit{1, 2},
			Left:  []Digit{2, 1},
			Right: []Digit{2, 1},
			Mark:  oops.New("unexpected"),
		},
		{
			Input: []Digit{1, 2, 3, 4},
			Left:  []Digit{2, 3, 4, 1},
			Right: []Digit{4, 1, 2, 3},
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			t.Run("left", func(t *testing.T) {
				l := newList(t, 10, tc.Input...)

				l.ShiftLeft()
				require.Equal(t, tc.Left, l.Digits(), tc.Mark)
				requireConsistent(t, l)

				l.ShiftRight()
				require.Equal(t, tc.Input, l.Digits(), tc.Mark)
				requireConsistent(t, l)
			})

			t.Run("right", func(t *testing.T) {
				l := newList(t, 10, tc.Input...)

				l.ShiftRight()
				require.Equal(t, tc.Right, l.Digits(), tc.Mark)
				requireConsistent(t, l)

				l.ShiftLeft()
				require.Equal(t, tc.Input, l.Digits(), tc.Mark)
				requireConsistent(t, l)
			})

			t.Run("full rotation", func(t *testing.T) {
				l := newList(t, 10, tc.Input...)

				for range tc.Input {
					l.ShiftLeft()
				}
				require.Equal(t, tc.Input, l.Digits(), tc.Mark)
				requireConsistent(t, l)
			})
		})
	}
}

func TestShiftThenMutate(t *testing.T) {
	l := newList(t, 10, 1, 2, 3)

	l.ShiftLeft()
	require.NoError(t, l.Append(9))
	require.NoError(t, l.Insert(0, 0))
	requireConsistent(t, l)
	require.Equal(t, []Digit{0, 2, 3, 1, 9}, l.Digits())

	l.ShiftRight()
	d, err := l.Remove(2)
	require.NoError(t, err)
	require.Equal(t, Digit(2), d)
	requireConsistent(t, l)
	require.Equal(t, []Digit{9, 0, 3, 1}, l.Digits())
	require.Equal(t, 3, l.LastIndex(1))
}
