package iterkit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterkit"
)

func ExampleWindows() {
	iter := iterkit.Windows(iterkit.Slice([]int{1, 2, 3, 4, 5}), 3)
	fmt.Println(iterkit.Collect[[]int](iter))
	// Output: [[1 2 3] [2 3 4] [3 4 5]]
}

func TestWindows_YieldsEverySlidingWindowOrderedOldestToNewest(t *testing.T) {
	t.Parallel()

	values := randomInts(7)

	for _, size := range []int{1, 2, 3, 7} {
		var expected [][]int
		for i := 0; i+size <= len(values); i++ {
			expected = append(expected, values[i:i+size])
		}

		got := iterkit.Collect[[]int](iterkit.Windows(iterkit.Slice(values), size))
		require.Equal(t, expected, got, `window size: %d`, size)
	}
}

func TestWindows_SourceShorterThanTheWindow_NoWindowAtAll(t *testing.T) {
	t.Parallel()

	iter := iterkit.Windows(iterkit.Slice([]int{1, 2}), 3)

	require.False(t, iter.Next().Ok())
	require.False(t, iter.Next().Ok())
}

func TestWindows_EveryWindowIsAnIndependentSnapshot(t *testing.T) {
	t.Parallel()

	iter := iterkit.Windows(iterkit.Slice([]int{1, 2, 3, 4}), 2)

	first := iter.Next().Value()
	second := iter.Next().Value()
	first[0], first[1] = -1, -1

	require.Equal(t, []int{2, 3}, second)
	require.Equal(t, []int{3, 4}, iter.Next().Value())
}

func TestWindows_CountsEveryWindowTheUpstreamCanStillProduce(t *testing.T) {
	t.Parallel()

	t.Run(`upstream longer than the window`, func(t *testing.T) {
		require.Equal(t, 5, iterkit.Count[[]int](iterkit.Windows(iterkit.Slice(randomInts(7)), 3)))
	})

	t.Run(`upstream shorter than the window`, func(t *testing.T) {
		require.Equal(t, 0, iterkit.Count[[]int](iterkit.Windows(iterkit.Slice(randomInts(2)), 3)))
	})
}

func TestWindows_NonPositiveSizeIsAProgrammingError(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { iterkit.Windows(iterkit.Slice([]int{1}), 0) })
	require.Panics(t, func() { iterkit.Windows(iterkit.Slice([]int{1}), -2) })
}

func TestWindows_CopyDuplicatesTheBuffer(t *testing.T) {
	t.Parallel()

	original := iterkit.Windows(iterkit.Slice([]int{1, 2, 3, 4}), 2)
	require.Equal(t, []int{1, 2}, original.Next().Value())

	duplicate := original.Copy()

	require.Equal(t, [][]int{{2, 3}, {3, 4}}, iterkit.Collect[[]int](original))
	require.Equal(t, [][]int{{2, 3}, {3, 4}}, iterkit.Collect(duplicate))
}

func TestWindows_CopySupportFollowsUpstream(t *testing.T) {
	t.Parallel()

	require.False(t, iterkit.Windows(uncopyable(1, 2, 3), 2).CanCopy())
}
