package iterkit_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterkit"
)

func ExampleMap() {
	var iter iterkit.Iterator[int]
	iter = iterkit.Slice([]int{1, 2, 3, 4})
	iter = iterkit.Map(iter, func(n int) int { return n + 5 })
	fmt.Println(iterkit.Collect(iter))
	// Output: [6 7 8 9]
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	var (
		values = testcase.Let[[]string](s, func(t *testcase.T) []string {
			return []string{`a`, `b`, `c`}
		})
		src = testcase.Let[iterkit.Iterator[string]](s, func(t *testcase.T) iterkit.Iterator[string] {
			return iterkit.Slice(values.Get(t))
		})
		transform = testcase.Let[func(string) string](s, func(t *testcase.T) func(string) string {
			return strings.ToUpper
		})
		subject = testcase.Let[*iterkit.MapIter[string, string]](s, func(t *testcase.T) *iterkit.MapIter[string, string] {
			return iterkit.Map(src.Get(t), transform.Get(t))
		})
	)

	s.Then(`the new iterator returns the values changed by the map step`, func(t *testcase.T) {
		t.Must.Equal([]string{`A`, `B`, `C`}, iterkit.Collect[string](subject.Get(t)))
	})

	s.Then(`mapping preserves the order and the length of the sequence`, func(t *testcase.T) {
		t.Must.Equal(len(values.Get(t)), len(iterkit.Collect[string](subject.Get(t))))
	})

	s.When(`the source is empty`, func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []string {
			return []string{}
		})

		s.Then(`the mapped iterator is empty as well`, func(t *testcase.T) {
			t.Must.Empty(iterkit.Collect[string](subject.Get(t)))
		})
	})

	s.Describe(`map used in a daisy chain style`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) iterkit.Iterator[string] {
			toUpper := func(s string) string { return strings.ToUpper(s) }

			withIndex := func() func(string) string {
				var index int
				return func(s string) string {
					defer func() { index++ }()
					return fmt.Sprintf(`%s%d`, s, index)
				}
			}

			var i iterkit.Iterator[string]
			i = src.Get(t)
			i = iterkit.Map(i, toUpper)
			i = iterkit.Map(i, withIndex())
			return i
		}

		s.Then(`it will execute all the map steps in the final iterator composition`, func(t *testcase.T) {
			t.Must.Equal([]string{`A0`, `B1`, `C2`}, iterkit.Collect(subject(t)))
		})
	})

	s.Describe(`Count`, func(s *testcase.Spec) {
		s.Then(`it reports the upstream cardinality`, func(t *testcase.T) {
			t.Must.Equal(len(values.Get(t)), iterkit.Count[string](subject.Get(t)))
		})

		s.Then(`counting does not evaluate the transform`, func(t *testcase.T) {
			var evaluated int
			transform.Set(t, func(s string) string {
				evaluated++
				return s
			})

			t.Must.Equal(len(values.Get(t)), iterkit.Count[string](subject.Get(t)))
			t.Must.Equal(0, evaluated)
		})
	})

	s.Describe(`Copy`, func(s *testcase.Spec) {
		s.Then(`copy support follows the upstream`, func(t *testcase.T) {
			t.Must.True(subject.Get(t).CanCopy())
		})

		s.Then(`advancing the original does not affect the values of the copy`, func(t *testcase.T) {
			original := subject.Get(t)
			duplicate := original.Copy()

			t.Must.Equal([]string{`A`, `B`, `C`}, iterkit.Collect[string](original))
			t.Must.Equal([]string{`A`, `B`, `C`}, iterkit.Collect(duplicate))
		})

		s.When(`the upstream cannot be copied`, func(s *testcase.Spec) {
			src.Let(s, func(t *testcase.T) iterkit.Iterator[string] {
				return uncopyable(values.Get(t)...)
			})

			s.Then(`the mapped iterator cannot be copied either`, func(t *testcase.T) {
				t.Must.False(subject.Get(t).CanCopy())
			})
		})
	})
}

func TestMap_ConcreteScenario(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{6, 7, 8, 9},
		iterkit.Collect[int](iterkit.Map(iterkit.Slice([]int{1, 2, 3, 4}), func(n int) int { return n + 5 })))

	require.Empty(t,
		iterkit.Collect[int](iterkit.Map(iterkit.Slice([]int{}), func(n int) int { return n + 5 })))

	require.Equal(t, 4,
		iterkit.Count[int](iterkit.Map(iterkit.Slice([]int{1, 2, 3, 4}), func(n int) int { return n + 1 })))
}
