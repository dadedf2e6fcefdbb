package iterkit_test

import (
	"github.com/Pallinder/go-randomdata"

	"github.com/adamluzsi/iterkit"
)

// uncopyable returns a source iterator over the given values that reports no copy support,
// to exercise the capability fallback paths.
func uncopyable[T any](vs ...T) iterkit.Iterator[T] {
	var index int
	return iterkit.Func(func() (T, bool) {
		if len(vs) <= index {
			var zero T
			return zero, false
		}
		v := vs[index]
		index++
		return v, true
	})
}

func randomInts(length int) []int {
	vs := make([]int, 0, length)
	for i := 0; i < length; i++ {
		vs = append(vs, randomdata.Number(0, 1000))
	}
	return vs
}
