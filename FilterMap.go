package iterkit

// FilterMap combines filtering and mapping in a single adapter.
// The transform returns an Option: a present result is yielded,
// an absent result drops the element and the adapter pulls the next one.
func FilterMap[T, R any](i Iterator[T], transform func(T) Option[R]) *FilterMapIter[T, R] {
	return &FilterMapIter[T, R]{src: i, transform: transform}
}

type FilterMapIter[T, R any] struct {
	src       Iterator[T]
	transform func(T) Option[R]
}

func (i *FilterMapIter[T, R]) Next() Option[R] {
	for {
		v, ok := i.src.Next().Get()
		if !ok {
			return None[R]()
		}
		if r := i.transform(v); r.Ok() {
			return r
		}
	}
}

func (i *FilterMapIter[T, R]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *FilterMapIter[T, R]) Copy() Iterator[R] {
	return &FilterMapIter[T, R]{src: i.src.Copy(), transform: i.transform}
}
