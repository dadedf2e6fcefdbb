package iterkit

// Slice returns an iterator over the elements of the given slice, in order.
func Slice[T any](slice []T) *SliceIter[T] {
	return &SliceIter[T]{Slice: slice}
}

type SliceIter[T any] struct {
	Slice []T

	index int
}

func (i *SliceIter[T]) Next() Option[T] {
	if len(i.Slice) <= i.index {
		return None[T]()
	}
	v := i.Slice[i.index]
	i.index++
	return Some(v)
}

func (i *SliceIter[T]) CanCopy() bool {
	return true
}

// Copy duplicates the iterator at its current position.
// The backing slice is never written by the iterator, so the copies may share it.
func (i *SliceIter[T]) Copy() Iterator[T] {
	return &SliceIter[T]{Slice: i.Slice, index: i.index}
}
