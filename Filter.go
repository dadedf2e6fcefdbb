package iterkit

// Filter keeps only the elements of the upstream iterator for which the selector returns true.
// It changes the content of the sequence, not the elements themselves.
//
// Filter changes the cardinality of the sequence in a way that depends on the element values,
// so it intentionally has no counting shortcut, counting a filtered iterator consumes it.
func Filter[T any](i Iterator[T], selector func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{src: i, match: selector}
}

type FilterIter[T any] struct {
	src   Iterator[T]
	match func(T) bool
}

// Next pulls the upstream until an element matches or the upstream runs out.
func (i *FilterIter[T]) Next() Option[T] {
	for {
		v, ok := i.src.Next().Get()
		if !ok {
			return None[T]()
		}
		if i.match(v) {
			return Some(v)
		}
	}
}

func (i *FilterIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *FilterIter[T]) Copy() Iterator[T] {
	return &FilterIter[T]{src: i.src.Copy(), match: i.match}
}
