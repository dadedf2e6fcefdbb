package iterkit

// Func wraps an arbitrary pull function as the leaf of an iterator pipeline.
// The function must return the next element and true,
// or the zero value and false once the sequence is depleted.
//
// An arbitrary pull function cannot be duplicated, so the iterator reports no copy support.
func Func[T any](fn func() (T, bool)) *FuncIter[T] {
	return &FuncIter[T]{fn: fn}
}

type FuncIter[T any] struct {
	fn   func() (T, bool)
	done bool
}

func (i *FuncIter[T]) Next() Option[T] {
	if i.done {
		return None[T]()
	}
	v, ok := i.fn()
	if !ok {
		// latch, so the source is not pulled again after depletion
		i.done = true
		return None[T]()
	}
	return Some(v)
}

func (i *FuncIter[T]) CanCopy() bool {
	return false
}

func (i *FuncIter[T]) Copy() Iterator[T] {
	panic(ErrCopyNotSupported)
}
