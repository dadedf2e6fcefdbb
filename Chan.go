package iterkit

// Chan wraps a receive channel as a source iterator.
// Next blocks until a value is received or the channel is closed,
// the blocking is visible to and bounded by the immediate caller of Next.
//
// A channel cannot be duplicated, so the iterator reports no copy support.
func Chan[T any](ch <-chan T) *ChanIter[T] {
	return &ChanIter[T]{ch: ch}
}

type ChanIter[T any] struct {
	ch   <-chan T
	done bool
}

func (i *ChanIter[T]) Next() Option[T] {
	if i.done {
		return None[T]()
	}
	v, ok := <-i.ch
	if !ok {
		i.done = true
		return None[T]()
	}
	return Some(v)
}

func (i *ChanIter[T]) CanCopy() bool {
	return false
}

func (i *ChanIter[T]) Copy() Iterator[T] {
	panic(ErrCopyNotSupported)
}
