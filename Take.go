package iterkit

// Take limits the upstream iterator to at most size elements.
// Once the limit is reached, Take reports exhaustion without touching the upstream again,
// so the upstream is never over-consumed.
func Take[T any](i Iterator[T], size int) *TakeIter[T] {
	return &TakeIter[T]{src: i, size: size}
}

type TakeIter[T any] struct {
	src   Iterator[T]
	size  int
	taken int
}

func (i *TakeIter[T]) Next() Option[T] {
	if i.size <= i.taken {
		return None[T]()
	}
	v := i.src.Next()
	if v.Ok() {
		i.taken++
	}
	return v
}

func (i *TakeIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *TakeIter[T]) Copy() Iterator[T] {
	return &TakeIter[T]{src: i.src.Copy(), size: i.size, taken: i.taken}
}
