package iterkit

// Chain concatenates two iterators:
// it yields every element of the first, then every element of the second, without reordering.
// After the first iterator reports exhaustion once, Chain never pulls it again.
func Chain[T any](first, second Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{first: first, second: second}
}

type ChainIter[T any] struct {
	first     Iterator[T]
	second    Iterator[T]
	useSecond bool
}

func (i *ChainIter[T]) Next() Option[T] {
	if !i.useSecond {
		if v := i.first.Next(); v.Ok() {
			return v
		}
		i.useSecond = true
	}
	return i.second.Next()
}

func (i *ChainIter[T]) CanCopy() bool {
	return i.first.CanCopy() && i.second.CanCopy()
}

func (i *ChainIter[T]) Copy() Iterator[T] {
	return &ChainIter[T]{first: i.first.Copy(), second: i.second.Copy(), useSecond: i.useSecond}
}
