package iterkit

// Indexed pairs an element with its zero based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate pairs every upstream element with the number of elements yielded before it.
func Enumerate[T any](i Iterator[T]) *EnumerateIter[T] {
	return &EnumerateIter[T]{src: i}
}

type EnumerateIter[T any] struct {
	src     Iterator[T]
	currIdx int
}

func (i *EnumerateIter[T]) Next() Option[Indexed[T]] {
	v, ok := i.src.Next().Get()
	if !ok {
		return None[Indexed[T]]()
	}
	item := Indexed[T]{Index: i.currIdx, Value: v}
	i.currIdx++
	return Some(item)
}

func (i *EnumerateIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *EnumerateIter[T]) Copy() Iterator[Indexed[T]] {
	return &EnumerateIter[T]{src: i.src.Copy(), currIdx: i.currIdx}
}

// Count reports the upstream count, enumeration never changes the cardinality.
func (i *EnumerateIter[T]) Count() int {
	return Count(i.src)
}
