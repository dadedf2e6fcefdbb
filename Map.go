package iterkit

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to unserialize the input stream,
// thus protect the business rules from this information.
func Map[T, R any](i Iterator[T], transform func(T) R) *MapIter[T, R] {
	return &MapIter[T, R]{src: i, transform: transform}
}

type MapIter[T, R any] struct {
	src       Iterator[T]
	transform func(T) R
}

func (i *MapIter[T, R]) Next() Option[R] {
	v, ok := i.src.Next().Get()
	if !ok {
		return None[R]()
	}
	return Some(i.transform(v))
}

func (i *MapIter[T, R]) CanCopy() bool {
	return i.src.CanCopy()
}

// Copy duplicates the upstream state, the transform function value is shared.
func (i *MapIter[T, R]) Copy() Iterator[R] {
	return &MapIter[T, R]{src: i.src.Copy(), transform: i.transform}
}

// Count reports the upstream count.
// Mapping never changes the cardinality of the sequence,
// so the transform does not have to be evaluated for counting.
func (i *MapIter[T, R]) Count() int {
	return Count(i.src)
}
