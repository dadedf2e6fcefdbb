package iterkit

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

// EmptyIter iterator can help achieve Null Object Pattern when no value is logically expected and iterator should be returned
type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Next() Option[T] {
	return None[T]()
}

func (i *EmptyIter[T]) CanCopy() bool {
	return true
}

func (i *EmptyIter[T]) Copy() Iterator[T] {
	return &EmptyIter[T]{}
}
