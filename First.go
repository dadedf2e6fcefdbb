package iterkit

// First returns the first element of the iterator,
// or an absent Option when the iterator is empty.
func First[T any](i Iterator[T]) Option[T] {
	return i.Next()
}
