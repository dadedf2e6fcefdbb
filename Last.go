package iterkit

// Last drains the iterator and returns the final produced element,
// or an absent Option when the iterator produced nothing.
func Last[T any](i Iterator[T]) Option[T] {
	last := None[T]()
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		last = Some(v)
	}
	return last
}
