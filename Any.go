package iterkit

// Any reports whether at least one element of the iterator satisfies the selector.
// It short-circuits on the first element that does,
// and reports false for an empty iterator.
func Any[T any](i Iterator[T], selector func(T) bool) bool {
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		if selector(v) {
			return true
		}
	}
	return false
}
