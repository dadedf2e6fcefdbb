package iterkit

// All reports whether every element of the iterator satisfies the selector.
// It short-circuits on the first element that does not,
// and reports true for an empty iterator.
func All[T any](i Iterator[T], selector func(T) bool) bool {
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		if !selector(v) {
			return false
		}
	}
	return true
}
