package iterkit

// Nth returns the n-th element of the iterator, counting from zero,
// or an absent Option when the iterator has fewer elements than that.
// It is equivalent to advancing by n and taking the next element.
func Nth[T any](i Iterator[T], n int) Option[T] {
	return AdvanceBy(i, n).Next()
}
