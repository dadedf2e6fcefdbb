package iterkit

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum drains the iterator and adds every produced element together.
// An empty iterator sums to the zero value.
func Sum[T number](i Iterator[T]) T {
	var sum T
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		sum += v
	}
	return sum
}
