package iterkit

// Collect drains the iterator and returns every produced element as a slice,
// preserving the production order.
func Collect[T any](i Iterator[T]) []T {
	var vs []T
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		vs = append(vs, v)
	}
	return vs
}

// CollectSet drains the iterator into a set, dropping duplicates and ordering.
func CollectSet[T comparable](i Iterator[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
		set[v] = struct{}{}
	}
	return set
}
