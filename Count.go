package iterkit

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
//
// Iterators that advertise the Counter capability are counted through it,
// which lets cardinality preserving adapters skip producing the elements altogether.
func Count[T any](i Iterator[T]) int {
	if c, ok := i.(Counter); ok {
		return c.Count()
	}

	total := 0

	for i.Next().Ok() {
		total++
	}

	return total
}
