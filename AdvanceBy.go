package iterkit

import "fmt"

// AdvanceBy discards the next n elements of the iterator,
// stopping early without error when the iterator exhausts before that.
// It returns the received iterator so positional operations can chain on it.
// A negative n is a programming error and panics with ErrInvalidArgument.
func AdvanceBy[T any](i Iterator[T], n int) Iterator[T] {
	if n < 0 {
		panic(fmt.Errorf(`%w: amount to advance by must be greater or equal to 0`, ErrInvalidArgument))
	}
	for ; 0 < n; n-- {
		if !i.Next().Ok() {
			break
		}
	}
	return i
}
