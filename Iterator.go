package iterkit

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// Iterators compose into pipelines: each adapter exclusively owns its upstream iterator(s)
// and pulls from them lazily, one element per Next call, without materializing intermediate results.
type Iterator[T any] interface {
	// Next advances the iterator and returns the next element of the sequence,
	// or an absent Option once the sequence is exhausted.
	// After exhaustion, Next must keep reporting exhaustion on every further call.
	Next() Option[T]
	// CanCopy reports whether the iterator, including its whole upstream chain,
	// is able to produce an independent duplicate of itself.
	// Adapters answer it by delegating the question upstream.
	CanCopy() bool
	// Copy returns a duplicate of the iterator and all its upstream state,
	// such that both instances subsequently yield the same remaining sequence independently.
	// Buffers and cursors are duplicated, never aliased.
	//
	// Calling Copy on an iterator where CanCopy reports false is a programming error,
	// and the call panics with ErrCopyNotSupported.
	Copy() Iterator[T]
}

// Counter is the optional capability of an iterator to report
// how many elements it would produce without evaluating them.
// Adapters that keep the upstream cardinality untouched can afford to implement it;
// everything else must be counted by consuming the iterator.
type Counter interface {
	Count() int
}
