package iterkit

import "iter"

// FromSeq adapts a standard library sequence into an Iterator.
// This is the bridge between the language's native iteration protocol and the iterator pipelines,
// the returned iterator exclusively owns the pull side of the sequence.
//
// A running sequence's state cannot be duplicated, so the iterator reports no copy support.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (i *SeqIter[T]) Next() Option[T] {
	if i.done {
		return None[T]()
	}
	v, ok := i.next()
	if !ok {
		i.done = true
		i.stop()
		return None[T]()
	}
	return Some(v)
}

func (i *SeqIter[T]) CanCopy() bool {
	return false
}

func (i *SeqIter[T]) Copy() Iterator[T] {
	panic(ErrCopyNotSupported)
}

// ToSeq exposes the iterator as a standard library sequence,
// so a pipeline can be consumed with a plain for-range loop.
// The sequence pulls the iterator lazily and is single-use.
func ToSeq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := i.Next().Get(); ok; v, ok = i.Next().Get() {
			if !yield(v) {
				return
			}
		}
	}
}
