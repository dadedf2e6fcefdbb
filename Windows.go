package iterkit

import "fmt"

// Windows yields sliding windows of the given size over the upstream sequence.
// The first Next call consumes size elements to fill the window,
// every later call shifts the window forward by one element.
// Each returned window is an independent snapshot ordered from oldest to newest,
// mutating one window does not affect another.
// An upstream shorter than the window size yields no windows at all.
//
// A non-positive size is a programming error and panics with ErrInvalidArgument.
func Windows[T any](i Iterator[T], size int) *WindowsIter[T] {
	if size <= 0 {
		panic(fmt.Errorf(`%w: window size must be greater than 0`, ErrInvalidArgument))
	}
	return &WindowsIter[T]{src: i, size: size}
}

type WindowsIter[T any] struct {
	src  Iterator[T]
	size int

	// cache is a circular buffer of at most size elements, ptr is the write position in it.
	cache []T
	ptr   int
	done  bool
}

func (i *WindowsIter[T]) Next() Option[[]T] {
	if i.done {
		return None[[]T]()
	}

	if len(i.cache) < i.size {
		for len(i.cache) < i.size {
			v, ok := i.src.Next().Get()
			if !ok {
				i.done = true
				return None[[]T]()
			}
			i.cache = append(i.cache, v)
		}
		return Some(append([]T(nil), i.cache...))
	}

	v, ok := i.src.Next().Get()
	if !ok {
		i.done = true
		return None[[]T]()
	}
	i.cache[i.ptr%i.size] = v
	i.ptr++

	window := make([]T, 0, i.size)
	for n := 0; n < i.size; n++ {
		window = append(window, i.cache[(i.ptr+n)%i.size])
	}
	return Some(window)
}

func (i *WindowsIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *WindowsIter[T]) Copy() Iterator[[]T] {
	return &WindowsIter[T]{
		src:   i.src.Copy(),
		size:  i.size,
		cache: append([]T(nil), i.cache...),
		ptr:   i.ptr,
		done:  i.done,
	}
}

// Count reports the number of windows the upstream can still produce:
// every element starts a window except the last size-1 ones.
func (i *WindowsIter[T]) Count() int {
	c := Count(i.src) - (i.size - 1)
	if c < 0 {
		return 0
	}
	return c
}
