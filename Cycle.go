package iterkit

// Cycle repeats the upstream sequence indefinitely.
// When the upstream supports copying, the copy-restart strategy is used,
// because it keeps the memory bounded.
// Otherwise Cycle falls back to caching one full pass of the sequence and replaying it.
//
// A cycle over an empty upstream reports exhaustion immediately instead of spinning forever.
func Cycle[T any](i Iterator[T]) Iterator[T] {
	if i.CanCopy() {
		return CycleByCopy(i)
	}
	return CycleByCache(i)
}

// CycleByCopy repeats the upstream sequence by keeping a pristine copy of it,
// and restarting from a fresh duplicate whenever the working copy is depleted.
// The upstream must support copying.
func CycleByCopy[T any](i Iterator[T]) *CycleCopyIter[T] {
	return &CycleCopyIter[T]{orig: i, current: i.Copy()}
}

type CycleCopyIter[T any] struct {
	orig    Iterator[T]
	current Iterator[T]
	done    bool
}

func (i *CycleCopyIter[T]) Next() Option[T] {
	if i.done {
		return None[T]()
	}
	if v := i.current.Next(); v.Ok() {
		return v
	}
	i.current = i.orig.Copy()
	v := i.current.Next()
	if !v.Ok() {
		// a fresh pass yielded nothing, the source itself is empty,
		// retrying again would never terminate
		i.done = true
	}
	return v
}

func (i *CycleCopyIter[T]) CanCopy() bool {
	return i.orig.CanCopy()
}

func (i *CycleCopyIter[T]) Copy() Iterator[T] {
	return &CycleCopyIter[T]{orig: i.orig.Copy(), current: i.current.Copy(), done: i.done}
}

// CycleByCache repeats the upstream sequence by caching each element as it is pulled.
// Once the upstream is depleted, the cache is replayed circularly.
// Memory grows with the length of one full pass, then stays fixed.
func CycleByCache[T any](i Iterator[T]) *CycleCacheIter[T] {
	return &CycleCacheIter[T]{src: i}
}

type CycleCacheIter[T any] struct {
	src      Iterator[T]
	cache    []T
	ptr      int
	useCache bool
}

func (i *CycleCacheIter[T]) Next() Option[T] {
	if i.useCache {
		if len(i.cache) == 0 {
			// the source was empty, there is nothing to replay
			return None[T]()
		}
		i.ptr = i.ptr % len(i.cache)
		v := i.cache[i.ptr]
		i.ptr++
		return Some(v)
	}
	if v, ok := i.src.Next().Get(); ok {
		i.cache = append(i.cache, v)
		return Some(v)
	}
	i.useCache = true
	return i.Next()
}

func (i *CycleCacheIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

// Copy duplicates the cache as well, the two instances must not share mutable state.
func (i *CycleCacheIter[T]) Copy() Iterator[T] {
	return &CycleCacheIter[T]{
		src:      i.src.Copy(),
		cache:    append([]T(nil), i.cache...),
		ptr:      i.ptr,
		useCache: i.useCache,
	}
}
