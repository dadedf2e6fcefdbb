package iterkit

import "github.com/rs/zerolog/log"

// Inspect lets you observe each element as it passes through the pipeline.
// The observer is called on every produced element, and the element is returned unmodified.
// Inspect is meant for debugging a pipeline in place;
// if you want to run a function on every element as the end of the pipeline, use ForEach.
//
// When fn is nil, elements are logged at debug level as a diagnostic default.
func Inspect[T any](i Iterator[T], fn func(T)) *InspectIter[T] {
	if fn == nil {
		fn = func(v T) {
			log.Debug().Type(`type`, v).Interface(`value`, v).Msg(`iterkit: inspect`)
		}
	}
	return &InspectIter[T]{src: i, fn: fn}
}

type InspectIter[T any] struct {
	src Iterator[T]
	fn  func(T)
}

func (i *InspectIter[T]) Next() Option[T] {
	v, ok := i.src.Next().Get()
	if !ok {
		return None[T]()
	}
	i.fn(v)
	return Some(v)
}

func (i *InspectIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *InspectIter[T]) Copy() Iterator[T] {
	return &InspectIter[T]{src: i.src.Copy(), fn: i.fn}
}
