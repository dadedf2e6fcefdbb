package iterkit

import "fmt"

// StepBy yields every stepSize-th element of the upstream iterator,
// always starting with the first one.
// A non-positive stepSize is a programming error and panics with ErrInvalidArgument.
func StepBy[T any](i Iterator[T], stepSize int) *StepByIter[T] {
	if stepSize <= 0 {
		panic(fmt.Errorf(`%w: step size must be greater than 0`, ErrInvalidArgument))
	}
	return &StepByIter[T]{src: i, stepMinusOne: stepSize - 1, firstTake: true}
}

type StepByIter[T any] struct {
	src          Iterator[T]
	stepMinusOne int
	firstTake    bool
}

func (i *StepByIter[T]) Next() Option[T] {
	if i.firstTake {
		i.firstTake = false
		return i.src.Next()
	}
	for n := 0; n < i.stepMinusOne; n++ {
		// exhaustion during the discard phase is exhaustion, no partial result
		if !i.src.Next().Ok() {
			return None[T]()
		}
	}
	return i.src.Next()
}

func (i *StepByIter[T]) CanCopy() bool {
	return i.src.CanCopy()
}

func (i *StepByIter[T]) Copy() Iterator[T] {
	return &StepByIter[T]{src: i.src.Copy(), stepMinusOne: i.stepMinusOne, firstTake: i.firstTake}
}
