package iterkit

// Some returns an Option that holds the given element.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option, the exhaustion signal of Iterator.Next.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Option is a two-variant container that either holds exactly one element or nothing.
// It is the uniform return value of Iterator.Next,
// where the absent variant stands for the exhaustion of the sequence.
type Option[T any] struct {
	value T
	ok    bool
}

// Ok reports whether the Option holds an element.
func (o Option[T]) Ok() bool {
	return o.ok
}

// Value returns the held element.
// Calling Value on an absent Option is a programming error and panics with ErrNoValue.
func (o Option[T]) Value() T {
	if !o.ok {
		panic(ErrNoValue)
	}
	return o.value
}

// Get returns the held element in a comma-ok form.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}
