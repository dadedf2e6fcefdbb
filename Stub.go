package iterkit

// NewStub wraps an iterator with replaceable method implementations.
// It is meant for tests that need to instrument or fault-inject a pipeline member.
func NewStub[T any](i Iterator[T]) *Stub[T] {
	return &Stub[T]{
		Iterator:    i,
		StubNext:    i.Next,
		StubCanCopy: i.CanCopy,
		StubCopy:    i.Copy,
	}
}

type Stub[T any] struct {
	Iterator    Iterator[T]
	StubNext    func() Option[T]
	StubCanCopy func() bool
	StubCopy    func() Iterator[T]
}

// wrapper

func (m *Stub[T]) Next() Option[T] {
	return m.StubNext()
}

func (m *Stub[T]) CanCopy() bool {
	return m.StubCanCopy()
}

func (m *Stub[T]) Copy() Iterator[T] {
	return m.StubCopy()
}

// Reseting stubs

func (m *Stub[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *Stub[T]) ResetCanCopy() {
	m.StubCanCopy = m.Iterator.CanCopy
}

func (m *Stub[T]) ResetCopy() {
	m.StubCopy = m.Iterator.Copy
}
