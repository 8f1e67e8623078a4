package iterators

// NewStub wraps an iterator with replaceable method stubs,
// so tests can inject failures at any point of the iteration.
func NewStub[T any](i Iterator[T]) *Stub[T] {
	return &Stub[T]{
		iterator: i,

		ValueStub: i.Value,
		CloseStub: i.Close,
		NextStub:  i.Next,
		ErrStub:   i.Err,
	}
}

type Stub[T any] struct {
	iterator Iterator[T]

	ValueStub func() T
	CloseStub func() error
	NextStub  func() bool
	ErrStub   func() error
}

// wrapper

func (m *Stub[T]) Close() error {
	return m.CloseStub()
}

func (m *Stub[T]) Next() bool {
	return m.NextStub()
}

func (m *Stub[T]) Err() error {
	return m.ErrStub()
}

func (m *Stub[T]) Value() T {
	return m.ValueStub()
}

// ResetClose reverts the Close stub to the wrapped iterator's Close.
func (m *Stub[T]) ResetClose() {
	m.CloseStub = m.iterator.Close
}

// ResetNext reverts the Next stub to the wrapped iterator's Next.
func (m *Stub[T]) ResetNext() {
	m.NextStub = m.iterator.Next
}

// ResetErr reverts the Err stub to the wrapped iterator's Err.
func (m *Stub[T]) ResetErr() {
	m.ErrStub = m.iterator.Err
}
