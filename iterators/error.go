package iterators

// NewError returns an iterator that yields no values and reports the given error.
// It lets a failure travel through code paths that expect an iterator.
func NewError[T any](err error) *ErrorIter[T] {
	return &ErrorIter[T]{err: err}
}

type ErrorIter[T any] struct {
	err error
}

func (i *ErrorIter[T]) Close() error {
	return nil
}

func (i *ErrorIter[T]) Err() error {
	return i.err
}

func (i *ErrorIter[T]) Next() bool {
	return false
}

func (i *ErrorIter[T]) Value() T {
	var v T
	return v
}
