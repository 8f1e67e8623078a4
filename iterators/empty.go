package iterators

// Empty returns an iterator that yields no values.
// It serves as a null object where an iterator is expected
// but no value can logically be produced.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

type EmptyIter[T any] struct{}

func (i *EmptyIter[T]) Close() error {
	return nil
}

func (i *EmptyIter[T]) Err() error {
	return nil
}

func (i *EmptyIter[T]) Next() bool {
	return false
}

func (i *EmptyIter[T]) Value() T {
	var v T
	return v
}
