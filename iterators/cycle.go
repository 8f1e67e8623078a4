package iterators

// Cycle returns an infinite iterator that repeats the elements of the given slice,
// wrapping around to the first element after the last one.
// The iteration only ends when the iterator is closed or the slice is empty,
// so the consumer must impose its own bound.
func Cycle[T any](slice []T) *CycleIter[T] {
	return &CycleIter[T]{Slice: slice}
}

type CycleIter[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *CycleIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *CycleIter[T]) Err() error {
	return nil
}

func (i *CycleIter[T]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) == 0 {
		return false
	}

	if len(i.Slice) <= i.index {
		i.index = 0
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *CycleIter[T]) Value() T {
	return i.value
}
