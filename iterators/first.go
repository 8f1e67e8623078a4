package iterators

import "github.com/gamely/cubegames/consterr"

// ErrNoNextElement defines that no next element in the iterator.
const ErrNoNextElement consterr.Error = `NoNextElement`

// First returns the first next value of the iterator and closes the iterator.
func First[T any](i Iterator[T]) (v T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	if !i.Next() {
		if err := i.Err(); err != nil {
			return v, err
		}
		return v, ErrNoNextElement
	}

	return i.Value(), i.Err()
}
