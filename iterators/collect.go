package iterators

// Collect drains the iterator into a slice, then closes it.
func Collect[T any](i Iterator[T]) (vs []T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
