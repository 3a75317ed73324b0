package slices

// Map transforms every element of original with mapper.
func Map[F any, T any](original []F, mapper func(F) T) []T {
	destination := make([]T, len(original))
	for i, item := range original {
		destination[i] = mapper(item)
	}
	return destination
}

// UnsafeMap is Map for mappers which can fail, it stops on the first error.
func UnsafeMap[F any, T any](original []F, mapper func(int, F) (T, error)) ([]T, error) {
	destination := make([]T, len(original))
	for i, item := range original {
		var err error
		if destination[i], err = mapper(i, item); err != nil {
			return nil, err
		}
	}
	return destination, nil
}

// Filter keeps the elements matching predicate.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	var result []T
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}
