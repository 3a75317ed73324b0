package fn

// ComparisonResult is the outcome of a Comparator.
type ComparisonResult int

const (
	Equal   ComparisonResult = 0
	Less    ComparisonResult = -1
	Greater ComparisonResult = 1
)

// Comparator compares two values of type T.
type Comparator[T any] func(i1 T, i2 T) ComparisonResult

// ReverseComparator flips the order defined by comparator.
func ReverseComparator[T any](comparator Comparator[T]) Comparator[T] {
	return func(i1 T, i2 T) ComparisonResult {
		return comparator(i2, i1)
	}
}

// CompareInts orders two ints in ascending order.
func CompareInts(i1, i2 int) ComparisonResult {
	switch {
	case i1 < i2:
		return Less
	case i1 > i2:
		return Greater
	default:
		return Equal
	}
}

// TriConsumer accepts three arguments and returns nothing.
type TriConsumer[A any, B any, C any] func(a A, b B, c C)

// AllTriConsumer chains consumers, calling each of them in order.
func AllTriConsumer[A any, B any, C any](consumers ...TriConsumer[A, B, C]) TriConsumer[A, B, C] {
	return func(a A, b B, c C) {
		for _, consumer := range consumers {
			consumer(a, b, c)
		}
	}
}
