package sizeof

import "unsafe"

// Of is the in memory size of a value of type T.
func Of[T any]() uint64 {
	return uint64(unsafe.Sizeof(*new(T)))
}

// Slice is the in memory size of the slice header plus its backing array.
func Slice[T any](v []T) uint64 {
	return 24 + Of[T]()*uint64(len(v))
}
