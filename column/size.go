package column

import "unsafe"

// sliceHeaderSize is the size of a slice header (pointer, length, capacity).
const sliceHeaderSize = int64(unsafe.Sizeof([]byte(nil)))

// sizeOf returns the size of T in bytes.
func sizeOf[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// sizeOfSlice approximates the memory held by a slice of n elements of T.
func sizeOfSlice[T any](n int) int64 {
	return sliceHeaderSize + int64(n)*sizeOf[T]()
}
