package column

import "bytes"

// Binary is an immutable variable-length byte sequence.
//
// Columns hand out Binary values that alias their backing storage; callers must
// not modify the bytes.
type Binary []byte

// BinaryOf returns a Binary holding a copy of s.
func BinaryOf(s string) Binary {
	return Binary(s)
}

// Len returns the number of bytes.
func (b Binary) Len() int {
	return len(b)
}

// Equal reports whether b and other hold the same bytes.
func (b Binary) Equal(other Binary) bool {
	return bytes.Equal(b, other)
}

// Compare compares b and other lexicographically.
func (b Binary) Compare(other Binary) int {
	return bytes.Compare(b, other)
}

func (b Binary) String() string {
	return string(b)
}
