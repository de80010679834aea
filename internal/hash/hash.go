// Package hash computes xxHash64 digests of column values.
//
// Fixed-width values are hashed over their little-endian encoding, so a value
// hashes the same whatever column it is read from.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// nullHash is the hash of every null slot.
const nullHash uint64 = 0x9e3779b97f4a7c15

// Null returns the hash of a null value.
func Null() uint64 {
	return nullHash
}

// Uint64 computes the xxHash64 of v.
func Uint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)

	return xxhash.Sum64(buf[:])
}

// Int64 computes the xxHash64 of v.
func Int64(v int64) uint64 {
	return Uint64(uint64(v))
}

// Float64 computes the xxHash64 of v. Negative zero hashes like zero and every
// NaN hashes alike.
func Float64(v float64) uint64 {
	switch {
	case v == 0:
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}

	return Uint64(math.Float64bits(v))
}

// Bool computes the xxHash64 of v.
func Bool(v bool) uint64 {
	if v {
		return Uint64(1)
	}

	return Uint64(0)
}

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Combine mixes h into seed. The result depends on the order of the inputs, so
// hashes of several values are combined left to right.
func Combine(seed, h uint64) uint64 {
	return Uint64(seed ^ (h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)))
}
