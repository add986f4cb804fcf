package hashmap

import (
	"hash/maphash"

	"github.com/zeebo/xxh3"
)

// Hasher produces the 64 bit digest a table probes with.
type Hasher[K comparable] func(K) uint64

var seed = maphash.MakeSeed()

// RuntimeHasher hashes any comparable key with the runtime's map hash. It is
// what the zero value of T probes with.
func RuntimeHasher[K comparable]() Hasher[K] {
	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}

// StringHasher hashes string keys with xxh3.
func StringHasher[K ~string]() Hasher[K] {
	return func(k K) uint64 { return xxh3.HashString(string(k)) }
}

// Bytes digests a byte string with xxh3. It is a building block for hashers
// over keys that reduce to bytes.
func Bytes(b []byte) uint64 { return xxh3.Hash(b) }
