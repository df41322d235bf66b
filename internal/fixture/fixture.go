// Package fixture generates the random, distinct key sets the property
// tests in this module drive insert/lookup/delete scenarios with. It uses
// github.com/dolthub/maphash as a generic Hasher over a comparable key
// type, here backing a dedup set instead of a hash table's bucket index.
package fixture

import (
	"math/rand/v2"

	"github.com/dolthub/maphash"
)

// DistinctUint32s returns n distinct, randomly ordered uint32 values.
func DistinctUint32s(n int) []uint32 {
	hasher := maphash.NewHasher[uint32]()
	seen := make(map[uint64]struct{}, n)
	out := make([]uint32, 0, n)
	for len(out) < n {
		v := rand.Uint32()
		h := hasher.Hash(v)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DistinctUint64s returns n distinct, randomly ordered uint64 values.
func DistinctUint64s(n int) []uint64 {
	hasher := maphash.NewHasher[uint64]()
	seen := make(map[uint64]struct{}, n)
	out := make([]uint64, 0, n)
	for len(out) < n {
		v := rand.Uint64()
		h := hasher.Hash(v)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DistinctStrings returns n distinct, randomly ordered strings of the
// given length drawn from a small alphabet, useful for exercising
// multi-byte and string tree collisions.
func DistinctStrings(n, length int) []string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	hasher := maphash.NewHasher[string]()
	seen := make(map[uint64]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		buf := make([]byte, length)
		for i := range buf {
			buf[i] = alphabet[rand.IntN(len(alphabet))]
		}
		s := string(buf)
		h := hasher.Hash(s)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Shuffle permutes s in place.
func Shuffle[T any](s []T) {
	rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
