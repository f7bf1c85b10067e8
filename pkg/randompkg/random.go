// Package randompkg provides the draws the ledger records in its blocks and
// random fixtures for tests.
package randompkg

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Uint64Between generates a random integer in [min, max].
func Uint64Between(min, max uint64) uint64 {
	if max <= min {
		return min
	}

	span := new(big.Int).SetUint64(max - min)
	span.Add(span, big.NewInt(1))

	nBig, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(err)
	}

	return min + nBig.Uint64()
}

// Int64 generates a random int64, used to seed deterministic draws.
func Int64() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}

	return int64(binary.BigEndian.Uint64(b[:]))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random token owner name.
func Owner() string {
	return String(6)
}

// UserID generates a random chat platform id.
func UserID() uint64 {
	return Uint64Between(1, 1<<53)
}

// Source draws from crypto/rand. It is the production implementation of the
// randomness the ledger service records into blocks.
type Source struct{}

// Between returns a random integer in [min, max].
func (Source) Between(min, max uint64) uint64 {
	return Uint64Between(min, max)
}

// Seed returns a random seed.
func (Source) Seed() int64 {
	return Int64()
}
