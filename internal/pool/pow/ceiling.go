// Package pow verifies Ixian proof-of-work nonces.
package pow

import "encoding/binary"

const (
	// CeilingLength is the explicit part of a hash ceiling; bytes past it count as 0xFF.
	CeilingLength = 10
	// HashLength is the minimum length of a comparable hash.
	HashLength = 32
)

// HashCeilingFromDifficulty builds the maximum hash value accepted at a difficulty.
func HashCeilingFromDifficulty(difficulty uint64) []byte {
	ceiling := make([]byte, CeilingLength)
	binary.BigEndian.PutUint64(ceiling[2:], ^difficulty)
	return ceiling
}

// HashPasses reports whether hash is at or below ceiling.
func HashPasses(hash, ceiling []byte) bool {
	if len(hash) < HashLength {
		return false
	}
	for i, hb := range hash {
		cb := byte(0xff)
		if i < len(ceiling) {
			cb = ceiling[i]
		}
		if cb > hb {
			return true
		}
		if cb < hb {
			return false
		}
	}
	return true
}
