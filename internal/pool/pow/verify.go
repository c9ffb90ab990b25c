package pow

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// MaxNonceLength bounds the textual nonce accepted from miners.
	MaxNonceLength = 128

	expandedNonceLength = 234236
	nonceFill           = 0x23

	argonTime    = 2
	argonMemory  = 2048
	argonThreads = 2
	argonKeyLen  = 32
)

var (
	ErrEmptyNonce   = errors.New("nonce is empty")
	ErrNonceTooLong = errors.New("nonce is too long")
)

// ExpandNonce returns a fresh salt buffer with the nonce at its head.
func ExpandNonce(nonce []byte) []byte {
	buf := make([]byte, expandedNonceLength)
	n := copy(buf, nonce)
	for i := n; i < len(buf); i++ {
		buf[i] = nonceFill
	}
	return buf
}

// DecodeNonce converts the textual nonce into its byte form.
func DecodeNonce(nonce string) ([]byte, error) {
	switch {
	case len(nonce) == 0:
		return nil, ErrEmptyNonce
	case len(nonce) > MaxNonceLength:
		return nil, ErrNonceTooLong
	}
	b, err := hex.DecodeString(nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	return b, nil
}

// Hash computes the argon2id proof-of-work hash of a nonce for a block checksum and solver.
func Hash(nonce string, checksum, solverAddress []byte) ([]byte, error) {
	nonceBytes, err := DecodeNonce(nonce)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(checksum)+len(solverAddress))
	data = append(data, checksum...)
	data = append(data, solverAddress...)

	return argon2.IDKey(data, ExpandNonce(nonceBytes), argonTime, argonMemory, argonThreads, argonKeyLen), nil
}

// VerifyNonce reports whether nonce solves the block at the given difficulty.
func VerifyNonce(nonce string, checksum, solverAddress []byte, difficulty uint64) bool {
	hash, err := Hash(nonce, checksum, solverAddress)
	if err != nil {
		return false
	}
	return HashPasses(hash, HashCeilingFromDifficulty(difficulty))
}
