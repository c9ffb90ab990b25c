// Package wallet holds the pool's identity and talks to the DLT node that
// owns the pool wallet.
package wallet

import (
	"bytes"
	"crypto/sha512"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	checksumLength   = 3
	minAddressLength = 1 + checksumLength + 1
)

var (
	ErrAddressEncoding = errors.New("address is not valid base58")
	ErrAddressLength   = errors.New("address has invalid length")
	ErrAddressChecksum = errors.New("address checksum mismatch")
)

// DecodeAddress base58-decodes a textual address and verifies its trailing checksum.
func DecodeAddress(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrAddressEncoding
	}
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return nil, ErrAddressEncoding
	}
	if err := ValidateChecksum(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ValidateChecksum checks the last three bytes of a raw address.
func ValidateChecksum(raw []byte) error {
	if len(raw) < minAddressLength {
		return ErrAddressLength
	}
	body := raw[:len(raw)-checksumLength]
	if !bytes.Equal(checksum(body), raw[len(body):]) {
		return ErrAddressChecksum
	}
	return nil
}

// EncodeAddress renders a raw address in its textual form.
func EncodeAddress(raw []byte) string {
	return base58.Encode(raw)
}

// Checksummed appends the address checksum to body.
func Checksummed(body []byte) []byte {
	out := make([]byte, 0, len(body)+checksumLength)
	out = append(out, body...)
	return append(out, checksum(body)...)
}

func checksum(body []byte) []byte {
	first := sha512.Sum512(body)
	second := sha512.Sum512(first[:])
	return second[:checksumLength]
}
