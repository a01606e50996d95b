// Package ss58 encodes and decodes Substrate SS58 addresses.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const maxPrefix = 16383

var checksumPreimage = []byte("SS58PRE")

var (
	ErrInvalidPrefix   = errors.New("ss58: prefix out of range")
	ErrInvalidAddress  = errors.New("ss58: malformed address")
	ErrInvalidChecksum = errors.New("ss58: checksum mismatch")
)

// Encode returns the SS58 address of a 32-byte public key under prefix.
func Encode(pubKey []byte, prefix uint16) (string, error) {
	if prefix > maxPrefix {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
	if len(pubKey) != 32 {
		return "", fmt.Errorf("%w: public key must be 32 bytes, got %d", ErrInvalidAddress, len(pubKey))
	}

	payload := append(prefixBytes(prefix), pubKey...)
	sum, err := checksum(payload)
	if err != nil {
		return "", err
	}
	return base58.Encode(append(payload, sum[:2]...)), nil
}

// Decode returns the public key and prefix of an SS58 address.
func Decode(address string) ([]byte, uint16, error) {
	raw := base58.Decode(address)
	if len(raw) < 35 {
		return nil, 0, ErrInvalidAddress
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case raw[0] < 64:
		prefix, prefixLen = uint16(raw[0]), 1
	case raw[0] < 128:
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, ErrInvalidAddress
	}

	if len(raw) != prefixLen+32+2 {
		return nil, 0, ErrInvalidAddress
	}

	payload := raw[:prefixLen+32]
	sum, err := checksum(payload)
	if err != nil {
		return nil, 0, err
	}
	if !bytes.Equal(sum[:2], raw[prefixLen+32:]) {
		return nil, 0, ErrInvalidChecksum
	}

	pubKey := make([]byte, 32)
	copy(pubKey, raw[prefixLen:prefixLen+32])
	return pubKey, prefix, nil
}

func prefixBytes(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
	second := byte(prefix>>8) | byte(prefix&0b0000_0000_0000_0011)<<6
	return []byte{first, second}
}

func checksum(payload []byte) ([]byte, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, fmt.Errorf("ss58: blake2b: %w", err)
	}
	h.Write(checksumPreimage)
	h.Write(payload)
	return h.Sum(nil), nil
}
