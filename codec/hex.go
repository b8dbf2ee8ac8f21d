// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"strings"
)

// ToHex converts bytes to a hex string without a prefix.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// LoadHex converts a hex encoded string into bytes. A leading "0x" is
// ignored. If [expectedSize] is not -1, the decoded length must match it.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")

	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, ErrInvalidSize
	}
	return bytes, nil
}

type Bytes []byte

func (b Bytes) String() string {
	return ToHex(b)
}

// MarshalText returns the 0x-prefixed hex representation of b.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte("0x" + b.String()), nil
}

// UnmarshalText sets b to the bytes represented by text.
func (b *Bytes) UnmarshalText(text []byte) error {
	bytes, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = bytes
	return nil
}
