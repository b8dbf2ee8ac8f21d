// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// Encoding names a text representation of raw account or instruction bytes.
type Encoding string

const (
	Hex    Encoding = "hex"
	Base64 Encoding = "base64"
	Base58 Encoding = "base58"
)

// ParseEncoding returns the Encoding named by [s] (case insensitive).
func ParseEncoding(s string) (Encoding, error) {
	e := Encoding(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case Hex, Base64, Base58:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// Decode parses [s] as text in encoding [e].
func Decode(e Encoding, s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	switch e {
	case Hex:
		return LoadHex(s, -1)
	case Base64:
		return base64.StdEncoding.DecodeString(s)
	case Base58:
		return base58.Decode(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, e)
	}
}

// Encode renders [b] as text in encoding [e].
func Encode(e Encoding, b []byte) (string, error) {
	switch e {
	case Hex:
		return ToHex(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Base58:
		return base58.Encode(b), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, e)
	}
}
