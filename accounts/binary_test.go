// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package accounts

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/require"
)

func TestCounterBinaryEncoderMatchesEncode(t *testing.T) {
	require := require.New(t)

	c := Counter{Discriminator: [8]byte{1, 1, 2, 3, 5, 8, 13, 21}, Count: 256}

	var buf bytes.Buffer
	require.NoError(c.MarshalWithEncoder(bin.NewBorshEncoder(&buf)))
	require.Equal(c.Encode(), buf.Bytes())

	var decoded Counter
	require.NoError(decoded.UnmarshalWithDecoder(bin.NewBorshDecoder(buf.Bytes())))
	require.Equal(c, decoded)
}

func TestCounterBinaryDecoderTruncated(t *testing.T) {
	require := require.New(t)

	b := Counter{Count: 1}.Encode()

	var decoded Counter
	err := decoded.UnmarshalWithDecoder(bin.NewBorshDecoder(b[:4]))
	require.ErrorIs(err, ErrDecode)

	err = decoded.UnmarshalWithDecoder(bin.NewBorshDecoder(b[:12]))
	require.ErrorIs(err, ErrDecode)
}
