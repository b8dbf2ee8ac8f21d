// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package anchor

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counter-sdk/accounts"
	"github.com/ava-labs/counter-sdk/programs"
)

// sha256("account:Counter")[:8]
var sighashCounter = [8]byte{0xff, 0xb0, 0x04, 0xf5, 0xbc, 0xfd, 0x7c, 0x19}

func TestTrySerialize(t *testing.T) {
	require := require.New(t)

	c := accounts.Counter{Discriminator: Discriminator, Count: 8}
	var buf bytes.Buffer
	require.NoError(TrySerialize(&buf, c))
	require.Equal(c.Encode(), buf.Bytes())

	decoded, err := TryDeserialize(buf.Bytes())
	require.NoError(err)
	require.Equal(c, decoded)
}

func TestTryDeserializeIgnoresDiscriminator(t *testing.T) {
	require := require.New(t)

	c := accounts.Counter{Discriminator: sighashCounter, Count: 5}

	decoded, err := TryDeserialize(c.Encode())
	require.NoError(err)
	require.Equal(c, decoded)

	unchecked, err := TryDeserializeUnchecked(c.Encode())
	require.NoError(err)
	require.Equal(decoded, unchecked)
}

func TestTryDeserializeTruncated(t *testing.T) {
	require := require.New(t)

	_, err := TryDeserialize(make([]byte, 12))
	require.ErrorIs(err, accounts.ErrDecode)
}

func TestTryDeserializeExpecting(t *testing.T) {
	require := require.New(t)

	c := accounts.Counter{Discriminator: sighashCounter, Count: 5}

	decoded, err := TryDeserializeExpecting(c.Encode(), sighashCounter)
	require.NoError(err)
	require.Equal(c, decoded)

	_, err = TryDeserializeExpecting(c.Encode(), Discriminator)
	require.ErrorIs(err, ErrDiscriminatorMismatch)

	_, err = TryDeserializeExpecting([]byte{0xff, 0xb0, 0x04}, sighashCounter)
	require.ErrorIs(err, ErrDiscriminatorNotFound)

	// Tag matches but the count is truncated.
	_, err = TryDeserializeExpecting(c.Encode()[:12], sighashCounter)
	require.ErrorIs(err, accounts.ErrDecode)
}

func TestOwner(t *testing.T) {
	require := require.New(t)

	prev := programs.GetProgramID()
	t.Cleanup(func() { programs.SetProgramID(prev) })

	id := solana.MustPublicKeyFromBase58("11111111111111111111111111111112")
	programs.SetProgramID(id)
	require.Equal(id, Owner())
}
