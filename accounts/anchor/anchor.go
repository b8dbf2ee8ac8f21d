// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package anchor adapts the Counter record to Anchor's account traits.
//
// Loading follows the generated binding: TryDeserialize does not look at the
// discriminator. Callers that know which tag to expect, for example from an
// account-type registry, use TryDeserializeExpecting.
package anchor

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"

	"github.com/ava-labs/counter-sdk/accounts"
	"github.com/ava-labs/counter-sdk/codec"
	"github.com/ava-labs/counter-sdk/consts"
	"github.com/ava-labs/counter-sdk/programs"
)

var (
	ErrDiscriminatorNotFound = errors.New("account discriminator not found")
	ErrDiscriminatorMismatch = errors.New("account discriminator did not match")
)

// Discriminator is the tag the IDL build assigns to Counter. It is only used
// when producing new records; loading never compares against it.
var Discriminator = [consts.DiscriminatorLen]byte{}

// TryDeserialize decodes [data] the way Anchor's default try_deserialize does
// for this account: by delegating to the unchecked path.
func TryDeserialize(data []byte) (accounts.Counter, error) {
	return TryDeserializeUnchecked(data)
}

// TryDeserializeUnchecked decodes [data] without looking at the
// discriminator.
func TryDeserializeUnchecked(data []byte) (accounts.Counter, error) {
	return accounts.Decode(data)
}

// TryDeserializeExpecting decodes [data] only if it starts with [expected].
func TryDeserializeExpecting(data []byte, expected [consts.DiscriminatorLen]byte) (accounts.Counter, error) {
	if len(data) < consts.DiscriminatorLen {
		return accounts.Counter{}, ErrDiscriminatorNotFound
	}
	if !bytes.Equal(data[:consts.DiscriminatorLen], expected[:]) {
		return accounts.Counter{}, fmt.Errorf("%w: expected %x, got %x", ErrDiscriminatorMismatch, expected, data[:consts.DiscriminatorLen])
	}
	return TryDeserializeUnchecked(data)
}

// TrySerialize writes the encoding of [c] to [w].
func TrySerialize(w io.Writer, c accounts.Counter) error {
	return codec.SerializeTo(c, w)
}

// Owner returns the program that owns Counter accounts.
func Owner() solana.PublicKey {
	return programs.GetProgramID()
}
