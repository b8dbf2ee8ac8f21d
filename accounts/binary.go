// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package accounts

import (
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/ava-labs/counter-sdk/consts"
)

var (
	_ bin.BinaryMarshaler   = (*Counter)(nil)
	_ bin.BinaryUnmarshaler = (*Counter)(nil)
)

// MarshalWithEncoder lets a Counter be embedded in solana-go Borsh payloads.
func (c Counter) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteBytes(c.Discriminator[:], false); err != nil {
		return err
	}
	return encoder.WriteUint64(c.Count, bin.LE)
}

func (c *Counter) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	discriminator, err := decoder.ReadNBytes(consts.DiscriminatorLen)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	count, err := decoder.ReadUint64(bin.LE)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	copy(c.Discriminator[:], discriminator)
	c.Count = count
	return nil
}
