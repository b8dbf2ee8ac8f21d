// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package accounts holds the fixed-layout account records of the counter
// program and their Borsh encoding.
package accounts

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/counter-sdk/codec"
	"github.com/ava-labs/counter-sdk/consts"
)

// Size is the encoded length of a Counter: an 8 byte discriminator followed
// by a little-endian u64.
const Size = consts.DiscriminatorLen + consts.Uint64Len

var (
	_ yaml.Marshaler   = Counter{}
	_ yaml.Unmarshaler = (*Counter)(nil)
)

// ErrDecode is returned, wrapping the underlying cause, when bytes cannot be
// read as a Counter.
var ErrDecode = errors.New("failed to decode counter account")

// Counter is the on-chain state of a counter account.
//
// The discriminator is copied verbatim and never interpreted here; mapping
// discriminators to record types belongs to the caller.
type Counter struct {
	Discriminator [consts.DiscriminatorLen]byte
	Count         uint64
}

// Decode reads a Counter from the first [Size] bytes of [data].
func Decode(data []byte) (Counter, error) {
	c, err := codec.Deserialize[Counter](data, Size)
	if err != nil {
		return Counter{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return *c, nil
}

// FromBytes is an alias of Decode.
func FromBytes(data []byte) (Counter, error) {
	return Decode(data)
}

// Encode returns the [Size] byte encoding of c.
func (c Counter) Encode() []byte {
	b, err := codec.Serialize(c)
	if err != nil {
		// Both fields are fixed width.
		panic(err)
	}
	return b
}

// FixedSize returns [Size].
func (Counter) FixedSize() int {
	return Size
}

// counterText is the JSON and YAML view of a Counter. The discriminator is
// 0x-prefixed hex.
type counterText struct {
	Discriminator codec.Bytes `json:"discriminator"`
	Count         uint64      `json:"count"`
}

// counterYAML mirrors counterText with the discriminator as a plain string.
type counterYAML struct {
	Discriminator string `yaml:"discriminator"`
	Count         uint64 `yaml:"count"`
}

func (c Counter) text() counterText {
	return counterText{
		Discriminator: c.Discriminator[:],
		Count:         c.Count,
	}
}

func (c *Counter) setText(v counterText) error {
	if len(v.Discriminator) != consts.DiscriminatorLen {
		return fmt.Errorf("%w: discriminator must be %d bytes, got %d", codec.ErrInvalidSize, consts.DiscriminatorLen, len(v.Discriminator))
	}
	copy(c.Discriminator[:], v.Discriminator)
	c.Count = v.Count
	return nil
}

func (c Counter) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.text())
}

func (c *Counter) UnmarshalJSON(b []byte) error {
	var v counterText
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return c.setText(v)
}

// MarshalYAML implements [yaml.Marshaler].
func (c Counter) MarshalYAML() (interface{}, error) {
	d, err := c.text().Discriminator.MarshalText()
	if err != nil {
		return nil, err
	}
	return counterYAML{Discriminator: string(d), Count: c.Count}, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Counter) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v counterYAML
	if err := unmarshal(&v); err != nil {
		return err
	}
	var d codec.Bytes
	if err := d.UnmarshalText([]byte(v.Discriminator)); err != nil {
		return err
	}
	return c.setText(counterText{Discriminator: d, Count: v.Count})
}
