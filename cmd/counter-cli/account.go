// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counter-sdk/accounts"
	"github.com/ava-labs/counter-sdk/accounts/anchor"
	"github.com/ava-labs/counter-sdk/codec"
	"github.com/ava-labs/counter-sdk/consts"
)

type counterView struct {
	Account  accounts.Counter `json:"account" yaml:"account"`
	Encoding string           `json:"encoding" yaml:"encoding"`
	Encoded  string           `json:"encoded" yaml:"encoded"`
}

func newCounterView(c accounts.Counter, encoding codec.Encoding) (counterView, error) {
	encoded, err := codec.Encode(encoding, c.Encode())
	if err != nil {
		return counterView{}, err
	}
	return counterView{
		Account:  c,
		Encoding: string(encoding),
		Encoded:  encoded,
	}, nil
}

func (v counterView) String() string {
	return fmt.Sprintf("discriminator: 0x%x\ncount: %d\n%s: %s", v.Account.Discriminator, v.Account.Count, v.Encoding, v.Encoded)
}

type sizeView struct {
	Size int `json:"size" yaml:"size"`
}

func (v sizeView) String() string {
	return fmt.Sprintf("%d", v.Size)
}

func newDecodeCmd(c *cli) *cobra.Command {
	var (
		file   bool
		expect string
	)
	cmd := &cobra.Command{
		Use:   "decode [data or file]",
		Short: "Decode a counter account",
		Long:  `Decode a counter account from text in the configured encoding or, if the text does not decode, from a file of raw bytes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0], file, c.config.encoding())
			if err != nil {
				return err
			}

			var counter accounts.Counter
			if expect != "" {
				d, parseErr := codec.LoadHex(expect, consts.DiscriminatorLen)
				if parseErr != nil {
					return fmt.Errorf("failed to parse expected discriminator: %w", parseErr)
				}
				counter, err = anchor.TryDeserializeExpecting(data, [consts.DiscriminatorLen]byte(d))
			} else {
				counter, err = anchor.TryDeserialize(data)
			}
			if err != nil {
				c.log.Debug("failed to decode counter",
					zap.Int("size", len(data)),
					zap.Error(err),
				)
				return err
			}
			c.log.Debug("decoded counter",
				zap.Int("size", len(data)),
				zap.Uint64("count", counter.Count),
			)

			view, err := newCounterView(counter, c.config.encoding())
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), c.config.Output, view)
		},
	}
	cmd.Flags().BoolVar(&file, "file", false, "Treat the argument as the path of a file of raw bytes")
	cmd.Flags().StringVar(&expect, "expect-discriminator", "", "Hex encoded 8 byte discriminator the account must start with")
	return cmd
}

func newEncodeCmd(c *cli) *cobra.Command {
	var (
		count         uint64
		discriminator string
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a counter account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counter := accounts.Counter{
				Discriminator: anchor.Discriminator,
				Count:         count,
			}
			if discriminator != "" {
				d, err := codec.LoadHex(discriminator, consts.DiscriminatorLen)
				if err != nil {
					return fmt.Errorf("failed to parse discriminator: %w", err)
				}
				copy(counter.Discriminator[:], d)
			}

			view, err := newCounterView(counter, c.config.encoding())
			if err != nil {
				return err
			}
			c.log.Debug("encoded counter", zap.Uint64("count", count))
			return printValue(cmd.OutOrStdout(), c.config.Output, view)
		},
	}
	cmd.Flags().Uint64Var(&count, "count", 0, "Counter value")
	cmd.Flags().StringVar(&discriminator, "discriminator", "", "Hex encoded 8 byte discriminator (default Anchor discriminator)")
	return cmd
}

func newSizeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print the encoded size of a counter account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printValue(cmd.OutOrStdout(), c.config.Output, sizeView{Size: accounts.Size})
		},
	}
}
