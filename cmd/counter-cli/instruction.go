// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counter-sdk/codec"
	"github.com/ava-labs/counter-sdk/programs"
	"github.com/ava-labs/counter-sdk/utils"
)

type accountMetaView struct {
	PublicKey string `json:"publicKey" yaml:"public_key"`
	Signer    bool   `json:"signer" yaml:"signer"`
	Writable  bool   `json:"writable" yaml:"writable"`
}

type instructionView struct {
	Name      string            `json:"name" yaml:"name"`
	ProgramID string            `json:"programId" yaml:"program_id"`
	Accounts  []accountMetaView `json:"accounts" yaml:"accounts"`
	Encoding  string            `json:"encoding" yaml:"encoding"`
	Data      string            `json:"data" yaml:"data"`
}

func newInstructionView(ix programs.Instruction, encoding codec.Encoding) (instructionView, error) {
	data, err := ix.Data()
	if err != nil {
		return instructionView{}, err
	}
	encoded, err := codec.Encode(encoding, data)
	if err != nil {
		return instructionView{}, err
	}
	return instructionView{
		Name:      ix.Name(),
		ProgramID: ix.ProgramID().String(),
		Accounts: utils.Map(func(m *solana.AccountMeta) accountMetaView {
			return accountMetaView{
				PublicKey: m.PublicKey.String(),
				Signer:    m.IsSigner,
				Writable:  m.IsWritable,
			}
		}, ix.Accounts()),
		Encoding: string(encoding),
		Data:     encoded,
	}, nil
}

func (v instructionView) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "instruction: %s\nprogram: %s\naccounts:\n", v.Name, v.ProgramID)
	for i, a := range v.Accounts {
		fmt.Fprintf(&sb, "  %d: %s signer=%t writable=%t\n", i, a.PublicKey, a.Signer, a.Writable)
	}
	fmt.Fprintf(&sb, "%s: %s", v.Encoding, v.Data)
	return sb.String()
}

func newInstructionCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instruction",
		Short: "Build counter program instructions",
	}
	cmd.AddCommand(
		newInitializeCmd(c),
		newIncrementCmd(c),
		newDecodeInstructionCmd(c),
	)
	return cmd
}

func newInitializeCmd(c *cli) *cobra.Command {
	var payer, counter string
	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Build an instruction creating a counter account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payerKey, err := solana.PublicKeyFromBase58(payer)
			if err != nil {
				return fmt.Errorf("failed to parse payer: %w", err)
			}
			counterKey, err := solana.PublicKeyFromBase58(counter)
			if err != nil {
				return fmt.Errorf("failed to parse counter: %w", err)
			}
			return c.printInstruction(cmd, programs.NewInitializeInstruction(payerKey, counterKey))
		},
	}
	cmd.Flags().StringVar(&payer, "payer", "", "Base58 address paying for the new account")
	cmd.Flags().StringVar(&counter, "counter", "", "Base58 address of the new counter account")
	_ = cmd.MarkFlagRequired("payer")
	_ = cmd.MarkFlagRequired("counter")
	return cmd
}

func newIncrementCmd(c *cli) *cobra.Command {
	var counter string
	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Build an instruction incrementing a counter account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counterKey, err := solana.PublicKeyFromBase58(counter)
			if err != nil {
				return fmt.Errorf("failed to parse counter: %w", err)
			}
			return c.printInstruction(cmd, programs.NewIncrementInstruction(counterKey))
		},
	}
	cmd.Flags().StringVar(&counter, "counter", "", "Base58 address of the counter account")
	_ = cmd.MarkFlagRequired("counter")
	return cmd
}

func newDecodeInstructionCmd(c *cli) *cobra.Command {
	var accounts []string
	cmd := &cobra.Command{
		Use:   "decode [data]",
		Short: "Decode counter program instruction data",
		Long:  `Decode instruction data in the configured encoding. Accounts are given in instruction order, without the system program.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0], false, c.config.encoding())
			if err != nil {
				return err
			}
			metas := make([]*solana.AccountMeta, 0, len(accounts))
			for _, a := range accounts {
				pk, err := solana.PublicKeyFromBase58(a)
				if err != nil {
					return fmt.Errorf("failed to parse account %q: %w", a, err)
				}
				metas = append(metas, solana.Meta(pk))
			}
			ix, err := programs.DecodeInstruction(metas, data)
			if err != nil {
				return err
			}
			view, err := newInstructionView(ix, c.config.encoding())
			if err != nil {
				return err
			}
			c.log.Debug("decoded instruction", zap.String("name", view.Name))
			return printValue(cmd.OutOrStdout(), c.config.Output, view)
		},
	}
	cmd.Flags().StringSliceVar(&accounts, "account", nil, "Base58 account address (repeatable)")
	return cmd
}

func (c *cli) printInstruction(cmd *cobra.Command, ix programs.Instruction) error {
	if err := ix.Validate(); err != nil {
		return err
	}
	view, err := newInstructionView(ix, c.config.encoding())
	if err != nil {
		return err
	}
	c.log.Debug("built instruction",
		zap.String("name", view.Name),
		zap.String("program", view.ProgramID),
	)
	return printValue(cmd.OutOrStdout(), c.config.Output, view)
}
