// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package programs

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/ava-labs/counter-sdk/codec"
	"github.com/ava-labs/counter-sdk/consts"
)

// Instruction is a counter program instruction that can check its own
// accounts before being added to a transaction.
type Instruction interface {
	solana.Instruction
	Name() string
	Validate() error
}

var (
	_ Instruction = (*Initialize)(nil)
	_ Instruction = (*Increment)(nil)
)

// instructionData is the Borsh payload of instructions that carry no
// arguments.
type instructionData struct {
	Discriminator [consts.DiscriminatorLen]byte
}

func packInstruction(d [consts.DiscriminatorLen]byte) ([]byte, error) {
	return codec.Serialize(instructionData{Discriminator: d})
}

// Initialize creates a counter account starting at zero. Both the payer and
// the new counter account sign.
type Initialize struct {
	Payer   solana.PublicKey
	Counter solana.PublicKey
}

func NewInitializeInstruction(payer, counter solana.PublicKey) *Initialize {
	return &Initialize{Payer: payer, Counter: counter}
}

func (*Initialize) Name() string {
	return InitializeName
}

func (*Initialize) ProgramID() solana.PublicKey {
	return GetProgramID()
}

func (i *Initialize) Accounts() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		solana.NewAccountMeta(i.Payer, true, true),
		solana.NewAccountMeta(i.Counter, true, true),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}
}

func (*Initialize) Data() ([]byte, error) {
	return packInstruction(InitializeDiscriminator)
}

func (i *Initialize) Validate() error {
	if GetProgramID().IsZero() {
		return ErrProgramIDNotSet
	}
	if i.Payer.IsZero() {
		return fmt.Errorf("%w: payer", ErrMissingAccount)
	}
	if i.Counter.IsZero() {
		return fmt.Errorf("%w: counter", ErrMissingAccount)
	}
	return nil
}

// Increment adds one to an existing counter account.
type Increment struct {
	Counter solana.PublicKey
}

func NewIncrementInstruction(counter solana.PublicKey) *Increment {
	return &Increment{Counter: counter}
}

func (*Increment) Name() string {
	return IncrementName
}

func (*Increment) ProgramID() solana.PublicKey {
	return GetProgramID()
}

func (i *Increment) Accounts() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		solana.NewAccountMeta(i.Counter, true, false),
	}
}

func (*Increment) Data() ([]byte, error) {
	return packInstruction(IncrementDiscriminator)
}

func (i *Increment) Validate() error {
	if GetProgramID().IsZero() {
		return ErrProgramIDNotSet
	}
	if i.Counter.IsZero() {
		return fmt.Errorf("%w: counter", ErrMissingAccount)
	}
	return nil
}

// accountsNeeded is the number of caller supplied accounts each instruction
// reads back. The system program is implied.
var accountsNeeded = map[string]int{
	InitializeName: 2,
	IncrementName:  1,
}

// DecodeInstruction rebuilds a counter program instruction from its account
// list and data.
func DecodeInstruction(accounts []*solana.AccountMeta, data []byte) (Instruction, error) {
	d, err := codec.Deserialize[instructionData](data, consts.DiscriminatorLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstructionTooShort, err)
	}
	name, ok := InstructionName(d.Discriminator)
	if !ok {
		return nil, fmt.Errorf("%w: %x", ErrUnknownInstruction, d.Discriminator)
	}
	if need := accountsNeeded[name]; len(accounts) < need {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrNotEnoughAccounts, name, need, len(accounts))
	}
	if name == InitializeName {
		return NewInitializeInstruction(accounts[0].PublicKey, accounts[1].PublicKey), nil
	}
	return NewIncrementInstruction(accounts[0].PublicKey), nil
}
