// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package programs builds instructions for the counter program.
package programs

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/atomic"
)

// programID is the address of the deployed counter program. It is empty
// until set by the caller.
var programID atomic.Value

// GetProgramID returns the configured program address, or the zero key if
// none was set.
func GetProgramID() solana.PublicKey {
	id, ok := programID.Load().(solana.PublicKey)
	if !ok {
		return solana.PublicKey{}
	}
	return id
}

// SetProgramID replaces the program address used by new instructions. Safe
// for concurrent use.
func SetProgramID(id solana.PublicKey) {
	programID.Store(id)
}

var (
	ErrProgramIDNotSet     = errors.New("program id not set")
	ErrMissingAccount      = errors.New("missing account")
	ErrUnknownInstruction  = errors.New("unknown instruction")
	ErrNotEnoughAccounts   = errors.New("not enough accounts")
	ErrInstructionTooShort = errors.New("instruction data too short")
)

const (
	InitializeName = "initialize"
	IncrementName  = "increment"
)

var (
	InitializeDiscriminator = [8]byte(bin.SighashTypeID(bin.SIGHASH_GLOBAL_NAMESPACE, InitializeName))
	IncrementDiscriminator  = [8]byte(bin.SighashTypeID(bin.SIGHASH_GLOBAL_NAMESPACE, IncrementName))
)

// InstructionName returns the name of the instruction tagged by [d].
func InstructionName(d [8]byte) (string, bool) {
	switch d {
	case InitializeDiscriminator:
		return InitializeName, true
	case IncrementDiscriminator:
		return IncrementName, true
	default:
		return "", false
	}
}
