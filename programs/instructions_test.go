// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package programs

import (
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

var testProgramID = solana.MustPublicKeyFromBase58("11111111111111111111111111111112")

func setTestProgramID(t *testing.T) {
	prev := GetProgramID()
	t.Cleanup(func() { SetProgramID(prev) })
	SetProgramID(testProgramID)
}

func TestInitializeDiscriminator(t *testing.T) {
	require := require.New(t)

	// sha256("global:initialize")[:8]
	require.Equal([8]byte{175, 175, 109, 31, 13, 152, 155, 237}, InitializeDiscriminator)
	require.NotEqual(InitializeDiscriminator, IncrementDiscriminator)

	name, ok := InstructionName(IncrementDiscriminator)
	require.True(ok)
	require.Equal(IncrementName, name)

	_, ok = InstructionName([8]byte{})
	require.False(ok)
}

func TestInitializeInstruction(t *testing.T) {
	require := require.New(t)
	setTestProgramID(t)

	payer := solana.NewWallet().PublicKey()
	counter := solana.NewWallet().PublicKey()
	ix := NewInitializeInstruction(payer, counter)
	require.NoError(ix.Validate())
	require.Equal(testProgramID, ix.ProgramID())
	require.Equal(InitializeName, ix.Name())

	accounts := ix.Accounts()
	require.Len(accounts, 3)
	require.Equal(payer, accounts[0].PublicKey)
	require.True(accounts[0].IsSigner)
	require.True(accounts[0].IsWritable)
	require.Equal(counter, accounts[1].PublicKey)
	require.True(accounts[1].IsSigner)
	require.True(accounts[1].IsWritable)
	require.Equal(solana.SystemProgramID, accounts[2].PublicKey)
	require.False(accounts[2].IsSigner)
	require.False(accounts[2].IsWritable)

	data, err := ix.Data()
	require.NoError(err)
	require.Equal(InitializeDiscriminator[:], data)

	decoded, err := DecodeInstruction(accounts, data)
	require.NoError(err)
	require.Equal(ix, decoded)
}

func TestIncrementInstruction(t *testing.T) {
	require := require.New(t)
	setTestProgramID(t)

	counter := solana.NewWallet().PublicKey()
	ix := NewIncrementInstruction(counter)
	require.NoError(ix.Validate())

	accounts := ix.Accounts()
	require.Len(accounts, 1)
	require.Equal(counter, accounts[0].PublicKey)
	require.True(accounts[0].IsWritable)
	require.False(accounts[0].IsSigner)

	data, err := ix.Data()
	require.NoError(err)
	require.Equal(IncrementDiscriminator[:], data)

	decoded, err := DecodeInstruction(accounts, data)
	require.NoError(err)
	require.Equal(ix, decoded)
}

func TestInstructionValidate(t *testing.T) {
	require := require.New(t)

	prev := GetProgramID()
	t.Cleanup(func() { SetProgramID(prev) })
	SetProgramID(solana.PublicKey{})

	counter := solana.NewWallet().PublicKey()
	require.ErrorIs(NewIncrementInstruction(counter).Validate(), ErrProgramIDNotSet)

	SetProgramID(testProgramID)
	require.ErrorIs(NewIncrementInstruction(solana.PublicKey{}).Validate(), ErrMissingAccount)
	require.ErrorIs(NewInitializeInstruction(solana.PublicKey{}, counter).Validate(), ErrMissingAccount)
	require.ErrorIs(NewInitializeInstruction(counter, solana.PublicKey{}).Validate(), ErrMissingAccount)
}

func TestDecodeInstructionErrors(t *testing.T) {
	require := require.New(t)

	_, err := DecodeInstruction(nil, []byte{1, 2})
	require.ErrorIs(err, ErrInstructionTooShort)

	_, err = DecodeInstruction(nil, make([]byte, 8))
	require.ErrorIs(err, ErrUnknownInstruction)

	_, err = DecodeInstruction(nil, InitializeDiscriminator[:])
	require.ErrorIs(err, ErrNotEnoughAccounts)

	_, err = DecodeInstruction(nil, IncrementDiscriminator[:])
	require.ErrorIs(err, ErrNotEnoughAccounts)
}

func TestProgramIDConcurrentAccess(t *testing.T) {
	require := require.New(t)

	prev := GetProgramID()
	t.Cleanup(func() { SetProgramID(prev) })

	ids := []solana.PublicKey{testProgramID, solana.SystemProgramID}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			SetProgramID(ids[i%len(ids)])
		}(i)
		go func() {
			defer wg.Done()
			_ = NewIncrementInstruction(testProgramID).ProgramID()
		}()
	}
	wg.Wait()

	require.Contains(ids, GetProgramID())
}
