// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package accounts

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// AccountHandle is a borrowed view of a runtime-managed account: its raw data
// region and the program that owns it.
type AccountHandle interface {
	Data() []byte
	Owner() solana.PublicKey
}

// FromAccountHandle decodes the Counter stored in [h]. The owner is not
// checked.
func FromAccountHandle(h AccountHandle) (Counter, error) {
	return Decode(h.Data())
}

var _ AccountHandle = (*rpcAccountHandle)(nil)

type rpcAccountHandle struct {
	account *rpc.Account
}

// NewRPCAccountHandle wraps an account value returned by a solana-go RPC
// client.
func NewRPCAccountHandle(account *rpc.Account) AccountHandle {
	return &rpcAccountHandle{account: account}
}

func (h *rpcAccountHandle) Data() []byte {
	if h.account == nil || h.account.Data == nil {
		return nil
	}
	return h.account.Data.GetBinary()
}

func (h *rpcAccountHandle) Owner() solana.PublicKey {
	if h.account == nil {
		return solana.PublicKey{}
	}
	return h.account.Owner
}
