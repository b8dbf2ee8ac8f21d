// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	DiscriminatorLen = 8
	Uint64Len        = 8
)
