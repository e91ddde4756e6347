// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/ids"

const (
	Name   = "wessonvm"
	Symbol = "WSSN"

	// DefaultMessage seeds a counter created without a caller-supplied
	// message.
	DefaultMessage = "hello wesson!"

	MaxUint8  = ^uint8(0)
	MaxUint64 = ^uint64(0)

	ByteLen   = 1
	Uint16Len = 2
	Uint32Len = 4
	Uint64Len = 8
)

// ProgramID identifies the counter program. The processor takes it as an
// explicit argument and rejects transactions naming any other program.
var ProgramID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	id, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ProgramID = id
}
