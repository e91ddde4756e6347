// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/state"
)

type Action interface {
	codec.Typed

	// StateKeys declares every key the action may touch, with the required
	// permissions. Access outside this set is rejected by the transaction
	// view.
	StateKeys(actor codec.Address, actionID ids.ID) state.Keys

	// Execute performs the state transition against [mu]. It must surface the
	// first violated precondition and perform no partial mutation; the
	// processor discards all buffered writes when an error is returned.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		timestamp int64,
		actor codec.Address,
		actionID ids.ID,
	) (codec.Typed, error)

	// ComputeUnits is the abstract cost charged for executing this action.
	ComputeUnits(Rules) uint64

	// ValidRange is the timestamp range [start, end] this action is valid
	// within. -1 means the value is not set.
	ValidRange(Rules) (start int64, end int64)

	// Marshal returns the Borsh encoding of the action payload (without the
	// type ID prefix).
	Marshal() ([]byte, error)
}

type Auth interface {
	codec.Typed

	// Actor is the address whose state is modified by the transaction.
	Actor() codec.Address

	// Sponsor is the address whose balance pays fees.
	Sponsor() codec.Address

	// Verify checks that [msg] was authorized by this credential.
	Verify(ctx context.Context, msg []byte) error

	// Marshal returns the Borsh encoding of the credential (without the type
	// ID prefix).
	Marshal() ([]byte, error)
}

// AuthFactory produces a credential over arbitrary bytes, used by clients to
// sign transactions.
type AuthFactory interface {
	Sign(msg []byte) (Auth, error)
	Address() codec.Address
}

type Rules interface {
	// GetStorageBytePrice is the rent charged per reserved byte when a slot
	// is allocated.
	GetStorageBytePrice() uint64
}
