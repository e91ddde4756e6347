// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/wessonvm/chain"
	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/state"
	"github.com/ava-labs/wessonvm/storage"
)

const DecrementComputeUnits = 1

var _ chain.Action = (*Decrement)(nil)

// Decrement lowers the actor's counter by one. The count never goes below
// zero: at zero the action refuses the mutation instead of wrapping,
// saturating, or clamping.
type Decrement struct{}

func (*Decrement) GetTypeID() uint8 {
	return consts.DecrementID
}

func (*Decrement) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.CounterKey(actor)): state.Read | state.Write,
	}
}

func (*Decrement) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	rec, err := storage.GetCounter(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	if rec.Count == 0 {
		return nil, storage.ErrCounterUnderflow
	}
	rec.Count--
	if err := storage.SetCounter(ctx, mu, actor, rec); err != nil {
		return nil, err
	}
	return &DecrementResult{Count: rec.Count}, nil
}

func (*Decrement) ComputeUnits(chain.Rules) uint64 {
	return DecrementComputeUnits
}

func (*Decrement) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (d *Decrement) Marshal() ([]byte, error) {
	return borsh.Serialize(*d)
}

func UnmarshalDecrement(b []byte) (chain.Action, error) {
	var a Decrement
	if err := borsh.Deserialize(&a, b); err != nil {
		return nil, err
	}
	return &a, nil
}

var _ codec.Typed = (*DecrementResult)(nil)

type DecrementResult struct {
	Count uint64 `json:"count"`
}

func (*DecrementResult) GetTypeID() uint8 {
	return consts.DecrementID
}
