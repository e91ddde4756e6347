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

const IncrementComputeUnits = 1

var _ chain.Action = (*Increment)(nil)

// Increment advances the actor's counter by one. The message is left
// unchanged.
type Increment struct{}

func (*Increment) GetTypeID() uint8 {
	return consts.IncrementID
}

func (*Increment) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.CounterKey(actor)): state.Read | state.Write,
	}
}

func (*Increment) Execute(
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
	// No guard at MaxUint64: the count wraps. Decrement refuses at zero but
	// increment has no ceiling check; the wrap is pinned by a test.
	rec.Count++
	if err := storage.SetCounter(ctx, mu, actor, rec); err != nil {
		return nil, err
	}
	return &IncrementResult{Count: rec.Count}, nil
}

func (*Increment) ComputeUnits(chain.Rules) uint64 {
	return IncrementComputeUnits
}

func (*Increment) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func (i *Increment) Marshal() ([]byte, error) {
	return borsh.Serialize(*i)
}

func UnmarshalIncrement(b []byte) (chain.Action, error) {
	var a Increment
	if err := borsh.Deserialize(&a, b); err != nil {
		return nil, err
	}
	return &a, nil
}

var _ codec.Typed = (*IncrementResult)(nil)

type IncrementResult struct {
	Count uint64 `json:"count"`
}

func (*IncrementResult) GetTypeID() uint8 {
	return consts.IncrementID
}
