// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/wessonvm/chain"
	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/state"
	"github.com/ava-labs/wessonvm/storage"
)

const InitializeComputeUnits = 1

var _ chain.Action = (*Initialize)(nil)

// Initialize allocates the actor's counter slot at the schema's fixed size
// with a count of zero.
type Initialize struct {
	// Message seeds the counter; empty selects [consts.DefaultMessage].
	Message string `json:"message"`
}

func (*Initialize) GetTypeID() uint8 {
	return consts.InitializeID
}

func (*Initialize) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.BalanceKey(actor)): state.Read | state.Write,
		string(storage.CounterKey(actor)): state.All,
	}
}

func (i *Initialize) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	message := i.Message
	if message == "" {
		message = consts.DefaultMessage
	}
	if len(message) > storage.MaxMessageLen {
		return nil, fmt.Errorf(
			"%w: message is %d bytes (max %d)",
			storage.ErrInsufficientSpace,
			len(message),
			storage.MaxMessageLen,
		)
	}
	exists, err := storage.CounterExists(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, storage.ErrCounterAlreadyExists
	}

	// Rent covers the full reserved slot size, not the encoded length.
	rent := uint64(storage.CounterAccountSize) * r.GetStorageBytePrice()
	if rent > 0 {
		if _, err := storage.SubBalance(ctx, mu, actor, rent); err != nil {
			return nil, err
		}
	}
	rec, err := storage.CreateCounter(ctx, mu, actor, message)
	if err != nil {
		return nil, err
	}

	return &InitializeResult{Count: rec.Count, Message: rec.Message}, nil
}

func (*Initialize) ComputeUnits(chain.Rules) uint64 {
	return InitializeComputeUnits
}

func (*Initialize) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}

func (i *Initialize) Marshal() ([]byte, error) {
	return borsh.Serialize(*i)
}

func UnmarshalInitialize(b []byte) (chain.Action, error) {
	var a Initialize
	if err := borsh.Deserialize(&a, b); err != nil {
		return nil, err
	}
	return &a, nil
}

var _ codec.Typed = (*InitializeResult)(nil)

type InitializeResult struct {
	Count   uint64 `json:"count"`
	Message string `json:"message"`
}

func (*InitializeResult) GetTypeID() uint8 {
	return consts.InitializeID // Common practice is to use the action ID
}
