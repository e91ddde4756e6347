// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"

	"github.com/ava-labs/wessonvm/chain"
	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/state"
	"github.com/ava-labs/wessonvm/storage"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.Rules = (*Rules)(nil)

type CustomAllocation struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type Genesis struct {
	// StorageBytePrice is the rent charged per reserved byte at slot
	// creation.
	StorageBytePrice uint64 `json:"storageBytePrice"`

	CustomAllocation []*CustomAllocation `json:"customAllocation"`
}

func Default() *Genesis {
	return &Genesis{StorageBytePrice: 1}
}

func New(customAllocations []*CustomAllocation) *Genesis {
	return &Genesis{
		StorageBytePrice: 1,
		CustomAllocation: customAllocations,
	}
}

func Load(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// InitializeState funds the genesis allocations.
func (g *Genesis) InitializeState(ctx context.Context, tracer trace.Tracer, mu state.Mutable) error {
	ctx, span := tracer.Start(ctx, "Genesis.InitializeState")
	defer span.End()

	supply := uint64(0)
	for _, alloc := range g.CustomAllocation {
		addr, err := codec.ParseAddress(alloc.Address)
		if err != nil {
			return fmt.Errorf("%w: %s", err, alloc.Address)
		}
		supply, err = safemath.Add64(supply, alloc.Balance)
		if err != nil {
			return err
		}
		if _, err := storage.AddBalance(ctx, mu, addr, alloc.Balance); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}
	return nil
}

func (g *Genesis) Rules() chain.Rules {
	return &Rules{storageBytePrice: g.StorageBytePrice}
}

type Rules struct {
	storageBytePrice uint64
}

func (r *Rules) GetStorageBytePrice() uint64 {
	return r.storageBytePrice
}
