// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/state"
)

func TestCreateCounter(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.MutableStorage{}

	rec, err := CreateCounter(ctx, mu, codec.EmptyAddress, "hello wesson!")
	require.NoError(err)
	require.Equal(uint64(0), rec.Count)
	require.Equal("hello wesson!", rec.Message)

	got, err := GetCounter(ctx, mu, codec.EmptyAddress)
	require.NoError(err)
	require.Equal(rec, got)

	_, err = CreateCounter(ctx, mu, codec.EmptyAddress, "again")
	require.ErrorIs(err, ErrCounterAlreadyExists)

	// The original record survives the failed create.
	got, err = GetCounter(ctx, mu, codec.EmptyAddress)
	require.NoError(err)
	require.Equal(uint64(0), got.Count)
	require.Equal("hello wesson!", got.Message)
}

func TestGetCounterNotFound(t *testing.T) {
	require := require.New(t)

	_, err := GetCounter(context.Background(), state.MutableStorage{}, codec.EmptyAddress)
	require.ErrorIs(err, ErrCounterNotFound)
}

func TestCounterKeyDisjointFromBalanceKey(t *testing.T) {
	require := require.New(t)

	addr := codec.CreateAddress(0, [32]byte{1, 2, 3})
	require.NotEqual(CounterKey(addr), BalanceKey(addr))
	require.Len(CounterKey(addr), 1+codec.AddressLen+2)
}

func TestBalances(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.MutableStorage{}
	addr := codec.CreateAddress(0, [32]byte{7})

	// Missing balance reads as zero.
	bal, err := GetBalance(ctx, mu, addr)
	require.NoError(err)
	require.Equal(uint64(0), bal)

	bal, err = AddBalance(ctx, mu, addr, 100)
	require.NoError(err)
	require.Equal(uint64(100), bal)

	bal, err = SubBalance(ctx, mu, addr, 48)
	require.NoError(err)
	require.Equal(uint64(52), bal)

	_, err = SubBalance(ctx, mu, addr, 53)
	require.ErrorIs(err, ErrInvalidBalance)

	// Draining the balance removes the record.
	_, err = SubBalance(ctx, mu, addr, 52)
	require.NoError(err)
	_, err = SubBalance(ctx, mu, addr, 1)
	require.ErrorIs(err, ErrInvalidBalance)
}
