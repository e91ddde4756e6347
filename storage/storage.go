// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type ReadState func(context.Context, [][]byte) ([][]byte, []error)

// State
// 0x0/ (balance)
//   -> [owner] => balance
// 0x1/ (counter)
//   -> [owner] => discriminator | count | message
const (
	balancePrefix byte = 0x0
	counterPrefix byte = 0x1
)

const (
	BalanceChunks uint16 = 1
	CounterChunks uint16 = 1
)

// [balancePrefix] + [address] + [BalanceChunks]
func BalanceKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k[0] = balancePrefix
	copy(k[1:], addr[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], BalanceChunks)
	return k
}

// [counterPrefix] + [address] + [CounterChunks]
//
// The counter slot is keyed by the creating authority's address, so only the
// actor established by signature verification can name (and mutate) it.
func CounterKey(addr codec.Address) []byte {
	k := make([]byte, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k[0] = counterPrefix
	copy(k[1:], addr[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], CounterChunks)
	return k
}

func GetCounter(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*CounterRecord, error) {
	v, err := im.GetValue(ctx, CounterKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrCounterNotFound
	}
	if err != nil {
		return nil, err
	}
	return DecodeCounter(v)
}

// Used to serve RPC queries
func GetCounterFromState(
	ctx context.Context,
	f ReadState,
	addr codec.Address,
) (*CounterRecord, error) {
	values, errs := f(ctx, [][]byte{CounterKey(addr)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return nil, ErrCounterNotFound
	}
	if errs[0] != nil {
		return nil, errs[0]
	}
	return DecodeCounter(values[0])
}

func CounterExists(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (bool, error) {
	_, err := im.GetValue(ctx, CounterKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func SetCounter(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	r *CounterRecord,
) error {
	v, err := EncodeCounter(r)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, CounterKey(addr), v)
}

// CreateCounter allocates the slot for [addr] with count zero. Creation and
// initial-value assignment are a single insert; the slot either exists fully
// formed or not at all.
func CreateCounter(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	message string,
) (*CounterRecord, error) {
	exists, err := CounterExists(ctx, mu, addr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCounterAlreadyExists
	}
	r := &CounterRecord{Count: 0, Message: message}
	if err := SetCounter(ctx, mu, addr, r); err != nil {
		return nil, err
	}
	return r, nil
}

func GetBalance(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (uint64, error) {
	_, bal, _, err := getBalance(ctx, im, addr)
	return bal, err
}

func getBalance(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) ([]byte, uint64, bool, error) {
	k := BalanceKey(addr)
	bal, exists, err := innerGetBalance(im.GetValue(ctx, k))
	return k, bal, exists, err
}

// Used to serve RPC queries
func GetBalanceFromState(
	ctx context.Context,
	f ReadState,
	addr codec.Address,
) (uint64, error) {
	k := BalanceKey(addr)
	values, errs := f(ctx, [][]byte{k})
	bal, _, err := innerGetBalance(values[0], errs[0])
	return bal, err
}

func innerGetBalance(
	v []byte,
	err error,
) (uint64, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	val, err := database.ParseUInt64(v)
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	balance uint64,
) error {
	return setBalance(ctx, mu, BalanceKey(addr), balance)
}

func setBalance(
	ctx context.Context,
	mu state.Mutable,
	key []byte,
	balance uint64,
) error {
	return mu.Insert(ctx, key, binary.BigEndian.AppendUint64(nil, balance))
}

func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) (uint64, error) {
	key, bal, _, err := getBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	nbal, err := smath.Add64(bal, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%v, amount=%d)",
			ErrInvalidBalance,
			bal,
			addr,
			amount,
		)
	}
	return nbal, setBalance(ctx, mu, key, nbal)
}

func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) (uint64, error) {
	key, bal, ok, err := getBalance(ctx, mu, addr)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidBalance
	}
	nbal, err := smath.Sub(bal, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%v, amount=%d)",
			ErrInvalidBalance,
			bal,
			addr,
			amount,
		)
	}
	if nbal == 0 {
		// If there is no balance left, we should delete the record instead of
		// setting it to 0.
		return 0, mu.Remove(ctx, key)
	}
	return nbal, setBalance(ctx, mu, key, nbal)
}
