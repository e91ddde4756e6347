// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wessonvm/actions"
	"github.com/ava-labs/wessonvm/auth"
	"github.com/ava-labs/wessonvm/chain"
	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/crypto/ed25519"
	"github.com/ava-labs/wessonvm/genesis"
	"github.com/ava-labs/wessonvm/state"
	"github.com/ava-labs/wessonvm/storage"
)

func newTestProcessor(t *testing.T, st state.Mutable) *chain.Processor {
	t.Helper()

	p, err := chain.NewProcessor(
		logging.NoLog{},
		trace.Noop,
		prometheus.NewRegistry(),
		consts.ProgramID,
		genesis.Default().Rules(),
		st,
	)
	require.NoError(t, err)
	return p
}

func newTestFactory(t *testing.T) *auth.ED25519Factory {
	t.Helper()

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	return auth.NewED25519Factory(priv)
}

func signedTx(t *testing.T, factory chain.AuthFactory, action chain.Action) *chain.Transaction {
	t.Helper()

	tx := chain.NewTx(chain.Base{Timestamp: 1, Program: consts.ProgramID}, action)
	require.NoError(t, tx.Sign(factory))
	return tx
}

func TestProcessorRejectsWrongProgram(t *testing.T) {
	require := require.New(t)
	p := newTestProcessor(t, state.MutableStorage{})
	factory := newTestFactory(t)

	tx := chain.NewTx(chain.Base{Timestamp: 1}, &actions.Increment{})
	require.NoError(tx.Sign(factory))

	_, err := p.Execute(context.Background(), tx)
	require.ErrorIs(err, chain.ErrWrongProgram)
}

func TestProcessorRejectsUnsignedTx(t *testing.T) {
	require := require.New(t)
	p := newTestProcessor(t, state.MutableStorage{})

	tx := chain.NewTx(chain.Base{Timestamp: 1, Program: consts.ProgramID}, &actions.Increment{})
	_, err := p.Execute(context.Background(), tx)
	require.ErrorIs(err, chain.ErrAuthFailed)
}

func TestProcessorRejectsTamperedTx(t *testing.T) {
	require := require.New(t)
	p := newTestProcessor(t, state.MutableStorage{})
	factory := newTestFactory(t)

	tx := signedTx(t, factory, &actions.Initialize{Message: "gm"})
	// Retarget the signed payload; the signature no longer covers it.
	tx.Action = &actions.Initialize{Message: "tampered"}

	_, err := p.Execute(context.Background(), tx)
	require.ErrorIs(err, chain.ErrAuthFailed)
}

func TestProcessorRevertLeavesStateUntouched(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	st := state.MutableStorage{}
	p := newTestProcessor(t, st)
	factory := newTestFactory(t)
	actor := factory.Address()

	require.NoError(storage.SetBalance(ctx, st, actor, 1_000))
	res, err := p.Execute(ctx, signedTx(t, factory, &actions.Initialize{}))
	require.NoError(err)
	require.True(res.Success)

	// Snapshot the raw slot bytes.
	before, err := st.GetValue(ctx, storage.CounterKey(actor))
	require.NoError(err)

	res, err = p.Execute(ctx, signedTx(t, factory, &actions.Decrement{}))
	require.NoError(err)
	require.False(res.Success)
	require.ErrorIs(res.Error, storage.ErrCounterUnderflow)

	after, err := st.GetValue(ctx, storage.CounterKey(actor))
	require.NoError(err)
	require.Equal(before, after)
}

func TestProcessorCounterScenario(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	st := state.MutableStorage{}
	p := newTestProcessor(t, st)
	factory := newTestFactory(t)
	actor := factory.Address()

	require.NoError(storage.SetBalance(ctx, st, actor, 1_000))

	// initialize -> count=0, message="hello wesson!"
	res, err := p.Execute(ctx, signedTx(t, factory, &actions.Initialize{}))
	require.NoError(err)
	require.True(res.Success)
	require.Equal(&actions.InitializeResult{Count: 0, Message: "hello wesson!"}, res.Output)

	// increment x3 -> count=3
	for n := uint64(1); n <= 3; n++ {
		res, err = p.Execute(ctx, signedTx(t, factory, &actions.Increment{}))
		require.NoError(err)
		require.True(res.Success)
		require.Equal(&actions.IncrementResult{Count: n}, res.Output)
	}

	// decrement x3 -> count=0
	for n := uint64(2); ; n-- {
		res, err = p.Execute(ctx, signedTx(t, factory, &actions.Decrement{}))
		require.NoError(err)
		require.True(res.Success)
		require.Equal(&actions.DecrementResult{Count: n}, res.Output)
		if n == 0 {
			break
		}
	}

	// one more decrement -> underflow, count stays 0
	res, err = p.Execute(ctx, signedTx(t, factory, &actions.Decrement{}))
	require.NoError(err)
	require.False(res.Success)
	require.ErrorIs(res.Error, storage.ErrCounterUnderflow)

	rec, err := storage.GetCounter(ctx, st, actor)
	require.NoError(err)
	require.Equal(uint64(0), rec.Count)
	require.Equal("hello wesson!", rec.Message)
}
