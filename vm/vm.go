// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/wessonvm/actions"
	"github.com/ava-labs/wessonvm/auth"
	"github.com/ava-labs/wessonvm/chain"
	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/genesis"
	"github.com/ava-labs/wessonvm/state"
	"github.com/ava-labs/wessonvm/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new actions, ALWAYS make sure to append at the end.
		ActionParser.Register(&actions.Initialize{}, actions.UnmarshalInitialize),
		ActionParser.Register(&actions.Increment{}, actions.UnmarshalIncrement),
		ActionParser.Register(&actions.Decrement{}, actions.UnmarshalDecrement),

		// When registering new auth, ALWAYS make sure to append at the end.
		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// VM hosts the counter program: it owns the slot store, seeds genesis state,
// and hands submitted transactions to the processor.
type VM struct {
	log       logging.Logger
	processor *chain.Processor
}

func New(
	log logging.Logger,
	tracer trace.Tracer,
	reg prometheus.Registerer,
	gen *genesis.Genesis,
	st state.Mutable,
) (*VM, error) {
	if err := gen.InitializeState(context.Background(), tracer, st); err != nil {
		return nil, err
	}
	processor, err := chain.NewProcessor(log, tracer, reg, consts.ProgramID, gen.Rules(), st)
	if err != nil {
		return nil, err
	}
	return &VM{log: log, processor: processor}, nil
}

// SubmitTx parses and executes a signed transaction.
func (vm *VM) SubmitTx(ctx context.Context, b []byte) (*chain.Result, error) {
	tx, err := chain.UnmarshalTx(b, ActionParser, AuthParser)
	if err != nil {
		return nil, err
	}
	return vm.processor.Execute(ctx, tx)
}

// Execute runs an already-parsed transaction.
func (vm *VM) Execute(ctx context.Context, tx *chain.Transaction) (*chain.Result, error) {
	return vm.processor.Execute(ctx, tx)
}

// Counter returns the committed counter record for [addr].
func (vm *VM) Counter(ctx context.Context, addr codec.Address) (*storage.CounterRecord, error) {
	return storage.GetCounterFromState(ctx, vm.processor.ReadState, addr)
}

// Balance returns the committed funding balance for [addr].
func (vm *VM) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	return storage.GetBalanceFromState(ctx, vm.processor.ReadState, addr)
}
