// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/wessonvm/state"
)

// Processor executes transactions against the slot store one at a time.
// Operations on the same slot observe a total order; each is a single
// synchronous transformation whose writes are committed only on success.
type Processor struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics

	programID ids.ID
	rules     Rules

	lock  sync.Mutex
	state state.Mutable
}

func NewProcessor(
	log logging.Logger,
	tracer trace.Tracer,
	reg prometheus.Registerer,
	programID ids.ID,
	rules Rules,
	st state.Mutable,
) (*Processor, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:       log,
		tracer:    tracer,
		metrics:   m,
		programID: programID,
		rules:     rules,
		state:     st,
	}, nil
}

// Execute verifies and runs [tx]. A non-nil error means the transaction never
// reached its action (wrong program, invalid signature, stale timestamp); an
// action failure is reported through the result with state left untouched.
func (p *Processor) Execute(ctx context.Context, tx *Transaction) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "Processor.Execute")
	defer span.End()

	p.lock.Lock()
	defer p.lock.Unlock()

	if tx.Base.Program != p.programID {
		p.metrics.txsRejected.Inc()
		return nil, fmt.Errorf("%w: %s", ErrWrongProgram, tx.Base.Program)
	}
	start, end := tx.Action.ValidRange(p.rules)
	if start >= 0 && tx.Base.Timestamp < start {
		p.metrics.txsRejected.Inc()
		return nil, ErrTimestampTooEarly
	}
	if end >= 0 && tx.Base.Timestamp > end {
		p.metrics.txsRejected.Inc()
		return nil, ErrTimestampTooLate
	}
	if tx.Auth == nil {
		p.metrics.txsRejected.Inc()
		return nil, ErrAuthFailed
	}
	msg, err := tx.UnsignedBytes()
	if err != nil {
		return nil, err
	}
	if err := tx.Auth.Verify(ctx, msg); err != nil {
		p.metrics.txsRejected.Inc()
		return nil, fmt.Errorf("%w: %s", ErrAuthFailed, err)
	}

	actor := tx.Auth.Actor()
	txID, err := tx.ID()
	if err != nil {
		return nil, err
	}
	units := tx.Action.ComputeUnits(p.rules)

	view := state.NewTransactionView(p.state, tx.Action.StateKeys(actor, txID))
	output, err := tx.Action.Execute(ctx, p.rules, view, tx.Base.Timestamp, actor, txID)
	if err != nil {
		p.metrics.txsReverted.Inc()
		p.log.Debug("action reverted",
			zap.Stringer("txID", txID),
			zap.Uint8("action", tx.Action.GetTypeID()),
			zap.Error(err),
		)
		return &Result{Success: false, Error: err, Units: units}, nil
	}
	changes := view.PendingChanges()
	if err := view.Commit(ctx, p.state); err != nil {
		return nil, err
	}
	p.metrics.txsAccepted.Inc()
	p.metrics.stateChanges.Add(float64(changes))
	p.log.Debug("action executed",
		zap.Stringer("txID", txID),
		zap.Uint8("action", tx.Action.GetTypeID()),
		zap.Int("changes", changes),
	)
	return &Result{Success: true, Output: output, Units: units}, nil
}

// ReadState serves point lookups against committed state.
func (p *Processor) ReadState(ctx context.Context, keys [][]byte) ([][]byte, []error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	values := make([][]byte, len(keys))
	errs := make([]error, len(keys))
	for i, key := range keys {
		values[i], errs[i] = p.state.GetValue(ctx, key)
	}
	return values, errs
}
