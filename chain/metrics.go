// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	txsAccepted  prometheus.Counter
	txsReverted  prometheus.Counter
	txsRejected  prometheus.Counter
	stateChanges prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_accepted",
			Help:      "number of transactions executed and committed",
		}),
		txsReverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_reverted",
			Help:      "number of transactions whose action failed",
		}),
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_rejected",
			Help:      "number of transactions rejected before execution",
		}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_changes",
			Help:      "number of state keys written by committed transactions",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsAccepted),
		r.Register(m.txsReverted),
		r.Register(m.txsRejected),
		r.Register(m.stateChanges),
	)
	return m, errs.Err
}
