// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/wessonvm/codec"

// Result reports the outcome of a processed transaction. A reverted action
// (Success false) consumed units but left state untouched.
type Result struct {
	Success bool

	// Error is set when Success is false.
	Error error

	// Output is the action's typed result when Success is true.
	Output codec.Typed

	Units uint64
}
