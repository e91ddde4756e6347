// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/state"
)

type ActionTest struct {
	Action    Action
	Rules     Rules
	State     state.Mutable
	Timestamp int64
	Actor     codec.Address
	ActionID  ids.ID

	ExpectedOutput codec.Typed
	ExpectedErr    error

	// Assertion runs after Execute to check state directly.
	Assertion func(ctx context.Context, t *testing.T, mu state.Mutable)
}

type ActionTestSuite struct {
	Tests    map[string]ActionTest
	Teardown func()
}

func (suite *ActionTestSuite) Run(t *testing.T) {
	for testName := range suite.Tests {
		t.Run(testName, func(t *testing.T) {
			require := require.New(t)
			test := suite.Tests[testName]

			ctx := context.TODO()
			output, err := test.Action.Execute(ctx, test.Rules, test.State, test.Timestamp, test.Actor, test.ActionID)

			if test.ExpectedErr != nil {
				require.ErrorIs(err, test.ExpectedErr)
			} else {
				require.NoError(err)
				require.Equal(test.ExpectedOutput, output)
			}

			if test.Assertion != nil {
				test.Assertion(ctx, t, test.State)
			}
		})
	}

	if suite.Teardown != nil {
		suite.Teardown()
	}
}
