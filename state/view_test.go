// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

func TestViewPermissions(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	parent := MutableStorage{"k": []byte("v")}

	v := NewTransactionView(parent, Keys{})
	_, err := v.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, ErrInvalidKeyOrPermission)
	require.ErrorIs(v.Insert(ctx, []byte("k"), []byte("x")), ErrInvalidKeyOrPermission)
	require.ErrorIs(v.Remove(ctx, []byte("k")), ErrInvalidKeyOrPermission)

	// Read permission does not grant writes.
	v = NewTransactionView(parent, Keys{"k": Read})
	val, err := v.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), val)
	require.ErrorIs(v.Insert(ctx, []byte("k"), []byte("x")), ErrInvalidKeyOrPermission)

	// Creating a new key requires Allocate, not just Write.
	v = NewTransactionView(parent, Keys{"new": Write})
	require.ErrorIs(v.Insert(ctx, []byte("new"), []byte("x")), ErrInvalidKeyOrPermission)
	v = NewTransactionView(parent, Keys{"new": All})
	require.NoError(v.Insert(ctx, []byte("new"), []byte("x")))
}

func TestViewBuffersUntilCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	parent := MutableStorage{"k": []byte("v")}

	v := NewTransactionView(parent, Keys{"k": Read | Write})
	require.NoError(v.Insert(ctx, []byte("k"), []byte("v2")))

	// The view observes its own write, the parent does not.
	val, err := v.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v2"), val)
	require.Equal([]byte("v"), parent["k"])

	require.Equal(1, v.PendingChanges())
	require.NoError(v.Commit(ctx, parent))
	require.Equal([]byte("v2"), parent["k"])
}

func TestViewDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	parent := MutableStorage{"k": []byte("v")}

	v := NewTransactionView(parent, Keys{"k": Read | Write})
	require.NoError(v.Remove(ctx, []byte("k")))

	_, err := v.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	// Dropping the view without Commit leaves the parent untouched.
	require.Equal([]byte("v"), parent["k"])
}

func TestViewRemoveCommits(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	parent := MutableStorage{"k": []byte("v")}

	v := NewTransactionView(parent, Keys{"k": Read | Write})
	require.NoError(v.Remove(ctx, []byte("k")))
	require.NoError(v.Commit(ctx, parent))

	_, ok := parent["k"]
	require.False(ok)
}
