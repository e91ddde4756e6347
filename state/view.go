// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
)

var (
	_ Mutable = (*TransactionView)(nil)

	ErrInvalidKeyOrPermission = errors.New("invalid key or permission")
)

// TransactionView gives a single action scoped, buffered access to state.
// Reads and writes are checked against the permissions declared up front and
// writes are held in memory until Commit. Discarding the view (never calling
// Commit) leaves the underlying state untouched, which is what gives each
// operation its all-or-nothing semantics.
type TransactionView struct {
	parent Immutable
	keys   Keys

	// changes buffers pending writes; a nil value marks a removal.
	changes map[string][]byte
}

func NewTransactionView(parent Immutable, keys Keys) *TransactionView {
	return &TransactionView{
		parent:  parent,
		keys:    keys,
		changes: map[string][]byte{},
	}
}

func (v *TransactionView) GetValue(ctx context.Context, key []byte) ([]byte, error) {
	if !v.keys[string(key)].Has(Read) {
		return nil, ErrInvalidKeyOrPermission
	}
	if val, ok := v.changes[string(key)]; ok {
		if val == nil {
			return nil, database.ErrNotFound
		}
		return val, nil
	}
	return v.parent.GetValue(ctx, key)
}

func (v *TransactionView) Insert(ctx context.Context, key []byte, value []byte) error {
	exists, err := v.exists(ctx, key)
	if err != nil {
		return err
	}
	required := Write
	if !exists {
		required = Allocate | Write
	}
	if !v.keys[string(key)].Has(required) {
		return ErrInvalidKeyOrPermission
	}
	v.changes[string(key)] = value
	return nil
}

func (v *TransactionView) Remove(ctx context.Context, key []byte) error {
	if !v.keys[string(key)].Has(Write) {
		return ErrInvalidKeyOrPermission
	}
	v.changes[string(key)] = nil
	return nil
}

func (v *TransactionView) exists(ctx context.Context, key []byte) (bool, error) {
	if val, ok := v.changes[string(key)]; ok {
		return val != nil, nil
	}
	if _, err := v.parent.GetValue(ctx, key); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PendingChanges returns the number of buffered writes.
func (v *TransactionView) PendingChanges() int {
	return len(v.changes)
}

// Commit applies the buffered writes to [mu] in one pass.
func (v *TransactionView) Commit(ctx context.Context, mu Mutable) error {
	for key, value := range v.changes {
		if value == nil {
			if err := mu.Remove(ctx, []byte(key)); err != nil {
				return err
			}
			continue
		}
		if err := mu.Insert(ctx, []byte(key), value); err != nil {
			return err
		}
	}
	return nil
}
