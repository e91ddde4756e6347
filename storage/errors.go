// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrCounterAlreadyExists = errors.New("counter already exists")
	ErrCounterNotFound      = errors.New("counter not found")
	ErrCounterUnderflow     = errors.New("counter underflow")
	ErrSchemaMismatch       = errors.New("account discriminator mismatch")
	ErrInsufficientSpace    = errors.New("message exceeds maximum payload")

	ErrInvalidBalance = errors.New("invalid balance")
)
