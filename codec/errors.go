// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrTooManyItems      = errors.New("too many items")
	ErrDuplicateItem     = errors.New("duplicate item")
	ErrTypeIDMismatch    = errors.New("type ID differs from registration index")
	ErrInvalidAddressLen = errors.New("invalid address length")
)
