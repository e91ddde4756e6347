// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by any object that can be registered with a
// [TypeParser].
type Typed interface {
	GetTypeID() uint8
}
