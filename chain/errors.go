// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrWrongProgram      = errors.New("transaction names a different program")
	ErrAuthFailed        = errors.New("auth verification failed")
	ErrTimestampTooEarly = errors.New("timestamp too early")
	ErrTimestampTooLate  = errors.New("timestamp too late")
	ErrUnknownAction     = errors.New("unknown action type")
	ErrUnknownAuth       = errors.New("unknown auth type")
)
