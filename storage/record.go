// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/wessonvm/consts"
)

const (
	DiscriminatorLen = 8
	MaxMessageLen    = 32

	// CounterAccountSize is the exact serialized size reserved for a counter
	// slot: discriminator, count, message length prefix, and the maximum
	// message payload.
	CounterAccountSize = DiscriminatorLen + consts.Uint64Len + consts.Uint32Len + MaxMessageLen
)

// Discriminator tags every counter slot so the runtime can tell this schema
// apart from any other record type sharing the store.
var Discriminator [DiscriminatorLen]byte

func init() {
	h := sha256.Sum256([]byte("account:" + consts.Name + ".Counter"))
	copy(Discriminator[:], h[:DiscriminatorLen])
}

// CounterRecord is the sole persisted entity of the counter program. Borsh
// lays it out as count (u64, little-endian) followed by message (u32 length
// prefix and UTF-8 bytes), matching the on-slot format exactly.
type CounterRecord struct {
	Count   uint64 `json:"count"`
	Message string `json:"message"`
}

// EncodeCounter serializes r with the discriminator prepended. Messages over
// [MaxMessageLen] are rejected before any bytes are produced.
func EncodeCounter(r *CounterRecord) ([]byte, error) {
	if len(r.Message) > MaxMessageLen {
		return nil, fmt.Errorf(
			"%w: message is %d bytes (max %d)",
			ErrInsufficientSpace,
			len(r.Message),
			MaxMessageLen,
		)
	}
	body, err := borsh.Serialize(*r)
	if err != nil {
		return nil, err
	}
	v := make([]byte, 0, DiscriminatorLen+len(body))
	v = append(v, Discriminator[:]...)
	return append(v, body...), nil
}

// DecodeCounter parses a raw slot value, validating the discriminator before
// touching the body.
func DecodeCounter(v []byte) (*CounterRecord, error) {
	if len(v) < DiscriminatorLen+consts.Uint64Len+consts.Uint32Len {
		return nil, fmt.Errorf("%w: truncated account (%d bytes)", ErrSchemaMismatch, len(v))
	}
	if !bytes.Equal(v[:DiscriminatorLen], Discriminator[:]) {
		return nil, ErrSchemaMismatch
	}
	r := new(CounterRecord)
	if err := borsh.Deserialize(r, v[DiscriminatorLen:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, err)
	}
	return r, nil
}
