// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/near/borsh-go"

	"github.com/ava-labs/wessonvm/codec"
)

// Base carries the fields shared by every transaction: when it was issued and
// which program it targets.
type Base struct {
	Timestamp int64  `json:"timestamp"`
	Program   ids.ID `json:"program"`
}

// txBody is the signed portion of the wire format: base fields followed by
// the type-ID-prefixed action payload.
type txBody struct {
	Timestamp int64
	Program   ids.ID
	ActionID  uint8
	Action    []byte
}

// txWire is [txBody] followed by the type-ID-prefixed auth payload. Borsh
// serializes struct fields in order, so the encoding of [txBody] is a strict
// prefix of the encoding of [txWire].
type txWire struct {
	Timestamp int64
	Program   ids.ID
	ActionID  uint8
	Action    []byte
	AuthID    uint8
	Auth      []byte
}

type Transaction struct {
	Base   Base
	Action Action

	// Auth is nil until the transaction is signed.
	Auth Auth
}

func NewTx(base Base, action Action) *Transaction {
	return &Transaction{Base: base, Action: action}
}

// UnsignedBytes is the byte string covered by the auth signature.
func (t *Transaction) UnsignedBytes() ([]byte, error) {
	actionBytes, err := t.Action.Marshal()
	if err != nil {
		return nil, err
	}
	return borsh.Serialize(txBody{
		Timestamp: t.Base.Timestamp,
		Program:   t.Base.Program,
		ActionID:  t.Action.GetTypeID(),
		Action:    actionBytes,
	})
}

// Sign attaches a credential over UnsignedBytes.
func (t *Transaction) Sign(factory AuthFactory) error {
	msg, err := t.UnsignedBytes()
	if err != nil {
		return err
	}
	auth, err := factory.Sign(msg)
	if err != nil {
		return err
	}
	t.Auth = auth
	return nil
}

// Bytes is the full wire form of a signed transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	if t.Auth == nil {
		return nil, ErrAuthFailed
	}
	actionBytes, err := t.Action.Marshal()
	if err != nil {
		return nil, err
	}
	authBytes, err := t.Auth.Marshal()
	if err != nil {
		return nil, err
	}
	return borsh.Serialize(txWire{
		Timestamp: t.Base.Timestamp,
		Program:   t.Base.Program,
		ActionID:  t.Action.GetTypeID(),
		Action:    actionBytes,
		AuthID:    t.Auth.GetTypeID(),
		Auth:      authBytes,
	})
}

// ID is the hash of the signed transaction bytes.
func (t *Transaction) ID() (ids.ID, error) {
	b, err := t.Bytes()
	if err != nil {
		return ids.Empty, err
	}
	return hashing.ComputeHash256Array(b), nil
}

// UnmarshalTx parses a signed transaction using the registered action and
// auth decoders.
func UnmarshalTx(
	b []byte,
	actionParser *codec.TypeParser[Action],
	authParser *codec.TypeParser[Auth],
) (*Transaction, error) {
	var w txWire
	if err := borsh.Deserialize(&w, b); err != nil {
		return nil, err
	}
	actionDecoder, ok := actionParser.LookupIndex(w.ActionID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, w.ActionID)
	}
	action, err := actionDecoder(w.Action)
	if err != nil {
		return nil, err
	}
	authDecoder, ok := authParser.LookupIndex(w.AuthID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAuth, w.AuthID)
	}
	auth, err := authDecoder(w.Auth)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Base:   Base{Timestamp: w.Timestamp, Program: w.Program},
		Action: action,
		Auth:   auth,
	}, nil
}
