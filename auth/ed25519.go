// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/near/borsh-go"

	"github.com/ava-labs/wessonvm/chain"
	"github.com/ava-labs/wessonvm/codec"
	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/crypto/ed25519"
)

var _ chain.Auth = (*ED25519)(nil)

type ED25519 struct {
	Signer    ed25519.PublicKey `json:"signer"`
	Signature ed25519.Signature `json:"signature"`
}

func (*ED25519) GetTypeID() uint8 {
	return consts.ED25519ID
}

func (d *ED25519) Verify(_ context.Context, msg []byte) error {
	if !ed25519.Verify(msg, d.Signer, d.Signature) {
		return ErrInvalidSignature
	}
	return nil
}

func (d *ED25519) Actor() codec.Address {
	return NewED25519Address(d.Signer)
}

func (d *ED25519) Sponsor() codec.Address {
	return NewED25519Address(d.Signer)
}

func (d *ED25519) Marshal() ([]byte, error) {
	return borsh.Serialize(*d)
}

func UnmarshalED25519(b []byte) (chain.Auth, error) {
	var d ED25519
	if err := borsh.Deserialize(&d, b); err != nil {
		return nil, err
	}
	return &d, nil
}

// NewED25519Address returns the address of [pk], a type byte over the hash
// of the public key.
func NewED25519Address(pk ed25519.PublicKey) codec.Address {
	return codec.CreateAddress(consts.ED25519ID, hashing.ComputeHash256Array(pk[:]))
}

var _ chain.AuthFactory = (*ED25519Factory)(nil)

type ED25519Factory struct {
	priv ed25519.PrivateKey
}

func NewED25519Factory(priv ed25519.PrivateKey) *ED25519Factory {
	return &ED25519Factory{priv}
}

func (d *ED25519Factory) Sign(msg []byte) (chain.Auth, error) {
	sig := ed25519.Sign(msg, d.priv)
	return &ED25519{Signer: d.priv.PublicKey(), Signature: sig}, nil
}

func (d *ED25519Factory) Address() codec.Address {
	return NewED25519Address(d.priv.PublicKey())
}
