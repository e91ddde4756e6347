// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wessonvm/consts"
	"github.com/ava-labs/wessonvm/crypto/ed25519"
)

func TestED25519SignVerify(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := NewED25519Factory(priv)

	msg := []byte("increment my counter")
	a, err := factory.Sign(msg)
	require.NoError(err)
	require.NoError(a.Verify(context.Background(), msg))
	require.Equal(factory.Address(), a.Actor())
	require.Equal(a.Actor(), a.Sponsor())
}

func TestED25519RejectsTamperedMessage(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	a, err := NewED25519Factory(priv).Sign([]byte("original"))
	require.NoError(err)

	require.ErrorIs(a.Verify(context.Background(), []byte("modified")), ErrInvalidSignature)
}

func TestED25519MarshalRoundTrip(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	a, err := NewED25519Factory(priv).Sign([]byte("msg"))
	require.NoError(err)

	b, err := a.Marshal()
	require.NoError(err)
	require.Len(b, ed25519.PublicKeyLen+ed25519.SignatureLen)

	parsed, err := UnmarshalED25519(b)
	require.NoError(err)
	require.Equal(a, parsed)
	require.NoError(parsed.Verify(context.Background(), []byte("msg")))
}

func TestAddressDerivation(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	addr := NewED25519Address(priv.PublicKey())
	require.Equal(consts.ED25519ID, addr[0])
	require.NotEqual(addr, NewED25519Address(ed25519.EmptyPublicKey))
}
