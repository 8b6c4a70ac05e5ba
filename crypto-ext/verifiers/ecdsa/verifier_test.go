/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ecdsa

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
	"github.com/trustbloc/kms-go/doc/jose/jwk/jwksupport"
	"github.com/trustbloc/kms-go/spi/kms"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
)

func signP1363(t *testing.T, priv *ecdsa.PrivateKey, keySize int, msg []byte) []byte {
	t.Helper()

	hash := sha256.Sum256(msg)

	r, s, err := ecdsa.Sign(rand.Reader, priv, hash[:])
	require.NoError(t, err)

	signature := make([]byte, 2*keySize)
	r.FillBytes(signature[:keySize])
	s.FillBytes(signature[keySize:])

	return signature
}

func TestVerifyES256(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	msg := []byte("test message")
	signature := signP1363(t, priv, p256KeySize, msg)

	v := NewES256()

	t.Run("bytes key", func(t *testing.T) {
		ok, err := v.Verify(signature, msg, &pubkey.PublicKey{
			Type:     kms.ECDSAP256TypeIEEEP1363,
			BytesKey: &pubkey.BytesKey{Bytes: elliptic.Marshal(elliptic.P256(), priv.X, priv.Y)},
		})
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("jwk key", func(t *testing.T) {
		j, err := jwksupport.JWKFromKey(&priv.PublicKey)
		require.NoError(t, err)

		ok, err := v.Verify(signature, msg, &pubkey.PublicKey{
			Type: kms.ECDSAP256TypeIEEEP1363,
			JWK:  j,
		})
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("signature mismatch is a clean false", func(t *testing.T) {
		ok, err := v.Verify(signature, []byte("other message"), &pubkey.PublicKey{
			Type:     kms.ECDSAP256TypeIEEEP1363,
			BytesKey: &pubkey.BytesKey{Bytes: elliptic.Marshal(elliptic.P256(), priv.X, priv.Y)},
		})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("wrong signature size", func(t *testing.T) {
		ok, err := v.Verify(signature[:30], msg, &pubkey.PublicKey{
			Type:     kms.ECDSAP256TypeIEEEP1363,
			BytesKey: &pubkey.BytesKey{Bytes: elliptic.Marshal(elliptic.P256(), priv.X, priv.Y)},
		})
		require.ErrorIs(t, err, ldproof.ErrSignatureParse)
		require.False(t, ok)
	})

	t.Run("malformed key bytes", func(t *testing.T) {
		ok, err := v.Verify(signature, msg, &pubkey.PublicKey{
			Type:     kms.ECDSAP256TypeIEEEP1363,
			BytesKey: &pubkey.BytesKey{Bytes: []byte{0x01, 0x02}},
		})
		require.ErrorIs(t, err, ldproof.ErrInvalidPublicKeyFormat)
		require.False(t, ok)
	})

	t.Run("unsupported key type", func(t *testing.T) {
		ok, err := v.Verify(signature, msg, &pubkey.PublicKey{
			Type:     kms.ED25519Type,
			BytesKey: &pubkey.BytesKey{Bytes: []byte{0x01}},
		})
		require.ErrorIs(t, err, ldproof.ErrInvalidPublicKeyFormat)
		require.False(t, ok)
	})
}

func TestVerifySecp256k1(t *testing.T) {
	privK, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	priv := privK.ToECDSA()

	msg := []byte("test message")
	signature := signP1363(t, priv, secp256k1KeySize, msg)

	v := NewSecp256k1()

	ok, err := v.Verify(signature, msg, &pubkey.PublicKey{
		Type:     kms.ECDSASecp256k1TypeIEEEP1363,
		BytesKey: &pubkey.BytesKey{Bytes: elliptic.Marshal(btcec.S256(), priv.X, priv.Y)},
	})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.Verify(signature, []byte("other"), &pubkey.PublicKey{
		Type:     kms.ECDSASecp256k1TypeIEEEP1363,
		BytesKey: &pubkey.BytesKey{Bytes: elliptic.Marshal(btcec.S256(), priv.X, priv.Y)},
	})
	require.NoError(t, err)
	require.False(t, ok)
}
