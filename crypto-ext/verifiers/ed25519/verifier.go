/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ed25519 verifies Ed25519 signatures over resolved public keys.
package ed25519

import (
	"crypto/ed25519"
	"fmt"

	"github.com/trustbloc/kms-go/spi/kms"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
)

// Verifier verifies an Ed25519 signature taking Ed25519 public key bytes
// or an OKP JWK as input.
type Verifier struct {
}

// New creates a new ed25519 Verifier.
func New() *Verifier {
	return &Verifier{}
}

// SupportedKeyType checks if the verifier supports the given key type.
func (sv *Verifier) SupportedKeyType(keyType kms.KeyType) bool {
	return keyType == kms.ED25519Type
}

// Verify checks the signature of msg. It returns false with a nil error
// when the signature simply does not match, and a non-nil error when the
// key material cannot be used for the check at all.
func (sv *Verifier) Verify(signature, msg []byte, pub *pubkey.PublicKey) (bool, error) {
	if !sv.SupportedKeyType(pub.Type) {
		return false, fmt.Errorf("%w: unsupported key type %s", ldproof.ErrInvalidPublicKeyFormat, pub.Type)
	}

	var value []byte

	if pub.BytesKey != nil {
		value = pub.BytesKey.Bytes
	}

	if pub.JWK != nil {
		var ok bool

		value, ok = pub.JWK.Public().Key.(ed25519.PublicKey)
		if !ok {
			return false, fmt.Errorf("%w: jwk does not hold an ed25519 key", ldproof.ErrInvalidPublicKeyFormat)
		}
	}

	// ed25519.Verify panics on a wrong key size
	if len(value) != ed25519.PublicKeySize {
		return false, fmt.Errorf("%w: ed25519 key size must be %d bytes", ldproof.ErrInvalidPublicKeyFormat, ed25519.PublicKeySize)
	}

	return ed25519.Verify(value, msg, signature), nil
}
