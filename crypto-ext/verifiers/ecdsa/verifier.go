/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ecdsa verifies elliptic curve signatures in the IEEE P1363
// (r||s) form used by JWS, over resolved public keys.
package ecdsa

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"math/big"
	"slices"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/trustbloc/kms-go/spi/kms"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
)

const (
	p256KeySize      = 32
	secp256k1KeySize = 32
)

type ellipticCurve struct {
	curve   elliptic.Curve
	keySize int
	hash    crypto.Hash
}

// Verifier verifies elliptic curve signatures for one curve family.
type Verifier struct {
	ec          ellipticCurve
	kmsKeyTypes []kms.KeyType
}

// NewES256 creates a verifier for ECDSA P-256 signatures with SHA-256.
func NewES256() *Verifier {
	return &Verifier{
		ec: ellipticCurve{
			curve:   elliptic.P256(),
			keySize: p256KeySize,
			hash:    crypto.SHA256,
		},
		kmsKeyTypes: []kms.KeyType{kms.ECDSAP256TypeIEEEP1363},
	}
}

// NewSecp256k1 creates a verifier for ECDSA secp256k1 signatures with
// SHA-256.
func NewSecp256k1() *Verifier {
	return &Verifier{
		ec: ellipticCurve{
			curve:   btcec.S256(),
			keySize: secp256k1KeySize,
			hash:    crypto.SHA256,
		},
		kmsKeyTypes: []kms.KeyType{kms.ECDSASecp256k1TypeIEEEP1363},
	}
}

// SupportedKeyType checks if the verifier supports the given key type.
func (sv *Verifier) SupportedKeyType(keyType kms.KeyType) bool {
	return slices.Contains(sv.kmsKeyTypes, keyType)
}

// Verify checks the P1363 signature of msg. It returns false with a nil
// error when the signature simply does not match, and a non-nil error when
// the key or signature encoding cannot be processed.
func (sv *Verifier) Verify(signature, msg []byte, pub *pubkey.PublicKey) (bool, error) {
	ecdsaPubKey, err := sv.parseKey(pub)
	if err != nil {
		return false, err
	}

	if len(signature) != 2*sv.ec.keySize {
		return false, fmt.Errorf("%w: ecdsa signature must be %d bytes", ldproof.ErrSignatureParse, 2*sv.ec.keySize)
	}

	hasher := sv.ec.hash.New()

	if _, err = hasher.Write(msg); err != nil {
		return false, fmt.Errorf("%w: ecdsa hash: %w", ldproof.ErrSignatureVerification, err)
	}

	hash := hasher.Sum(nil)

	r := big.NewInt(0).SetBytes(signature[:sv.ec.keySize])
	s := big.NewInt(0).SetBytes(signature[sv.ec.keySize:])

	return ecdsa.Verify(ecdsaPubKey, hash, r, s), nil
}

func (sv *Verifier) parseKey(pub *pubkey.PublicKey) (*ecdsa.PublicKey, error) {
	if !sv.SupportedKeyType(pub.Type) {
		return nil, fmt.Errorf("%w: unsupported key type %s", ldproof.ErrInvalidPublicKeyFormat, pub.Type)
	}

	if pub.JWK != nil {
		ecdsaPubKey, ok := pub.JWK.Key.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: jwk does not hold an ecdsa key", ldproof.ErrInvalidPublicKeyFormat)
		}

		return ecdsaPubKey, nil
	}

	x, y := elliptic.Unmarshal(sv.ec.curve, pub.BytesKey.Bytes)
	if x == nil {
		return nil, fmt.Errorf("%w: invalid ecdsa public key bytes", ldproof.ErrInvalidPublicKeyFormat)
	}

	return &ecdsa.PublicKey{Curve: sv.ec.curve, X: x, Y: y}, nil
}
