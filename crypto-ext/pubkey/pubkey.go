/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pubkey models the result of verification key resolution: key
// material decoded far enough for a signature verifier to consume, either
// as raw bytes or as a JSON Web Key.
package pubkey

import (
	"github.com/trustbloc/kms-go/doc/jose/jwk"
	"github.com/trustbloc/kms-go/spi/kms"
)

// BytesKey contains the raw bytes of a public key.
type BytesKey struct {
	Bytes []byte
}

// PublicKey contains a result of verification key resolution. Exactly one
// of BytesKey and JWK is set.
type PublicKey struct {
	Type kms.KeyType

	BytesKey *BytesKey
	JWK      *jwk.JWK
}
