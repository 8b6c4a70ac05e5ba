/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vermethod models verification methods (public key records bound
// to a controller DID) and their resolution from DID documents.
package vermethod

import "github.com/trustbloc/kms-go/doc/jose/jwk"

// VerificationMethod is a resolved public key, defined either as raw
// public key bytes (Value field) or as a JSON Web Key.
type VerificationMethod struct {
	Type  string
	Value []byte
	JWK   *jwk.JWK
}
