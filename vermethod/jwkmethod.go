/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vermethod

import (
	"fmt"

	didmodel "github.com/trustbloc/did-go/doc/did"
	"github.com/trustbloc/kms-go/doc/jose/jwk"

	ldproof "github.com/verifid/ldproof-go"
	jsonutil "github.com/verifid/ldproof-go/util/json"
)

const (
	// JWKMethodType is the verification method type produced by
	// NewJWKMethod.
	JWKMethodType = "JsonWebKey2020"

	fldID           = "id"
	fldType         = "type"
	fldController   = "controller"
	fldPublicKeyJWK = "publicKeyJwk"
)

// JWKMethod is a verification method record binding a public JSON Web Key
// to its controller DID:
//
//	{id: did#kid, type: JsonWebKey2020, controller: did,
//	 publicKeyJwk: {kty, crv, x, ...}}
type JWKMethod map[string]interface{}

// NewJWKMethod builds a JWKMethod from a DID and a public JWK. The method
// id is composed as did#kid, the controller is the DID itself and the
// public key fields are embedded verbatim from the JWK. It is pure and
// deterministic; the only failure mode is a nil did or jwk, reported as
// ldproof.ErrNilField.
func NewJWKMethod(d *didmodel.DID, key *jwk.JWK) (JWKMethod, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: did", ldproof.ErrNilField)
	}

	if key == nil {
		return nil, fmt.Errorf("%w: jwk", ldproof.ErrNilField)
	}

	keyMap, err := jsonutil.ToMap(key)
	if err != nil {
		return nil, fmt.Errorf("marshal jwk: %w", err)
	}

	return JWKMethod{
		fldID:           d.String() + "#" + key.KeyID,
		fldType:         JWKMethodType,
		fldController:   d.String(),
		fldPublicKeyJWK: jsonutil.Select(keyMap, "kty", "crv", "x", "y", "kid"),
	}, nil
}

// ID returns the verification method id (did#kid URI).
func (m JWKMethod) ID() string {
	id, _ := m[fldID].(string)
	return id
}

// Type returns the verification method type.
func (m JWKMethod) Type() string {
	typ, _ := m[fldType].(string)
	return typ
}

// Controller returns the controller DID URI.
func (m JWKMethod) Controller() string {
	controller, _ := m[fldController].(string)
	return controller
}

// PublicKeyJWK returns the embedded public key fields.
func (m JWKMethod) PublicKeyJWK() map[string]interface{} {
	pub, _ := m[fldPublicKeyJWK].(map[string]interface{})
	return pub
}
