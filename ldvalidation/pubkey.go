/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldvalidation

import (
	"fmt"

	"github.com/trustbloc/kms-go/spi/kms"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
	proofdesc "github.com/verifid/ldproof-go/proof"
	"github.com/verifid/ldproof-go/vermethod"
)

// convertToPublicKey matches a resolved verification method against the
// methods a suite supports and produces the key the signature verifier
// consumes.
func convertToPublicKey(
	supportedMethods []proofdesc.SupportedVerificationMethod,
	vm *vermethod.VerificationMethod,
) (*pubkey.PublicKey, error) {
	for _, supported := range supportedMethods {
		if supported.VerificationMethodType != vm.Type {
			continue
		}

		if vm.JWK == nil && supported.RequireJWK {
			continue
		}

		if vm.JWK != nil && (supported.JWKKeyType != vm.JWK.Kty || supported.JWKCurve != vm.JWK.Crv) {
			continue
		}

		return createPublicKey(vm, supported.KMSKeyType), nil
	}

	jwkKty := ""
	jwkCrv := ""

	if vm.JWK != nil {
		jwkKty = vm.JWK.Kty
		jwkCrv = vm.JWK.Crv
	}

	return nil, fmt.Errorf("%w: can't verify with %q verification method (jwk type %q, jwk curve %q)",
		ldproof.ErrInvalidPublicKeyFormat, vm.Type, jwkKty, jwkCrv)
}

func createPublicKey(vm *vermethod.VerificationMethod, keyType kms.KeyType) *pubkey.PublicKey {
	if vm.JWK != nil {
		return &pubkey.PublicKey{Type: keyType, JWK: vm.JWK}
	}

	return &pubkey.PublicKey{Type: keyType, BytesKey: &pubkey.BytesKey{Bytes: vm.Value}}
}
