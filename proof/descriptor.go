/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package proof defines the contract a linked data signature suite exposes
// to the validation pipeline.
package proof

import (
	"github.com/trustbloc/did-go/doc/ld/processor"
	"github.com/trustbloc/kms-go/spi/kms"
)

// SupportedVerificationMethod describes a verification method a signature
// suite can check against.
type SupportedVerificationMethod struct {
	// VerificationMethodType is the DID verification method type,
	// e.g. Ed25519VerificationKey2020 or JsonWebKey2020.
	VerificationMethodType string
	KMSKeyType             kms.KeyType
	JWKKeyType             string
	JWKCurve               string
	RequireJWK             bool
}

// LDProofDescriptor describes a linked data signature suite: how to
// canonicalize and digest a document for it, and which verification
// methods it accepts.
type LDProofDescriptor interface {
	// ProofType returns the suite name as it appears in proof.type.
	ProofType() string

	// GetCanonicalDocument returns the normalized/canonical version of
	// the document.
	GetCanonicalDocument(doc map[string]interface{}, opts ...processor.Opts) ([]byte, error)

	// GetDigest returns the digest of a canonical document.
	GetDigest(doc []byte) []byte

	// SupportedVerificationMethods returns the verification methods this
	// suite can check against.
	SupportedVerificationMethods() []SupportedVerificationMethod
}
