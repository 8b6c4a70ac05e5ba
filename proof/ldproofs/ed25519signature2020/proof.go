/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ed25519signature2020 implements the Ed25519Signature2020
// signature suite. It uses the RDF Dataset Normalization Algorithm
// (URDNA2015) to transform the input document into its canonical form,
// SHA-256 as the message digest algorithm and Ed25519 as the signature
// algorithm, with the signature carried multibase-encoded in the proof's
// proofValue field.
package ed25519signature2020

import (
	"crypto/sha256"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/trustbloc/did-go/doc/ld/processor"
	"github.com/trustbloc/kms-go/spi/kms"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
	ed25519verifier "github.com/verifid/ldproof-go/crypto-ext/verifiers/ed25519"
	"github.com/verifid/ldproof-go/proof"
	"github.com/verifid/ldproof-go/verifiable"
)

const (
	// ProofType for Ed25519Signature2020.
	ProofType = "Ed25519Signature2020"
	// VerificationMethodType for Ed25519Signature2020.
	VerificationMethodType = "Ed25519VerificationKey2020"
	// JWKKeyType for Ed25519Signature2020.
	JWKKeyType = "OKP"
	// JWKCurve for Ed25519Signature2020.
	JWKCurve = "Ed25519"

	rdfDataSetAlg = "URDNA2015"
)

// Proof describes the Ed25519Signature2020 signature suite.
type Proof struct {
	jsonldProcessor *processor.Processor
	verifier        *ed25519verifier.Verifier
	supportedVMs    []proof.SupportedVerificationMethod
}

// New creates an instance of the Ed25519Signature2020 suite.
func New() *Proof {
	p := &Proof{
		jsonldProcessor: processor.NewProcessor(rdfDataSetAlg),
		verifier:        ed25519verifier.New(),
	}

	p.supportedVMs = []proof.SupportedVerificationMethod{
		{
			VerificationMethodType: VerificationMethodType,
			KMSKeyType:             kms.ED25519Type,
			JWKKeyType:             JWKKeyType,
			JWKCurve:               JWKCurve,
		},
		{
			VerificationMethodType: "JsonWebKey2020",
			KMSKeyType:             kms.ED25519Type,
			JWKKeyType:             JWKKeyType,
			JWKCurve:               JWKCurve,
			RequireJWK:             true,
		},
	}

	return p
}

// ProofType returns the suite name.
func (s *Proof) ProofType() string {
	return ProofType
}

// SupportedVerificationMethods returns the verification methods supported
// by this suite.
func (s *Proof) SupportedVerificationMethods() []proof.SupportedVerificationMethod {
	return s.supportedVMs
}

// GetCanonicalDocument returns the normalized/canonical version of the
// document using RDF Dataset Normalization.
func (s *Proof) GetCanonicalDocument(doc map[string]interface{}, opts ...processor.Opts) ([]byte, error) {
	return s.jsonldProcessor.GetCanonicalDocument(doc, opts...)
}

// GetDigest returns the SHA-256 digest of a canonical document.
func (s *Proof) GetDigest(doc []byte) []byte {
	digest := sha256.Sum256(doc)
	return digest[:]
}

// CheckSignature decodes the proof's multibase proofValue and verifies it
// as a raw Ed25519 signature over the digest. A cryptographic mismatch
// yields false with a nil error.
func (s *Proof) CheckSignature(pub *pubkey.PublicKey, digest []byte, p verifiable.Proof) (bool, error) {
	fields, err := p.Decode()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ldproof.ErrSignatureParse, err)
	}

	if fields.ProofValue == "" {
		return false, fmt.Errorf("%w: proof is missing proofValue", ldproof.ErrSignatureParse)
	}

	_, signature, err := multibase.Decode(fields.ProofValue)
	if err != nil {
		return false, fmt.Errorf("%w: decode multibase proofValue: %w", ldproof.ErrSignatureParse, err)
	}

	return s.verifier.Verify(signature, digest, pub)
}
