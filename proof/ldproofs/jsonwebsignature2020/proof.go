/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jsonwebsignature2020 implements the JsonWebSignature2020
// signature suite (https://github.com/transmute-industries/lds-jws2020).
// It uses the RDF Dataset Normalization Algorithm (URDNA2015) to transform
// the input document into its canonical form and SHA-256 as the message
// digest algorithm. The signature is carried in the proof's jws field as a
// detached compact JWS whose payload is the document digest, so checking
// the token both verifies its signature and binds it to the digest.
//
// Supported JWS algorithms:
//
//	kty | crv       | alg
//	OKP | Ed25519   | EdDSA
//	EC  | P-256     | ES256
//	EC  | secp256k1 | ES256K
package jsonwebsignature2020

import (
	"crypto/sha256"
	"fmt"

	"github.com/trustbloc/did-go/doc/ld/processor"
	"github.com/trustbloc/kms-go/spi/kms"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
	ecdsaverifier "github.com/verifid/ldproof-go/crypto-ext/verifiers/ecdsa"
	ed25519verifier "github.com/verifid/ldproof-go/crypto-ext/verifiers/ed25519"
	"github.com/verifid/ldproof-go/proof"
	"github.com/verifid/ldproof-go/verifiable"
)

const (
	// ProofType for JsonWebSignature2020.
	ProofType = "JsonWebSignature2020"
	// VerificationMethodType for JsonWebSignature2020.
	VerificationMethodType = "JsonWebKey2020"

	rdfDataSetAlg = "URDNA2015"
)

type signatureVerifier interface {
	SupportedKeyType(keyType kms.KeyType) bool
	Verify(signature, msg []byte, pub *pubkey.PublicKey) (bool, error)
}

// Proof describes the JsonWebSignature2020 signature suite.
type Proof struct {
	jsonldProcessor *processor.Processor
	algVerifiers    map[string]signatureVerifier
	supportedVMs    []proof.SupportedVerificationMethod
}

// New creates an instance of the JsonWebSignature2020 suite.
func New() *Proof {
	p := &Proof{
		jsonldProcessor: processor.NewProcessor(rdfDataSetAlg),
		algVerifiers: map[string]signatureVerifier{
			"EdDSA":  ed25519verifier.New(),
			"ES256":  ecdsaverifier.NewES256(),
			"ES256K": ecdsaverifier.NewSecp256k1(),
		},
	}

	p.supportedVMs = []proof.SupportedVerificationMethod{
		{
			VerificationMethodType: VerificationMethodType,
			KMSKeyType:             kms.ED25519Type,
			JWKKeyType:             "OKP",
			JWKCurve:               "Ed25519",
			RequireJWK:             true,
		},
		{
			VerificationMethodType: VerificationMethodType,
			KMSKeyType:             kms.ECDSAP256TypeIEEEP1363,
			JWKKeyType:             "EC",
			JWKCurve:               "P-256",
			RequireJWK:             true,
		},
		{
			VerificationMethodType: VerificationMethodType,
			KMSKeyType:             kms.ECDSASecp256k1TypeIEEEP1363,
			JWKKeyType:             "EC",
			JWKCurve:               "secp256k1",
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

// CheckSignature parses the proof's detached JWS and verifies its
// signature over the signing input built from the digest. A cryptographic
// mismatch yields false with a nil error.
func (s *Proof) CheckSignature(pub *pubkey.PublicKey, digest []byte, p verifiable.Proof) (bool, error) {
	fields, err := p.Decode()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ldproof.ErrSignatureParse, err)
	}

	if fields.JWS == "" {
		return false, fmt.Errorf("%w: proof is missing jws", ldproof.ErrSignatureParse)
	}

	token, err := parseDetachedJWS(fields.JWS)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ldproof.ErrSignatureParse, err)
	}

	verifier, ok := s.algVerifiers[token.header.Alg]
	if !ok {
		return false, fmt.Errorf("%w: unsupported jws alg %q", ldproof.ErrSignatureVerification, token.header.Alg)
	}

	return verifier.Verify(token.signature, token.signingInput(digest), pub)
}
