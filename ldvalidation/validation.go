/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ldvalidation verifies linked data proofs embedded in verifiable
// credentials and presentations.
//
// A Verify call runs the full pipeline: select the signature suite named
// by the proof type, canonicalize and digest a deep copy of the document
// with the proof signature value stripped, validate the document shape,
// check the signature against a key resolved from the proof's
// did#fragment verification method reference, and, for credentials,
// require that the key's DID equals the stated issuer. Every step fails
// closed: no path returns true from a partially executed pipeline.
package ldvalidation

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/trustbloc/did-go/doc/ld/processor"

	ldproof "github.com/verifid/ldproof-go"
	"github.com/verifid/ldproof-go/crypto-ext/pubkey"
	proofdesc "github.com/verifid/ldproof-go/proof"
	"github.com/verifid/ldproof-go/proof/ldproofs/ed25519signature2020"
	"github.com/verifid/ldproof-go/proof/ldproofs/jsonwebsignature2020"
	"github.com/verifid/ldproof-go/validator"
	"github.com/verifid/ldproof-go/verifiable"
	"github.com/verifid/ldproof-go/vermethod"
)

// Suite is a signature suite the pipeline can dispatch to: a proof
// descriptor plus the suite-specific signature check. CheckSignature
// returns false with a nil error on a clean cryptographic mismatch and a
// non-nil error for every condition that prevented the check.
type Suite interface {
	proofdesc.LDProofDescriptor

	CheckSignature(pub *pubkey.PublicKey, digest []byte, p verifiable.Proof) (bool, error)
}

type logger interface {
	Printf(format string, args ...interface{})
}

// ProofValidation is the linked data proof validation entry point. It is
// stateless apart from its configuration; concurrent Verify calls on
// independent documents are safe.
type ProofValidation struct {
	resolver      vermethod.Resolver
	validator     validator.DocumentValidator
	suites        map[string]Suite
	processorOpts []processor.Opts
	log           logger
}

// Opt configures a ProofValidation.
type Opt func(*ProofValidation)

// WithDocumentValidator replaces the default JSON schema validator.
func WithDocumentValidator(v validator.DocumentValidator) Opt {
	return func(pv *ProofValidation) {
		pv.validator = v
	}
}

// WithSuites registers additional signature suites, keyed by their proof
// type. A suite with the same proof type as a default replaces it.
func WithSuites(suites ...Suite) Opt {
	return func(pv *ProofValidation) {
		for _, s := range suites {
			pv.suites[s.ProofType()] = s
		}
	}
}

// WithProcessorOpts sets json-ld processor options (such as the document
// loader) used during canonicalization.
func WithProcessorOpts(opts ...processor.Opts) Opt {
	return func(pv *ProofValidation) {
		pv.processorOpts = opts
	}
}

// WithLogger replaces the logger used to record swallowed document
// validation failures.
func WithLogger(l logger) Opt {
	return func(pv *ProofValidation) {
		pv.log = l
	}
}

// New creates a ProofValidation with the Ed25519Signature2020 and
// JsonWebSignature2020 suites registered. The resolver is required.
func New(resolver vermethod.Resolver, opts ...Opt) (*ProofValidation, error) {
	if resolver == nil {
		return nil, errors.New("verification method resolver must not be nil")
	}

	pv := &ProofValidation{
		resolver:  resolver,
		validator: validator.NewSchemaValidator(),
		suites:    map[string]Suite{},
		log:       log.Default(),
	}

	for _, s := range []Suite{ed25519signature2020.New(), jsonwebsignature2020.New()} {
		pv.suites[s.ProofType()] = s
	}

	for _, opt := range opts {
		opt(pv)
	}

	return pv, nil
}

// Verify checks the embedded proof of a credential or presentation.
//
// It returns (false, nil) when the document was checked and found not
// valid: a signature that does not match, a document that fails shape
// validation, or a credential signed by a key whose DID is not the stated
// issuer. It returns a non-nil error, always wrapping one of the ldproof
// sentinels, when the check could not be performed at all. The caller's
// document is never mutated.
func (pv *ProofValidation) Verify(doc verifiable.Document) (bool, error) {
	if doc == nil {
		return false, errors.New("document must not be nil")
	}

	p, err := doc.Proof()
	if err != nil {
		return false, err
	}

	suite, err := pv.selectSuite(p.Type())
	if err != nil {
		return false, err
	}

	// Canonicalization covers the document as it was before signing: the
	// proof's signature value is stripped, its other metadata retained.
	withoutSignature, err := doc.WithoutProofSignature()
	if err != nil {
		return false, err
	}

	canonical, err := suite.GetCanonicalDocument(withoutSignature, pv.processorOpts...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ldproof.ErrTransform, err)
	}

	digest := suite.GetDigest(canonical)

	// A shape-invalid document can never be meaningfully verified, so this
	// is reported as "not valid" rather than "could not be checked".
	if err := pv.validator.Validate(withoutSignature); err != nil {
		pv.log.Printf("could not validate document %q: %v", doc.ID(), err)
		return false, nil
	}

	vmRef := p.VerificationMethod()

	vm, err := pv.resolver.ResolveVerificationMethod(vmRef)
	if err != nil {
		return false, err
	}

	pub, err := convertToPublicKey(suite.SupportedVerificationMethods(), vm)
	if err != nil {
		return false, fmt.Errorf("%s proof check: %w", p.Type(), err)
	}

	ok, err := suite.CheckSignature(pub, digest, p)
	if err != nil {
		return false, err
	}

	if !ok {
		return false, nil
	}

	return pv.issuerBound(doc, vmRef), nil
}

func (pv *ProofValidation) selectSuite(proofType string) (Suite, error) {
	if proofType == "" {
		return nil, fmt.Errorf("%w: proof type can't be empty", ldproof.ErrUnsupportedSignatureType)
	}

	suite, ok := pv.suites[proofType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ldproof.ErrUnsupportedSignatureType, proofType)
	}

	return suite, nil
}

// issuerBound enforces that the DID controlling the signing key is the
// credential's stated issuer. Presentations have no issuer and are bound
// by the signature check alone.
func (pv *ProofValidation) issuerBound(doc verifiable.Document, vmRef string) bool {
	vc, isCredential := doc.(*verifiable.Credential)
	if !isCredential {
		return true
	}

	return strings.Split(vmRef, "#")[0] == vc.Issuer()
}
