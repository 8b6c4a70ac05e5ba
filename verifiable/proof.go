/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	// ProofFldType is the proof field declaring the signature suite.
	ProofFldType = "type"
	// ProofFldVerificationMethod is the proof field referencing the
	// signing key as a did#fragment URI.
	ProofFldVerificationMethod = "verificationMethod"
	// ProofFldProofValue carries a raw signature (multibase encoded).
	ProofFldProofValue = "proofValue"
	// ProofFldJWS carries a detached compact JWS.
	ProofFldJWS = "jws"
)

// signatureValueFields are the proof fields holding the signature itself.
// These are the fields removed before canonicalization.
// nolint: gochecknoglobals
var signatureValueFields = []string{ProofFldProofValue, ProofFldJWS}

// Proof is an embedded linked data proof: a JSON object declaring at least
// a signature suite type, a verification method reference and one
// algorithm-specific signature value field.
type Proof map[string]interface{}

// ProofFields is the typed view of the well-known proof fields.
type ProofFields struct {
	Type               string `mapstructure:"type"`
	Created            string `mapstructure:"created"`
	ProofPurpose       string `mapstructure:"proofPurpose"`
	VerificationMethod string `mapstructure:"verificationMethod"`
	ProofValue         string `mapstructure:"proofValue"`
	JWS                string `mapstructure:"jws"`
}

// Type returns the declared signature suite type, or an empty string.
func (p Proof) Type() string {
	typ, _ := p[ProofFldType].(string)
	return typ
}

// VerificationMethod returns the did#fragment reference of the signing
// key, or an empty string.
func (p Proof) VerificationMethod() string {
	vm, _ := p[ProofFldVerificationMethod].(string)
	return vm
}

// Decode maps the proof onto its typed well-known fields. Unknown fields
// are ignored; fields of an unexpected JSON type fail the decode.
func (p Proof) Decode() (*ProofFields, error) {
	var fields ProofFields

	if err := mapstructure.Decode(map[string]interface{}(p), &fields); err != nil {
		return nil, fmt.Errorf("decode proof fields: %w", err)
	}

	return &fields, nil
}
