/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifiable provides the in-memory model of signed documents
// consumed by the proof validation pipeline: Verifiable Credentials and
// Verifiable Presentations carrying a single embedded linked data proof.
//
// Documents are map-backed and treated as immutable after construction.
// Every accessor that exposes document structure returns a copy, and
// stripping the proof signature for canonicalization always operates on a
// deep copy, so the caller's document is never mutated by verification.
package verifiable

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	jsonutil "github.com/verifid/ldproof-go/util/json"
)

// JSONObject is a JSON object represented as a map.
type JSONObject = map[string]interface{}

// DocumentKind discriminates credentials from presentations.
type DocumentKind int

const (
	// KindCredential marks a Verifiable Credential.
	KindCredential DocumentKind = iota
	// KindPresentation marks a Verifiable Presentation.
	KindPresentation
)

// ErrProofNotFound is returned when a document carries no embedded proof.
var ErrProofNotFound = errors.New("proof not found")

// Document is the tagged union over Credential and Presentation that the
// validation pipeline operates on.
type Document interface {
	// Kind reports whether the document is a credential or a presentation.
	Kind() DocumentKind

	// ID returns the document identifier, or an empty string.
	ID() string

	// Proof returns the embedded proof.
	Proof() (Proof, error)

	// ToRawJSON returns a deep copy of the underlying JSON object.
	ToRawJSON() JSONObject

	// WithoutProofSignature returns a deep copy of the document with the
	// proof's signature value removed. Proof metadata (type,
	// verificationMethod, created, proofPurpose) is retained, so the
	// canonical form covers the document as it was before signing.
	WithoutProofSignature() (JSONObject, error)
}

// Credential is a Verifiable Credential with an embedded proof.
type Credential struct {
	docJSON JSONObject
}

// Presentation is a Verifiable Presentation with an embedded proof.
// Presentations have no issuer by definition.
type Presentation struct {
	docJSON JSONObject
}

// NewCredential creates a Credential from a parsed JSON object. The object
// is deep-copied, so later changes to it do not leak into the credential.
func NewCredential(obj JSONObject) (*Credential, error) {
	if obj == nil {
		return nil, errors.New("credential object is nil")
	}

	return &Credential{docJSON: jsonutil.DeepCopyObj(obj)}, nil
}

// ParseCredential creates a Credential from raw JSON bytes.
func ParseCredential(raw []byte) (*Credential, error) {
	obj, err := jsonutil.ToMap(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal credential: %w", err)
	}

	return &Credential{docJSON: obj}, nil
}

// NewPresentation creates a Presentation from a parsed JSON object. The
// object is deep-copied, so later changes to it do not leak into the
// presentation.
func NewPresentation(obj JSONObject) (*Presentation, error) {
	if obj == nil {
		return nil, errors.New("presentation object is nil")
	}

	return &Presentation{docJSON: jsonutil.DeepCopyObj(obj)}, nil
}

// ParsePresentation creates a Presentation from raw JSON bytes.
func ParsePresentation(raw []byte) (*Presentation, error) {
	obj, err := jsonutil.ToMap(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal presentation: %w", err)
	}

	return &Presentation{docJSON: obj}, nil
}

// Kind returns KindCredential.
func (vc *Credential) Kind() DocumentKind {
	return KindCredential
}

// ID returns the credential identifier.
func (vc *Credential) ID() string {
	return stringField(vc.docJSON, jsonFldID)
}

// Issuer returns the credential's issuer identifier, supporting both the
// compact form ("issuer": "did:...") and the expanded object form
// ("issuer": {"id": "did:..."}). Returns an empty string when absent.
func (vc *Credential) Issuer() string {
	raw, err := json.Marshal(vc.docJSON)
	if err != nil {
		return ""
	}

	parsed := gjson.ParseBytes(raw)

	for _, path := range issuerPaths {
		if str := parsed.Get(path).Str; str != "" {
			return str
		}
	}

	return ""
}

// Proof returns the credential's embedded proof.
func (vc *Credential) Proof() (Proof, error) {
	return proofFromDoc(vc.docJSON)
}

// ToRawJSON returns a deep copy of the credential's JSON object.
func (vc *Credential) ToRawJSON() JSONObject {
	return jsonutil.DeepCopyObj(vc.docJSON)
}

// WithoutProofSignature implements Document.
func (vc *Credential) WithoutProofSignature() (JSONObject, error) {
	return stripProofSignature(vc.docJSON)
}

// MarshalJSON marshals the underlying JSON object.
func (vc *Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(vc.docJSON)
}

// Kind returns KindPresentation.
func (vp *Presentation) Kind() DocumentKind {
	return KindPresentation
}

// ID returns the presentation identifier.
func (vp *Presentation) ID() string {
	return stringField(vp.docJSON, jsonFldID)
}

// Proof returns the presentation's embedded proof.
func (vp *Presentation) Proof() (Proof, error) {
	return proofFromDoc(vp.docJSON)
}

// ToRawJSON returns a deep copy of the presentation's JSON object.
func (vp *Presentation) ToRawJSON() JSONObject {
	return jsonutil.DeepCopyObj(vp.docJSON)
}

// WithoutProofSignature implements Document.
func (vp *Presentation) WithoutProofSignature() (JSONObject, error) {
	return stripProofSignature(vp.docJSON)
}

// MarshalJSON marshals the underlying JSON object.
func (vp *Presentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(vp.docJSON)
}

const (
	jsonFldID    = "id"
	jsonFldProof = "proof"
)

// issuerPaths lists the JSON paths an issuer identifier may live at,
// checked in order.
// nolint: gochecknoglobals
var issuerPaths = []string{
	"issuer.id",
	"issuer",
}

func stringField(obj JSONObject, fld string) string {
	str, _ := obj[fld].(string)
	return str
}

func proofFromDoc(docJSON JSONObject) (Proof, error) {
	proofElement, ok := docJSON[jsonFldProof]
	if !ok || proofElement == nil {
		return nil, ErrProofNotFound
	}

	switch p := proofElement.(type) {
	case map[string]interface{}:
		return Proof(p), nil
	case []interface{}:
		if len(p) != 1 {
			return nil, fmt.Errorf("expected a single embedded proof, got %d", len(p))
		}

		proofMap, ok := p[0].(map[string]interface{})
		if !ok {
			return nil, errors.New("invalid proof element type")
		}

		return Proof(proofMap), nil
	default:
		return nil, errors.New("invalid proof element type")
	}
}

// stripProofSignature deep-copies the document and removes the signature
// value fields from the embedded proof, keeping the remaining proof
// metadata in place.
func stripProofSignature(docJSON JSONObject) (JSONObject, error) {
	if _, err := proofFromDoc(docJSON); err != nil {
		return nil, err
	}

	stripped := jsonutil.DeepCopyObj(docJSON)

	switch p := stripped[jsonFldProof].(type) {
	case map[string]interface{}:
		stripped[jsonFldProof] = jsonutil.CopyExcept(p, signatureValueFields...)
	case []interface{}:
		proofMap := p[0].(map[string]interface{})
		p[0] = jsonutil.CopyExcept(proofMap, signatureValueFields...)
	}

	return stripped, nil
}
