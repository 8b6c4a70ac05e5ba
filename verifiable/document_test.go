/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testCredential = `
{
  "@context": [
    "https://www.w3.org/2018/credentials/v1",
    "https://www.w3.org/2018/credentials/examples/v1"
  ],
  "id": "http://example.edu/credentials/1872",
  "type": ["VerifiableCredential", "UniversityDegreeCredential"],
  "issuer": "did:example:76e12ec712ebc6f1c221ebfeb1f",
  "issuanceDate": "2010-01-01T19:23:24Z",
  "credentialSubject": {
    "id": "did:example:ebfeb1f712ebc6f1c276e12ec21",
    "degree": {"type": "BachelorDegree"}
  },
  "proof": {
    "type": "Ed25519Signature2020",
    "created": "2020-01-17T15:14:09Z",
    "proofPurpose": "assertionMethod",
    "verificationMethod": "did:example:76e12ec712ebc6f1c221ebfeb1f#key-1",
    "proofValue": "z3MvGcVxzRzzpKF1HA11EjvfPZsN8NAb7kXBRfeTm3CBg2gcJLpWmFkQs5nCQzpDNBkrQrLykbLmXvf6UhJGm6WqF"
  }
}`

func TestCredentialAccessors(t *testing.T) {
	vc, err := ParseCredential([]byte(testCredential))
	require.NoError(t, err)

	require.Equal(t, KindCredential, vc.Kind())
	require.Equal(t, "http://example.edu/credentials/1872", vc.ID())
	require.Equal(t, "did:example:76e12ec712ebc6f1c221ebfeb1f", vc.Issuer())

	p, err := vc.Proof()
	require.NoError(t, err)
	require.Equal(t, "Ed25519Signature2020", p.Type())
	require.Equal(t, "did:example:76e12ec712ebc6f1c221ebfeb1f#key-1", p.VerificationMethod())
}

func TestCredentialIssuerObjectForm(t *testing.T) {
	vc, err := ParseCredential([]byte(`{
	  "id": "urn:uuid:1",
	  "issuer": {"id": "did:example:issuer", "name": "Example University"}
	}`))
	require.NoError(t, err)

	require.Equal(t, "did:example:issuer", vc.Issuer())
}

func TestCredentialIssuerMissing(t *testing.T) {
	vc, err := ParseCredential([]byte(`{"id": "urn:uuid:2"}`))
	require.NoError(t, err)
	require.Empty(t, vc.Issuer())
}

func TestProofFromDoc(t *testing.T) {
	t.Run("single proof in array", func(t *testing.T) {
		vc, err := ParseCredential([]byte(`{
		  "id": "urn:uuid:3",
		  "proof": [{"type": "Ed25519Signature2020"}]
		}`))
		require.NoError(t, err)

		p, err := vc.Proof()
		require.NoError(t, err)
		require.Equal(t, "Ed25519Signature2020", p.Type())
	})

	t.Run("missing proof", func(t *testing.T) {
		vc, err := ParseCredential([]byte(`{"id": "urn:uuid:4"}`))
		require.NoError(t, err)

		_, err = vc.Proof()
		require.ErrorIs(t, err, ErrProofNotFound)
	})

	t.Run("multiple proofs rejected", func(t *testing.T) {
		vc, err := ParseCredential([]byte(`{
		  "id": "urn:uuid:5",
		  "proof": [{"type": "a"}, {"type": "b"}]
		}`))
		require.NoError(t, err)

		_, err = vc.Proof()
		require.ErrorContains(t, err, "single embedded proof")
	})

	t.Run("invalid proof element", func(t *testing.T) {
		vc, err := ParseCredential([]byte(`{"id": "urn:uuid:6", "proof": "sig"}`))
		require.NoError(t, err)

		_, err = vc.Proof()
		require.ErrorContains(t, err, "invalid proof element")
	})
}

func TestWithoutProofSignature(t *testing.T) {
	vc, err := ParseCredential([]byte(testCredential))
	require.NoError(t, err)

	before := vc.ToRawJSON()

	stripped, err := vc.WithoutProofSignature()
	require.NoError(t, err)

	strippedProof, ok := stripped["proof"].(map[string]interface{})
	require.True(t, ok)
	require.NotContains(t, strippedProof, "proofValue")
	require.NotContains(t, strippedProof, "jws")
	require.Equal(t, "Ed25519Signature2020", strippedProof["type"])
	require.Equal(t, "did:example:76e12ec712ebc6f1c221ebfeb1f#key-1", strippedProof["verificationMethod"])
	require.Equal(t, "2020-01-17T15:14:09Z", strippedProof["created"])

	// the original document must be untouched
	require.Equal(t, before, vc.ToRawJSON())

	// mutating the stripped copy must not leak into the document
	stripped["credentialSubject"].(map[string]interface{})["degree"].(map[string]interface{})["type"] = "MasterDegree"
	require.Equal(t, before, vc.ToRawJSON())
}

func TestNewCredentialCopiesInput(t *testing.T) {
	obj := map[string]interface{}{
		"id":    "urn:uuid:7",
		"proof": map[string]interface{}{"type": "Ed25519Signature2020"},
	}

	vc, err := NewCredential(obj)
	require.NoError(t, err)

	obj["proof"].(map[string]interface{})["type"] = "tampered"
	require.Equal(t, "urn:uuid:7", vc.ID())

	p, err := vc.Proof()
	require.NoError(t, err)
	require.Equal(t, "Ed25519Signature2020", p.Type())

	_, err = NewCredential(nil)
	require.Error(t, err)
}

func TestProofDecode(t *testing.T) {
	p := Proof{
		"type":               "JsonWebSignature2020",
		"verificationMethod": "did:example:abc#key-1",
		"jws":                "eyJhbGciOiJFZERTQSJ9..sig",
		"custom":             map[string]interface{}{"ignored": true},
	}

	fields, err := p.Decode()
	require.NoError(t, err)
	require.Equal(t, "JsonWebSignature2020", fields.Type)
	require.Equal(t, "did:example:abc#key-1", fields.VerificationMethod)
	require.Equal(t, "eyJhbGciOiJFZERTQSJ9..sig", fields.JWS)
	require.Empty(t, fields.ProofValue)

	_, err = Proof{"type": 42}.Decode()
	require.Error(t, err)
}

func TestParsePresentation(t *testing.T) {
	vp, err := ParsePresentation([]byte(`{
	  "@context": ["https://www.w3.org/2018/credentials/v1"],
	  "id": "urn:uuid:8",
	  "type": "VerifiablePresentation",
	  "proof": {"type": "Ed25519Signature2020", "proofValue": "zAbc"}
	}`))
	require.NoError(t, err)

	require.Equal(t, KindPresentation, vp.Kind())
	require.Equal(t, "urn:uuid:8", vp.ID())

	stripped, err := vp.WithoutProofSignature()
	require.NoError(t, err)
	require.NotContains(t, stripped["proof"].(map[string]interface{}), "proofValue")

	_, err = ParsePresentation([]byte("not json"))
	require.Error(t, err)
}
