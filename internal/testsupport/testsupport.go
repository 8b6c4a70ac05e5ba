/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package testsupport provides signing helpers and DID document fixtures
// for proof validation tests. Proof creation lives here and nowhere else:
// the library itself only verifies.
package testsupport

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/go-jose/go-jose/v3"
	"github.com/google/uuid"
	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/require"
	didmodel "github.com/trustbloc/did-go/doc/did"
	lddocloader "github.com/trustbloc/did-go/doc/ld/documentloader"
	"github.com/trustbloc/did-go/doc/ld/processor"
	ldtestutil "github.com/trustbloc/did-go/doc/ld/testutil"
	vdrapi "github.com/trustbloc/did-go/vdr/api"
	"github.com/trustbloc/kms-go/doc/jose/jwk/jwksupport"

	"github.com/verifid/ldproof-go/proof/ldproofs/ed25519signature2020"
	"github.com/verifid/ldproof-go/proof/ldproofs/jsonwebsignature2020"
	jsonutil "github.com/verifid/ldproof-go/util/json"
	"github.com/verifid/ldproof-go/verifiable"
)

// DocumentLoader returns a json-ld document loader preloaded with the
// standard credential contexts.
func DocumentLoader(t *testing.T) *lddocloader.DocumentLoader {
	t.Helper()

	loader, err := ldtestutil.DocumentLoader()
	require.NoError(t, err)

	return loader
}

// CredentialID returns a fresh urn:uuid credential identifier.
func CredentialID() string {
	return "urn:uuid:" + uuid.NewString()
}

func newProofObject(suiteType, vmRef string) map[string]interface{} {
	return map[string]interface{}{
		"type":               suiteType,
		"created":            "2024-02-20T10:00:00Z",
		"proofPurpose":       "assertionMethod",
		"verificationMethod": vmRef,
	}
}

// digestForProof attaches the signature-less proof object to a copy of
// doc and runs the suite's canonicalize+digest steps over it, mirroring
// what verification does.
func digestForProof(t *testing.T, suite interface {
	GetCanonicalDocument(doc map[string]interface{}, opts ...processor.Opts) ([]byte, error)
	GetDigest(doc []byte) []byte
}, doc verifiable.JSONObject, proofObj map[string]interface{}, loader *lddocloader.DocumentLoader,
) (verifiable.JSONObject, []byte) {
	t.Helper()

	signedDoc := jsonutil.DeepCopyObj(doc)
	signedDoc["proof"] = proofObj

	canonical, err := suite.GetCanonicalDocument(signedDoc, processor.WithDocumentLoader(loader))
	require.NoError(t, err)

	return signedDoc, suite.GetDigest(canonical)
}

// AttachEd25519Proof signs doc with the Ed25519Signature2020 suite and
// returns a copy carrying the resulting proof.
func AttachEd25519Proof(t *testing.T, doc verifiable.JSONObject, vmRef string,
	priv ed25519.PrivateKey, loader *lddocloader.DocumentLoader,
) verifiable.JSONObject {
	t.Helper()

	proofObj := newProofObject(ed25519signature2020.ProofType, vmRef)

	signedDoc, digest := digestForProof(t, ed25519signature2020.New(), doc, proofObj, loader)

	encoded, err := multibase.Encode(multibase.Base58BTC, ed25519.Sign(priv, digest))
	require.NoError(t, err)

	proofObj["proofValue"] = encoded

	return signedDoc
}

// AttachJWSProof signs doc with the JsonWebSignature2020 suite using a
// go-jose supported algorithm (EdDSA or ES256) and returns a copy
// carrying the resulting proof with a detached b64=false JWS.
func AttachJWSProof(t *testing.T, doc verifiable.JSONObject, vmRef string,
	alg jose.SignatureAlgorithm, signingKey interface{}, loader *lddocloader.DocumentLoader,
) verifiable.JSONObject {
	t.Helper()

	proofObj := newProofObject(jsonwebsignature2020.ProofType, vmRef)

	signedDoc, digest := digestForProof(t, jsonwebsignature2020.New(), doc, proofObj, loader)

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: alg, Key: signingKey},
		(&jose.SignerOptions{}).WithBase64(false))
	require.NoError(t, err)

	jws, err := signer.Sign(digest)
	require.NoError(t, err)

	compact, err := jws.DetachedCompactSerialize()
	require.NoError(t, err)

	proofObj["jws"] = compact

	return signedDoc
}

// AttachES256KJWSProof signs doc with the JsonWebSignature2020 suite
// using ES256K, which go-jose does not support, so the detached JWS is
// assembled by hand.
func AttachES256KJWSProof(t *testing.T, doc verifiable.JSONObject, vmRef string,
	priv *ecdsa.PrivateKey, loader *lddocloader.DocumentLoader,
) verifiable.JSONObject {
	t.Helper()

	proofObj := newProofObject(jsonwebsignature2020.ProofType, vmRef)

	signedDoc, digest := digestForProof(t, jsonwebsignature2020.New(), doc, proofObj, loader)

	protected := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"ES256K","b64":false,"crit":["b64"]}`))

	signingInput := append([]byte(protected+"."), digest...)
	hash := sha256.Sum256(signingInput)

	r, s, err := ecdsa.Sign(rand.Reader, priv, hash[:])
	require.NoError(t, err)

	const keySize = 32

	signature := make([]byte, 2*keySize)
	r.FillBytes(signature[:keySize])
	s.FillBytes(signature[keySize:])

	proofObj["jws"] = protected + ".." + base64.RawURLEncoding.EncodeToString(signature)

	return signedDoc
}

// Ed25519DIDDoc builds a DID document JSON exposing pub under keyID as an
// Ed25519VerificationKey2020 method with a base58 encoded key value.
func Ed25519DIDDoc(t *testing.T, did, keyID string, pub ed25519.PublicKey) []byte {
	t.Helper()

	docJSON := fmt.Sprintf(`{
	  "@context": ["https://www.w3.org/ns/did/v1"],
	  "id": %q,
	  "verificationMethod": [{
	    "id": "%s#%s",
	    "type": "Ed25519VerificationKey2020",
	    "controller": %q,
	    "publicKeyBase58": %q
	  }],
	  "assertionMethod": ["%s#%s"]
	}`, did, did, keyID, did, base58.Encode(pub), did, keyID)

	return []byte(docJSON)
}

// JWKDIDDoc builds a DID document JSON exposing the given public key
// under keyID as a JsonWebKey2020 method.
func JWKDIDDoc(t *testing.T, did, keyID string, pub interface{}) []byte {
	t.Helper()

	j, err := jwksupport.JWKFromKey(pub)
	require.NoError(t, err)

	jwkBytes, err := json.Marshal(j)
	require.NoError(t, err)

	docJSON := fmt.Sprintf(`{
	  "@context": ["https://www.w3.org/ns/did/v1"],
	  "id": %q,
	  "verificationMethod": [{
	    "id": "%s#%s",
	    "type": "JsonWebKey2020",
	    "controller": %q,
	    "publicKeyJwk": %s
	  }],
	  "assertionMethod": ["%s#%s"]
	}`, did, did, keyID, did, jwkBytes, did, keyID)

	return []byte(docJSON)
}

// StaticDIDResolver resolves DIDs from a fixed set of DID documents.
type StaticDIDResolver struct {
	docs map[string]*didmodel.Doc
}

// NewStaticDIDResolver parses the given DID document JSONs and serves
// them by document id.
func NewStaticDIDResolver(t *testing.T, docJSONs ...[]byte) *StaticDIDResolver {
	t.Helper()

	docs := make(map[string]*didmodel.Doc, len(docJSONs))

	for _, docJSON := range docJSONs {
		doc, err := didmodel.ParseDocument(docJSON)
		require.NoError(t, err)

		docs[doc.ID] = doc
	}

	return &StaticDIDResolver{docs: docs}
}

// Resolve implements the DID resolver contract.
func (r *StaticDIDResolver) Resolve(did string, _ ...vdrapi.DIDMethodOption) (*didmodel.DocResolution, error) {
	doc, ok := r.docs[did]
	if !ok {
		return nil, fmt.Errorf("did %s not found", did)
	}

	return &didmodel.DocResolution{DIDDocument: doc}, nil
}
