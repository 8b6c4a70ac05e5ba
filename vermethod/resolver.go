/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vermethod

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	didmodel "github.com/trustbloc/did-go/doc/did"
	vdrapi "github.com/trustbloc/did-go/vdr/api"

	ldproof "github.com/verifid/ldproof-go"
)

const refParts = 2

// DIDResolver resolves a DID into a DID document. Implementations may
// involve network I/O and internal caching; both are opaque to this
// package. trustbloc's vdr.Registry satisfies this interface.
type DIDResolver interface {
	Resolve(did string, opts ...vdrapi.DIDMethodOption) (*didmodel.DocResolution, error)
}

// DocResolver resolves verification methods referenced as did#fragment
// URIs by resolving the DID document and locating the named key in it.
type DocResolver struct {
	vdr DIDResolver
}

// NewDocResolver creates a DocResolver on top of a DID resolver.
func NewDocResolver(vdr DIDResolver) *DocResolver {
	return &DocResolver{vdr: vdr}
}

// ResolveVerificationMethod resolves a did#fragment key reference. It
// fails with ldproof.ErrDIDParse when the reference or its DID part is
// malformed, and with ldproof.ErrNoVerificationKeyFound when resolution
// succeeds but the DID document holds no matching key.
func (r *DocResolver) ResolveVerificationMethod(verificationMethod string) (*VerificationMethod, error) {
	idSplit := strings.Split(verificationMethod, "#")
	if len(idSplit) != refParts || idSplit[1] == "" {
		return nil, fmt.Errorf("%w: verification method reference %q is not in did#fragment form",
			ldproof.ErrDIDParse, verificationMethod)
	}

	methodDID, keyID := idSplit[0], "#"+idSplit[1]

	if _, err := didmodel.Parse(methodDID); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ldproof.ErrDIDParse, methodDID, err)
	}

	docResolution, err := r.vdr.Resolve(methodDID)
	if err != nil {
		return nil, fmt.Errorf("resolve DID %s: %w", methodDID, err)
	}

	verifications := lo.Flatten(lo.Values(docResolution.DIDDocument.VerificationMethods()))

	verification, found := lo.Find(verifications, func(v didmodel.Verification) bool {
		return v.Relationship != didmodel.KeyAgreement &&
			strings.Contains(v.VerificationMethod.ID, keyID)
	})
	if !found {
		return nil, fmt.Errorf("%w: no key %s in DID %s", ldproof.ErrNoVerificationKeyFound, keyID, methodDID)
	}

	return &VerificationMethod{
		Type:  verification.VerificationMethod.Type,
		Value: verification.VerificationMethod.Value,
		JWK:   verification.VerificationMethod.JSONWebKey(),
	}, nil
}
