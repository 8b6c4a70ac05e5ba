/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonwebsignature2020

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const jwsCompactParts = 3

type jwsHeader struct {
	Alg  string   `json:"alg"`
	B64  *bool    `json:"b64,omitempty"`
	Crit []string `json:"crit,omitempty"`
}

// detachedJWS is a parsed detached compact JWS: protected header and
// signature present, payload left out per RFC 7515 appendix F.
type detachedJWS struct {
	protected string
	header    jwsHeader
	signature []byte
}

func parseDetachedJWS(compact string) (*detachedJWS, error) {
	parts := strings.Split(compact, ".")
	if len(parts) != jwsCompactParts {
		return nil, fmt.Errorf("jws must have %d parts", jwsCompactParts)
	}

	if parts[1] != "" {
		return nil, errors.New("jws payload must be detached")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("decode jws header: %w", err)
	}

	var header jwsHeader
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("unmarshal jws header: %w", err)
	}

	if header.Alg == "" {
		return nil, errors.New("jws header is missing alg")
	}

	for _, crit := range header.Crit {
		if crit != "b64" {
			return nil, fmt.Errorf("unsupported critical jws header %q", crit)
		}
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("decode jws signature: %w", err)
	}

	return &detachedJWS{
		protected: parts[0],
		header:    header,
		signature: signature,
	}, nil
}

// signingInput rebuilds the JWS signing input for the detached payload.
// With b64=false the payload bytes are used as is (RFC 7797); otherwise
// they are base64url-encoded first.
func (t *detachedJWS) signingInput(payload []byte) []byte {
	prefix := []byte(t.protected + ".")

	if t.header.B64 != nil && !*t.header.B64 {
		return append(prefix, payload...)
	}

	return append(prefix, []byte(base64.RawURLEncoding.EncodeToString(payload))...)
}
