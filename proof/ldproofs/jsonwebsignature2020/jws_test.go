/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonwebsignature2020

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeHeader(header string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(header))
}

func TestParseDetachedJWS(t *testing.T) {
	signature := base64.RawURLEncoding.EncodeToString([]byte("signature"))

	t.Run("b64=false header", func(t *testing.T) {
		protected := encodeHeader(`{"alg":"EdDSA","b64":false,"crit":["b64"]}`)

		token, err := parseDetachedJWS(protected + ".." + signature)
		require.NoError(t, err)
		require.Equal(t, "EdDSA", token.header.Alg)
		require.NotNil(t, token.header.B64)
		require.False(t, *token.header.B64)
		require.Equal(t, []byte("signature"), token.signature)
	})

	t.Run("wrong number of parts", func(t *testing.T) {
		_, err := parseDetachedJWS("one.two")
		require.ErrorContains(t, err, "parts")
	})

	t.Run("payload must be detached", func(t *testing.T) {
		protected := encodeHeader(`{"alg":"EdDSA"}`)

		_, err := parseDetachedJWS(protected + ".payload." + signature)
		require.ErrorContains(t, err, "detached")
	})

	t.Run("header must be base64url", func(t *testing.T) {
		_, err := parseDetachedJWS("not+base64url.." + signature)
		require.ErrorContains(t, err, "header")
	})

	t.Run("alg is required", func(t *testing.T) {
		_, err := parseDetachedJWS(encodeHeader(`{"b64":false}`) + ".." + signature)
		require.ErrorContains(t, err, "alg")
	})

	t.Run("unknown critical headers are rejected", func(t *testing.T) {
		protected := encodeHeader(`{"alg":"EdDSA","crit":["exp"]}`)

		_, err := parseDetachedJWS(protected + ".." + signature)
		require.ErrorContains(t, err, "critical")
	})
}

func TestSigningInput(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xff}

	t.Run("b64=false uses raw payload", func(t *testing.T) {
		protected := encodeHeader(`{"alg":"EdDSA","b64":false,"crit":["b64"]}`)

		token, err := parseDetachedJWS(protected + "..")
		require.NoError(t, err)

		require.Equal(t, append([]byte(protected+"."), payload...), token.signingInput(payload))
	})

	t.Run("default encodes payload", func(t *testing.T) {
		protected := encodeHeader(`{"alg":"EdDSA"}`)

		token, err := parseDetachedJWS(protected + "..")
		require.NoError(t, err)

		expected := protected + "." + base64.RawURLEncoding.EncodeToString(payload)
		require.Equal(t, []byte(expected), token.signingInput(payload))
	})
}
