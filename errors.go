/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ldproof defines the failure taxonomy shared by the linked data
// proof validation pipeline. Every terminal pipeline failure wraps exactly
// one of the sentinels below, so callers can branch on the failure class
// with errors.Is without depending on message text.
package ldproof

import "errors"

var (
	// ErrUnsupportedSignatureType indicates the proof type is empty or not
	// one of the registered signature suites.
	ErrUnsupportedSignatureType = errors.New("unsupported signature type")

	// ErrDIDParse indicates a referenced DID (or did#fragment key
	// reference) could not be parsed.
	ErrDIDParse = errors.New("did parse")

	// ErrInvalidPublicKeyFormat indicates resolved key material could not
	// be decoded for the expected algorithm.
	ErrInvalidPublicKeyFormat = errors.New("invalid public key format")

	// ErrSignatureParse indicates the proof's signature value could not be
	// decoded.
	ErrSignatureParse = errors.New("signature parse")

	// ErrNoVerificationKeyFound indicates DID resolution succeeded but the
	// document contains no key matching the proof's verification method.
	ErrNoVerificationKeyFound = errors.New("no verification key found")

	// ErrSignatureVerification indicates an internal error occurred while
	// performing the cryptographic check. A signature that simply does not
	// match yields a clean boolean false instead.
	ErrSignatureVerification = errors.New("signature verification failed")

	// ErrTransform indicates canonicalization failed on a malformed linked
	// data structure.
	ErrTransform = errors.New("transform")

	// ErrInvalidDocument indicates the document failed schema validation.
	// The validation entry point converts this class to a false result
	// rather than propagating it.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNilField indicates a builder was invoked with a required field
	// unset.
	ErrNilField = errors.New("required field is nil")
)
