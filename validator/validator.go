/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks the shape of verifiable documents against a
// JSON schema before their proof is verified.
package validator

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	ldproof "github.com/verifid/ldproof-go"
)

// defaultSchema accepts both credentials and presentations. It is applied
// to the document with the proof signature value already stripped, so it
// requires proof metadata but no signature field.
const defaultSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "required": ["@context", "type", "proof"],
  "properties": {
    "@context": {
      "anyOf": [
        {"type": "string"},
        {
          "type": "array",
          "items": {"anyOf": [{"type": "string"}, {"type": "object"}]},
          "minItems": 1
        }
      ]
    },
    "id": {"type": "string"},
    "type": {
      "anyOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}, "minItems": 1}
      ]
    },
    "issuer": {
      "anyOf": [
        {"type": "string"},
        {
          "type": "object",
          "required": ["id"],
          "properties": {"id": {"type": "string"}}
        }
      ]
    },
    "proof": {
      "type": "object",
      "required": ["type", "verificationMethod"],
      "properties": {
        "type": {"type": "string"},
        "verificationMethod": {"type": "string"}
      }
    }
  }
}`

// DocumentValidator checks the shape of a document, returning an error
// wrapping ldproof.ErrInvalidDocument when it is not valid.
type DocumentValidator interface {
	Validate(doc map[string]interface{}) error
}

// SchemaValidator validates documents against a JSON schema.
type SchemaValidator struct {
	schema gojsonschema.JSONLoader
}

// NewSchemaValidator creates a SchemaValidator with the built-in base
// schema for credentials and presentations.
func NewSchemaValidator() *SchemaValidator {
	return NewSchemaValidatorWithSchema(defaultSchema)
}

// NewSchemaValidatorWithSchema creates a SchemaValidator for a custom JSON
// schema.
func NewSchemaValidatorWithSchema(schemaJSON string) *SchemaValidator {
	return &SchemaValidator{schema: gojsonschema.NewStringLoader(schemaJSON)}
}

// Validate implements DocumentValidator.
func (v *SchemaValidator) Validate(doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(v.schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", ldproof.ErrInvalidDocument, err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %s", ldproof.ErrInvalidDocument, describeValidationResult(result))
	}

	return nil
}

func describeValidationResult(result *gojsonschema.Result) string {
	descriptions := make([]string, 0, len(result.Errors()))

	for _, resultErr := range result.Errors() {
		descriptions = append(descriptions, resultErr.String())
	}

	return strings.Join(descriptions, "; ")
}
