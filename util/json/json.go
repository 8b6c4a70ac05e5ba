/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package json provides helpers for JSON objects represented as maps.
package json

import (
	"encoding/json"

	"golang.org/x/exp/slices"
)

// ToMap converts an object, string or byte slice to a JSON object
// represented by a map.
func ToMap(v interface{}) (map[string]interface{}, error) {
	var (
		b   []byte
		err error
	)

	switch cv := v.(type) {
	case []byte:
		b = cv
	case string:
		b = []byte(cv)
	default:
		b, err = json.Marshal(v)
		if err != nil {
			return nil, err
		}
	}

	var m map[string]interface{}

	err = json.Unmarshal(b, &m)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ShallowCopyObj creates a new JSON object with fields copied from the
// provided object. Nested values are shared with the original.
func ShallowCopyObj(obj map[string]interface{}) map[string]interface{} {
	flds := make(map[string]interface{}, len(obj))

	for k, v := range obj {
		flds[k] = v
	}

	return flds
}

// DeepCopyObj creates a structurally independent copy of the provided JSON
// object. Mutating the copy, at any depth, leaves the original untouched.
func DeepCopyObj(obj map[string]interface{}) map[string]interface{} {
	cp := make(map[string]interface{}, len(obj))

	for k, v := range obj {
		cp[k] = deepCopyValue(v)
	}

	return cp
}

func deepCopyValue(v interface{}) interface{} {
	switch cv := v.(type) {
	case map[string]interface{}:
		return DeepCopyObj(cv)
	case []interface{}:
		cp := make([]interface{}, len(cv))

		for i := range cv {
			cp[i] = deepCopyValue(cv[i])
		}

		return cp
	default:
		return v
	}
}

// CopyExcept copies all fields except fields with given names.
func CopyExcept(obj map[string]interface{}, flds ...string) map[string]interface{} {
	newObj := ShallowCopyObj(obj)

	for _, fld := range flds {
		delete(newObj, fld)
	}

	return newObj
}

// Select copies only fields with given names. Fields absent from the
// source object are skipped rather than copied as nulls.
func Select(obj map[string]interface{}, flds ...string) map[string]interface{} {
	newObj := map[string]interface{}{}

	for k, v := range obj {
		if slices.Contains(flds, k) {
			newObj[k] = v
		}
	}

	return newObj
}
