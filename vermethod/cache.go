/*
Copyright Verifid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vermethod

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Resolver resolves a did#fragment key reference into a verification
// method.
type Resolver interface {
	ResolveVerificationMethod(verificationMethod string) (*VerificationMethod, error)
}

// CachingResolver wraps a Resolver with an expirable LRU cache keyed by
// the full did#fragment reference. Failures are not cached, and entries
// expire after the configured TTL so key rotation eventually takes effect.
// The cache is safe for concurrent use.
type CachingResolver struct {
	next  Resolver
	cache *expirable.LRU[string, *VerificationMethod]
}

// NewCachingResolver creates a CachingResolver holding up to size entries
// for at most ttl each.
func NewCachingResolver(next Resolver, size int, ttl time.Duration) *CachingResolver {
	return &CachingResolver{
		next:  next,
		cache: expirable.NewLRU[string, *VerificationMethod](size, nil, ttl),
	}
}

// ResolveVerificationMethod implements Resolver.
func (r *CachingResolver) ResolveVerificationMethod(verificationMethod string) (*VerificationMethod, error) {
	if vm, ok := r.cache.Get(verificationMethod); ok {
		return vm, nil
	}

	vm, err := r.next.ResolveVerificationMethod(verificationMethod)
	if err != nil {
		return nil, err
	}

	r.cache.Add(verificationMethod, vm)

	return vm, nil
}
