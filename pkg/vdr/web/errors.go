/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import "errors"

// Error kinds returned by the did:web registrar. Every error returned from this package wraps
// exactly one of them, use errors.Is to classify.
var (
	// ErrConfiguration is returned by New when the base URL or base path is unusable.
	ErrConfiguration = errors.New("invalid did:web configuration")
	// ErrInvalidInput is returned when a request lacks its document or identifier.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidIdentifier is returned for malformed did:web identifiers.
	ErrInvalidIdentifier = errors.New("invalid did:web identifier")
	// ErrDomainMismatch is returned when the identifier domain is not the configured host.
	ErrDomainMismatch = errors.New("domain name mismatch")
	// ErrAlreadyExists is returned by Create when the target directory is already present.
	ErrAlreadyExists = errors.New("did already exists")
	// ErrNotFound is returned when no did.json is stored for the identifier.
	ErrNotFound = errors.New("did does not exist")
	// ErrStorage is returned when the underlying filesystem operation fails.
	ErrStorage = errors.New("did document storage failure")
)
