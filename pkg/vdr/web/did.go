/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MethodPrefix is the scheme and method part of every did:web identifier.
	MethodPrefix = "did:web:"

	segmentSeparator = ":"
	minSegments      = 2
)

// ResolvePath maps a did:web identifier to the directory holding its did.json:
// did:web:<domain>:a:b resolves to <basePath>/a/b.
func (v *VDR) ResolvePath(didID string) (string, error) {
	segments, err := v.parseDIDWeb(didID)
	if err != nil {
		return "", err
	}

	return filepath.Join(append([]string{v.basePath}, segments...)...), nil
}

// parseDIDWeb validates didID and returns its path segments, the domain excluded.
func (v *VDR) parseDIDWeb(didID string) ([]string, error) {
	if !strings.HasPrefix(didID, MethodPrefix) {
		return nil, fmt.Errorf("%w --> unknown did method in '%s'", ErrInvalidIdentifier, didID)
	}

	segments := strings.Split(strings.TrimPrefix(didID, MethodPrefix), segmentSeparator)
	if len(segments) < minSegments {
		return nil, fmt.Errorf("%w --> '%s' has no path segment", ErrInvalidIdentifier, didID)
	}

	if !strings.EqualFold(segments[0], v.domain) {
		return nil, fmt.Errorf("%w --> '%s' does not match '%s'", ErrDomainMismatch, segments[0], v.domain)
	}

	for _, s := range segments[1:] {
		if err := checkSegment(s); err != nil {
			return nil, fmt.Errorf("%w --> '%s' --> %w", ErrInvalidIdentifier, didID, err)
		}
	}

	return segments[1:], nil
}

// checkSegment rejects segments that would not map to exactly one directory below the base path.
func checkSegment(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("empty path segment")
	case s == "." || s == "..":
		return fmt.Errorf("relative path segment '%s'", s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("path segment '%s' contains a path separator", s)
	}

	return nil
}
