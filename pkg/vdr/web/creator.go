/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"path/filepath"
)

// Create stores doc under the directory derived from its id. A document without id gets a
// new identifier did:web:<domain>:<random token> stored under <basePath>/<token>; the
// returned document carries it while doc itself is not modified.
func (v *VDR) Create(doc Doc) (*CreateResult, error) {
	res, err := v.create(doc)
	if err != nil {
		return nil, fmt.Errorf("error creating did:web did --> %w", err)
	}

	return res, nil
}

func (v *VDR) create(doc Doc) (*CreateResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w --> did document is not defined", ErrInvalidInput)
	}

	if err := doc.checkID(); err != nil {
		return nil, err
	}

	var (
		didID = doc.ID()
		dir   string
		err   error
	)

	if didID != "" {
		dir, err = v.ResolvePath(didID)
		if err != nil {
			return nil, err
		}
	} else {
		token := v.newID()
		if err = checkSegment(token); err != nil {
			return nil, fmt.Errorf("%w --> generated token --> %w", ErrInvalidIdentifier, err)
		}

		didID = MethodPrefix + v.domain + segmentSeparator + token
		dir = filepath.Join(v.basePath, token)
		doc = doc.withID(didID)
	}

	ok, err := v.store.exists(dir)
	if err != nil {
		return nil, fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	if ok {
		return nil, fmt.Errorf("%w --> %s", ErrAlreadyExists, didID)
	}

	raw, err := doc.JSONBytes()
	if err != nil {
		return nil, err
	}

	if err = v.store.put(dir, raw); err != nil {
		return nil, fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	logger.Debugf("created %s at %s", didID, dir)

	return &CreateResult{ID: didID, State: StateFinished, DIDDocument: doc}, nil
}
