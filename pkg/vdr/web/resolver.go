/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import "fmt"

// Read loads the stored document of a did:web did.
func (v *VDR) Read(didID string) (Doc, error) {
	doc, err := v.read(didID)
	if err != nil {
		return nil, fmt.Errorf("error resolving did:web did --> %w", err)
	}

	return doc, nil
}

func (v *VDR) read(didID string) (Doc, error) {
	if didID == "" {
		return nil, fmt.Errorf("%w --> identifier is not defined", ErrInvalidInput)
	}

	dir, err := v.existingDir(didID)
	if err != nil {
		return nil, err
	}

	raw, err := v.store.get(dir)
	if err != nil {
		return nil, fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w --> stored document of %s --> %w", ErrStorage, didID, err)
	}

	return doc, nil
}
