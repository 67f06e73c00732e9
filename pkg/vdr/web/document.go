/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const jsonldID = "id"

// Doc is a DID document. The registrar treats it as an opaque JSON object and only
// looks at its "id" member.
type Doc map[string]interface{}

// ParseDocument creates an instance of Doc by reading a JSON object.
func ParseDocument(data []byte) (Doc, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w --> %w", ErrInvalidInput, err)
	}

	return doc, nil
}

// decodeDocument keeps JSON numbers as json.Number.
func decodeDocument(data []byte) (Doc, error) {
	var doc Doc

	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()

	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("did document is not a JSON object --> %w", err)
	}

	if d.More() {
		return nil, errors.New("did document is followed by trailing data")
	}

	if doc == nil {
		return nil, errors.New("did document is null")
	}

	return doc, nil
}

// ID returns the document identifier, or an empty string when the document has none.
func (d Doc) ID() string {
	id, _ := d[jsonldID].(string)

	return id
}

// JSONBytes converts the document to its JSON serialization. Object members are written in
// sorted key order.
func (d Doc) JSONBytes() ([]byte, error) {
	raw, err := json.Marshal(map[string]interface{}(d))
	if err != nil {
		return nil, fmt.Errorf("%w --> marshal did document --> %w", ErrInvalidInput, err)
	}

	return raw, nil
}

// withID returns a shallow copy of the document with its id set. The receiver is left untouched.
func (d Doc) withID(id string) Doc {
	c := make(Doc, len(d)+1)

	for k, v := range d {
		c[k] = v
	}

	c[jsonldID] = id

	return c
}

// checkID reports a document whose "id" member is present but not a string.
func (d Doc) checkID() error {
	v, ok := d[jsonldID]
	if !ok || v == nil {
		return nil
	}

	if _, ok := v.(string); !ok {
		return fmt.Errorf("%w --> did document id must be a string, got %T", ErrInvalidInput, v)
	}

	return nil
}
