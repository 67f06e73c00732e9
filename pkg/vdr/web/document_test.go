/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Run("test success", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"id":"did:web:example.com:a","alsoKnownAs":["x"]}`))
		require.NoError(t, err)
		require.Equal(t, "did:web:example.com:a", doc.ID())

		raw, err := doc.JSONBytes()
		require.NoError(t, err)
		require.Equal(t, `{"alsoKnownAs":["x"],"id":"did:web:example.com:a"}`, string(raw))
	})

	t.Run("test numbers round-trip unchanged", func(t *testing.T) {
		in := `{"id":"did:web:example.com:n","ratio":0.1,"seq":9007199254740993,"big":1e400}`

		doc, err := ParseDocument([]byte(in))
		require.NoError(t, err)

		raw, err := doc.JSONBytes()
		require.NoError(t, err)
		require.Equal(t, `{"big":1e400,"id":"did:web:example.com:n","ratio":0.1,"seq":9007199254740993}`, string(raw))
	})

	t.Run("test trailing data", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"id":"did:web:example.com:a"} {}`))
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("test not an object", func(t *testing.T) {
		_, err := ParseDocument([]byte(`"did:web:example.com"`))
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("test null", func(t *testing.T) {
		_, err := ParseDocument([]byte(`null`))
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("test document without id", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{}`))
		require.NoError(t, err)
		require.Empty(t, doc.ID())
		require.NoError(t, doc.checkID())
	})
}

func TestWithID(t *testing.T) {
	doc := Doc{"a": "b"}
	c := doc.withID("did:web:example.com:x")

	require.Equal(t, "did:web:example.com:x", c.ID())
	require.Equal(t, "b", c["a"])
	require.Empty(t, doc.ID())
}
