/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	v, dir := newTestVDR(t)

	t.Run("test nested path", func(t *testing.T) {
		path, err := v.ResolvePath("did:web:example.com:a:b")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "a", "b"), path)

		again, err := v.ResolvePath("did:web:example.com:a:b")
		require.NoError(t, err)
		require.Equal(t, path, again)
	})

	t.Run("test domain is case insensitive", func(t *testing.T) {
		path, err := v.ResolvePath("did:web:EXAMPLE.com:user")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "user"), path)
	})

	t.Run("test segments are used verbatim", func(t *testing.T) {
		path, err := v.ResolvePath("did:web:example.com:a%2Fb")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "a%2Fb"), path)
	})

	t.Run("test wrong method", func(t *testing.T) {
		_, err := v.ResolvePath("did:evil:example.com:x")
		require.ErrorIs(t, err, ErrInvalidIdentifier)
		require.Contains(t, err.Error(), "unknown did method")
	})

	t.Run("test domain only", func(t *testing.T) {
		_, err := v.ResolvePath("did:web:example.com")
		require.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("test domain mismatch", func(t *testing.T) {
		_, err := v.ResolvePath("did:web:wrong-host:x")
		require.ErrorIs(t, err, ErrDomainMismatch)
	})

	t.Run("test unsafe segments", func(t *testing.T) {
		for _, didID := range []string{
			"did:web:example.com:",
			"did:web:example.com:a::b",
			"did:web:example.com:..",
			"did:web:example.com:a:.",
			"did:web:example.com:a/b",
			`did:web:example.com:a\b`,
		} {
			_, err := v.ResolvePath(didID)
			require.ErrorIs(t, err, ErrInvalidIdentifier, didID)
		}
	})

	t.Run("test port in base URL", func(t *testing.T) {
		pv, err := New(&Config{BaseURL: "https://example.com:3000", BasePath: dir})
		require.NoError(t, err)

		path, err := pv.ResolvePath("did:web:example.com:user")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "user"), path)

		_, err = pv.ResolvePath("did:web:example.com%3A3000:user")
		require.ErrorIs(t, err, ErrDomainMismatch)
	})
}
