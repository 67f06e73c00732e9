/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := &store{fs: afero.NewMemMapFs()}
	dir := "/base/a/b"

	ok, err := s.exists(dir)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.put(dir, []byte(`{"v":1}`)))
	require.NoError(t, s.put(dir, []byte(`{}`)))

	raw, err := s.get(dir)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(raw))

	require.NoError(t, s.delete(dir))

	ok, err = s.exists(documentFile(dir))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = s.exists(dir)
	require.NoError(t, err)
	require.True(t, ok)

	err = s.delete(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "delete /base/a/b/did.json")

	_, err = s.get(dir)
	require.Error(t, err)
}
