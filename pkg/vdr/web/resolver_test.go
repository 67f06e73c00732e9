/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	didID := "did:web:example.com:org:team"

	t.Run("test read created document", func(t *testing.T) {
		v, _ := newMemVDR(t)
		doc := Doc{"id": didID, "controller": didID}

		_, err := v.Create(doc)
		require.NoError(t, err)

		read, err := v.Read(didID)
		require.NoError(t, err)
		require.Equal(t, doc, read)
	})

	t.Run("test stored numbers are preserved", func(t *testing.T) {
		v, _ := newMemVDR(t)

		doc, err := ParseDocument([]byte(`{"id":"` + didID + `","seq":9007199254740993}`))
		require.NoError(t, err)

		_, err = v.Create(doc)
		require.NoError(t, err)

		read, err := v.Read(didID)
		require.NoError(t, err)
		require.Equal(t, doc, read)
		require.Equal(t, "9007199254740993", read["seq"].(json.Number).String())
	})

	t.Run("test missing identifier", func(t *testing.T) {
		v, _ := newMemVDR(t)

		_, err := v.Read("")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("test not found", func(t *testing.T) {
		v, _ := newMemVDR(t)

		_, err := v.Read(didID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("test corrupt stored document", func(t *testing.T) {
		v, fs := newMemVDR(t)
		require.NoError(t, fs.MkdirAll(memBasePath+"/org/team", 0o755))
		require.NoError(t, afero.WriteFile(fs, memBasePath+"/org/team/"+DocumentFileName, []byte("[1,2]"), 0o644))

		_, err := v.Read(didID)
		require.ErrorIs(t, err, ErrStorage)
		require.NotErrorIs(t, err, ErrInvalidInput)
	})
}
