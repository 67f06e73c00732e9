/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// DocumentFileName is the name of the file holding a DID document inside its directory.
	DocumentFileName = "did.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// store reads and writes did.json files on a filesystem.
type store struct {
	fs afero.Fs
}

func documentFile(dir string) string {
	return filepath.Join(dir, DocumentFileName)
}

// exists reports whether path is present.
func (s *store) exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}

	return ok, nil
}

// put creates dir and its parents if needed and writes raw to dir/did.json.
func (s *store) put(dir string, raw []byte) error {
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}

	name := documentFile(dir)

	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}

	if _, err = f.Write(raw); err != nil {
		closeFile(f)

		return errors.Wrapf(err, "write %s", name)
	}

	if err = f.Sync(); err != nil {
		closeFile(f)

		return errors.Wrapf(err, "flush %s", name)
	}

	return errors.Wrapf(f.Close(), "close %s", name)
}

// get reads dir/did.json.
func (s *store) get(dir string) ([]byte, error) {
	name := documentFile(dir)

	raw, err := afero.ReadFile(s.fs, name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}

	return raw, nil
}

// delete removes dir/did.json and leaves dir in place.
func (s *store) delete(dir string) error {
	name := documentFile(dir)

	return errors.Wrapf(s.fs.Remove(name), "delete %s", name)
}

func closeFile(f afero.File) {
	if err := f.Close(); err != nil {
		logger.Errorf("failed to close %s: %v", f.Name(), err)
	}
}
