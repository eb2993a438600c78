// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// AferoStore is a Store over an afero filesystem. The filesystem is always
// wrapped read-only.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a Store over fsys.
func NewAferoStore(fsys afero.Fs) *AferoStore {
	return &AferoStore{fs: afero.NewReadOnlyFs(fsys)}
}

// NewDirStore creates a Store rooted at the directory dir on the local disk.
func NewDirStore(dir string) *AferoStore {
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// List implements Store.
func (s *AferoStore) List(path string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, aferoName(path))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return names, nil
}

// Open implements Store.
func (s *AferoStore) Open(path string) (io.ReadCloser, error) {
	f, err := s.fs.Open(aferoName(path))
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	return f, nil
}

// Length implements Store.
func (s *AferoStore) Length(path string) (int64, error) {
	info, err := s.fs.Stat(aferoName(path))
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: ErrNoDescriptor}
	}
	return info.Size(), nil
}

func aferoName(path string) string {
	return "/" + path
}
