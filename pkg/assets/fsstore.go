// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"io"
	"io/fs"
)

// FSStore is a Store over an io/fs.FS, typically an embed.FS.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore creates a Store over fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// List implements Store.
func (s *FSStore) List(path string) ([]string, error) {
	name, err := fsName("readdir", path)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, name)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Open implements Store.
func (s *FSStore) Open(path string) (io.ReadCloser, error) {
	name, err := fsName("open", path)
	if err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(name)
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

// Length implements Store. Only regular files have a descriptor.
func (s *FSStore) Length(path string) (int64, error) {
	name, err := fsName("stat", path)
	if err != nil {
		return 0, err
	}
	info, err := fs.Stat(s.fsys, name)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: ErrNoDescriptor}
	}
	return info.Size(), nil
}

// fsName converts an asset path into an io/fs name.
func fsName(op, path string) (string, error) {
	if path == "" {
		return ".", nil
	}
	if !fs.ValidPath(path) {
		return "", &fs.PathError{Op: op, Path: path, Err: fs.ErrInvalid}
	}
	return path, nil
}
