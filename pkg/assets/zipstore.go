// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/klauspost/compress/zip"
)

// PackageAssetsPrefix is the folder holding assets inside an application
// package.
const PackageAssetsPrefix = "assets/"

// ZipStore is a Store over the assets folder of a zip-based application
// package. Only stored (uncompressed) entries have a descriptor; compressed
// entries are measured by reading them.
type ZipStore struct {
	files  map[string]*zip.File
	dirs   map[string][]string
	closer io.Closer
}

// OpenZipStore opens the application package at path and indexes the
// entries under PackageAssetsPrefix. Close releases the file.
func OpenZipStore(path string) (*ZipStore, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open package %s: %w", path, err)
	}
	s := NewZipStore(&rc.Reader, PackageAssetsPrefix)
	s.closer = rc
	return s, nil
}

// NewZipStore indexes the entries of r under prefix. An empty prefix
// exposes the whole archive.
func NewZipStore(r *zip.Reader, prefix string) *ZipStore {
	s := &ZipStore{
		files: make(map[string]*zip.File),
		dirs:  make(map[string][]string),
	}
	for _, f := range r.File {
		rel, ok := strings.CutPrefix(f.Name, prefix)
		if !ok || rel == "" {
			continue
		}
		if strings.HasSuffix(rel, "/") {
			s.addDir(strings.TrimSuffix(rel, "/"))
			continue
		}
		s.files[rel] = f
		s.addParents(rel)
	}
	for dir := range s.dirs {
		slices.Sort(s.dirs[dir])
	}
	return s
}

func (s *ZipStore) addDir(dir string) {
	if _, ok := s.dirs[dir]; !ok {
		s.dirs[dir] = []string{}
	}
	s.addParents(dir)
}

// addParents registers path under each of its ancestors.
func (s *ZipStore) addParents(path string) {
	for path != "" {
		parent, name := parentPath(path), path[strings.LastIndexByte(path, '/')+1:]
		if !slices.Contains(s.dirs[parent], name) {
			s.dirs[parent] = append(s.dirs[parent], name)
		}
		path = parent
	}
}

// Close releases the underlying package file, if the store owns one.
func (s *ZipStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// List implements Store.
func (s *ZipStore) List(path string) ([]string, error) {
	names, ok := s.dirs[path]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(names), nil
}

// Open implements Store.
func (s *ZipStore) Open(path string) (io.ReadCloser, error) {
	f, ok := s.files[path]
	if !ok {
		if _, isDir := s.dirs[path]; isDir {
			return nil, &fs.PathError{Op: "open", Path: path, Err: ErrIsDirectory}
		}
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return f.Open()
}

// Length implements Store.
func (s *ZipStore) Length(path string) (int64, error) {
	f, ok := s.files[path]
	if !ok {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	if f.Method != zip.Store {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: ErrNoDescriptor}
	}
	return int64(f.UncompressedSize64), nil
}
