// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
)

var errBroken = errors.New("broken store")

// fakeStore is an in-memory Store that counts calls and can inject failures.
type fakeStore struct {
	files   map[string][]byte
	dirs    map[string][]string
	lengths map[string]int64

	listErr   error
	openFunc  func(path string) (io.ReadCloser, error)
	lengthErr error

	listCalls   int
	openCalls   int
	lengthCalls int
	closed      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		files:   map[string][]byte{},
		dirs:    map[string][]string{},
		lengths: map[string]int64{},
	}
}

func (s *fakeStore) List(path string) ([]string, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	names, ok := s.dirs[path]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	return names, nil
}

func (s *fakeStore) Open(path string) (io.ReadCloser, error) {
	s.openCalls++
	if s.openFunc != nil {
		return s.openFunc(path)
	}
	data, ok := s.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return &trackingReader{Reader: bytes.NewReader(data), store: s}, nil
}

func (s *fakeStore) Length(path string) (int64, error) {
	s.lengthCalls++
	if s.lengthErr != nil {
		return 0, s.lengthErr
	}
	n, ok := s.lengths[path]
	if !ok {
		return 0, ErrNoDescriptor
	}
	return n, nil
}

type trackingReader struct {
	io.Reader
	store *fakeStore
}

func (r *trackingReader) Close() error {
	r.store.closed++
	return nil
}

// skipOnlyStream supports Skip but fails every Read. With eof set, a short
// skip also reports io.EOF.
type skipOnlyStream struct {
	remaining int64
	eof       bool
	skips     []int64
	closed    bool
}

func (s *skipOnlyStream) Read([]byte) (int, error) {
	return 0, errors.New("read not supported")
}

func (s *skipOnlyStream) Skip(want int64) (int64, error) {
	n := want
	if n > s.remaining {
		n = s.remaining
	}
	short := n < want
	s.remaining -= n
	s.skips = append(s.skips, n)
	if short && s.eof {
		return n, io.EOF
	}
	return n, nil
}

func (s *skipOnlyStream) Close() error {
	s.closed = true
	return nil
}

// failingStream fails on the first read.
type failingStream struct{ closed bool }

func (s *failingStream) Read([]byte) (int, error) { return 0, errors.New("disk error") }
func (s *failingStream) Close() error             { s.closed = true; return nil }
