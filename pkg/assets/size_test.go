// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_FastPath(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.lengths["book.fb2"] = 1234
	tree := NewTree(store)

	assert.Equal(t, int64(1234), tree.Resolve("book.fb2").Size())
	assert.Equal(t, 0, store.openCalls, "fast path must not open a stream")
}

func TestSize_IsMemoized(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.files["a.bin"] = bytes.Repeat([]byte{1}, 10)
	tree := NewTree(store)
	n := tree.Resolve("a.bin")

	require.Equal(t, int64(10), n.Size())
	lengthCalls, openCalls := store.lengthCalls, store.openCalls

	assert.Equal(t, int64(10), n.Size())
	assert.Equal(t, lengthCalls, store.lengthCalls)
	assert.Equal(t, openCalls, store.openCalls)
}

func TestSize_SlowPathSkipOnlyStream(t *testing.T) {
	t.Parallel()

	stream := &skipOnlyStream{remaining: 2*skipBlock + skipBlock/2}
	store := newFakeStore()
	store.openFunc = func(string) (io.ReadCloser, error) { return stream, nil }
	tree := NewTree(store)

	assert.Equal(t, int64(2_621_440), tree.Resolve("large.bin").Size())
	assert.Equal(t, []int64{skipBlock, skipBlock, skipBlock / 2}, stream.skips)
	assert.True(t, stream.closed)
}

func TestSize_SlowPathSkipperReportsEOF(t *testing.T) {
	t.Parallel()

	stream := &skipOnlyStream{remaining: skipBlock + 42, eof: true}
	store := newFakeStore()
	store.openFunc = func(string) (io.ReadCloser, error) { return stream, nil }
	tree := NewTree(store)

	assert.Equal(t, skipBlock+42, tree.Resolve("tail.bin").Size())
	assert.Equal(t, []int64{skipBlock, 42}, stream.skips)
	assert.True(t, stream.closed)
}

func TestSize_SlowPathExactMultiple(t *testing.T) {
	t.Parallel()

	stream := &skipOnlyStream{remaining: 2 * skipBlock}
	store := newFakeStore()
	store.openFunc = func(string) (io.ReadCloser, error) { return stream, nil }
	tree := NewTree(store)

	assert.Equal(t, 2*skipBlock, tree.Resolve("even.bin").Size())
	assert.Equal(t, []int64{skipBlock, skipBlock, 0}, stream.skips)
}

func TestSize_SlowPathPlainReader(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.files["c.bin"] = bytes.Repeat([]byte{7}, int(skipBlock)+17)
	store.lengthErr = errBroken
	tree := NewTree(store)

	assert.Equal(t, skipBlock+17, tree.Resolve("c.bin").Size())
	assert.Equal(t, 1, store.closed)
}

func TestSize_UnopenableIsZero(t *testing.T) {
	t.Parallel()

	tree := NewTree(newFakeStore())
	assert.Equal(t, int64(0), tree.Resolve("missing").Size())
}

func TestSize_ReadErrorIsZero(t *testing.T) {
	t.Parallel()

	stream := &failingStream{}
	store := newFakeStore()
	store.openFunc = func(string) (io.ReadCloser, error) { return stream, nil }
	tree := NewTree(store)

	assert.Equal(t, int64(0), tree.Resolve("bad").Size())
	assert.True(t, stream.closed, "stream must be closed on the error path")
}

func TestSize_NegativeLengthFallsBack(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.lengths["x"] = -5
	store.files["x"] = []byte("abc")
	tree := NewTree(store)

	assert.Equal(t, int64(3), tree.Resolve("x").Size())
}
