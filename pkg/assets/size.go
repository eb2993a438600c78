// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"errors"
	"io"
)

// skipBlock is the step used when probing a stream for its length.
const skipBlock int64 = 1 << 20

// Size returns the byte length of n, or 0 when it cannot be determined.
// The value is computed once per node.
func (n *Node) Size() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.size == sizeUnknown {
		n.size = n.computeSize()
	}
	return n.size
}

func (n *Node) computeSize() int64 {
	length, err := n.tree.store.Length(n.path)
	if err == nil && length >= 0 {
		return length
	}
	n.tree.logger.Debug("asset length unavailable, probing stream", "path", n.path, "err", err)
	return n.probeSize()
}

// probeSize measures n by skipping through its stream in skipBlock steps.
func (n *Node) probeSize() int64 {
	rc, err := n.tree.store.Open(n.path)
	if err != nil {
		return 0
	}
	defer func() { _ = rc.Close() }()

	var total int64
	for {
		skipped, err := skip(rc, skipBlock)
		if err != nil {
			n.tree.logger.Debug("asset size probe failed", "path", n.path, "err", err)
			return 0
		}
		total += skipped
		if skipped < skipBlock {
			return total
		}
	}
}

// skip advances r by up to count bytes. Reaching end of stream is not an
// error; the short count reports it.
func skip(r io.Reader, count int64) (int64, error) {
	var (
		skipped int64
		err     error
	)
	if s, ok := r.(Skipper); ok {
		skipped, err = s.Skip(count)
	} else {
		skipped, err = io.CopyN(io.Discard, r, count)
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return skipped, err
}
