// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"io"
	"strings"
	"sync"
)

// sizeUnknown marks a node whose size has not been computed yet.
const sizeUnknown int64 = -1

// Node is a handle to one path in a Tree.
type Node struct {
	tree *Tree
	path string

	mu        sync.Mutex
	parent    *Node
	parentSet bool
	size      int64
}

func newNode(t *Tree, path string, parent *Node) *Node {
	return &Node{
		tree:      t,
		path:      path,
		parent:    parent,
		parentSet: parent != nil,
		size:      sizeUnknown,
	}
}

// Path returns the slash-separated path of the node; the root is "".
func (n *Node) Path() string {
	return n.path
}

// Name returns the last path element.
func (n *Node) Name() string {
	return n.path[strings.LastIndexByte(n.path, '/')+1:]
}

// String returns the node path.
func (n *Node) String() string {
	return n.path
}

// Child returns the node for name under n. The store is not consulted.
func (n *Node) Child(name string) *Node {
	return newNode(n.tree, childPath(n.path, name), n)
}

// Parent returns the parent node, or nil for the root. The parent is built
// from the path on first use and reused afterwards.
func (n *Node) Parent() *Node {
	if n.path == "" {
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.parentSet {
		n.parent = newNode(n.tree, parentPath(n.path), nil)
		n.parentSet = true
	}
	return n.parent
}

// Children lists the entries under n. A store error and an empty listing
// are indistinguishable: both yield no children.
func (n *Node) Children() []*Node {
	names, err := n.tree.store.List(n.path)
	if err != nil {
		n.tree.logger.Debug("asset listing failed", "path", n.path, "err", err)
		return nil
	}
	if len(names) == 0 {
		return nil
	}

	children := make([]*Node, 0, len(names))
	for _, name := range names {
		children = append(children, n.Child(name))
	}
	return children
}

// IsDirectory reports whether n cannot be opened as a stream. Broken entries
// are therefore reported as directories too.
func (n *Node) IsDirectory() bool {
	rc, err := n.tree.store.Open(n.path)
	if err != nil {
		return true
	}
	_ = rc.Close()
	return false
}

// Exists reports whether n opens as a stream or lists at least one entry.
// An empty directory does not exist by this definition.
func (n *Node) Exists() bool {
	if rc, err := n.tree.store.Open(n.path); err == nil {
		_ = rc.Close()
		return true
	}
	names, err := n.tree.store.List(n.path)
	return err == nil && len(names) > 0
}

// Open opens n for reading. The caller must close the returned stream.
func (n *Node) Open() (io.ReadCloser, error) {
	rc, err := n.tree.store.Open(n.path)
	if err != nil {
		return nil, &StreamOpenError{Path: n.path, Err: err}
	}
	return rc, nil
}

// childPath joins a parent path and an entry name.
func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// parentPath returns the path before the last separator, or "" (the root).
func parentPath(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}
