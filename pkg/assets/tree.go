// SPDX-License-Identifier: MPL-2.0

package assets

import (
	"io"

	"github.com/charmbracelet/log"
)

type (
	// Tree resolves paths in a Store into Nodes.
	Tree struct {
		store  Store
		logger *log.Logger
	}

	// TreeOption configures a Tree.
	TreeOption func(*Tree)

	// WalkFunc is called for every node visited by Walk. Returning false
	// skips the node's children.
	WalkFunc func(n *Node, depth int) bool
)

// WithLogger sets the logger that records swallowed store errors.
func WithLogger(l *log.Logger) TreeOption {
	return func(t *Tree) {
		t.logger = l
	}
}

// NewTree creates a Tree over store.
func NewTree(store Store, opts ...TreeOption) *Tree {
	t := &Tree{store: store}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t
}

// Store returns the backing store.
func (t *Tree) Store() Store {
	return t.store
}

// Root returns the node for the store root.
func (t *Tree) Root() *Node {
	return t.Resolve("")
}

// Resolve returns the node for path. The store is not consulted.
func (t *Tree) Resolve(path string) *Node {
	return newNode(t, path, nil)
}

// Walk visits n and its descendants depth-first, in store order.
func (t *Tree) Walk(n *Node, fn WalkFunc) {
	t.walk(n, 0, fn)
}

func (t *Tree) walk(n *Node, depth int, fn WalkFunc) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		t.walk(child, depth+1, fn)
	}
}
