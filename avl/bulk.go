// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Clear - remove every node, deepest first so nothing needs
// rebalancing
func (tree *Tree[K, V]) Clear() {
	nodes := tree.levelOrder()
	for i := len(nodes) - 1; i >= 0; i -= 1 {
		p := nodes[i]
		if up := p.up; nil != up {
			if up.left == p {
				up.left = nil
			} else {
				up.right = nil
			}
		}
		freeNode(p)
	}
	tree.root = nil
	tree.count = 0
	tree.rotations = Rotations{}
}

// Copy - replace the contents of the tree with a copy of other
//
// entries are inserted level by level, so the copy has the same shape
// as other and no rotation is ever needed
func (tree *Tree[K, V]) Copy(other *Tree[K, V]) {
	if tree == other {
		return
	}
	tree.Clear()
	for _, p := range other.levelOrder() {
		tree.Insert(p.key, p.value)
	}
}

// Clone - a new tree holding a copy of the entries
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	t := NewFunc[K, V](tree.compare)
	t.Copy(tree)
	return t
}

// All - entries in ascending key order
//
// the tree must not be modified during the iteration
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.first(); nil != p; p = tree.next(p) {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - entries in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.last(); nil != p; p = tree.prev(p) {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

// internal: all nodes breadth first from the root
func (tree *Tree[K, V]) levelOrder() []*node[K, V] {
	if nil == tree.root {
		return nil
	}
	nodes := make([]*node[K, V], 0, tree.count)
	nodes = append(nodes, tree.root)
	for i := 0; i < len(nodes); i += 1 {
		p := nodes[i]
		if nil != p.left {
			nodes = append(nodes, p.left)
		}
		if nil != p.right {
			nodes = append(nodes, p.right)
		}
	}
	return nodes
}
