// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K, V any] struct {
	left    *node[K, V] // left sub-tree
	right   *node[K, V] // right sub-tree
	up      *node[K, V] // points to parent node, does not own it
	key     K           // key part for ordering
	value   V           // value part for data storage
	height  int         // 1 for a leaf
	balance int         // height(right) - height(left): -1, 0, +1
	dead    bool        // removed from its tree
}

// allocate a new leaf node below up
func newNode[K, V any](key K, value V, up *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:     key,
		value:   value,
		up:      up,
		height:  1,
		balance: 0,
	}
}

// release a node that has been unlinked from its tree
//
// cursors still holding it observe dead and refuse to use it
func freeNode[K, V any](p *node[K, V]) {
	var zeroKey K
	var zeroValue V

	p.left = nil
	p.right = nil
	p.up = nil
	p.key = zeroKey
	p.value = zeroValue
	p.height = 0
	p.balance = 0
	p.dead = true
}

// height of a possibly absent sub-tree
func (p *node[K, V]) safeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height and balance from the children
func (p *node[K, V]) update() {
	lh := p.left.safeHeight()
	rh := p.right.safeHeight()
	p.height = 1 + max(lh, rh)
	p.balance = rh - lh
}

func (p *node[K, V]) isLeaf() bool {
	return nil == p.left && nil == p.right
}
