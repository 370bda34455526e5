// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: node with the next highest key or nil if no more nodes
func (tree *Tree[K, V]) next(p *node[K, V]) *node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	key := p.key
	for {
		p = p.up
		if nil == p {
			return nil
		}
		if tree.compare(p.key, key) > 0 { // p.key > key
			return p
		}
	}
}

// internal: node with the next lowest key or nil if no more nodes
func (tree *Tree[K, V]) prev(p *node[K, V]) *node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	key := p.key
	for {
		p = p.up
		if nil == p {
			return nil
		}
		if tree.compare(p.key, key) < 0 { // p.key < key
			return p
		}
	}
}
