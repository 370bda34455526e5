// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Rotations - counts of the rebalancing operations performed
type Rotations struct {
	Single int // one left or right rotation
	Double int // left-right or right-left pair
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root      *node[K, V]
	count     int
	compare   func(a, b K) int
	rotations Rotations
}

// New - create an initially empty tree ordered by the natural
// ordering of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative, zero or positive value like cmp.Compare and
// define a strict total order
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[K, V]) Height() int {
	return tree.root.safeHeight()
}

// Rotations - rotations performed since creation or the last Clear
func (tree *Tree[K, V]) Rotations() Rotations {
	return tree.rotations
}

// Root - cursor at the root node, past-the-end for an empty tree
func (tree *Tree[K, V]) Root() Cursor[K, V] {
	return tree.cursor(tree.root)
}

// Begin - cursor at the lowest key, past-the-end for an empty tree
func (tree *Tree[K, V]) Begin() Cursor[K, V] {
	return tree.cursor(tree.root.first())
}

// Last - cursor at the highest key, past-the-end for an empty tree
func (tree *Tree[K, V]) Last() Cursor[K, V] {
	return tree.cursor(tree.root.last())
}

// End - the past-the-end cursor
func (tree *Tree[K, V]) End() Cursor[K, V] {
	return tree.cursor(nil)
}

func (tree *Tree[K, V]) cursor(p *node[K, V]) Cursor[K, V] {
	return Cursor[K, V]{
		node: p,
		tree: tree,
	}
}
