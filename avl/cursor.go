// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avldict/fault"
)

// Cursor - a position in one particular tree
//
// The zero value is unbound and belongs to no tree.  A bound cursor
// with no node is the past-the-end position.
type Cursor[K, V any] struct {
	node *node[K, V]
	tree *Tree[K, V]
}

// IsBound - true if the cursor was created by a tree
func (c Cursor[K, V]) IsBound() bool {
	return nil != c.tree
}

// IsEnd - true if the cursor is past-the-end
func (c Cursor[K, V]) IsEnd() bool {
	return nil != c.tree && nil == c.node
}

// IsLeaf - true if the cursor is at a node without children
func (c Cursor[K, V]) IsLeaf() bool {
	return c.live() && c.node.isLeaf()
}

// HasParent - true if ToParent would succeed
func (c Cursor[K, V]) HasParent() bool {
	return c.live() && nil != c.node.up
}

// HasLeft - true if ToLeft would succeed
func (c Cursor[K, V]) HasLeft() bool {
	return c.live() && nil != c.node.left
}

// HasRight - true if ToRight would succeed
func (c Cursor[K, V]) HasRight() bool {
	return c.live() && nil != c.node.right
}

// Equal - true if both cursors are at the same position of the same tree
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return c.tree == other.tree && c.node == other.node
}

// Key - the key at the cursor
//
// panics if the cursor is not at a live node
func (c Cursor[K, V]) Key() K {
	c.mustAccess()
	return c.node.key
}

// Value - the value at the cursor
//
// panics if the cursor is not at a live node
func (c Cursor[K, V]) Value() V {
	c.mustAccess()
	return c.node.value
}

// SetValue - replace the value at the cursor, the key cannot be changed
//
// panics if the cursor is not at a live node
func (c Cursor[K, V]) SetValue(value V) {
	c.mustAccess()
	c.node.value = value
}

// Depth - number of edges between the cursor's node and the root
func (c Cursor[K, V]) Depth() int {
	c.mustAccess()
	n := 0
	for p := c.node.up; nil != p; p = p.up {
		n += 1
	}
	return n
}

// ToParent - move to the parent node
func (c *Cursor[K, V]) ToParent() error {
	if err := c.check(); nil != err {
		return err
	}
	if nil == c.node.up {
		return fault.ErrInvalidMove
	}
	c.node = c.node.up
	return nil
}

// ToLeft - move to the left child
func (c *Cursor[K, V]) ToLeft() error {
	if err := c.check(); nil != err {
		return err
	}
	if nil == c.node.left {
		return fault.ErrInvalidMove
	}
	c.node = c.node.left
	return nil
}

// ToRight - move to the right child
func (c *Cursor[K, V]) ToRight() error {
	if err := c.check(); nil != err {
		return err
	}
	if nil == c.node.right {
		return fault.ErrInvalidMove
	}
	c.node = c.node.right
	return nil
}

// Parent - a new cursor at the parent node
func (c Cursor[K, V]) Parent() (Cursor[K, V], error) {
	err := c.ToParent()
	return c, err
}

// Left - a new cursor at the left child
func (c Cursor[K, V]) Left() (Cursor[K, V], error) {
	err := c.ToLeft()
	return c, err
}

// Right - a new cursor at the right child
func (c Cursor[K, V]) Right() (Cursor[K, V], error) {
	err := c.ToRight()
	return c, err
}

// Next - move to the next highest key, moving past the highest key
// gives the past-the-end cursor
func (c *Cursor[K, V]) Next() error {
	if err := c.check(); nil != err {
		return err
	}
	c.node = c.tree.next(c.node)
	return nil
}

// Prev - move to the next lowest key, from past-the-end this is the
// highest key
func (c *Cursor[K, V]) Prev() error {
	if nil == c.tree {
		return fault.ErrUnboundCursor
	}
	if nil == c.node {
		p := c.tree.root.last()
		if nil == p {
			return fault.ErrBeforeBegin // empty: end is also begin
		}
		c.node = p
		return nil
	}
	if c.node.dead {
		return fault.ErrStaleCursor
	}
	p := c.tree.prev(c.node)
	if nil == p {
		return fault.ErrBeforeBegin
	}
	c.node = p
	return nil
}

// cursor can be moved from
func (c Cursor[K, V]) check() error {
	switch {
	case nil == c.tree:
		return fault.ErrUnboundCursor
	case nil == c.node:
		return fault.ErrPastTheEnd
	case c.node.dead:
		return fault.ErrStaleCursor
	}
	return nil
}

func (c Cursor[K, V]) live() bool {
	return nil == c.check()
}

// dereference of an invalid cursor is a programming error
func (c Cursor[K, V]) mustAccess() {
	if err := c.check(); nil != err {
		panic(err)
	}
}

// ChildrenByDepth - cursors at all nodes depth levels below this one,
// left to right
func (c Cursor[K, V]) ChildrenByDepth(depth int) []Cursor[K, V] {
	c.mustAccess()
	nodes := []*node[K, V]{c.node}
	for ; depth > 0 && len(nodes) > 0; depth -= 1 {
		below := make([]*node[K, V], 0, 2*len(nodes))
		for _, p := range nodes {
			if nil != p.left {
				below = append(below, p.left)
			}
			if nil != p.right {
				below = append(below, p.right)
			}
		}
		nodes = below
	}
	cursors := make([]Cursor[K, V], len(nodes))
	for i, p := range nodes {
		cursors[i] = c.tree.cursor(p)
	}
	return cursors
}
