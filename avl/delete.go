// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avldict/fault"
)

// Delete - removes a specific item from the tree and returns its value
func (tree *Tree[K, V]) Delete(key K) (V, error) {
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return tree.remove(p), nil
}

// DeleteAt - removes the item under a cursor and returns its value
//
// the cursor must belong to this tree and be at a live node.  If the
// node has children the cursor stays valid and is at the key that
// replaced the removed one.
func (tree *Tree[K, V]) DeleteAt(c Cursor[K, V]) (V, error) {
	var zero V
	if nil == c.tree {
		return zero, fault.ErrUnboundCursor
	}
	if c.tree != tree {
		return zero, fault.ErrForeignCursor
	}
	if nil == c.node {
		return zero, fault.ErrPastTheEnd
	}
	if c.node.dead {
		return zero, fault.ErrStaleCursor
	}
	return tree.remove(c.node), nil
}

// internal delete routine
func (tree *Tree[K, V]) remove(q *node[K, V]) V {
	value := q.value // preserve the value part

	switch {
	case q.isLeaf():
		up := q.up
		switch {
		case nil == up:
			tree.root = nil
		case up.left == q:
			up.left = nil
		default:
			up.right = nil
		}
		freeNode(q)
		tree.rebalanceFrom(up)

	case nil != q.left && nil != q.right:
		// in-order predecessor: highest node of the left sub-tree,
		// which by construction has no right child
		r := q.left.last()
		q.key = r.key
		q.value = r.value

		up := r.up
		rl := r.left
		if up == q {
			up.left = rl
		} else {
			up.right = rl
		}
		if nil != rl {
			rl.up = up
		}
		freeNode(r)
		tree.rebalanceFrom(up)

	case nil == q.left:
		// balanced: a single right child must be a leaf
		r := q.right
		q.key = r.key
		q.value = r.value
		q.right = nil
		freeNode(r)
		tree.rebalanceFrom(q)

	default:
		// balanced: a single left child must be a leaf
		l := q.left
		q.key = l.key
		q.value = l.value
		q.left = nil
		freeNode(l)
		tree.rebalanceFrom(q)
	}

	tree.count -= 1
	if 0 == tree.count {
		tree.root = nil
	}
	return value
}
