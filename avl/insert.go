// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns false and leaves the tree unchanged if the key is already
// present
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count = 1
		return true
	}

	p := tree.root
	for {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			if nil != p.left {
				p = p.left
				continue
			}
			p.left = newNode(key, value, p)
			tree.count += 1
			tree.grown(p, p.right)
			return true

		case c > 0: // key > p.key
			if nil != p.right {
				p = p.right
				continue
			}
			p.right = newNode(key, value, p)
			tree.count += 1
			tree.grown(p, p.left)
			return true

		default:
			return false
		}
	}
}

// a leaf was attached below p, sibling is the other child of p
func (tree *Tree[K, V]) grown(p *node[K, V], sibling *node[K, V]) {
	if nil == sibling {
		// p was a leaf, so its height has changed
		tree.rebalanceFrom(p)
		return
	}

	// the sibling is a leaf that already counted in the height
	// of p; only the balance changes
	p.balance = 0
}
