// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *node[K, V], up *node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up || p.dead {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// IsBalanced - recompute every height and balance from scratch and
// compare with the cached values, which must all be in -1..+1
//
// also checks the key ordering and the node count
func (tree *Tree[K, V]) IsBalanced() bool {
	height, n, ok := tree.verify(tree.root, nil, nil)
	if !ok || n != tree.count {
		return false
	}
	return height == tree.Height()
}

// internal: post-order verify, returns the actual height and node
// count; all keys of the sub-tree must lie strictly between the keys
// of lo and hi (nil is unbounded)
func (tree *Tree[K, V]) verify(p *node[K, V], lo *node[K, V], hi *node[K, V]) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	if nil != lo && tree.compare(p.key, lo.key) <= 0 {
		return 0, 0, false
	}
	if nil != hi && tree.compare(p.key, hi.key) >= 0 {
		return 0, 0, false
	}
	lh, ln, ok := tree.verify(p.left, lo, p)
	if !ok {
		return 0, 0, false
	}
	rh, rn, ok := tree.verify(p.right, p, hi)
	if !ok {
		return 0, 0, false
	}

	height := 1 + max(lh, rh)
	balance := rh - lh
	if height != p.height || balance != p.balance {
		return 0, 0, false
	}
	if balance < -1 || balance > 1 {
		return 0, 0, false
	}
	return height, 1 + ln + rn, true
}

// SameShape - true if both trees hold equal keys at the same positions
func (tree *Tree[K, V]) SameShape(other *Tree[K, V]) bool {
	if tree.count != other.count {
		return false
	}
	return tree.sameShape(tree.root, other.root)
}

func (tree *Tree[K, V]) sameShape(p *node[K, V], q *node[K, V]) bool {
	if nil == p || nil == q {
		return p == q
	}
	if 0 != tree.compare(p.key, q.key) {
		return false
	}
	return tree.sameShape(p.left, q.left) && tree.sameShape(p.right, q.right)
}
