// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk from p to the root recomputing height and balance, rotating
// any node whose balance has reached ±2
func (tree *Tree[K, V]) rebalanceFrom(p *node[K, V]) {
	for nil != p {
		p.update()

		switch {
		case p.balance < -1: // left branch too tall
			if p.left.balance > 0 {
				// double LR rotation
				p.left = rotateLeft(p.left)
				tree.rotations.Double += 1
			} else {
				// single LL rotation
				tree.rotations.Single += 1
			}
			p = tree.relink(p, rotateRight(p))

		case p.balance > 1: // right branch too tall
			if p.right.balance < 0 {
				// double RL rotation
				p.right = rotateRight(p.right)
				tree.rotations.Double += 1
			} else {
				// single RR rotation
				tree.rotations.Single += 1
			}
			p = tree.relink(p, rotateLeft(p))
		}

		p = p.up
	}
}

// point the former parent of old (now the parent of top) at top
// instead of old, or make top the root
func (tree *Tree[K, V]) relink(old *node[K, V], top *node[K, V]) *node[K, V] {
	up := top.up
	switch {
	case nil == up:
		tree.root = top
	case up.left == old:
		up.left = top
	default:
		up.right = top
	}
	return top
}

// rotate the sub-tree at p to the right and return its new top
//
//	      p            q
//	     / \          / \
//	    q   c   ->   a   p
//	   / \              / \
//	  a   b            b   c
//
// only p, q and b have their links changed; the link from the
// parent of p is left for the caller
func rotateRight[K, V any](p *node[K, V]) *node[K, V] {
	q := p.left
	b := q.right

	q.up = p.up
	q.right = p
	p.up = q

	p.left = b
	if nil != b {
		b.up = p
	}

	// p is now below q so must be updated first
	p.update()
	q.update()
	return q
}

// rotate the sub-tree at p to the left and return its new top
//
//	    p                q
//	   / \              / \
//	  a   q     ->     p   c
//	     / \          / \
//	    b   c        a   b
func rotateLeft[K, V any](p *node[K, V]) *node[K, V] {
	q := p.right
	b := q.left

	q.up = p.up
	q.left = p
	p.up = q

	p.right = b
	if nil != b {
		b.up = p
	}

	p.update()
	q.update()
	return q
}
