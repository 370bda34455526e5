// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow a cursor to move through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches its height and its balance factor
// (height(right) - height(left)).  Insert and delete both finish by
// walking from the changed node towards the root, recomputing the
// cached values and rotating wherever the balance factor reaches ±2.
//
// A Cursor is bound to the tree that created it and can move in two
// ways: structurally (to the parent or a child) or logically (to the
// next or previous key).  Logical steps only use the parent links, no
// stack is kept.
//
// Keys are unique.  Insert of an existing key fails and leaves the
// tree unchanged.
//
// Deleting a node with children does not remove the node itself: the
// key and value of a neighbour are copied into it and the neighbour is
// removed instead.  A cursor on the edited node stays valid and sees
// the new content, while a cursor on the removed neighbour becomes
// stale and any use of it is an error.
package avl
