// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avldict/avl"
	"github.com/bitmark-inc/avldict/fault"
)

// Options - what a check run does
type Options struct {
	Insert  []string // keys in insertion order
	Delete  []string // keys in deletion order, empty means Insert reversed
	Shuffle int      // extra runs deleting every key in a random order
	Seed    int64    // for the random orders
	Print   bool     // draw the tree once everything is inserted
}

// Report - result of a check run
type Report struct {
	Inserted   int
	Duplicates int
	Deleted    int
	Missing    int
	Remaining  int
	Shuffles   int
	Height     int
	Rotations  avl.Rotations
}

func (r Report) String() string {
	return fmt.Sprintf("inserted: %d  duplicates: %d  height: %d  rotations: %d/%d  deleted: %d  missing: %d  remaining: %d  shuffles: %d",
		r.Inserted, r.Duplicates, r.Height, r.Rotations.Single, r.Rotations.Double,
		r.Deleted, r.Missing, r.Remaining, r.Shuffles)
}

type tree = avl.Tree[string, int]

// run a check, an error means the tree broke one of its invariants
func run(options Options, log *logger.L, out io.Writer) (*Report, error) {

	report := &Report{}
	t := avl.New[string, int]()

	for i, key := range options.Insert {
		if !t.Insert(key, i) {
			report.Duplicates += 1
			log.Warnf("insert: %q  error: %s", key, fault.ErrKeyAlreadyExists)
			continue
		}
		report.Inserted += 1
		if err := verify(t); nil != err {
			fault.Critical(fmt.Sprintf("after insert: %q  error: %s", key, err))
			return report, err
		}
		log.Debugf("insert: %q  size: %d  height: %d", key, t.Size(), t.Height())
	}

	report.Height = t.Height()
	report.Rotations = t.Rotations()
	log.Infof("inserted: %d  height: %d  rotations: %+v", t.Size(), report.Height, report.Rotations)

	if options.Print {
		t.Print(out, false)
	}

	if err := checkOrder(t); nil != err {
		fault.Critical(fmt.Sprintf("traversal error: %s", err))
		return report, err
	}

	// a level order copy must never need a rotation
	clone := t.Clone()
	if !clone.SameShape(t) || (avl.Rotations{}) != clone.Rotations() {
		fault.Criticalf("clone of: %d nodes differs from original", t.Size())
	}

	deletions := options.Delete
	if 0 == len(deletions) {
		deletions = make([]string, len(options.Insert))
		for i, key := range options.Insert {
			deletions[len(deletions)-1-i] = key
		}
	}

	deleted, missing, err := deleteAll(t, deletions, log)
	report.Deleted += deleted
	report.Missing += missing
	report.Remaining = t.Size()
	if nil != err {
		return report, err
	}
	log.Infof("deleted: %d  missing: %d  remaining: %d", deleted, missing, report.Remaining)

	r := rand.New(rand.NewSource(options.Seed))
	for i := 0; i < options.Shuffle; i += 1 {
		s := clone.Clone()
		keys := s.Keys()
		r.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
		if _, _, err := deleteAll(s, keys, log); nil != err {
			return report, err
		}
		if !s.IsEmpty() || 0 != s.Height() {
			fault.Critical(fmt.Sprintf("shuffle: %d  size: %d", i, s.Size()))
			return report, fault.ErrTreeNotEmpty
		}
		report.Shuffles += 1
		log.Debugf("shuffle: %d  deleted: %d", i, len(keys))
	}

	return report, nil
}

// delete a list of keys checking the tree after each one
func deleteAll(t *tree, keys []string, log *logger.L) (int, int, error) {
	deleted := 0
	missing := 0
	for _, key := range keys {
		if _, err := t.Delete(key); nil != err {
			missing += 1
			log.Warnf("delete: %q  error: %s", key, err)
			continue
		}
		deleted += 1
		if err := verify(t); nil != err {
			fault.Critical(fmt.Sprintf("after delete: %q  error: %s", key, err))
			return deleted, missing, err
		}
	}
	return deleted, missing, nil
}

// check all invariants of the tree
func verify(t *tree) error {
	if !t.CheckUp() {
		return fault.ErrInconsistentTree
	}
	if !t.IsBalanced() {
		return fault.ErrUnbalancedTree
	}
	return nil
}

// walk the tree with a cursor, keys must be strictly increasing and
// the walk must see every node
func checkOrder(t *tree) error {
	n := 0
	previous := ""
	for c := t.Begin(); !c.IsEnd(); n += 1 {
		key := c.Key()
		if n > 0 && key <= previous {
			return fault.ErrOutOfOrder
		}
		previous = key
		if err := c.Next(); nil != err {
			return err
		}
	}
	if n != t.Size() {
		return fault.ErrOutOfOrder
	}
	return nil
}
