// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/avldict/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247", "1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133", "2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433", "1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582", "1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042", "3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179", "5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774", "3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982", "3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797", "3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934", "8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066", "7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531", "8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672", "5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271", "4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761", "1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788", "9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907", "7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406", "3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472", "2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692", "2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197", "9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494", "8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243", "8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892", "3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877", "2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199", "5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// dump the tree on failure
func logTree(t *testing.T, tree *avl.Tree[string, string]) {
	var b bytes.Buffer
	depth := tree.Print(&b, true)
	t.Logf("tree depth: %d\n%s", depth, b.String())
}

func checkTree(t *testing.T, tree *avl.Tree[string, string], stage string) {
	if !tree.CheckUp() {
		logTree(t, tree)
		t.Fatalf("%s: inconsistent tree", stage)
	}
	if !tree.IsBalanced() {
		logTree(t, tree)
		t.Fatalf("%s: unbalanced tree", stage)
	}
}

// insert everything then delete a prefix followed by the remainder
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := avl.New[string, string]()
		for _, key := range addList {
			tree.Insert(key, "data:"+key)
		}
		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q error: %s", key, err)
			}
			ev := "data:" + key
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %q error: %s", key, err)
			}
			ev := "data:" + key
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			logTree(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Height() {
			t.Fatalf("empty tree height: %d", tree.Height())
		}
	}
}

// traverse the tree forwards and backwards to check cursors
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	p := tree.Begin()
	if p.IsEnd() {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; !p.IsEnd(); i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		if err := p.Next(); nil != err {
			t.Fatalf("next error: %s", err)
		}
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	// p is now past-the-end, step back over everything
	n = 0
	for i := len(expected) - 1; i >= 0; i -= 1 {
		if err := p.Prev(); nil != err {
			t.Fatalf("prev error: %s", err)
		}
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
	}
	if err := p.Prev(); nil == err {
		t.Fatalf("prev from lowest key succeeded: %q", p.Key())
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Size() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Size(), len(expected))
	}

	// same again through the iterators
	n = 0
	for key, value := range tree.All() {
		if key != expected[n] || value != "data:"+key {
			t.Fatalf("all[%d]: %q → %q", n, key, value)
		}
		n += 1
	}
	for key := range tree.Backward() {
		n -= 1
		if key != expected[n] {
			t.Fatalf("backward[%d]: %q  expected: %q", n, key, expected[n])
		}
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(key)
	}

	if !tree.IsEmpty() {
		logTree(t, tree)
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tree.Size() {
		t.Fatalf("remaining count not zero: %d", tree.Size())
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[string, string]()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key)
	}
	checkTree(t, tree, "add")

	for _, key := range d {
		tree.Delete(key)
		checkTree(t, tree, "delete")
	}

	// add back the test value, keys are four digits so this one is new
	const testKey = "500"
	const testValue = "just testing data: test 500 value"
	if !tree.Insert(testKey, testValue) {
		t.Fatalf("could not insert test key: %q", testKey)
	}
	checkTree(t, tree, "add test key")

	doTraverse(t, d)

	tv := tree.Find(testKey)
	if tv.IsEnd() {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, err := tree.DeleteAt(tv)
	if nil != err {
		t.Fatalf("delete error: %s", err)
	}
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	if !tree.Find(testKey).IsEnd() {
		t.Fatalf("test key not deleted")
	}
}

// check that a duplicate insert changes nothing and that a cursor
// keeps its node when the tree is re-balanced
func TestDuplicateAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}
	checkTree(t, tree, "add")

	oKey := "05"
	if tree.Insert(oKey, "new content for 05") {
		t.Fatalf("duplicate insert of: %q succeeded", oKey)
	}
	if 10 != tree.Size() {
		t.Fatalf("size after duplicate: %d", tree.Size())
	}

	c1 := tree.Find(oKey)
	if "data:05" != c1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", c1.Value(), "data:05")
	}

	// rotations do not move a key to another node
	for _, key := range []string{"11", "12", "13", "14", "15"} {
		tree.Insert(key, "data:"+key)
	}
	c2 := tree.Find(oKey)
	if !c1.Equal(c2) {
		t.Fatalf("node moved from: %v → %v", c1, c2)
	}
	checkTree(t, tree, "rotate")
}

func TestGetDepthInTree(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	c := tree.Begin()
	c.Next()
	if d := c.Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	c.Next()
	if d := c.Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if len(tree.Root().ChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	children := tree.Root().ChildrenByDepth(2)
	if len(children) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
	for i, key := range []string{"01", "03", "05", "07"} {
		if children[i].Key() != key {
			t.Errorf("child[%d]: %q  expected: %q", i, children[i].Key(), key)
		}
	}
}
