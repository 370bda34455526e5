// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlcheck - exercise an AVL tree with a list of keys
//
// Keys are inserted and then deleted, checking the balance and the
// parent links of the whole tree after every single operation.  The
// keys come from a Lua configuration file or from the command line.
//
//	avlcheck [--verbose] [--print] --config-file=FILE
//	avlcheck [--verbose] [--print] key...
package main
