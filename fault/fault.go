// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBeforeBegin          = InvalidError("cursor is at the lowest key")
	ErrForeignCursor        = InvalidError("cursor belongs to a different tree")
	ErrInconsistentTree     = ProcessError("tree parent links are inconsistent")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidMove          = InvalidError("cursor cannot move in that direction")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyAlreadyExists     = ExistsError("key already exists")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrOutOfOrder           = ProcessError("tree keys are out of order")
	ErrPastTheEnd           = InvalidError("cursor is past the end")
	ErrStaleCursor          = InvalidError("cursor node has been removed")
	ErrTreeNotEmpty         = ProcessError("tree not empty after deleting every key")
	ErrUnbalancedTree       = ProcessError("tree is not balanced")
	ErrUnboundCursor        = InvalidError("cursor is not bound to a tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
