// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised    = ProcessError("already initialised")
	AssetAlreadyExists    = ExistsError("asset already exists")
	AssetNotFound         = NotFoundError("asset does not exist")
	DatabaseIsNotSet      = ProcessError("database is not set")
	DatabaseVersion       = ProcessError("incompatible database version")
	EmptyKey              = InvalidError("key is empty")
	InvalidArgumentCount  = InvalidError("invalid argument count")
	InvalidAssetID        = InvalidError("asset id is required")
	InvalidAssetKind      = InvalidError("asset kind is not recognised")
	InvalidAssetName      = InvalidError("asset name is required")
	InvalidBoolean        = InvalidError("invalid boolean")
	InvalidDescription    = InvalidError("asset description is too long")
	InvalidInteger        = InvalidError("invalid integer")
	InvalidNameLength     = InvalidError("asset name is too long")
	InvalidNumber         = InvalidError("number cannot be encoded")
	InvalidRecord         = RecordError("stored data is not a valid record")
	InvalidResponsible    = RecordError("responsible is not an integer")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	NotInitialised        = ProcessError("not initialised")
	OperationNotFound     = NotFoundError("operation not found")
	RateLimiting          = ProcessError("rate limiting")
	TransactionInUse      = ProcessError("transaction already in use")
	TransactionNotStarted = ProcessError("transaction not started")
	UnsupportedValue      = InvalidError("value type cannot be encoded")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// StoreError - an underlying state store call failed
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store - wrap a database error as a store failure
func Store(op string, err error) error {
	if nil == err {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// KeyError - an error with the key it occurred on
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// ForKey - attach the offending key to an error
func ForKey(key string, err error) error {
	if nil == err {
		return nil
	}
	return &KeyError{Key: key, Err: err}
}

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
func IsErrStore(e error) bool    { var t *StoreError; return errors.As(e, &t) }
