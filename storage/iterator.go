// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/dpjb/assetledger/fault"
)

//go:generate mockgen -source=iterator.go -destination=mocks/iterator.go -package=mocks

// Iterator - forward pull iterator over a pool range
//
// Key and Value are only valid after Next returned true; both are
// copies that the caller may keep.  Release must always be called.
type Iterator interface {
	Next() bool
	Key() string
	Value() []byte
	Error() error
	Release()
}

type poolIterator struct {
	iter     iterator.Iterator
	key      string
	value    []byte
	err      error
	released bool
}

func (i *poolIterator) Next() bool {
	if i.released {
		return false
	}
	if !i.iter.Next() {
		i.key = ""
		i.value = nil
		return false
	}

	// contents of the returned slice must not be modified, and are
	// only valid until the next call to Next
	key := i.iter.Key()
	value := i.iter.Value()

	i.key = string(key[1:]) // strip the prefix

	i.value = make([]byte, len(value))
	copy(i.value, value)

	return true
}

func (i *poolIterator) Key() string {
	return i.key
}

func (i *poolIterator) Value() []byte {
	return i.value
}

func (i *poolIterator) Error() error {
	if i.released {
		return i.err
	}
	return fault.Store("scan", i.iter.Error())
}

func (i *poolIterator) Release() {
	if i.released {
		return
	}
	i.err = fault.Store("scan", i.iter.Error())
	i.iter.Release()
	i.released = true
}
