// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/dpjb/assetledger/fault"
)

// Access - for Database
type Access interface {
	Transaction
	Delete([]byte) error
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte) error
}

// AccessData - database access with an optional pending batch
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - start buffering writes
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - write or buffer a key/value pair
func (d *AccessData) Put(key []byte, value []byte) error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.Store("put", d.db.Put(key, value, nil))
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
	return nil
}

// Delete - remove or buffer the removal of a key
func (d *AccessData) Delete(key []byte) error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.Store("delete", d.db.Delete(key, nil))
	}
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
	return nil
}

// Commit - write the pending batch and end the transaction
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return fault.Store("commit", err)
}

// Abort - discard the pending batch and end the transaction
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// DumpTx - the raw pending batch
func (d *AccessData) DumpTx() []byte {
	d.Lock()
	defer d.Unlock()

	return d.batch.Dump()
}

// Get - pending value if any, otherwise the committed value
//
// nil is returned for a missing key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.Lock()
	inUse := d.inUse
	d.Unlock()

	if inUse {
		val, op, found := d.cache.Get(string(key))
		if found {
			if dbDelete == op {
				return nil, nil
			}
			return val, nil
		}
	}

	val, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, fault.Store("get", err)
	}
	return val, nil
}

// Iterator - committed data in a range
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// InUse - true while a transaction is active
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}
