// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/dpjb/assetledger/fault"
	"github.com/dpjb/assetledger/storage"
	"github.com/dpjb/assetledger/storage/mocks"
)

var (
	defaultKey   = []byte("key")
	defaultValue = []byte{'a'}
)

func newTestAccess(t *testing.T) (storage.Access, *mocks.MockCache, *leveldb.DB, *gomock.Controller) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	ctl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctl)
	return storage.NewAccess(db, mockCache), mockCache, db, ctl
}

func pendingCount(t *testing.T, da storage.Access) int {
	b := new(leveldb.Batch)
	if err := b.Load(da.DumpTx()); nil != err {
		t.Fatalf("batch load error: %s", err)
	}
	return b.Len()
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	da, _, db, ctl := newTestAccess(t)
	defer ctl.Finish()
	defer db.Close()

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = da.Begin()
	assert.Equal(t, fault.TransactionInUse, err, "second time Begin should return error")
}

func TestPutOutsideTransactionWritesDatabase(t *testing.T) {
	da, _, db, ctl := newTestAccess(t)
	defer ctl.Finish()
	defer db.Close()

	// no cache calls expected
	err := da.Put(defaultKey, defaultValue)
	assert.Nil(t, err, "put error")

	v, err := db.Get(defaultKey, nil)
	assert.Nil(t, err, "db get error")
	assert.Equal(t, defaultValue, v, "value not written")

	err = da.Delete(defaultKey)
	assert.Nil(t, err, "delete error")

	_, err = db.Get(defaultKey, nil)
	assert.Equal(t, leveldb.ErrNotFound, err, "value not deleted")
}

func TestPutInsideTransactionIsCached(t *testing.T) {
	da, mockCache, db, ctl := newTestAccess(t)
	defer ctl.Finish()
	defer db.Close()

	gomock.InOrder(
		mockCache.EXPECT().Set(storage.DBPut, string(defaultKey), defaultValue).Times(1),
		mockCache.EXPECT().Get(string(defaultKey)).Return(defaultValue, storage.DBPut, true).Times(1),
		mockCache.EXPECT().Clear().Times(1),
	)

	_ = da.Begin()
	err := da.Put(defaultKey, defaultValue)
	assert.Nil(t, err, "put error")

	v, err := da.Get(defaultKey)
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, v, "wrong cached value")

	_, err = db.Get(defaultKey, nil)
	assert.Equal(t, leveldb.ErrNotFound, err, "pending value reached database")

	assert.Equal(t, 1, pendingCount(t, da), "batch must hold the put")

	err = da.Commit()
	assert.Nil(t, err, "commit error")

	v, err = db.Get(defaultKey, nil)
	assert.Nil(t, err, "db get error")
	assert.Equal(t, defaultValue, v, "commit did not write")
}

func TestDeleteInsideTransactionHidesValue(t *testing.T) {
	da, mockCache, db, ctl := newTestAccess(t)
	defer ctl.Finish()
	defer db.Close()

	_ = db.Put(defaultKey, defaultValue, nil)

	mockCache.EXPECT().Set(storage.DBDelete, string(defaultKey), gomock.Nil()).Times(1)
	mockCache.EXPECT().Get(string(defaultKey)).Return(nil, storage.DBDelete, true).Times(1)
	mockCache.EXPECT().Clear().Times(1)

	_ = da.Begin()
	err := da.Delete(defaultKey)
	assert.Nil(t, err, "delete error")

	v, err := da.Get(defaultKey)
	assert.Nil(t, err, "get error")
	assert.Nil(t, v, "pending delete must hide value")

	da.Abort()
	assert.False(t, da.InUse(), "abort must finish transaction")
	assert.Equal(t, 0, pendingCount(t, da), "abort must reset batch")

	v, err = db.Get(defaultKey, nil)
	assert.Nil(t, err, "db get error")
	assert.Equal(t, defaultValue, v, "abort must keep committed value")
}

func TestGetFallsBackToDatabase(t *testing.T) {
	da, mockCache, db, ctl := newTestAccess(t)
	defer ctl.Finish()
	defer db.Close()

	_ = db.Put(defaultKey, defaultValue, nil)

	mockCache.EXPECT().Get(gomock.Any()).Return(nil, storage.DBPut, false).Times(2)

	_ = da.Begin()
	v, err := da.Get(defaultKey)
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, v, "wrong database value")

	v, err = da.Get([]byte("missing"))
	assert.Nil(t, err, "get error")
	assert.Nil(t, v, "missing key must give nil")
}
